package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/personal-api/internal/application/identity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// Ensure TxRunner implements identity.TxRunner.
var _ identity.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Todo escrito multi-fila del motor (alta de empleado, actualización, cascada
// de estado) pasa por aquí; cualquier error del callback hace rollback
// completo, sin filas parciales observables.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// La cancelación del ctx aborta la transacción (rollback limpio).
func (r *TxRunner) Run(ctx context.Context, fn func(
	identityRepo repository.IdentityRepository,
	employmentRepo repository.EmploymentRepository,
	assignmentRepo repository.RoleAssignmentRepository,
	roleRepo repository.RoleRepository,
	storeRepo repository.StoreRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	identityRepo := NewIdentityRepository(tx)
	employmentRepo := NewEmploymentRepository(tx)
	assignmentRepo := NewRoleAssignmentRepository(tx)
	roleRepo := NewRoleRepository(tx)
	storeRepo := NewStoreRepository(tx)

	if err := fn(identityRepo, employmentRepo, assignmentRepo, roleRepo, storeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
