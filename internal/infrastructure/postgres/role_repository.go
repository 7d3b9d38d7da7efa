package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)
var _ repository.RoleAssignmentRepository = (*RoleAssignmentRepo)(nil)

// RoleRepo implementación de RoleRepository (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol (solo lo usa el seed).
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		role.ID, role.Name,
	)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID. Devuelve nil sin error si no existe.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetByName obtiene un rol por nombre (clave de búsqueda, ej. "MANAGER_BRANCH").
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// RoleAssignmentRepo implementación de RoleAssignmentRepository (usable con pool o tx).
type RoleAssignmentRepo struct {
	q Querier
}

// NewRoleAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleAssignmentRepository(q Querier) *RoleAssignmentRepo {
	return &RoleAssignmentRepo{q: q}
}

// Create persiste un vínculo identidad-rol.
func (r *RoleAssignmentRepo) Create(ctx context.Context, a *entity.RoleAssignment) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO identity_roles (identity_id, role_id) VALUES ($1, $2)`,
		a.IdentityID, a.RoleID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("la identidad ya tiene asignado ese rol")
		}
		return fmt.Errorf("insert role assignment: %w", err)
	}
	return nil
}

// DeleteByIdentityID elimina todas las asignaciones de la identidad (reemplazo completo).
func (r *RoleAssignmentRepo) DeleteByIdentityID(ctx context.Context, identityID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM identity_roles WHERE identity_id = $1`, identityID)
	if err != nil {
		return fmt.Errorf("delete role assignments: %w", err)
	}
	return nil
}

// RoleNamesByIdentityIDs devuelve los nombres de rol agrupados por identidad.
func (r *RoleAssignmentRepo) RoleNamesByIdentityIDs(ctx context.Context, identityIDs []string) (map[string][]string, error) {
	if len(identityIDs) == 0 {
		return map[string][]string{}, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT ir.identity_id, ro.name
		FROM identity_roles ir
		JOIN roles ro ON ro.id = ir.role_id
		WHERE ir.identity_id = ANY($1)`,
		identityIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("role names by identity: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var identityID, name string
		if err := rows.Scan(&identityID, &name); err != nil {
			return nil, fmt.Errorf("scan role name: %w", err)
		}
		result[identityID] = append(result[identityID], name)
	}
	return result, rows.Err()
}
