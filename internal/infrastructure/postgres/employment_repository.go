package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

var _ repository.EmploymentRepository = (*EmploymentRepo)(nil)

// Nombres de constraints únicos en employments.
const (
	constraintEmployeeCode       = "employments_employee_code_key"
	constraintEmploymentIdentity = "employments_identity_id_key"
)

const employmentColumns = `id, identity_id, employee_code, position, department, salary, currency,
		benefits, hire_date, termination_date, emergency_contact_name, emergency_contact_phone,
		is_active, created_at, updated_at`

// EmploymentRepo implementación del puerto EmploymentRepository (usable con pool o tx).
type EmploymentRepo struct {
	q Querier
}

// NewEmploymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmploymentRepository(q Querier) *EmploymentRepo {
	return &EmploymentRepo{q: q}
}

// Create persiste un registro de empleo. Devuelve ErrCodigoEmpleadoEnUso si el
// employee_code chocó (el caso de uso reintenta la transacción completa).
func (r *EmploymentRepo) Create(ctx context.Context, e *entity.Employment) error {
	query := `
		INSERT INTO employments (` + employmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	var ecName, ecPhone *string
	if e.EmergencyContact != nil {
		ecName, ecPhone = &e.EmergencyContact.Name, &e.EmergencyContact.Phone
	}
	_, err := r.q.Exec(ctx, query,
		e.ID, e.IdentityID, e.EmployeeCode, e.Position, e.Department, e.Salary, e.Currency,
		e.Benefits, e.HireDate, e.TerminationDate, ecName, ecPhone,
		e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		switch uniqueConstraintName(err) {
		case constraintEmployeeCode:
			return domain.ErrCodigoEmpleadoEnUso
		case constraintEmploymentIdentity:
			return domain.Conflict("la identidad ya tiene un registro de empleo")
		}
		return fmt.Errorf("insert employment: %w", err)
	}
	return nil
}

// GetByIdentityID obtiene el empleo de una identidad. Devuelve nil sin error si no existe.
func (r *EmploymentRepo) GetByIdentityID(ctx context.Context, identityID string) (*entity.Employment, error) {
	query := `SELECT ` + employmentColumns + ` FROM employments WHERE identity_id = $1`
	e, err := scanEmployment(r.q.QueryRow(ctx, query, identityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employment: %w", err)
	}
	return e, nil
}

// LastCodeWithPrefix devuelve el employee_code más reciente con el prefijo dado, o "".
// Se ejecuta dentro de la transacción de creación; la unicidad real la
// garantiza el índice único sobre employee_code.
func (r *EmploymentRepo) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	var code string
	err := r.q.QueryRow(ctx,
		`SELECT employee_code FROM employments WHERE employee_code LIKE $1 ORDER BY created_at DESC, employee_code DESC LIMIT 1`,
		prefix+"%",
	).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last employee_code: %w", err)
	}
	return code, nil
}

// Update actualiza un registro de empleo.
func (r *EmploymentRepo) Update(ctx context.Context, e *entity.Employment) error {
	query := `
		UPDATE employments SET
			position = $2, department = $3, salary = $4, currency = $5, benefits = $6,
			hire_date = $7, termination_date = $8, emergency_contact_name = $9,
			emergency_contact_phone = $10, is_active = $11, updated_at = $12
		WHERE identity_id = $1`
	var ecName, ecPhone *string
	if e.EmergencyContact != nil {
		ecName, ecPhone = &e.EmergencyContact.Name, &e.EmergencyContact.Phone
	}
	_, err := r.q.Exec(ctx, query,
		e.IdentityID, e.Position, e.Department, e.Salary, e.Currency, e.Benefits,
		e.HireDate, e.TerminationDate, ecName, ecPhone, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employment: %w", err)
	}
	return nil
}

// UpdateStatusByIdentityID cambia solo is_active (y updated_at) del empleo.
func (r *EmploymentRepo) UpdateStatusByIdentityID(ctx context.Context, identityID string, active bool, when time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE employments SET is_active = $2, updated_at = $3 WHERE identity_id = $1`,
		identityID, active, when,
	)
	if err != nil {
		return fmt.Errorf("update employment status: %w", err)
	}
	return nil
}

// ListByIdentityIDs devuelve los empleos de varias identidades (para proyección de listados).
func (r *EmploymentRepo) ListByIdentityIDs(ctx context.Context, identityIDs []string) ([]*entity.Employment, error) {
	if len(identityIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + employmentColumns + ` FROM employments WHERE identity_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, identityIDs)
	if err != nil {
		return nil, fmt.Errorf("list employments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employment
	for rows.Next() {
		e, err := scanEmployment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employment: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployment(row pgx.Row) (*entity.Employment, error) {
	var (
		e               entity.Employment
		ecName, ecPhone *string
	)
	err := row.Scan(
		&e.ID, &e.IdentityID, &e.EmployeeCode, &e.Position, &e.Department, &e.Salary, &e.Currency,
		&e.Benefits, &e.HireDate, &e.TerminationDate, &ecName, &ecPhone,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ecName != nil {
		contact := entity.EmergencyContact{Name: *ecName}
		if ecPhone != nil {
			contact.Phone = *ecPhone
		}
		e.EmergencyContact = &contact
	}
	return &e, nil
}
