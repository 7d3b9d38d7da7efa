package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

var _ repository.IdentityRepository = (*IdentityRepo)(nil)

// Nombres de constraints únicos en identities (para mapear 23505 a errores de dominio).
const (
	constraintIdentityEmail    = "identities_email_key"
	constraintIdentityDocument = "identities_document_number_key"
)

const identityColumns = `id, email, document_number, password_hash, first_name, last_name, phone,
		identity_type, store_id, birth_date, street, number, district, city, state, zip_code, country,
		is_active, created_at, updated_at`

// IdentityRepo implementación del puerto IdentityRepository sobre PostgreSQL (usable con pool o tx).
type IdentityRepo struct {
	q Querier
}

// NewIdentityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIdentityRepository(q Querier) *IdentityRepo {
	return &IdentityRepo{q: q}
}

// Create persiste una nueva identidad.
func (r *IdentityRepo) Create(ctx context.Context, i *entity.Identity) error {
	query := `
		INSERT INTO identities (` + identityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Email, i.DocumentNumber, i.PasswordHash, i.FirstName, i.LastName, i.Phone,
		i.IdentityType, i.StoreID, i.BirthDate,
		i.Address.Street, i.Address.Number, i.Address.District, i.Address.City,
		i.Address.State, i.Address.ZipCode, i.Address.Country,
		i.IsActive, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if mapped := mapIdentityUnique(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

// GetByID obtiene una identidad por ID. Devuelve nil sin error si no existe.
func (r *IdentityRepo) GetByID(ctx context.Context, id string) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail obtiene una identidad por email (almacenado en minúsculas).
func (r *IdentityRepo) GetByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE email = $1 LIMIT 1`
	return r.getOne(ctx, query, strings.ToLower(email))
}

// GetByDocument obtiene una identidad por número de documento.
func (r *IdentityRepo) GetByDocument(ctx context.Context, documentNumber string) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE document_number = $1 LIMIT 1`
	return r.getOne(ctx, query, documentNumber)
}

func (r *IdentityRepo) getOne(ctx context.Context, query string, arg any) (*entity.Identity, error) {
	i, err := scanIdentity(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity: %w", err)
	}
	return i, nil
}

// Update actualiza una identidad. identity_type nunca se toca: es inmutable.
func (r *IdentityRepo) Update(ctx context.Context, i *entity.Identity) error {
	query := `
		UPDATE identities SET
			email = $2, document_number = $3, password_hash = $4, first_name = $5, last_name = $6,
			phone = $7, store_id = $8, birth_date = $9, street = $10, number = $11, district = $12,
			city = $13, state = $14, zip_code = $15, country = $16, is_active = $17, updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Email, i.DocumentNumber, i.PasswordHash, i.FirstName, i.LastName,
		i.Phone, i.StoreID, i.BirthDate, i.Address.Street, i.Address.Number, i.Address.District,
		i.Address.City, i.Address.State, i.Address.ZipCode, i.Address.Country, i.IsActive, i.UpdatedAt,
	)
	if err != nil {
		if mapped := mapIdentityUnique(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update identity: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo is_active (y updated_at).
func (r *IdentityRepo) UpdateStatus(ctx context.Context, id string, active bool, when time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE identities SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, when,
	)
	if err != nil {
		return fmt.Errorf("update identity status: %w", err)
	}
	return nil
}

// List lista identidades filtradas, orden created_at DESC con desempate por id.
// Paginación keyset: si before no es nil se devuelven filas estrictamente
// anteriores a (created_at, id) y offset se ignora.
func (r *IdentityRepo) List(ctx context.Context, f repository.IdentityFilter, limit, offset int, before *repository.CursorKey) ([]*entity.Identity, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.IdentityType != "" {
		add("identity_type = $%d", f.IdentityType)
	}
	if f.Email != "" {
		add("email = $%d", strings.ToLower(f.Email))
	}
	if f.DocumentNumber != "" {
		add("document_number = $%d", f.DocumentNumber)
	}
	if f.City != "" {
		add("city = $%d", f.City)
	}
	if f.State != "" {
		add("state = $%d", f.State)
	}
	if f.StoreID != "" {
		add("store_id = $%d", f.StoreID)
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if f.IsActive != nil {
		add("is_active = $%d", *f.IsActive)
	}
	if before != nil {
		args = append(args, before.CreatedAt, before.ID)
		conds = append(conds, fmt.Sprintf("(created_at, id) < ($%d, $%d)", len(args)-1, len(args)))
		offset = 0
	}

	query := `SELECT ` + identityColumns + ` FROM identities`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer rows.Close()

	var list []*entity.Identity
	for rows.Next() {
		i, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan identity: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func scanIdentity(row pgx.Row) (*entity.Identity, error) {
	var i entity.Identity
	err := row.Scan(
		&i.ID, &i.Email, &i.DocumentNumber, &i.PasswordHash, &i.FirstName, &i.LastName, &i.Phone,
		&i.IdentityType, &i.StoreID, &i.BirthDate,
		&i.Address.Street, &i.Address.Number, &i.Address.District, &i.Address.City,
		&i.Address.State, &i.Address.ZipCode, &i.Address.Country,
		&i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// mapIdentityUnique traduce una violación 23505 sobre identities al error de dominio.
func mapIdentityUnique(err error) error {
	switch uniqueConstraintName(err) {
	case constraintIdentityEmail:
		return domain.ErrEmailEnUso
	case constraintIdentityDocument:
		return domain.ErrDocumentoEnUso
	}
	if isUniqueViolation(err) {
		return domain.Conflict("identidad duplicada")
	}
	return nil
}
