package repository

import (
	"context"
	"time"

	"github.com/jhoicas/personal-api/internal/domain/entity"
)

// IdentityFilter filtros de listado. Los campos vacíos no filtran.
type IdentityFilter struct {
	IdentityType   string // discriminador implícito del listado
	Email          string
	DocumentNumber string
	City           string
	State          string
	StoreID        string
	Name           string // busca en first_name y last_name (ILIKE)
	IsActive       *bool
}

// CursorKey posición de paginación keyset: filas estrictamente anteriores a
// (CreatedAt, ID) en orden created_at DESC, id DESC.
type CursorKey struct {
	CreatedAt time.Time
	ID        string
}

// IdentityRepository puerto de persistencia para Identity (DIP).
type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	GetByID(ctx context.Context, id string) (*entity.Identity, error)
	GetByEmail(ctx context.Context, email string) (*entity.Identity, error)
	GetByDocument(ctx context.Context, documentNumber string) (*entity.Identity, error)
	Update(ctx context.Context, identity *entity.Identity) error
	UpdateStatus(ctx context.Context, id string, active bool, when time.Time) error
	List(ctx context.Context, filter IdentityFilter, limit, offset int, before *CursorKey) ([]*entity.Identity, error)
}
