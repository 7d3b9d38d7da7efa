package repository

import (
	"context"

	"github.com/jhoicas/personal-api/internal/domain/entity"
)

// StoreRepository puerto de consulta de tiendas (solo lectura para el motor;
// Create existe para el seed).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetByCode(ctx context.Context, code string) (*entity.Store, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Store, error)
}
