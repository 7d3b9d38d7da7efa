package repository

import (
	"context"
	"time"

	"github.com/jhoicas/personal-api/internal/domain/entity"
)

// EmploymentRepository puerto de persistencia para Employment (DIP).
type EmploymentRepository interface {
	Create(ctx context.Context, employment *entity.Employment) error
	GetByIdentityID(ctx context.Context, identityID string) (*entity.Employment, error)
	// LastCodeWithPrefix devuelve el employee_code más reciente (por created_at)
	// que empieza con el prefijo, o "" si no existe ninguno.
	LastCodeWithPrefix(ctx context.Context, prefix string) (string, error)
	Update(ctx context.Context, employment *entity.Employment) error
	UpdateStatusByIdentityID(ctx context.Context, identityID string, active bool, when time.Time) error
	ListByIdentityIDs(ctx context.Context, identityIDs []string) ([]*entity.Employment, error)
}
