package identity

import (
	"context"
	"strings"

	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// UniquenessValidator comprueba colisiones de email y documento contra las
// identidades existentes. Solo lectura; los índices únicos de la DB siguen
// siendo el respaldo autoritativo bajo concurrencia.
type UniquenessValidator struct {
	identities repository.IdentityRepository
}

// NewUniquenessValidator construye el validador con el puerto de identidades.
func NewUniquenessValidator(identities repository.IdentityRepository) *UniquenessValidator {
	return &UniquenessValidator{identities: identities}
}

// Validate falla con CONFLICT si el email o el documento ya pertenecen a otra
// identidad (excluyendo excludeID, para actualizaciones). Los argumentos
// vacíos no se comprueban; con ambos vacíos es un no-op.
func (v *UniquenessValidator) Validate(ctx context.Context, email, documentNumber, excludeID string) error {
	if email != "" {
		existing, err := v.identities.GetByEmail(ctx, strings.ToLower(email))
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return domain.ErrEmailEnUso
		}
	}
	if documentNumber != "" {
		existing, err := v.identities.GetByDocument(ctx, documentNumber)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return domain.ErrDocumentoEnUso
		}
	}
	return nil
}
