package identity

import (
	"context"
	"time"

	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// StatusUseCase cascada de estado: para EMPLOYEE, identities.is_active y
// employments.is_active cambian juntos en una transacción; para CUSTOMER solo
// la identidad. Una transición redundante falla CONFLICT, nunca no-op
// silencioso.
type StatusUseCase struct {
	txRunner    TxRunner
	identities  repository.IdentityRepository
	employments repository.EmploymentRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(txRunner TxRunner, identities repository.IdentityRepository, employments repository.EmploymentRepository) *StatusUseCase {
	return &StatusUseCase{txRunner: txRunner, identities: identities, employments: employments}
}

// SetStatus cambia el estado al valor objetivo.
func (uc *StatusUseCase) SetStatus(ctx context.Context, id string, target bool) error {
	identity, err := uc.identities.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if identity == nil {
		return domain.ErrIdentidadNoEncontrada
	}
	return uc.apply(ctx, identity, target)
}

// Activate activa la identidad. Para EMPLOYEE exige que exista el registro de empleo.
func (uc *StatusUseCase) Activate(ctx context.Context, id string) error {
	return uc.toggle(ctx, id, true)
}

// Deactivate desactiva la identidad (estado terminal de "borrado"). Para
// EMPLOYEE exige que exista el registro de empleo.
func (uc *StatusUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.toggle(ctx, id, false)
}

func (uc *StatusUseCase) toggle(ctx context.Context, id string, target bool) error {
	identity, err := uc.identities.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if identity == nil {
		return domain.ErrIdentidadNoEncontrada
	}
	if identity.IsEmployee() {
		employment, err := uc.employments.GetByIdentityID(ctx, id)
		if err != nil {
			return err
		}
		if employment == nil {
			return domain.ErrEmpleoNoEncontrado
		}
	}
	return uc.apply(ctx, identity, target)
}

func (uc *StatusUseCase) apply(ctx context.Context, identity *entity.Identity, target bool) error {
	if identity.IsActive == target {
		if target {
			return domain.Conflict("la identidad ya está activa")
		}
		return domain.Conflict("la identidad ya está inactiva")
	}

	now := time.Now()
	if identity.IsEmployee() {
		return uc.txRunner.Run(ctx, func(
			identityRepo repository.IdentityRepository,
			employmentRepo repository.EmploymentRepository,
			_ repository.RoleAssignmentRepository,
			_ repository.RoleRepository,
			_ repository.StoreRepository,
		) error {
			if err := identityRepo.UpdateStatus(ctx, identity.ID, target, now); err != nil {
				return err
			}
			return employmentRepo.UpdateStatusByIdentityID(ctx, identity.ID, target, now)
		})
	}
	return uc.identities.UpdateStatus(ctx, identity.ID, target, now)
}
