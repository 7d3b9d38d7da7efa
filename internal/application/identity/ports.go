package identity

import (
	"context"

	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// TxRunner puerto para ejecutar escritos multi-fila dentro de una transacción.
// El callback recibe repositorios atados a la tx; si retorna error se hace
// rollback completo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		identityRepo repository.IdentityRepository,
		employmentRepo repository.EmploymentRepository,
		assignmentRepo repository.RoleAssignmentRepository,
		roleRepo repository.RoleRepository,
		storeRepo repository.StoreRepository,
	) error) error
}

// AddressNormalizer puerto del validador externo de direcciones. Es
// consultivo: un resultado nil o un error nunca abortan la operación que lo
// invoca.
type AddressNormalizer interface {
	Normalize(ctx context.Context, address entity.Address) (*entity.Address, error)
}
