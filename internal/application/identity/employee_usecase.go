package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Reintentos de la transacción de alta cuando el employee_code choca con el
// índice único (carrera por tienda/mes).
const codeRetryAttempts = 3

// EmployeeUseCase orquesta el ciclo de vida de empleados: alta atómica
// (identidad + empleo + rol), actualización y reemplazo de rol. Todo escrito
// multi-fila pasa por el TxRunner.
type EmployeeUseCase struct {
	txRunner    TxRunner
	identities  repository.IdentityRepository
	employments repository.EmploymentRepository
	assignments repository.RoleAssignmentRepository
	stores      repository.StoreRepository
	validator   *UniquenessValidator
	geocoder    AddressNormalizer
}

// NewEmployeeUseCase construye el caso de uso. geocoder puede ser nil.
func NewEmployeeUseCase(
	txRunner TxRunner,
	identities repository.IdentityRepository,
	employments repository.EmploymentRepository,
	assignments repository.RoleAssignmentRepository,
	stores repository.StoreRepository,
	validator *UniquenessValidator,
	geocoder AddressNormalizer,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		txRunner:    txRunner,
		identities:  identities,
		employments: employments,
		assignments: assignments,
		stores:      stores,
		validator:   validator,
		geocoder:    geocoder,
	}
}

// CreateEmployee crea identidad + empleo + asignación de rol en una sola
// transacción. Rol y tienda se resuelven dentro de la tx; el employee_code se
// genera con el repositorio atado a la misma tx y una colisión 23505 sobre el
// código reintenta la transacción completa.
func (uc *EmployeeUseCase) CreateEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validateNewIdentity(in.Email, in.Password, in.FirstName, in.LastName); err != nil {
		return nil, err
	}
	if in.StoreCode == "" || in.RoleName == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Salary.IsNegative() {
		return nil, domain.BadRequest("el salario no puede ser negativo")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	doc := ""
	if in.DocumentNumber != nil {
		doc = *in.DocumentNumber
	}
	if err := uc.validator.Validate(ctx, email, doc, ""); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal("no se pudo hashear la contraseña")
	}

	address := toAddress(in.Address)
	normalizeAddress(ctx, uc.geocoder, &address)

	now := time.Now()
	hireDate := now
	if in.HireDate != nil {
		hireDate = *in.HireDate
	}

	var (
		created    *entity.Identity
		employment *entity.Employment
		store      *entity.Store
		roleName   string
	)

	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		err = uc.txRunner.Run(ctx, func(
			identityRepo repository.IdentityRepository,
			employmentRepo repository.EmploymentRepository,
			assignmentRepo repository.RoleAssignmentRepository,
			roleRepo repository.RoleRepository,
			storeRepo repository.StoreRepository,
		) error {
			role, err := roleRepo.GetByName(ctx, in.RoleName)
			if err != nil {
				return err
			}
			if role == nil {
				return domain.ErrRolNoEncontrado
			}
			st, err := storeRepo.GetByCode(ctx, in.StoreCode)
			if err != nil {
				return err
			}
			if st == nil {
				return domain.ErrTiendaNoEncontrada
			}

			identity := &entity.Identity{
				ID:             uuid.New().String(),
				Email:          email,
				DocumentNumber: in.DocumentNumber,
				PasswordHash:   string(hash),
				FirstName:      in.FirstName,
				LastName:       in.LastName,
				Phone:          in.Phone,
				IdentityType:   entity.IdentityTypeEmployee,
				StoreID:        &st.ID,
				BirthDate:      in.BirthDate,
				Address:        address,
				IsActive:       true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := identityRepo.Create(ctx, identity); err != nil {
				return err
			}

			code, err := NextEmployeeCode(ctx, employmentRepo, st.Code, hireDate)
			if err != nil {
				return err
			}
			emp := &entity.Employment{
				ID:           uuid.New().String(),
				IdentityID:   identity.ID,
				EmployeeCode: code,
				Position:     in.Position,
				Department:   in.Department,
				Salary:       in.Salary,
				Currency:     in.Currency,
				Benefits:     in.Benefits,
				HireDate:     hireDate,
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if in.EmergencyContact != nil {
				emp.EmergencyContact = &entity.EmergencyContact{
					Name:  in.EmergencyContact.Name,
					Phone: in.EmergencyContact.Phone,
				}
			}
			if err := employmentRepo.Create(ctx, emp); err != nil {
				return err
			}

			if err := assignmentRepo.Create(ctx, &entity.RoleAssignment{
				IdentityID: identity.ID,
				RoleID:     role.ID,
			}); err != nil {
				return err
			}

			created, employment, store, roleName = identity, emp, st, role.Name
			return nil
		})
		if !errors.Is(err, domain.ErrCodigoEmpleadoEnUso) {
			break
		}
		// Otro alta ganó la carrera por el código: la tx ya se revirtió,
		// se vuelve a leer el último código y se reintenta completa.
	}
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(created, employment, store, []string{roleName}), nil
}

// UpdateEmployee actualiza identidad y empleo en una transacción. La unicidad
// se re-valida solo para los campos que realmente cambian (evita
// auto-conflictos); un rol distinto reemplaza las asignaciones completas; sin
// store_code se conserva la tienda actual.
func (uc *EmployeeUseCase) UpdateEmployee(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	current, err := uc.identities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil || !current.IsEmployee() {
		return nil, domain.ErrIdentidadNoEncontrada
	}
	employment, err := uc.employments.GetByIdentityID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employment == nil {
		return nil, domain.ErrEmpleoNoEncontrado
	}

	// Solo los campos que cambian entran a la validación de unicidad.
	checkEmail, checkDoc := "", ""
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != current.Email {
			checkEmail = email
		}
		current.Email = email
	}
	if in.DocumentNumber != nil {
		if current.DocumentNumber == nil || *in.DocumentNumber != *current.DocumentNumber {
			checkDoc = *in.DocumentNumber
		}
		current.DocumentNumber = in.DocumentNumber
	}
	if err := uc.validator.Validate(ctx, checkEmail, checkDoc, current.ID); err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		current.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		current.LastName = *in.LastName
	}
	if in.Phone != nil {
		current.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		current.BirthDate = in.BirthDate
	}
	if in.Address != nil {
		address := toAddress(*in.Address)
		normalizeAddress(ctx, uc.geocoder, &address)
		current.Address = address
	}

	if in.Position != nil {
		employment.Position = *in.Position
	}
	if in.Department != nil {
		employment.Department = *in.Department
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, domain.BadRequest("el salario no puede ser negativo")
		}
		employment.Salary = *in.Salary
	}
	if in.Currency != nil {
		employment.Currency = *in.Currency
	}
	if in.Benefits != nil {
		employment.Benefits = in.Benefits
	}
	if in.TerminationDate != nil {
		employment.TerminationDate = in.TerminationDate
	}
	if in.EmergencyContact != nil {
		employment.EmergencyContact = &entity.EmergencyContact{
			Name:  in.EmergencyContact.Name,
			Phone: in.EmergencyContact.Phone,
		}
	}

	currentRoles, err := uc.assignments.RoleNamesByIdentityIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	roles := currentRoles[id]

	now := time.Now()
	current.UpdatedAt = now
	employment.UpdatedAt = now

	var store *entity.Store
	err = uc.txRunner.Run(ctx, func(
		identityRepo repository.IdentityRepository,
		employmentRepo repository.EmploymentRepository,
		assignmentRepo repository.RoleAssignmentRepository,
		roleRepo repository.RoleRepository,
		storeRepo repository.StoreRepository,
	) error {
		if in.StoreCode != nil && *in.StoreCode != "" {
			st, err := storeRepo.GetByCode(ctx, *in.StoreCode)
			if err != nil {
				return err
			}
			if st == nil {
				return domain.ErrTiendaNoEncontrada
			}
			current.StoreID = &st.ID
			store = st
		} else if current.StoreID != nil {
			// Sin store_code: se conserva la tienda actual.
			st, err := storeRepo.GetByID(ctx, *current.StoreID)
			if err != nil {
				return err
			}
			store = st
		}

		if in.RoleName != nil && *in.RoleName != "" && !containsRole(roles, *in.RoleName) {
			role, err := roleRepo.GetByName(ctx, *in.RoleName)
			if err != nil {
				return err
			}
			if role == nil {
				return domain.ErrRolNoEncontrado
			}
			// Reemplazo completo, nunca mezcla.
			if err := assignmentRepo.DeleteByIdentityID(ctx, id); err != nil {
				return err
			}
			if err := assignmentRepo.Create(ctx, &entity.RoleAssignment{
				IdentityID: id,
				RoleID:     role.ID,
			}); err != nil {
				return err
			}
			roles = []string{role.Name}
		}

		if err := identityRepo.Update(ctx, current); err != nil {
			return err
		}
		return employmentRepo.Update(ctx, employment)
	})
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(current, employment, store, roles), nil
}

func containsRole(roles []string, name string) bool {
	for _, r := range roles {
		if r == name {
			return true
		}
	}
	return false
}
