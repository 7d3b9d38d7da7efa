package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// CustomerUseCase ciclo de vida de clientes: alta y actualización. Un cliente
// es una sola fila en identities, así que no necesita transacción más allá
// del insert/update implícito.
type CustomerUseCase struct {
	identities repository.IdentityRepository
	validator  *UniquenessValidator
	geocoder   AddressNormalizer
}

// NewCustomerUseCase construye el caso de uso. geocoder puede ser nil.
func NewCustomerUseCase(identities repository.IdentityRepository, validator *UniquenessValidator, geocoder AddressNormalizer) *CustomerUseCase {
	return &CustomerUseCase{identities: identities, validator: validator, geocoder: geocoder}
}

// CreateCustomer valida, hashea la contraseña y persiste la identidad
// (CUSTOMER, activa).
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateNewIdentity(in.Email, in.Password, in.FirstName, in.LastName); err != nil {
		return nil, err
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
	identity := &entity.Identity{
		ID:             uuid.New().String(),
		Email:          email,
		DocumentNumber: in.DocumentNumber,
		PasswordHash:   string(hash),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		IdentityType:   entity.IdentityTypeCustomer,
		BirthDate:      in.BirthDate,
		Address:        address,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.identities.Create(ctx, identity); err != nil {
		return nil, err
	}
	return toCustomerResponse(identity), nil
}

// UpdateCustomer actualización parcial de un cliente. La contraseña recibida
// se verifica contra el hash almacenado antes de re-hashear; si no coincide
// falla UNAUTHORIZED y el hash queda intacto.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	current, err := uc.identities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil || current.IdentityType != entity.IdentityTypeCustomer {
		return nil, domain.ErrIdentidadNoEncontrada
	}

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

	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, domain.ErrPasswordCorto
		}
		if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(*in.Password)); err != nil {
			return nil, domain.ErrPasswordIncorrecto
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.Internal("no se pudo hashear la contraseña")
		}
		current.PasswordHash = string(hash)
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

	current.UpdatedAt = time.Now()
	if err := uc.identities.Update(ctx, current); err != nil {
		return nil, err
	}
	return toCustomerResponse(current), nil
}
