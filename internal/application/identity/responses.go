package identity

import (
	"context"
	"strings"

	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
)

// Política local del motor: longitud mínima de contraseña antes de hashear.
const minPasswordLen = 6

func toAddress(in dto.AddressRequest) entity.Address {
	return entity.Address{
		Street:   in.Street,
		Number:   in.Number,
		District: in.District,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		Country:  in.Country,
	}
}

func toAddressResponse(a entity.Address) dto.AddressResponse {
	return dto.AddressResponse{
		Street:   a.Street,
		Number:   a.Number,
		District: a.District,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
	}
}

func toCustomerResponse(i *entity.Identity) *dto.CustomerResponse {
	if i == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:             i.ID,
		Email:          i.Email,
		FirstName:      i.FirstName,
		LastName:       i.LastName,
		Phone:          i.Phone,
		DocumentNumber: i.DocumentNumber,
		BirthDate:      i.BirthDate,
		Address:        toAddressResponse(i.Address),
		IsActive:       i.IsActive,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func toEmploymentResponse(e *entity.Employment) dto.EmploymentResponse {
	if e == nil {
		return dto.EmploymentResponse{}
	}
	resp := dto.EmploymentResponse{
		EmployeeCode:    e.EmployeeCode,
		Position:        e.Position,
		Department:      e.Department,
		Salary:          e.Salary,
		Currency:        e.Currency,
		Benefits:        e.Benefits,
		HireDate:        e.HireDate,
		TerminationDate: e.TerminationDate,
		IsActive:        e.IsActive,
	}
	if e.EmergencyContact != nil {
		resp.EmergencyContact = &dto.EmergencyContactRequest{
			Name:  e.EmergencyContact.Name,
			Phone: e.EmergencyContact.Phone,
		}
	}
	return resp
}

func toEmployeeResponse(i *entity.Identity, e *entity.Employment, store *entity.Store, roles []string) *dto.EmployeeResponse {
	if i == nil {
		return nil
	}
	resp := &dto.EmployeeResponse{
		ID:             i.ID,
		Email:          i.Email,
		FirstName:      i.FirstName,
		LastName:       i.LastName,
		Phone:          i.Phone,
		DocumentNumber: i.DocumentNumber,
		Address:        toAddressResponse(i.Address),
		IsActive:       i.IsActive,
		Roles:          roles,
		Employment:     toEmploymentResponse(e),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
	if store != nil {
		resp.Store = &dto.StoreResponse{Code: store.Code, Name: store.Name}
	}
	return resp
}

// validateNewIdentity validación local previa a cualquier alta.
func validateNewIdentity(email, password, firstName, lastName string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return domain.ErrEntradaInvalida
	}
	if len(password) < minPasswordLen {
		return domain.ErrPasswordCorto
	}
	return nil
}

// normalizeAddress aplica el lookup externo si está disponible. Consultivo:
// errores y resultados vacíos dejan la dirección original intacta.
func normalizeAddress(ctx context.Context, geocoder AddressNormalizer, address *entity.Address) {
	if geocoder == nil {
		return
	}
	normalized, err := geocoder.Normalize(ctx, *address)
	if err != nil || normalized == nil {
		return
	}
	*address = *normalized
}
