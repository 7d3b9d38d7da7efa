package identity

import (
	"context"

	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/domain/repository"
)

// QueryUseCase lecturas filtradas y paginadas con proyección según el
// discriminador: EMPLOYEE incluye empleo + tienda + roles, CUSTOMER es plano.
// Orden: created_at DESC. Paginación keyset por (created_at, id); cursor_id
// manda sobre skip.
type QueryUseCase struct {
	identities  repository.IdentityRepository
	employments repository.EmploymentRepository
	assignments repository.RoleAssignmentRepository
	stores      repository.StoreRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	identities repository.IdentityRepository,
	employments repository.EmploymentRepository,
	assignments repository.RoleAssignmentRepository,
	stores repository.StoreRepository,
) *QueryUseCase {
	return &QueryUseCase{
		identities:  identities,
		employments: employments,
		assignments: assignments,
		stores:      stores,
	}
}

// List devuelve una página finita de identidades; el caller re-invoca con
// next_cursor para la siguiente.
func (uc *QueryUseCase) List(ctx context.Context, in dto.ListIdentitiesRequest) (*dto.IdentityListResponse, error) {
	if in.IdentityType != entity.IdentityTypeCustomer && in.IdentityType != entity.IdentityTypeEmployee {
		return nil, domain.BadRequest("identity_type debe ser CUSTOMER o EMPLOYEE")
	}
	in.DefaultPage()

	filter := repository.IdentityFilter{
		IdentityType:   in.IdentityType,
		Email:          in.Email,
		DocumentNumber: in.DocumentNumber,
		City:           in.City,
		State:          in.State,
		Name:           in.Name,
		IsActive:       in.IsActive,
	}
	if in.StoreCode != "" {
		store, err := uc.stores.GetByCode(ctx, in.StoreCode)
		if err != nil {
			return nil, err
		}
		if store == nil {
			// Tienda inexistente: página vacía, no error.
			return &dto.IdentityListResponse{}, nil
		}
		filter.StoreID = store.ID
	}

	var before *repository.CursorKey
	if in.CursorID != "" {
		cursor, err := uc.identities.GetByID(ctx, in.CursorID)
		if err != nil {
			return nil, err
		}
		if cursor == nil {
			return nil, domain.BadRequest("cursor_id inválido")
		}
		before = &repository.CursorKey{CreatedAt: cursor.CreatedAt, ID: cursor.ID}
	}

	list, err := uc.identities.List(ctx, filter, in.Take, in.Skip, before)
	if err != nil {
		return nil, err
	}

	resp := &dto.IdentityListResponse{}
	if len(list) == in.Take {
		resp.NextCursor = list[len(list)-1].ID
	}

	if in.IdentityType == entity.IdentityTypeCustomer {
		for _, i := range list {
			resp.Customers = append(resp.Customers, *toCustomerResponse(i))
		}
		return resp, nil
	}

	employees, err := uc.assembleEmployees(ctx, list)
	if err != nil {
		return nil, err
	}
	resp.Employees = employees
	return resp, nil
}

// GetByID devuelve una identidad con la proyección de su tipo.
func (uc *QueryUseCase) GetByID(ctx context.Context, id string) (*dto.IdentityListResponse, error) {
	identity, err := uc.identities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrIdentidadNoEncontrada
	}

	resp := &dto.IdentityListResponse{}
	if identity.IsEmployee() {
		employees, err := uc.assembleEmployees(ctx, []*entity.Identity{identity})
		if err != nil {
			return nil, err
		}
		resp.Employees = employees
		return resp, nil
	}
	resp.Customers = []dto.CustomerResponse{*toCustomerResponse(identity)}
	return resp, nil
}

// assembleEmployees arma la proyección de empleados: empleo, tienda y roles
// en tres lecturas por página.
func (uc *QueryUseCase) assembleEmployees(ctx context.Context, list []*entity.Identity) ([]dto.EmployeeResponse, error) {
	if len(list) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(list))
	storeIDSet := make(map[string]struct{})
	for _, i := range list {
		ids = append(ids, i.ID)
		if i.StoreID != nil {
			storeIDSet[*i.StoreID] = struct{}{}
		}
	}

	employments, err := uc.employments.ListByIdentityIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	employmentByIdentity := make(map[string]*entity.Employment, len(employments))
	for _, e := range employments {
		employmentByIdentity[e.IdentityID] = e
	}

	roleNames, err := uc.assignments.RoleNamesByIdentityIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	storeIDs := make([]string, 0, len(storeIDSet))
	for id := range storeIDSet {
		storeIDs = append(storeIDs, id)
	}
	stores, err := uc.stores.ListByIDs(ctx, storeIDs)
	if err != nil {
		return nil, err
	}
	storeByID := make(map[string]*entity.Store, len(stores))
	for _, s := range stores {
		storeByID[s.ID] = s
	}

	result := make([]dto.EmployeeResponse, 0, len(list))
	for _, i := range list {
		var store *entity.Store
		if i.StoreID != nil {
			store = storeByID[*i.StoreID]
		}
		result = append(result, *toEmployeeResponse(i, employmentByIdentity[i.ID], store, roleNames[i.ID]))
	}
	return result, nil
}
