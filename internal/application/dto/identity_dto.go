package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressRequest dirección postal en peticiones.
type AddressRequest struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// EmergencyContactRequest contacto de emergencia en peticiones.
type EmergencyContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Email          string         `json:"email"`
	Password       string         `json:"password"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Phone          string         `json:"phone"`
	DocumentNumber *string        `json:"document_number"`
	BirthDate      *time.Time     `json:"birth_date"`
	Address        AddressRequest `json:"address"`
}

// UpdateCustomerRequest actualización parcial de cliente. Los campos nil no cambian.
// Password se verifica contra el hash almacenado antes de re-hashear; un valor
// que no coincide falla UNAUTHORIZED.
type UpdateCustomerRequest struct {
	Email          *string         `json:"email"`
	Password       *string         `json:"password"`
	FirstName      *string         `json:"first_name"`
	LastName       *string         `json:"last_name"`
	Phone          *string         `json:"phone"`
	DocumentNumber *string         `json:"document_number"`
	BirthDate      *time.Time      `json:"birth_date"`
	Address        *AddressRequest `json:"address"`
}

// CreateEmployeeRequest alta de empleado: identidad + empleo + rol, atómico.
type CreateEmployeeRequest struct {
	Email            string                   `json:"email"`
	Password         string                   `json:"password"`
	FirstName        string                   `json:"first_name"`
	LastName         string                   `json:"last_name"`
	Phone            string                   `json:"phone"`
	DocumentNumber   *string                  `json:"document_number"`
	BirthDate        *time.Time               `json:"birth_date"`
	Address          AddressRequest           `json:"address"`
	StoreCode        string                   `json:"store_code"`
	RoleName         string                   `json:"role_name"`
	Position         string                   `json:"position"`
	Department       string                   `json:"department"`
	Salary           decimal.Decimal          `json:"salary"`
	Currency         string                   `json:"currency"`
	Benefits         []string                 `json:"benefits"`
	HireDate         *time.Time               `json:"hire_date"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact"`
}

// UpdateEmployeeRequest actualización parcial de empleado. Los campos nil no
// cambian; Benefits nil conserva la lista actual. RoleName con un rol distinto
// reemplaza las asignaciones completas. StoreCode ausente usa la tienda actual.
type UpdateEmployeeRequest struct {
	Email            *string                  `json:"email"`
	FirstName        *string                  `json:"first_name"`
	LastName         *string                  `json:"last_name"`
	Phone            *string                  `json:"phone"`
	DocumentNumber   *string                  `json:"document_number"`
	BirthDate        *time.Time               `json:"birth_date"`
	Address          *AddressRequest          `json:"address"`
	StoreCode        *string                  `json:"store_code"`
	RoleName         *string                  `json:"role_name"`
	Position         *string                  `json:"position"`
	Department       *string                  `json:"department"`
	Salary           *decimal.Decimal         `json:"salary"`
	Currency         *string                  `json:"currency"`
	Benefits         []string                 `json:"benefits"`
	TerminationDate  *time.Time               `json:"termination_date"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact"`
}

// SetStatusRequest cambio explícito de estado.
type SetStatusRequest struct {
	Active bool `json:"active"`
}

// ListIdentitiesRequest filtros de listado. IdentityType es el discriminador
// de proyección (CUSTOMER o EMPLOYEE) y es obligatorio.
type ListIdentitiesRequest struct {
	IdentityType   string `query:"identity_type"`
	Email          string `query:"email"`
	DocumentNumber string `query:"document_number"`
	City           string `query:"city"`
	State          string `query:"state"`
	StoreCode      string `query:"store_code"`
	Name           string `query:"name"`
	IsActive       *bool  `query:"is_active"`
	PageRequest
}

// AddressResponse dirección en respuestas.
type AddressResponse struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// StoreResponse tienda en respuestas de empleado.
type StoreResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CustomerResponse proyección plana de un cliente.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Phone          string          `json:"phone"`
	DocumentNumber *string         `json:"document_number,omitempty"`
	BirthDate      *time.Time      `json:"birth_date,omitempty"`
	Address        AddressResponse `json:"address"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// EmploymentResponse datos de empleo en la proyección de empleado.
type EmploymentResponse struct {
	EmployeeCode     string                   `json:"employee_code"`
	Position         string                   `json:"position"`
	Department       string                   `json:"department"`
	Salary           decimal.Decimal          `json:"salary"`
	Currency         string                   `json:"currency"`
	Benefits         []string                 `json:"benefits"`
	HireDate         time.Time                `json:"hire_date"`
	TerminationDate  *time.Time               `json:"termination_date,omitempty"`
	EmergencyContact *EmergencyContactRequest `json:"emergency_contact,omitempty"`
	IsActive         bool                     `json:"is_active"`
}

// EmployeeResponse proyección de un empleado: identidad + empleo + tienda + roles.
type EmployeeResponse struct {
	ID             string             `json:"id"`
	Email          string             `json:"email"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Phone          string             `json:"phone"`
	DocumentNumber *string            `json:"document_number,omitempty"`
	Address        AddressResponse    `json:"address"`
	IsActive       bool               `json:"is_active"`
	Store          *StoreResponse     `json:"store,omitempty"`
	Roles          []string           `json:"roles"`
	Employment     EmploymentResponse `json:"employment"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// IdentityListResponse una página de resultados. NextCursor alimenta la
// siguiente llamada (cursor_id); vacío cuando no hay más páginas.
type IdentityListResponse struct {
	Customers  []CustomerResponse `json:"customers,omitempty"`
	Employees  []EmployeeResponse `json:"employees,omitempty"`
	NextCursor string             `json:"next_cursor,omitempty"`
}
