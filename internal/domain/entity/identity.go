package entity

import "time"

// Tipos válidos de Identity.
const (
	IdentityTypeCustomer = "CUSTOMER"
	IdentityTypeEmployee = "EMPLOYEE"
)

// Address dirección postal de la identidad.
type Address struct {
	Street   string
	Number   string
	District string
	City     string
	State    string
	ZipCode  string
	Country  string
}

// Identity registro base de persona (cliente o empleado).
// El tipo es inmutable después de la creación; la desactivación es el estado
// terminal de "borrado": el motor nunca elimina filas físicamente.
type Identity struct {
	ID             string
	Email          string // siempre en minúsculas
	DocumentNumber *string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName      string
	LastName       string
	Phone          string
	IdentityType   string // CUSTOMER | EMPLOYEE
	StoreID        *string // obligatorio cuando IdentityType es EMPLOYEE
	BirthDate      *time.Time
	Address        Address
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsEmployee indica si la identidad es de tipo EMPLOYEE.
func (i *Identity) IsEmployee() bool { return i.IdentityType == IdentityTypeEmployee }
