package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmergencyContact contacto de emergencia del empleado (opcional).
type EmergencyContact struct {
	Name  string
	Phone string
}

// Employment extensión 1:1 de una Identity de tipo EMPLOYEE.
// EmployeeCode es único global: TW + año(2) + mes(2) + tienda(3) + secuencia(3).
type Employment struct {
	ID               string
	IdentityID       string
	EmployeeCode     string
	Position         string
	Department       string
	Salary           decimal.Decimal // NUMERIC en DB; nunca float
	Currency         string
	Benefits         []string
	HireDate         time.Time
	TerminationDate  *time.Time
	EmergencyContact *EmergencyContact
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
