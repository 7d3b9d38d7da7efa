package entity

// Store tienda del operador (tabla de consulta, solo lectura para el motor).
type Store struct {
	ID   string
	Code string // asignado por humanos, único
	Name string
}
