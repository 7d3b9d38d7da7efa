package entity

// Role rol asignable a empleados (tabla de consulta, solo lectura para el motor).
type Role struct {
	ID   string
	Name string // clave de búsqueda, ej. "MANAGER_BRANCH"
}

// RoleAssignment vínculo identidad-rol. En el comportamiento actual una
// identidad tiene a lo sumo un rol activo; al actualizar se reemplaza
// completo, nunca se mezcla.
type RoleAssignment struct {
	IdentityID string
	RoleID     string
}
