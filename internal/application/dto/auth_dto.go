package dto

// LoginRequest credenciales de acceso del personal.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentitySummary datos mínimos de la identidad autenticada.
type IdentitySummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
}

// LoginResponse token + identidad.
type LoginResponse struct {
	Token    string          `json:"token"`
	Identity IdentitySummary `json:"identity"`
}
