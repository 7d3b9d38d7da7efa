package dto

// PageRequest paginación para listados. CursorID manda: cuando viene, Skip se
// ignora y la página empieza justo después de esa identidad (keyset).
type PageRequest struct {
	Take     int    `query:"take"`
	Skip     int    `query:"skip"`
	CursorID string `query:"cursor_id"`
}

// DefaultPage aplica valores por defecto y acota Take.
func (p *PageRequest) DefaultPage() {
	if p.Take <= 0 {
		p.Take = 20
	}
	if p.Take > 100 {
		p.Take = 100
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
