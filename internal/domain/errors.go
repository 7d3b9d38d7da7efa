package domain

import "errors"

// Códigos estables de error de negocio. El handler HTTP los traduce a status;
// el motor solo garantiza código + mensaje.
const (
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadRequest   = "BAD_REQUEST"
	CodeInternal     = "INTERNAL"
)

// Error es un error de dominio tipado con código estable.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Conflict construye un error CONFLICT.
func Conflict(msg string) *Error { return &Error{Code: CodeConflict, Message: msg} }

// NotFound construye un error NOT_FOUND.
func NotFound(msg string) *Error { return &Error{Code: CodeNotFound, Message: msg} }

// Unauthorized construye un error UNAUTHORIZED.
func Unauthorized(msg string) *Error { return &Error{Code: CodeUnauthorized, Message: msg} }

// BadRequest construye un error BAD_REQUEST.
func BadRequest(msg string) *Error { return &Error{Code: CodeBadRequest, Message: msg} }

// Internal construye un error INTERNAL.
func Internal(msg string) *Error { return &Error{Code: CodeInternal, Message: msg} }

// Errores de dominio comunes (sentinelas, comparables con errors.Is).
var (
	ErrEmailEnUso            = Conflict("el email ya está registrado")
	ErrDocumentoEnUso        = Conflict("el número de documento ya está registrado")
	ErrCodigoEmpleadoEnUso   = Conflict("el código de empleado ya existe")
	ErrCodigoEmpleadoAgotado = Conflict("secuencia de códigos agotada para la tienda y el mes")
	ErrIdentidadNoEncontrada = NotFound("identidad no encontrada")
	ErrEmpleoNoEncontrado    = NotFound("registro de empleo no encontrado")
	ErrRolNoEncontrado       = NotFound("rol no encontrado")
	ErrTiendaNoEncontrada    = NotFound("tienda no encontrada")
	ErrPasswordIncorrecto    = Unauthorized("contraseña incorrecta")
	ErrNoAutorizado          = Unauthorized("no autorizado")
	ErrEntradaInvalida       = BadRequest("entrada inválida")
	ErrPasswordCorto         = BadRequest("la contraseña debe tener al menos 6 caracteres")
)

// CodeOf devuelve el código estable de un error, o INTERNAL si no es un *Error.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
