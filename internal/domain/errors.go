package domain

import "errors"

// Errores de dominio (sin dependencias externas). Clasifican cada fallo de una
// llamada al backend: respuesta 400 con mensaje del servidor, 500 genérico,
// o ausencia total de respuesta.
var (
	ErrDatosInvalidos  = errors.New("datos rechazados por el servidor")
	ErrEmailRegistrado = errors.New("el email ya está registrado")
	ErrServidor        = errors.New("error interno del servidor")
	ErrConexion        = errors.New("error de conexión")
	ErrNoAutorizado    = errors.New("no autorizado")
	ErrNoEncontrado    = errors.New("recurso no encontrado")
)

// ErrorValidacion fallo de validación local de un formulario. Bloquea el envío:
// cuando se produce no se emite ninguna llamada de red y los campos quedan como
// el usuario los dejó.
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string { return e.Mensaje }

// Validacion construye un ErrorValidacion con el mensaje dado.
func Validacion(mensaje string) error {
	return &ErrorValidacion{Mensaje: mensaje}
}

// ErrorBackend respuesta de error de una llamada al backend, ya clasificada.
// Tipo es uno de los centinelas de arriba; Mensaje conserva el texto que envió
// el servidor (vacío si no hubo respuesta).
type ErrorBackend struct {
	Tipo    error
	Mensaje string
}

func (e *ErrorBackend) Error() string {
	if e.Mensaje == "" {
		return e.Tipo.Error()
	}
	return e.Tipo.Error() + ": " + e.Mensaje
}

func (e *ErrorBackend) Unwrap() error { return e.Tipo }

// MensajeServidor devuelve el mensaje que envió el servidor en un error de
// backend, o cadena vacía si el error no proviene de una respuesta del backend.
func MensajeServidor(err error) string {
	var eb *ErrorBackend
	if errors.As(err, &eb) {
		return eb.Mensaje
	}
	return ""
}
