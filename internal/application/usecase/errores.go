package usecase

import (
	"errors"

	"github.com/informetec/visitas-web/internal/domain"
)

// Mensajes genéricos de la taxonomía de errores: 500 pide reintentar,
// cualquier cosa sin respuesta clasificable se reporta como problema de
// conectividad. Ningún error se reintenta automáticamente.
const (
	MensajeErrorServidor = "Error interno del servidor. Por favor, intenta nuevamente."
	MensajeErrorConexion = "Error de conexión. Verifica tu conexión a internet."
	MensajeEmailUsado    = "Este correo electrónico ya está siendo usado. Por favor, usa otro correo."
)

// MensajeParaUsuario traduce cualquier error de un caso de uso al texto que se
// muestra al usuario como reconocimiento bloqueante.
func MensajeParaUsuario(err error) string {
	var ev *domain.ErrorValidacion
	switch {
	case errors.As(err, &ev):
		return ev.Mensaje
	case errors.Is(err, domain.ErrEmailRegistrado):
		return MensajeEmailUsado
	case errors.Is(err, domain.ErrDatosInvalidos):
		if msg := domain.MensajeServidor(err); msg != "" {
			return "Error: " + msg
		}
		return "Error: Error en los datos enviados"
	case errors.Is(err, domain.ErrServidor):
		return MensajeErrorServidor
	default:
		return MensajeErrorConexion
	}
}
