package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/informe"
)

// responderError traduce la taxonomía de errores al status HTTP y al mensaje
// que vería el usuario. Los errores de validación y de borrador llevan su
// propio texto; los del backend pasan por MensajeParaUsuario para conservar
// los mensajes de la UI original.
func responderError(c *fiber.Ctx, err error) error {
	var val *domain.ErrorValidacion
	switch {
	case errors.As(err, &val):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: val.Mensaje})
	case errors.Is(err, usecase.ErrBorradorNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BORRADOR_NO_ENCONTRADO", Message: "borrador no encontrado"})
	case errors.Is(err, informe.ErrSeccionInvalida),
		errors.Is(err, informe.ErrZonaFueraDeRango),
		errors.Is(err, informe.ErrCampoInvalido),
		errors.Is(err, informe.ErrCalificacionInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ZONA_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailRegistrado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_REGISTRADO", Message: usecase.MensajeParaUsuario(err)})
	case errors.Is(err, domain.ErrDatosInvalidos):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DATOS_INVALIDOS", Message: usecase.MensajeParaUsuario(err)})
	case errors.Is(err, domain.ErrNoAutorizado):
		mensaje := domain.MensajeServidor(err)
		if mensaje == "" {
			mensaje = "No autorizado. Inicia sesión nuevamente."
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_AUTORIZADO", Message: mensaje})
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "Recurso no encontrado"})
	case errors.Is(err, domain.ErrServidor):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: usecase.MensajeParaUsuario(err)})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CONEXION", Message: usecase.MensajeParaUsuario(err)})
	}
}
