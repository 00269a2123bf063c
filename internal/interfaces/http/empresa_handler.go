package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// EmpresaHandler maneja el formulario de la empresa.
type EmpresaHandler struct {
	uc *usecase.EmpresaForm
}

// NewEmpresaHandler construye el handler inyectando el caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaForm) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Montar devuelve el estado inicial del formulario: modo editar con los datos
// actuales si ya hay empresa, modo crear en blanco si no.
func (h *EmpresaHandler) Montar(c *fiber.Ctx) error {
	out, err := h.uc.Montar(c.UserContext(), GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Enviar crea o actualiza la empresa según el modo del formulario.
func (h *EmpresaHandler) Enviar(c *fiber.Ctx) error {
	var in dto.EmpresaFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Enviar(c.UserContext(), GetSesion(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
