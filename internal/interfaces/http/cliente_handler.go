package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// ClienteHandler maneja el alta de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteForm
}

// NewClienteHandler construye el handler inyectando el caso de uso.
func NewClienteHandler(uc *usecase.ClienteForm) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Crear registra un cliente nuevo.
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.ClienteFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Enviar(c.UserContext(), GetSesion(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
