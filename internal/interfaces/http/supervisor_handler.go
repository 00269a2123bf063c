package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// SupervisorHandler maneja el alta de supervisores y técnicos.
type SupervisorHandler struct {
	uc *usecase.SupervisorForm
}

// NewSupervisorHandler construye el handler inyectando el caso de uso.
func NewSupervisorHandler(uc *usecase.SupervisorForm) *SupervisorHandler {
	return &SupervisorHandler{uc: uc}
}

// Crear registra un supervisor o técnico. La cuenta queda creada sin tocar la
// sesión del usuario actual.
func (h *SupervisorHandler) Crear(c *fiber.Ctx) error {
	var in dto.SupervisorFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Enviar(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
