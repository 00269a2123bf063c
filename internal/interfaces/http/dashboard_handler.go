package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// DashboardHandler maneja el listado de visitas, la descarga del PDF y la
// eliminación.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Listar devuelve el resumen de todas las visitas.
func (h *DashboardHandler) Listar(c *fiber.Ctx) error {
	visitas, err := h.uc.Listar(c.UserContext(), GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.VisitasResponse{Visitas: visitas})
}

// DescargarPDF pide el informe renderizado y lo reenvía como descarga.
func (h *DashboardHandler) DescargarPDF(c *fiber.Ctx) error {
	contenido, nombre, err := h.uc.GenerarPDF(c.UserContext(), GetSesion(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(contenido)
}

// Eliminar borra una visita. Requiere ?confirmado=true; sin él no se toca el
// backend, igual que cancelar el diálogo de confirmación.
func (h *DashboardHandler) Eliminar(c *fiber.Ctx) error {
	confirmado := c.QueryBool("confirmado")
	visitas, mensaje, err := h.uc.Eliminar(c.UserContext(), GetSesion(c), c.Params("id"), confirmado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.EliminacionResponse{Mensaje: mensaje, Visitas: visitas})
}
