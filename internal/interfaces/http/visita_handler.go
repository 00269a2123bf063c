package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// VisitaHandler maneja el editor de borradores de visita. El estado vive en
// memoria dentro del caso de uso; cada mutación devuelve el borrador completo
// para que el cliente siempre vea el estado vigente.
type VisitaHandler struct {
	uc *usecase.EditorVisitas
}

// NewVisitaHandler construye el handler inyectando el editor.
func NewVisitaHandler(uc *usecase.EditorVisitas) *VisitaHandler {
	return &VisitaHandler{uc: uc}
}

// Abrir crea un borrador nuevo. Con ?visita=ID precarga la visita existente
// para edición; sin él parte en blanco con la fecha de hoy.
func (h *VisitaHandler) Abrir(c *fiber.Ctx) error {
	out, err := h.uc.Abrir(c.UserContext(), GetSesion(c), c.Query("visita"))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener devuelve el estado actual de un borrador.
func (h *VisitaHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarDatos reemplaza los campos escalares del borrador.
func (h *VisitaHandler) ActualizarDatos(c *fiber.Ctx) error {
	var in dto.DatosVisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarDatos(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// AgregarZona añade una zona en blanco al final de la sección indicada.
func (h *VisitaHandler) AgregarZona(c *fiber.Ctx) error {
	var in dto.AgregarZonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AgregarZona(c.Params("id"), in.Seccion)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarZona reemplaza un campo de la zona n de una sección.
func (h *VisitaHandler) ActualizarZona(c *fiber.Ctx) error {
	n, err := c.ParamsInt("n")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "índice de zona inválido"})
	}
	var in dto.ActualizarZonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarZona(c.Params("id"), c.Params("seccion"), n, in.Campo, in.Valor)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// QuitarZona elimina la zona n de una sección; las siguientes se corren.
func (h *VisitaHandler) QuitarZona(c *fiber.Ctx) error {
	n, err := c.ParamsInt("n")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "índice de zona inválido"})
	}
	out, err := h.uc.QuitarZona(c.Params("id"), c.Params("seccion"), n)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Enviar valida el borrador y lo envía al backend como payload anidado. En
// éxito el borrador se descarta.
func (h *VisitaHandler) Enviar(c *fiber.Ctx) error {
	out, err := h.uc.Enviar(c.UserContext(), GetSesion(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Descartar abandona el borrador sin enviar nada al backend.
func (h *VisitaHandler) Descartar(c *fiber.Ctx) error {
	h.uc.Descartar(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
