package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// AdjuntoHandler maneja la subida de imágenes de zona y del logo.
type AdjuntoHandler struct {
	uc *usecase.Cargador
}

// NewAdjuntoHandler construye el handler inyectando el cargador.
func NewAdjuntoHandler(uc *usecase.Cargador) *AdjuntoHandler {
	return &AdjuntoHandler{uc: uc}
}

// Subir recibe imágenes multipart en el campo "file" y reenvía la primera al
// backend. Una subida fallida devuelve URL vacía, nunca un error: el campo
// del formulario queda como estaba.
func (h *AdjuntoHandler) Subir(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	archivos := make([]usecase.Archivo, 0, len(form.File["file"]))
	for _, cabecera := range form.File["file"] {
		f, err := cabecera.Open()
		if err != nil {
			continue
		}
		contenido, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			continue
		}
		archivos = append(archivos, usecase.Archivo{Nombre: cabecera.Filename, Contenido: contenido})
	}
	if len(archivos) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_ARCHIVO", Message: "adjunta al menos un archivo en el campo file"})
	}

	url, _ := h.uc.Subir(c.UserContext(), GetSesion(c), archivos...)
	return c.JSON(dto.AdjuntoResponse{URL: url})
}
