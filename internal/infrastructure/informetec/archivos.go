package informetec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
)

var _ backend.ArchivosAPI = (*Archivos)(nil)

// Archivos adaptador de subida de imágenes.
type Archivos struct {
	c *Client
}

// NewArchivos construye el adaptador sobre el núcleo compartido.
func NewArchivos(c *Client) *Archivos {
	return &Archivos{c: c}
}

// Subir envía la imagen como multipart/form-data en el campo "file"
// (POST /upload) y devuelve la ruta relativa asignada por el servidor.
func (a *Archivos) Subir(ctx context.Context, s backend.Sesion, nombre string, contenido []byte) (string, error) {
	var cuerpo bytes.Buffer
	escritor := multipart.NewWriter(&cuerpo)
	parte, err := escritor.CreateFormFile("file", nombre)
	if err != nil {
		return "", fmt.Errorf("informetec: armar multipart: %w", err)
	}
	if _, err := parte.Write(contenido); err != nil {
		return "", fmt.Errorf("informetec: escribir archivo en multipart: %w", err)
	}
	if err := escritor.Close(); err != nil {
		return "", fmt.Errorf("informetec: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.c.baseURL+"/upload", &cuerpo)
	if err != nil {
		return "", fmt.Errorf("informetec: crear petición de subida: %w", err)
	}
	req.Header.Set("Content-Type", escritor.FormDataContentType())
	if s != "" {
		req.Header.Set("Cookie", string(s))
	}

	resp, err := a.c.httpClient.Do(req)
	if err != nil {
		return "", &domain.ErrorBackend{Tipo: domain.ErrConexion, Mensaje: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", clasificar(resp)
	}

	var salida struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&salida); err != nil {
		return "", fmt.Errorf("informetec: decodificar respuesta de subida: %w", err)
	}
	return salida.URL, nil
}
