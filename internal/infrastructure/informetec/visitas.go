package informetec

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

var _ backend.VisitasAPI = (*Visitas)(nil)

// Visitas adaptador del ciclo de vida de los informes de visita.
type Visitas struct {
	c *Client
}

// NewVisitas construye el adaptador sobre el núcleo compartido.
func NewVisitas(c *Client) *Visitas {
	return &Visitas{c: c}
}

// Listar trae el resumen de todas las visitas (GET /visitas).
func (v *Visitas) Listar(ctx context.Context, s backend.Sesion) ([]entity.VisitaResumen, error) {
	var visitas []entity.VisitaResumen
	if err := v.c.llamar(ctx, http.MethodGet, "/visitas", s, nil, &visitas); err != nil {
		return nil, err
	}
	return visitas, nil
}

// Obtener trae una visita completa con sus zonas (GET /visitas/:id).
func (v *Visitas) Obtener(ctx context.Context, s backend.Sesion, id string) (*entity.Visita, error) {
	var visita entity.Visita
	if err := v.c.llamar(ctx, http.MethodGet, "/visitas/"+id, s, nil, &visita); err != nil {
		return nil, err
	}
	return &visita, nil
}

// Crear envía el payload anidado completo (POST /visitas) y devuelve el ID
// que asignó el backend.
func (v *Visitas) Crear(ctx context.Context, s backend.Sesion, visita entity.Visita) (string, error) {
	var salida struct {
		ID string `json:"id"`
	}
	if err := v.c.llamar(ctx, http.MethodPost, "/visitas", s, visita, &salida); err != nil {
		return "", err
	}
	return salida.ID, nil
}

// Actualizar reemplaza la visita completa, zonas incluidas (PUT /visitas/:id).
func (v *Visitas) Actualizar(ctx context.Context, s backend.Sesion, visita entity.Visita) error {
	return v.c.llamar(ctx, http.MethodPut, "/visitas/"+visita.ID, s, visita, nil)
}

// Eliminar borra una visita (DELETE /visitas/:id).
func (v *Visitas) Eliminar(ctx context.Context, s backend.Sesion, id string) error {
	return v.c.llamar(ctx, http.MethodDelete, "/visitas/"+id, s, nil, nil)
}

// GenerarPDF pide el informe renderizado (POST /generar-pdf/:id) y devuelve
// los bytes tal cual para reenviarlos como descarga.
func (v *Visitas) GenerarPDF(ctx context.Context, s backend.Sesion, id string) ([]byte, error) {
	req, err := v.c.peticion(ctx, http.MethodPost, "/generar-pdf/"+id, s, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ErrorBackend{Tipo: domain.ErrConexion, Mensaje: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, clasificar(resp)
	}
	contenido, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("informetec: leer PDF de la visita %s: %w", id, err)
	}
	return contenido, nil
}
