package informetec

import (
	"context"
	"net/http"

	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

var _ backend.EmpresaAPI = (*Empresa)(nil)

// Empresa adaptador de la empresa singleton.
type Empresa struct {
	c *Client
}

// NewEmpresa construye el adaptador sobre el núcleo compartido.
func NewEmpresa(c *Client) *Empresa {
	return &Empresa{c: c}
}

// empresaRespuesta GET /empresa devuelve exists junto a los campos de la
// empresa cuando ya hay una registrada.
type empresaRespuesta struct {
	Exists bool `json:"exists"`
	entity.Empresa
}

// Obtener sondea GET /empresa. Devuelve exists=false si aún no hay empresa
// registrada; no es un error.
func (e *Empresa) Obtener(ctx context.Context, s backend.Sesion) (*entity.Empresa, bool, error) {
	var salida empresaRespuesta
	if err := e.c.llamar(ctx, http.MethodGet, "/empresa", s, nil, &salida); err != nil {
		return nil, false, err
	}
	if !salida.Exists {
		return nil, false, nil
	}
	emp := salida.Empresa
	return &emp, true, nil
}

// Crear registra la empresa (POST /empresa).
func (e *Empresa) Crear(ctx context.Context, s backend.Sesion, emp entity.Empresa) error {
	return e.c.llamar(ctx, http.MethodPost, "/empresa", s, emp, nil)
}

// Actualizar modifica la empresa registrada (PUT /empresa).
func (e *Empresa) Actualizar(ctx context.Context, s backend.Sesion, emp entity.Empresa) error {
	return e.c.llamar(ctx, http.MethodPut, "/empresa", s, emp, nil)
}
