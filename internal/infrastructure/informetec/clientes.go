package informetec

import (
	"context"
	"net/http"

	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

var _ backend.ClientesAPI = (*Clientes)(nil)

// Clientes adaptador de listado y alta de clientes.
type Clientes struct {
	c *Client
}

// NewClientes construye el adaptador sobre el núcleo compartido.
func NewClientes(c *Client) *Clientes {
	return &Clientes{c: c}
}

// Listar trae los clientes registrados (GET /clientes).
func (cl *Clientes) Listar(ctx context.Context, s backend.Sesion) ([]entity.Cliente, error) {
	var clientes []entity.Cliente
	if err := cl.c.llamar(ctx, http.MethodGet, "/clientes", s, nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// Crear registra un cliente nuevo (POST /clientes).
func (cl *Clientes) Crear(ctx context.Context, s backend.Sesion, cliente entity.Cliente) error {
	return cl.c.llamar(ctx, http.MethodPost, "/clientes", s, cliente, nil)
}
