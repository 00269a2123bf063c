package backend

import (
	"context"

	"github.com/informetec/visitas-web/internal/domain/entity"
)

// ClientesAPI listado y alta de clientes. Este front-end no expone
// actualización de clientes.
type ClientesAPI interface {
	Listar(ctx context.Context, s Sesion) ([]entity.Cliente, error)
	Crear(ctx context.Context, s Sesion, c entity.Cliente) error
}
