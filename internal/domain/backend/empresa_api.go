package backend

import (
	"context"

	"github.com/informetec/visitas-web/internal/domain/entity"
)

// EmpresaAPI la empresa singleton del tenant.
type EmpresaAPI interface {
	// Obtener sondea la empresa registrada; exists indica si ya hay una.
	Obtener(ctx context.Context, s Sesion) (e *entity.Empresa, exists bool, err error)
	Crear(ctx context.Context, s Sesion, e entity.Empresa) error
	Actualizar(ctx context.Context, s Sesion, e entity.Empresa) error
}
