package backend

import (
	"context"

	"github.com/informetec/visitas-web/internal/domain/entity"
)

// UsuariosAPI altas y listado de usuarios (supervisores, técnicos, registro).
type UsuariosAPI interface {
	Crear(ctx context.Context, u entity.Usuario) (*Alta, error)
	Listar(ctx context.Context, s Sesion) ([]entity.Usuario, error)
}
