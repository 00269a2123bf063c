package backend

import (
	"context"

	"github.com/informetec/visitas-web/internal/domain/entity"
)

// VisitasAPI ciclo de vida completo de los informes de visita.
type VisitasAPI interface {
	Listar(ctx context.Context, s Sesion) ([]entity.VisitaResumen, error)
	Obtener(ctx context.Context, s Sesion, id string) (*entity.Visita, error)
	// Crear envía el payload anidado completo y devuelve el ID asignado.
	Crear(ctx context.Context, s Sesion, v entity.Visita) (string, error)
	Actualizar(ctx context.Context, s Sesion, v entity.Visita) error
	Eliminar(ctx context.Context, s Sesion, id string) error
	// GenerarPDF pide al backend el informe renderizado y devuelve sus bytes.
	GenerarPDF(ctx context.Context, s Sesion, id string) ([]byte, error)
}
