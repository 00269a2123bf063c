package usecase

import (
	"context"
	"fmt"

	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
	"github.com/informetec/visitas-web/pkg/logger"
)

// DashboardUseCase listado de visitas y acciones por fila (PDF, eliminar).
// Cada acción es una llamada independiente, sin transacción compartida.
type DashboardUseCase struct {
	visitas backend.VisitasAPI
	log     *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(visitas backend.VisitasAPI, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{visitas: visitas, log: log.Componente("dashboard")}
}

// Listar trae el listado de visitas con sus campos de resumen.
func (uc *DashboardUseCase) Listar(ctx context.Context, s backend.Sesion) ([]entity.VisitaResumen, error) {
	return uc.visitas.Listar(ctx, s)
}

// GenerarPDF pide el informe renderizado y devuelve los bytes junto con el
// nombre de archivo de descarga.
func (uc *DashboardUseCase) GenerarPDF(ctx context.Context, s backend.Sesion, id string) ([]byte, string, error) {
	pdf, err := uc.visitas.GenerarPDF(ctx, s, id)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("informe-visita-%s.pdf", id), nil
}

// Eliminar borra una visita previa confirmación interactiva: sin confirmación
// no se emite ninguna llamada. Tras borrar se relee el listado completo (sin
// splice optimista); si la relectura falla, el borrado ya ocurrió y el usuario
// ve una lista obsoleta hasta el próximo refresco — se registra y se sigue.
func (uc *DashboardUseCase) Eliminar(ctx context.Context, s backend.Sesion, id string, confirmado bool) ([]entity.VisitaResumen, string, error) {
	if !confirmado {
		return nil, "", domain.Validacion("La eliminación requiere confirmación")
	}
	if err := uc.visitas.Eliminar(ctx, s, id); err != nil {
		return nil, "", err
	}
	lista, err := uc.visitas.Listar(ctx, s)
	if err != nil {
		uc.log.Warn().Err(err).Str("visita", id).Msg("relistando tras eliminar")
		lista = nil
	}
	return lista, "Visita eliminada exitosamente", nil
}
