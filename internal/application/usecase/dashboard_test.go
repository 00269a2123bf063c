package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/informetec/visitas-web/internal/application/usecase"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/entity"
	"github.com/informetec/visitas-web/pkg/logger"
)

func TestDashboard_Listar(t *testing.T) {
	visitas := &visitasFalsas{
		ListarFn: func() ([]entity.VisitaResumen, error) {
			return []entity.VisitaResumen{
				{ID: "001-AL-20250310", Cliente: "Almacenes La Rebaja", Supervisor: "Carlos", Fecha: "2025-03-10"},
			}, nil
		},
	}
	uc := usecase.NewDashboardUseCase(visitas, logger.Nop())

	lista, err := uc.Listar(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Almacenes La Rebaja", lista[0].Cliente)
}

func TestDashboard_GenerarPDF_NombreDeDescarga(t *testing.T) {
	visitas := &visitasFalsas{
		GenerarPDFFn: func(id string) ([]byte, error) {
			return []byte("%PDF-1.4 contenido"), nil
		},
	}
	uc := usecase.NewDashboardUseCase(visitas, logger.Nop())

	contenido, nombre, err := uc.GenerarPDF(context.Background(), "s", "001-AL-20250310")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4 contenido"), contenido, "los bytes pasan tal cual, sin tocar")
	assert.Equal(t, "informe-visita-001-AL-20250310.pdf", nombre)
}

func TestDashboard_Eliminar_SinConfirmacionNoLlama(t *testing.T) {
	visitas := &visitasFalsas{}
	uc := usecase.NewDashboardUseCase(visitas, logger.Nop())

	_, _, err := uc.Eliminar(context.Background(), "s", "001-AL-20250310", false)

	var ev *domain.ErrorValidacion
	require.ErrorAs(t, err, &ev)
	assert.Empty(t, visitas.llamadas, "cancelar la confirmación no debe tocar el backend")
}

func TestDashboard_Eliminar_ConfirmadoBorraYRelee(t *testing.T) {
	visitas := &visitasFalsas{
		ListarFn: func() ([]entity.VisitaResumen, error) {
			return []entity.VisitaResumen{{ID: "002-AL-20250401"}}, nil
		},
	}
	uc := usecase.NewDashboardUseCase(visitas, logger.Nop())

	lista, mensaje, err := uc.Eliminar(context.Background(), "s", "001-AL-20250310", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"Eliminar", "Listar"}, visitas.llamadas,
		"tras borrar se relee el listado completo")
	assert.Equal(t, "Visita eliminada exitosamente", mensaje)
	require.Len(t, lista, 1)
	assert.Equal(t, "002-AL-20250401", lista[0].ID)
}

func TestDashboard_Eliminar_FalloAlReleerNoDeshaceElBorrado(t *testing.T) {
	visitas := &visitasFalsas{
		ListarFn: func() ([]entity.VisitaResumen, error) {
			return nil, &domain.ErrorBackend{Tipo: domain.ErrConexion}
		},
	}
	uc := usecase.NewDashboardUseCase(visitas, logger.Nop())

	lista, mensaje, err := uc.Eliminar(context.Background(), "s", "001-AL-20250310", true)

	require.NoError(t, err, "el borrado ya ocurrió; el fallo de relectura no es un error")
	assert.Nil(t, lista)
	assert.Equal(t, "Visita eliminada exitosamente", mensaje)
}

func TestDashboard_Eliminar_FalloDelBorrado(t *testing.T) {
	visitas := &visitasFalsas{
		EliminarFn: func(string) error {
			return &domain.ErrorBackend{Tipo: domain.ErrServidor}
		},
	}
	uc := usecase.NewDashboardUseCase(visitas, logger.Nop())

	_, _, err := uc.Eliminar(context.Background(), "s", "001-AL-20250310", true)

	require.ErrorIs(t, err, domain.ErrServidor)
	assert.NotContains(t, visitas.llamadas, "Listar", "si el borrado falla no se relee")
}
