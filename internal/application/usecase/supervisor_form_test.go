package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/usecase"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

func supervisorValido() dto.SupervisorFormRequest {
	return dto.SupervisorFormRequest{
		Nombre:   "Carlos Pérez",
		Email:    "carlos@informetec.co",
		Password: "secreta1",
	}
}

func TestSupervisorForm_Enviar_RolPorDefectoSupervisor(t *testing.T) {
	var creado entity.Usuario
	api := &usuariosFalsos{
		CrearFn: func(u entity.Usuario) (*backend.Alta, error) {
			creado = u
			return &backend.Alta{Rol: u.Rol, Nombre: u.Nombre, Sesion: "cookie-nueva"}, nil
		},
	}
	uc := usecase.NewSupervisorForm(api)

	out, err := uc.Enviar(context.Background(), supervisorValido())
	require.NoError(t, err)

	assert.Equal(t, entity.RolSupervisor, creado.Rol)
	assert.Equal(t, "Supervisor registrado exitosamente", out.Mensaje)
	assert.Equal(t, "/dashboard", out.Destino)
}

func TestSupervisorForm_Enviar_RolTecnicoAceptado(t *testing.T) {
	var creado entity.Usuario
	api := &usuariosFalsos{
		CrearFn: func(u entity.Usuario) (*backend.Alta, error) {
			creado = u
			return &backend.Alta{}, nil
		},
	}
	uc := usecase.NewSupervisorForm(api)

	in := supervisorValido()
	in.Rol = entity.RolTecnico
	_, err := uc.Enviar(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, entity.RolTecnico, creado.Rol)
}

func TestSupervisorForm_Enviar_Validaciones(t *testing.T) {
	casos := []struct {
		nombre  string
		mutar   func(in *dto.SupervisorFormRequest)
		mensaje string
	}{
		{
			nombre:  "campos vacios",
			mutar:   func(in *dto.SupervisorFormRequest) { in.Nombre = "" },
			mensaje: "Por favor completa todos los campos",
		},
		{
			nombre:  "email sin arroba",
			mutar:   func(in *dto.SupervisorFormRequest) { in.Email = "carlos.informetec.co" },
			mensaje: "Por favor ingresa un email válido",
		},
		{
			nombre:  "email sin dominio",
			mutar:   func(in *dto.SupervisorFormRequest) { in.Email = "carlos@informetec" },
			mensaje: "Por favor ingresa un email válido",
		},
		{
			nombre:  "password corta",
			mutar:   func(in *dto.SupervisorFormRequest) { in.Password = "cinco" },
			mensaje: "La contraseña debe tener al menos 6 caracteres",
		},
		{
			nombre:  "rol desconocido",
			mutar:   func(in *dto.SupervisorFormRequest) { in.Rol = "gerente" },
			mensaje: "Rol inválido: debe ser supervisor o tecnico",
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			api := &usuariosFalsos{}
			uc := usecase.NewSupervisorForm(api)

			in := supervisorValido()
			caso.mutar(&in)
			_, err := uc.Enviar(context.Background(), in)

			var ev *domain.ErrorValidacion
			require.ErrorAs(t, err, &ev)
			assert.Equal(t, caso.mensaje, ev.Mensaje)
			assert.Empty(t, api.llamadas, "una validación fallida no debe emitir llamadas de red")
		})
	}
}

func TestSupervisorForm_Enviar_EmailDuplicado(t *testing.T) {
	api := &usuariosFalsos{
		CrearFn: func(entity.Usuario) (*backend.Alta, error) {
			return nil, &domain.ErrorBackend{Tipo: domain.ErrEmailRegistrado, Mensaje: "el email ya está registrado"}
		},
	}
	uc := usecase.NewSupervisorForm(api)

	_, err := uc.Enviar(context.Background(), supervisorValido())

	require.Error(t, err)
	assert.Equal(t, usecase.MensajeEmailUsado, usecase.MensajeParaUsuario(err))
}
