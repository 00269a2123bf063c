package usecase

import (
	"context"
	"regexp"

	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

// Forma local@dominio.tld, la misma verificación del formulario original.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LargoMinimoPassword mínimo de caracteres de la contraseña.
const LargoMinimoPassword = 6

// SupervisorForm controlador del alta de supervisores y técnicos.
type SupervisorForm struct {
	api backend.UsuariosAPI
}

// NewSupervisorForm construye el controlador.
func NewSupervisorForm(api backend.UsuariosAPI) *SupervisorForm {
	return &SupervisorForm{api: api}
}

// Enviar valida y crea la cuenta. El backend inicia sesión con la cuenta
// nueva al crearla; aquí esa sesión se descarta porque quien registra
// supervisores conserva la suya.
func (f *SupervisorForm) Enviar(ctx context.Context, in dto.SupervisorFormRequest) (*dto.NavegacionResponse, error) {
	if in.Nombre == "" || in.Email == "" || in.Password == "" {
		return nil, domain.Validacion("Por favor completa todos los campos")
	}
	if !emailRe.MatchString(in.Email) {
		return nil, domain.Validacion("Por favor ingresa un email válido")
	}
	if len(in.Password) < LargoMinimoPassword {
		return nil, domain.Validacion("La contraseña debe tener al menos 6 caracteres")
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolSupervisor
	}
	if rol != entity.RolSupervisor && rol != entity.RolTecnico {
		return nil, domain.Validacion("Rol inválido: debe ser supervisor o tecnico")
	}
	_, err := f.api.Crear(ctx, entity.Usuario{
		Nombre:   in.Nombre,
		Email:    in.Email,
		Password: in.Password,
		Rol:      rol,
	})
	if err != nil {
		return nil, err
	}
	return &dto.NavegacionResponse{
		Mensaje: "Supervisor registrado exitosamente",
		Destino: "/dashboard",
	}, nil
}
