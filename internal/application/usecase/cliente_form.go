package usecase

import (
	"context"
	"strings"

	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

// ClienteForm controlador del formulario de registro de cliente. Solo alta:
// este front-end no expone edición de clientes.
type ClienteForm struct {
	api backend.ClientesAPI
}

// NewClienteForm construye el controlador.
func NewClienteForm(api backend.ClientesAPI) *ClienteForm {
	return &ClienteForm{api: api}
}

// Enviar valida los campos requeridos, normaliza el tipo de código a
// mayúsculas y crea el cliente. Éxito navega al dashboard.
func (f *ClienteForm) Enviar(ctx context.Context, s backend.Sesion, in dto.ClienteFormRequest) (*dto.NavegacionResponse, error) {
	if in.NIT == "" || in.Nombre == "" || in.Administrador == "" || in.Correo == "" || in.TipoCodigo == "" {
		return nil, domain.Validacion("Por favor completa todos los campos")
	}
	cliente := entity.Cliente{
		NIT:           in.NIT,
		Nombre:        in.Nombre,
		Administrador: in.Administrador,
		Correo:        in.Correo,
		TipoCodigo:    strings.ToUpper(in.TipoCodigo),
		LogoURL:       in.LogoURL,
	}
	if err := f.api.Crear(ctx, s, cliente); err != nil {
		return nil, err
	}
	return &dto.NavegacionResponse{
		Mensaje: "Cliente registrado exitosamente",
		Destino: "/dashboard",
	}, nil
}
