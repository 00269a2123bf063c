package usecase

import (
	"context"

	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

// EmpresaForm controlador del formulario de la empresa singleton. Al montar
// sondea si ya existe una: si existe, precarga los campos y el envío pasa de
// crear a actualizar (mismos campos, otro verbo).
type EmpresaForm struct {
	api backend.EmpresaAPI
}

// NewEmpresaForm construye el controlador con el puerto del backend.
func NewEmpresaForm(api backend.EmpresaAPI) *EmpresaForm {
	return &EmpresaForm{api: api}
}

// Montar sondea la empresa existente y devuelve el estado inicial del
// formulario: modo editar con campos precargados, o modo crear con campos
// vacíos.
func (f *EmpresaForm) Montar(ctx context.Context, s backend.Sesion) (*dto.EmpresaFormEstado, error) {
	empresa, exists, err := f.api.Obtener(ctx, s)
	if err != nil {
		return nil, err
	}
	if !exists || empresa == nil {
		return &dto.EmpresaFormEstado{
			Modo:       dto.ModoCrear,
			Formulario: dto.EmpresaFormRequest{Modo: dto.ModoCrear},
		}, nil
	}
	return &dto.EmpresaFormEstado{
		Modo: dto.ModoEditar,
		Formulario: dto.EmpresaFormRequest{
			Modo:      dto.ModoEditar,
			Nombre:    empresa.Nombre,
			NIT:       empresa.NIT,
			Telefono:  empresa.Telefono,
			Correo:    empresa.Correo,
			Direccion: empresa.Direccion,
			LogoURL:   empresa.LogoURL,
		},
	}, nil
}

// Enviar valida los campos obligatorios y persiste: crea o actualiza según el
// modo detectado al montar. Si la validación falla no se emite ninguna llamada.
func (f *EmpresaForm) Enviar(ctx context.Context, s backend.Sesion, in dto.EmpresaFormRequest) (*dto.NavegacionResponse, error) {
	if in.Nombre == "" || in.NIT == "" || in.Telefono == "" || in.Correo == "" {
		return nil, domain.Validacion("Por favor completa todos los campos obligatorios")
	}
	empresa := entity.Empresa{
		Nombre:    in.Nombre,
		NIT:       in.NIT,
		Telefono:  in.Telefono,
		Correo:    in.Correo,
		Direccion: in.Direccion,
		LogoURL:   in.LogoURL,
	}
	if in.Modo == dto.ModoEditar {
		if err := f.api.Actualizar(ctx, s, empresa); err != nil {
			return nil, err
		}
		return &dto.NavegacionResponse{
			Mensaje: "Empresa actualizada exitosamente",
			Destino: "/dashboard",
		}, nil
	}
	if err := f.api.Crear(ctx, s, empresa); err != nil {
		return nil, err
	}
	return &dto.NavegacionResponse{
		Mensaje: "Empresa registrada exitosamente. Ahora puedes crear clientes y visitas técnicas.",
		Destino: "/dashboard",
	}, nil
}
