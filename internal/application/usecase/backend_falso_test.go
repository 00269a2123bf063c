package usecase_test

// Dobles de los puertos del backend para los tests de casos de uso. Cada
// método registra su nombre en llamadas y delega en el campo de función si
// está definido; si no, devuelve valores cero.

import (
	"context"

	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

type empresaFalsa struct {
	llamadas     []string
	ObtenerFn    func() (*entity.Empresa, bool, error)
	CrearFn      func(e entity.Empresa) error
	ActualizarFn func(e entity.Empresa) error
}

func (f *empresaFalsa) Obtener(ctx context.Context, s backend.Sesion) (*entity.Empresa, bool, error) {
	f.llamadas = append(f.llamadas, "Obtener")
	if f.ObtenerFn != nil {
		return f.ObtenerFn()
	}
	return nil, false, nil
}

func (f *empresaFalsa) Crear(ctx context.Context, s backend.Sesion, e entity.Empresa) error {
	f.llamadas = append(f.llamadas, "Crear")
	if f.CrearFn != nil {
		return f.CrearFn(e)
	}
	return nil
}

func (f *empresaFalsa) Actualizar(ctx context.Context, s backend.Sesion, e entity.Empresa) error {
	f.llamadas = append(f.llamadas, "Actualizar")
	if f.ActualizarFn != nil {
		return f.ActualizarFn(e)
	}
	return nil
}

type clientesFalsos struct {
	llamadas []string
	ListarFn func() ([]entity.Cliente, error)
	CrearFn  func(c entity.Cliente) error
}

func (f *clientesFalsos) Listar(ctx context.Context, s backend.Sesion) ([]entity.Cliente, error) {
	f.llamadas = append(f.llamadas, "Listar")
	if f.ListarFn != nil {
		return f.ListarFn()
	}
	return nil, nil
}

func (f *clientesFalsos) Crear(ctx context.Context, s backend.Sesion, c entity.Cliente) error {
	f.llamadas = append(f.llamadas, "Crear")
	if f.CrearFn != nil {
		return f.CrearFn(c)
	}
	return nil
}

type usuariosFalsos struct {
	llamadas []string
	CrearFn  func(u entity.Usuario) (*backend.Alta, error)
	ListarFn func() ([]entity.Usuario, error)
}

func (f *usuariosFalsos) Crear(ctx context.Context, u entity.Usuario) (*backend.Alta, error) {
	f.llamadas = append(f.llamadas, "Crear")
	if f.CrearFn != nil {
		return f.CrearFn(u)
	}
	return &backend.Alta{}, nil
}

func (f *usuariosFalsos) Listar(ctx context.Context, s backend.Sesion) ([]entity.Usuario, error) {
	f.llamadas = append(f.llamadas, "Listar")
	if f.ListarFn != nil {
		return f.ListarFn()
	}
	return nil, nil
}

type visitasFalsas struct {
	llamadas     []string
	ListarFn     func() ([]entity.VisitaResumen, error)
	ObtenerFn    func(id string) (*entity.Visita, error)
	CrearFn      func(v entity.Visita) (string, error)
	ActualizarFn func(v entity.Visita) error
	EliminarFn   func(id string) error
	GenerarPDFFn func(id string) ([]byte, error)
}

func (f *visitasFalsas) Listar(ctx context.Context, s backend.Sesion) ([]entity.VisitaResumen, error) {
	f.llamadas = append(f.llamadas, "Listar")
	if f.ListarFn != nil {
		return f.ListarFn()
	}
	return nil, nil
}

func (f *visitasFalsas) Obtener(ctx context.Context, s backend.Sesion, id string) (*entity.Visita, error) {
	f.llamadas = append(f.llamadas, "Obtener")
	if f.ObtenerFn != nil {
		return f.ObtenerFn(id)
	}
	return &entity.Visita{ID: id}, nil
}

func (f *visitasFalsas) Crear(ctx context.Context, s backend.Sesion, v entity.Visita) (string, error) {
	f.llamadas = append(f.llamadas, "Crear")
	if f.CrearFn != nil {
		return f.CrearFn(v)
	}
	return "001-AL-20250101", nil
}

func (f *visitasFalsas) Actualizar(ctx context.Context, s backend.Sesion, v entity.Visita) error {
	f.llamadas = append(f.llamadas, "Actualizar")
	if f.ActualizarFn != nil {
		return f.ActualizarFn(v)
	}
	return nil
}

func (f *visitasFalsas) Eliminar(ctx context.Context, s backend.Sesion, id string) error {
	f.llamadas = append(f.llamadas, "Eliminar")
	if f.EliminarFn != nil {
		return f.EliminarFn(id)
	}
	return nil
}

func (f *visitasFalsas) GenerarPDF(ctx context.Context, s backend.Sesion, id string) ([]byte, error) {
	f.llamadas = append(f.llamadas, "GenerarPDF")
	if f.GenerarPDFFn != nil {
		return f.GenerarPDFFn(id)
	}
	return []byte("%PDF-1.4"), nil
}

type archivosFalsos struct {
	llamadas []string
	SubirFn  func(nombre string, contenido []byte) (string, error)
}

func (f *archivosFalsos) Subir(ctx context.Context, s backend.Sesion, nombre string, contenido []byte) (string, error) {
	f.llamadas = append(f.llamadas, "Subir")
	if f.SubirFn != nil {
		return f.SubirFn(nombre, contenido)
	}
	return "/uploads/" + nombre, nil
}
