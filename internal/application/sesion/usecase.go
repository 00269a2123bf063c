// Package sesion ciclo de vida de la sesión local: login, registro y logout.
// La "sesión" de la pasarela (nombre, rol y credencial del backend) se
// materializa en una cookie firmada en la capa HTTP; aquí solo se decide qué
// contiene y a dónde navega el usuario después.
package sesion

import (
	"context"

	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

// UseCase casos de uso de sesión.
type UseCase struct {
	auth     backend.AutenticacionAPI
	usuarios backend.UsuariosAPI
	empresa  backend.EmpresaAPI
}

// NewUseCase construye el caso de uso con los puertos del backend.
func NewUseCase(auth backend.AutenticacionAPI, usuarios backend.UsuariosAPI, empresa backend.EmpresaAPI) *UseCase {
	return &UseCase{auth: auth, usuarios: usuarios, empresa: empresa}
}

// Login autentica contra el backend y sondea la empresa para decidir el
// destino: dashboard si ya hay una registrada, el formulario de empresa si no.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (backend.Sesion, *dto.SesionResponse, error) {
	rol, s, err := uc.auth.Login(ctx, in.Email, in.Password)
	if err != nil {
		return "", nil, err
	}

	resp := &dto.SesionResponse{Mensaje: "Login exitoso", Rol: rol}
	_, exists, err := uc.empresa.Obtener(ctx, s)
	if err == nil && exists {
		resp.Destino = "/dashboard"
	} else {
		resp.Mensaje = "Por favor registra tu empresa para continuar"
		resp.Destino = "/empresa"
	}
	return s, resp, nil
}

// Registrar crea una cuenta genérica (rol "user"). El backend inicia sesión
// automáticamente con ella; el destino depende de si el tenant ya registró su
// empresa.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistroRequest) (backend.Sesion, *dto.SesionResponse, error) {
	if in.Nombre == "" || in.Email == "" || in.Password == "" {
		return "", nil, domain.Validacion("Por favor completa todos los campos")
	}
	alta, err := uc.usuarios.Crear(ctx, entity.Usuario{
		Nombre:   in.Nombre,
		Email:    in.Email,
		Password: in.Password,
		Rol:      entity.RolUsuario,
	})
	if err != nil {
		return "", nil, err
	}

	resp := &dto.SesionResponse{Nombre: alta.Nombre, Rol: alta.Rol}
	_, exists, err := uc.empresa.Obtener(ctx, alta.Sesion)
	if err == nil && exists {
		resp.Mensaje = "Registro exitoso. Bienvenido de nuevo!"
		resp.Destino = "/dashboard"
	} else {
		resp.Mensaje = "Registro exitoso! Ahora registra tu empresa para empezar a crear informes."
		resp.Destino = "/empresa"
	}
	return alta.Sesion, resp, nil
}

// Logout cierra la sesión del backend. La limpieza local (la cookie firmada)
// la hace la capa HTTP; un fallo remoto no impide cerrar localmente.
func (uc *UseCase) Logout(ctx context.Context, s backend.Sesion) error {
	return uc.auth.Logout(ctx, s)
}
