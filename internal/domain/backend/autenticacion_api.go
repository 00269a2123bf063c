package backend

import "context"

// AutenticacionAPI inicio y cierre de sesión contra el backend.
type AutenticacionAPI interface {
	// Login verifica credenciales y devuelve el rol y la credencial de sesión.
	Login(ctx context.Context, email, password string) (rol string, s Sesion, err error)
	// Logout cierra la sesión del backend.
	Logout(ctx context.Context, s Sesion) error
}
