package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistroRequest alta genérica de usuario (rol "user").
type RegistroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SesionResponse resultado de login o registro: rol y nombre de la cuenta,
// reconocimiento y destino (dashboard, o el formulario de empresa si el
// tenant aún no registró la suya).
type SesionResponse struct {
	Mensaje string `json:"mensaje"`
	Nombre  string `json:"nombre,omitempty"`
	Rol     string `json:"rol"`
	Destino string `json:"destino"`
}
