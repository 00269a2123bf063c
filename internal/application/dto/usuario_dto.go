package dto

// SupervisorFormRequest campos del formulario de alta de supervisor/técnico.
type SupervisorFormRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"` // supervisor | tecnico; vacío = supervisor
}
