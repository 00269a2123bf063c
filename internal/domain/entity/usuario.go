package entity

// Roles válidos para Usuario.
const (
	RolSupervisor = "supervisor"
	RolTecnico    = "tecnico"
	RolUsuario    = "user" // alta genérica de autoregistro
)

// Usuario cuenta del sistema. Password es solo de escritura: viaja al backend
// al crear la cuenta y nunca vuelve a mostrarse.
type Usuario struct {
	ID       int    `json:"id,omitempty"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol"`
}
