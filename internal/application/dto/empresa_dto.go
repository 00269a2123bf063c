package dto

// Modos del formulario de empresa según el sondeo de existencia.
const (
	ModoCrear  = "crear"
	ModoEditar = "editar"
)

// EmpresaFormRequest campos del formulario de empresa. Modo lo fija el estado
// devuelto al montar y decide si el envío crea o actualiza.
type EmpresaFormRequest struct {
	Modo      string `json:"modo"`
	Nombre    string `json:"nombre"`
	NIT       string `json:"nit"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Direccion string `json:"direccion"`
	LogoURL   string `json:"logo_url"`
}

// EmpresaFormEstado estado del formulario al montar: modo detectado y campos
// precargados desde la empresa existente (vacíos en modo creación).
type EmpresaFormEstado struct {
	Modo       string             `json:"modo"`
	Formulario EmpresaFormRequest `json:"formulario"`
}
