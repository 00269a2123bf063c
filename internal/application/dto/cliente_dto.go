package dto

// ClienteFormRequest campos del formulario de registro de cliente.
type ClienteFormRequest struct {
	NIT           string `json:"nit"`
	Nombre        string `json:"nombre"`
	Administrador string `json:"administrador"`
	Correo        string `json:"correo"`
	TipoCodigo    string `json:"tipo_codigo"`
	LogoURL       string `json:"logo_url"`
}
