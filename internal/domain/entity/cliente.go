package entity

// Cliente empresa visitada, destinataria de los informes.
// TipoCodigo es un código corto (p. ej. "AL") que la UI normaliza a mayúsculas
// antes de enviar; el backend lo usa para componer el ID de cada visita.
type Cliente struct {
	ID            int    `json:"id,omitempty"`
	NIT           string `json:"nit"`
	Nombre        string `json:"nombre"`
	Administrador string `json:"administrador"`
	Correo        string `json:"correo"`
	TipoCodigo    string `json:"tipo_codigo"`
	LogoURL       string `json:"logo_url"`
}
