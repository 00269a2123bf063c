package entity

// Empresa organización emisora de los informes de visita técnica. Es un
// singleton por tenant: el backend solo admite una y la pasarela decide entre
// crear y actualizar sondeando su existencia.
type Empresa struct {
	ID        int    `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	NIT       string `json:"nit"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Direccion string `json:"direccion"`
	LogoURL   string `json:"logo_url"` // ruta relativa al logo subido, vacío si no hay
}
