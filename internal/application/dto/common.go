package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NavegacionResponse resultado de un envío exitoso: el reconocimiento que el
// original mostraba en un alert más la pantalla a la que navegaba después.
type NavegacionResponse struct {
	Mensaje string `json:"mensaje"`
	Destino string `json:"destino"`
}
