package dto

import "github.com/informetec/visitas-web/internal/domain/entity"

// BorradorResponse estado completo de un borrador de visita: campos del
// formulario, zonas por sección y las listas de referencia para los
// selectores de cliente y supervisor.
type BorradorResponse struct {
	ID           string                   `json:"id"`
	VisitaID     string                   `json:"visita_id,omitempty"`
	ClienteID    int                      `json:"cliente_id"`
	SupervisorID int                      `json:"supervisor_id"`
	Fecha        string                   `json:"fecha"`
	Conclusiones string                   `json:"conclusiones"`
	Zonas        map[string][]entity.Zona `json:"zonas"`
	Clientes     []entity.Cliente         `json:"clientes"`
	Supervisores []entity.Usuario         `json:"supervisores"`
}

// DatosVisitaRequest campos escalares del borrador (los selectores y textos
// fuera de las secciones de zonas).
type DatosVisitaRequest struct {
	ClienteID    int    `json:"cliente_id"`
	SupervisorID int    `json:"supervisor_id"`
	Fecha        string `json:"fecha"`
	Conclusiones string `json:"conclusiones"`
}

// AgregarZonaRequest alta de una zona en una sección del borrador.
type AgregarZonaRequest struct {
	Seccion string `json:"seccion"`
}

// ActualizarZonaRequest reemplazo de un campo de una zona por posición.
type ActualizarZonaRequest struct {
	Campo string `json:"campo"`
	Valor string `json:"valor"`
}

// EliminacionResponse resultado de eliminar una visita: reconocimiento y el
// listado ya refrescado.
type EliminacionResponse struct {
	Mensaje string                 `json:"mensaje"`
	Visitas []entity.VisitaResumen `json:"visitas"`
}

// VisitasResponse listado del dashboard.
type VisitasResponse struct {
	Visitas []entity.VisitaResumen `json:"visitas"`
}

// AdjuntoResponse resultado de una subida. URL vacía significa que la subida
// falló: el fallo es silencioso y el campo del llamador queda como estaba.
type AdjuntoResponse struct {
	URL string `json:"url"`
}
