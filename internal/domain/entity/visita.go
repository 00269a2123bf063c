package entity

// Calificaciones válidas para una zona.
const (
	CalificacionBuena = "Buena"
	CalificacionMedia = "Media"
	CalificacionMala  = "Mala"
)

// CalificacionValida indica si s es una de las tres calificaciones admitidas.
func CalificacionValida(s string) bool {
	return s == CalificacionBuena || s == CalificacionMedia || s == CalificacionMala
}

// Zona entrada libre de inspección dentro de una visita. Solo existe embebida
// en una Visita; Seccion lleva la etiqueta de la sección a la que pertenece y
// se estampa al aplanar el borrador para el envío.
type Zona struct {
	ConceptoActividad string `json:"concepto_actividad"`
	Calificacion      string `json:"calificacion"`
	Observaciones     string `json:"observaciones"`
	FotoURL           string `json:"foto_url"`
	Seccion           string `json:"seccion,omitempty"`
}

// Visita informe de visita técnica: referencias a cliente y supervisor, fecha
// calendario, conclusiones y la lista plana de zonas. Se crea y actualiza como
// un único payload anidado; el ID lo asigna el backend (formato NUM-TIPO-FECHA).
type Visita struct {
	ID           string `json:"id,omitempty"`
	ClienteID    int    `json:"cliente_id"`
	SupervisorID int    `json:"supervisor_id"`
	Fecha        string `json:"fecha"` // YYYY-MM-DD
	Conclusiones string `json:"conclusiones"`
	Zonas        []Zona `json:"zonas"`
}

// VisitaResumen fila del listado del dashboard: el backend resuelve los
// nombres de cliente y supervisor al listar.
type VisitaResumen struct {
	ID         string `json:"id"`
	Cliente    string `json:"cliente"`
	Supervisor string `json:"supervisor"`
	Fecha      string `json:"fecha"`
}
