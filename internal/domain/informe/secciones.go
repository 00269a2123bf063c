// Package informe contiene las reglas del informe de visita: las tres
// secciones fijas en que se agrupan las zonas y las operaciones de edición
// sobre ellas (agregar, actualizar por posición, quitar, aplanar para envío).
package informe

import (
	"errors"

	"github.com/informetec/visitas-web/internal/domain/entity"
)

// Claves de sección, direccionables de forma independiente por el editor.
const (
	SeccionAseo        = "aseo"
	SeccionSeguridad   = "seguridad"
	SeccionColaborador = "colaborador"
)

// Etiquetas visibles de cada sección; se estampan en cada zona al aplanar.
const (
	EtiquetaAseo        = "Aseo y Limpieza"
	EtiquetaSeguridad   = "Seguridad y Salud en el Trabajo"
	EtiquetaColaborador = "Colaborador"
)

// Campos editables de una zona.
const (
	CampoConcepto      = "concepto_actividad"
	CampoCalificacion  = "calificacion"
	CampoObservaciones = "observaciones"
	CampoFoto          = "foto_url"
)

var (
	ErrSeccionInvalida      = errors.New("sección desconocida")
	ErrZonaFueraDeRango     = errors.New("índice de zona fuera de rango")
	ErrCampoInvalido        = errors.New("campo de zona desconocido")
	ErrCalificacionInvalida = errors.New("calificación inválida")
)

// claves en el orden fijo de presentación y de envío.
var claves = []string{SeccionAseo, SeccionSeguridad, SeccionColaborador}

var etiquetas = map[string]string{
	SeccionAseo:        EtiquetaAseo,
	SeccionSeguridad:   EtiquetaSeguridad,
	SeccionColaborador: EtiquetaColaborador,
}

// Claves devuelve las claves de sección en orden fijo (aseo → seguridad → colaborador).
func Claves() []string {
	out := make([]string, len(claves))
	copy(out, claves)
	return out
}

// Etiqueta devuelve la etiqueta visible de una clave de sección.
func Etiqueta(clave string) (string, bool) {
	e, ok := etiquetas[clave]
	return e, ok
}

// LlevaFoto indica si la sección captura evidencia fotográfica.
// La sección Colaborador no lleva foto.
func LlevaFoto(clave string) bool {
	return clave != SeccionColaborador
}

// Secciones agrupa las zonas de un borrador por clave de sección, preservando
// el orden de inserción dentro de cada una. Es el análogo del estado local del
// formulario de visita.
type Secciones map[string][]entity.Zona

// Nueva devuelve unas Secciones vacías con las tres claves inicializadas.
func Nueva() Secciones {
	s := make(Secciones, len(claves))
	for _, c := range claves {
		s[c] = []entity.Zona{}
	}
	return s
}

// Agrupar reparte la lista plana de zonas de una visita existente entre las
// secciones según su etiqueta (carga en modo edición). Las zonas con etiqueta
// desconocida van a la sección de aseo para no perder datos.
func Agrupar(zonas []entity.Zona) Secciones {
	s := Nueva()
	for _, z := range zonas {
		clave := SeccionAseo
		for k, e := range etiquetas {
			if z.Seccion == e {
				clave = k
				break
			}
		}
		z.Seccion = ""
		s[clave] = append(s[clave], z)
	}
	return s
}

// Aplanar concatena las secciones en orden fijo aseo → seguridad → colaborador
// en una sola lista, estampando en cada zona la etiqueta de su sección.
func (s Secciones) Aplanar() []entity.Zona {
	total := 0
	for _, c := range claves {
		total += len(s[c])
	}
	out := make([]entity.Zona, 0, total)
	for _, c := range claves {
		for _, z := range s[c] {
			z.Seccion = etiquetas[c]
			out = append(out, z)
		}
	}
	return out
}

// Agregar añade al final de la sección una zona nueva con calificación Buena
// y el resto de campos vacíos. El orden de adición se preserva; no existe
// operación de reordenado.
func (s Secciones) Agregar(clave string) error {
	if _, ok := etiquetas[clave]; !ok {
		return ErrSeccionInvalida
	}
	s[clave] = append(s[clave], entity.Zona{Calificacion: entity.CalificacionBuena})
	return nil
}

// Actualizar reemplaza un campo de la zona en la posición indicada de la
// sección, dejando intactas las demás zonas.
func (s Secciones) Actualizar(clave string, indice int, campo, valor string) error {
	zonas, ok := s[clave]
	if !ok {
		return ErrSeccionInvalida
	}
	if indice < 0 || indice >= len(zonas) {
		return ErrZonaFueraDeRango
	}
	switch campo {
	case CampoConcepto:
		zonas[indice].ConceptoActividad = valor
	case CampoCalificacion:
		if !entity.CalificacionValida(valor) {
			return ErrCalificacionInvalida
		}
		zonas[indice].Calificacion = valor
	case CampoObservaciones:
		zonas[indice].Observaciones = valor
	case CampoFoto:
		zonas[indice].FotoURL = valor
	default:
		return ErrCampoInvalido
	}
	return nil
}

// Quitar elimina la zona en la posición indicada; las siguientes de esa
// sección se corren una posición (semántica splice).
func (s Secciones) Quitar(clave string, indice int) error {
	zonas, ok := s[clave]
	if !ok {
		return ErrSeccionInvalida
	}
	if indice < 0 || indice >= len(zonas) {
		return ErrZonaFueraDeRango
	}
	s[clave] = append(zonas[:indice], zonas[indice+1:]...)
	return nil
}
