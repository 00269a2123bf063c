package usecase

import (
	"context"
	"encoding/base64"
	"mime"
	"path/filepath"
	"sync"

	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/pkg/logger"
)

// Estados del cargador.
const (
	EstadoInactivo = "inactivo"
	EstadoSubiendo = "subiendo"
)

// Archivo un fichero local seleccionado por el usuario.
type Archivo struct {
	Nombre    string
	Contenido []byte
}

// Cargador sube una imagen por invocación: genera una vista previa local
// (que nunca se envía a ningún lado), empaqueta el archivo como multipart y
// lo sube al backend. Máquina de estados: inactivo → subiendo → inactivo.
// No hay cancelación: una subida iniciada corre hasta terminar o fallar.
type Cargador struct {
	archivos backend.ArchivosAPI
	log      *logger.Logger

	mu          sync.Mutex
	estado      string
	vistaPrevia string
}

// NewCargador construye el cargador.
func NewCargador(archivos backend.ArchivosAPI, log *logger.Logger) *Cargador {
	return &Cargador{
		archivos: archivos,
		log:      log.Componente("cargador"),
		estado:   EstadoInactivo,
	}
}

// Subir procesa un lote de archivos usando exactamente el primero (los demás
// se ignoran) y devuelve la ruta asignada por el servidor. El fallo es
// silencioso para el llamador: se limpia la vista previa, se registra el error
// y se devuelve ok=false sin más — el campo del llamador queda como estaba y
// no hay reintento.
func (c *Cargador) Subir(ctx context.Context, s backend.Sesion, archivos ...Archivo) (url string, ok bool) {
	if len(archivos) == 0 || len(archivos[0].Contenido) == 0 {
		return "", false
	}
	a := archivos[0]

	c.mu.Lock()
	c.estado = EstadoSubiendo
	c.vistaPrevia = vistaPrevia(a)
	c.mu.Unlock()

	url, err := c.archivos.Subir(ctx, s, a.Nombre, a.Contenido)

	c.mu.Lock()
	c.estado = EstadoInactivo
	c.vistaPrevia = ""
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Str("archivo", a.Nombre).Msg("subida de adjunto fallida")
		return "", false
	}
	return url, true
}

// Estado devuelve el estado actual del cargador.
func (c *Cargador) Estado() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

// VistaPrevia devuelve la vista previa local vigente (vacía salvo durante una
// subida).
func (c *Cargador) VistaPrevia() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vistaPrevia
}

// vistaPrevia codifica el archivo como data URL, la representación mostrable
// que el original obtenía leyendo el fichero en el navegador.
func vistaPrevia(a Archivo) string {
	tipo := mime.TypeByExtension(filepath.Ext(a.Nombre))
	if tipo == "" {
		tipo = "application/octet-stream"
	}
	return "data:" + tipo + ";base64," + base64.StdEncoding.EncodeToString(a.Contenido)
}
