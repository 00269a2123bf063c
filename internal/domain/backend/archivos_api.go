package backend

import "context"

// ArchivosAPI subida multipart de imágenes. Devuelve la ruta relativa
// asignada por el servidor (p. ej. "/uploads/foto.jpg"). No existe borrado:
// quitar una imagen es una operación puramente local y los archivos huérfanos
// son una limitación aceptada.
type ArchivosAPI interface {
	Subir(ctx context.Context, s Sesion, nombre string, contenido []byte) (string, error)
}
