package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
	"github.com/informetec/visitas-web/internal/domain/informe"
	"github.com/informetec/visitas-web/pkg/logger"
)

// ErrBorradorNoEncontrado el borrador no existe o ya fue enviado/descartado.
var ErrBorradorNoEncontrado = errors.New("borrador no encontrado")

// borrador estado transitorio de edición de una visita, el análogo del estado
// local del formulario original. Vive en memoria hasta que se envía o descarta;
// el backend sigue siendo la única fuente de verdad.
type borrador struct {
	visitaID     string // vacío en modo creación
	clienteID    int
	supervisorID int
	fecha        string
	conclusiones string
	zonas        informe.Secciones
	clientes     []entity.Cliente
	supervisores []entity.Usuario
}

// EditorVisitas compone una visita junto con sus zonas por sección y la envía
// como un único payload anidado (crear o actualizar según haya ID).
type EditorVisitas struct {
	visitas  backend.VisitasAPI
	clientes backend.ClientesAPI
	usuarios backend.UsuariosAPI
	log      *logger.Logger

	mu         sync.Mutex
	borradores map[string]*borrador
}

// NewEditorVisitas construye el editor con los puertos del backend.
func NewEditorVisitas(visitas backend.VisitasAPI, clientes backend.ClientesAPI, usuarios backend.UsuariosAPI, log *logger.Logger) *EditorVisitas {
	return &EditorVisitas{
		visitas:    visitas,
		clientes:   clientes,
		usuarios:   usuarios,
		log:        log.Componente("editor_visitas"),
		borradores: make(map[string]*borrador),
	}
}

// Abrir crea un borrador nuevo. Carga las listas de referencia (clientes y
// supervisores, estos filtrados del listado general de usuarios por rol); si
// visitaID no está vacío carga además la visita existente y reparte su lista
// plana de zonas entre las tres secciones. Un fallo al cargar una lista de
// referencia se registra y deja la lista vacía, como en el original.
func (e *EditorVisitas) Abrir(ctx context.Context, s backend.Sesion, visitaID string) (*dto.BorradorResponse, error) {
	b := &borrador{
		fecha: time.Now().Format("2006-01-02"),
		zonas: informe.Nueva(),
	}

	clientes, err := e.clientes.Listar(ctx, s)
	if err != nil {
		e.log.Warn().Err(err).Msg("cargando clientes")
	}
	b.clientes = clientes

	usuarios, err := e.usuarios.Listar(ctx, s)
	if err != nil {
		e.log.Warn().Err(err).Msg("cargando supervisores")
	}
	for _, u := range usuarios {
		if u.Rol == entity.RolSupervisor {
			b.supervisores = append(b.supervisores, u)
		}
	}

	if visitaID != "" {
		visita, err := e.visitas.Obtener(ctx, s, visitaID)
		if err != nil {
			return nil, err
		}
		b.visitaID = visita.ID
		b.clienteID = visita.ClienteID
		b.supervisorID = visita.SupervisorID
		b.fecha = visita.Fecha
		b.conclusiones = visita.Conclusiones
		b.zonas = informe.Agrupar(visita.Zonas)
	}

	id := uuid.New().String()
	e.mu.Lock()
	e.borradores[id] = b
	e.mu.Unlock()

	return e.respuesta(id, b), nil
}

// Obtener devuelve el estado actual de un borrador.
func (e *EditorVisitas) Obtener(id string) (*dto.BorradorResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.borradores[id]
	if !ok {
		return nil, ErrBorradorNoEncontrado
	}
	return e.respuesta(id, b), nil
}

// ActualizarDatos reemplaza los campos escalares del borrador (selectores,
// fecha y conclusiones) sin tocar las zonas.
func (e *EditorVisitas) ActualizarDatos(id string, in dto.DatosVisitaRequest) (*dto.BorradorResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.borradores[id]
	if !ok {
		return nil, ErrBorradorNoEncontrado
	}
	b.clienteID = in.ClienteID
	b.supervisorID = in.SupervisorID
	b.fecha = in.Fecha
	b.conclusiones = in.Conclusiones
	return e.respuesta(id, b), nil
}

// AgregarZona añade una zona nueva (calificación Buena, campos vacíos) al
// final de la sección indicada.
func (e *EditorVisitas) AgregarZona(id, seccion string) (*dto.BorradorResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.borradores[id]
	if !ok {
		return nil, ErrBorradorNoEncontrado
	}
	if err := b.zonas.Agregar(seccion); err != nil {
		return nil, err
	}
	return e.respuesta(id, b), nil
}

// ActualizarZona reemplaza un campo de la zona en la posición indicada,
// dejando las demás zonas intactas.
func (e *EditorVisitas) ActualizarZona(id, seccion string, indice int, campo, valor string) (*dto.BorradorResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.borradores[id]
	if !ok {
		return nil, ErrBorradorNoEncontrado
	}
	if err := b.zonas.Actualizar(seccion, indice, campo, valor); err != nil {
		return nil, err
	}
	return e.respuesta(id, b), nil
}

// QuitarZona elimina la zona en la posición indicada de su sección; las
// siguientes se corren una posición.
func (e *EditorVisitas) QuitarZona(id, seccion string, indice int) (*dto.BorradorResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.borradores[id]
	if !ok {
		return nil, ErrBorradorNoEncontrado
	}
	if err := b.zonas.Quitar(seccion, indice); err != nil {
		return nil, err
	}
	return e.respuesta(id, b), nil
}

// Enviar valida, aplana las tres secciones en orden fijo con su etiqueta y
// persiste la visita como un único payload anidado: POST si es nueva, PUT si
// se abrió con ID. Éxito descarta el borrador y navega al dashboard; un fallo
// deja el borrador intacto para reenviar de inmediato.
func (e *EditorVisitas) Enviar(ctx context.Context, s backend.Sesion, id string) (*dto.NavegacionResponse, error) {
	// Instantánea completa bajo el lock: las mutaciones de zonas concurrentes
	// comparten estos slices, así que el aplanado no puede salir de la sección
	// crítica. Fuera queda solo la llamada de red.
	e.mu.Lock()
	b, ok := e.borradores[id]
	if !ok {
		e.mu.Unlock()
		return nil, ErrBorradorNoEncontrado
	}
	if b.clienteID == 0 || b.supervisorID == 0 {
		e.mu.Unlock()
		return nil, domain.Validacion("Por favor selecciona cliente y supervisor")
	}
	visita := entity.Visita{
		ID:           b.visitaID,
		ClienteID:    b.clienteID,
		SupervisorID: b.supervisorID,
		Fecha:        b.fecha,
		Conclusiones: b.conclusiones,
		Zonas:        b.zonas.Aplanar(),
	}
	e.mu.Unlock()

	mensaje := "Visita creada exitosamente"
	if visita.ID != "" {
		if err := e.visitas.Actualizar(ctx, s, visita); err != nil {
			return nil, err
		}
		mensaje = "Visita actualizada exitosamente"
	} else {
		if _, err := e.visitas.Crear(ctx, s, visita); err != nil {
			return nil, err
		}
	}

	e.Descartar(id)
	return &dto.NavegacionResponse{Mensaje: mensaje, Destino: "/dashboard"}, nil
}

// Descartar elimina un borrador sin enviarlo (cancelar).
func (e *EditorVisitas) Descartar(id string) {
	e.mu.Lock()
	delete(e.borradores, id)
	e.mu.Unlock()
}

// respuesta arma el DTO del borrador. Se llama con e.mu tomado (o con el
// borrador recién creado, aún no visible para otros).
func (e *EditorVisitas) respuesta(id string, b *borrador) *dto.BorradorResponse {
	zonas := make(map[string][]entity.Zona, 3)
	for _, clave := range informe.Claves() {
		zonas[clave] = append([]entity.Zona(nil), b.zonas[clave]...)
	}
	return &dto.BorradorResponse{
		ID:           id,
		VisitaID:     b.visitaID,
		ClienteID:    b.clienteID,
		SupervisorID: b.supervisorID,
		Fecha:        b.fecha,
		Conclusiones: b.conclusiones,
		Zonas:        zonas,
		Clientes:     b.clientes,
		Supervisores: b.supervisores,
	}
}
