package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/sesion"
	"github.com/informetec/visitas-web/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SesionUC     *sesion.UseCase
	EmpresaUC    *usecase.EmpresaForm
	ClienteUC    *usecase.ClienteForm
	SupervisorUC *usecase.SupervisorForm
	Editor       *usecase.EditorVisitas
	DashboardUC  *usecase.DashboardUseCase
	Cargador     *usecase.Cargador

	SesionSecret     string
	SesionIssuer     string
	SesionExpMinutes int
}

// Router registra las rutas de la pasarela.
func Router(app *fiber.App, deps RouterDeps) {
	// Sesión (login y registro públicos)
	sesionHandler := NewSesionHandler(deps.SesionUC, deps.SesionSecret, deps.SesionIssuer, deps.SesionExpMinutes)
	app.Post("/login", sesionHandler.Login)
	app.Post("/registro", sesionHandler.Registro)

	// Rutas protegidas (requieren la cookie de sesión firmada)
	protected := app.Group("/", SesionMiddleware(deps.SesionSecret))
	protected.Post("/logout", sesionHandler.Logout)

	// Empresa (singleton del tenant)
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	protected.Get("/empresa", empresaHandler.Montar)
	protected.Post("/empresa", empresaHandler.Enviar)

	// Clientes
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	protected.Post("/clientes", clienteHandler.Crear)

	// Supervisores y técnicos
	supervisorHandler := NewSupervisorHandler(deps.SupervisorUC)
	protected.Post("/supervisores", supervisorHandler.Crear)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Listar)
	protected.Post("/visitas/:id/pdf", dashboardHandler.DescargarPDF)
	protected.Delete("/visitas/:id", dashboardHandler.Eliminar)

	// Editor de borradores de visita
	visitaHandler := NewVisitaHandler(deps.Editor)
	borradores := protected.Group("/visitas/borradores")
	borradores.Post("/", visitaHandler.Abrir)
	borradores.Get("/:id", visitaHandler.Obtener)
	borradores.Put("/:id", visitaHandler.ActualizarDatos)
	borradores.Delete("/:id", visitaHandler.Descartar)
	borradores.Post("/:id/zonas", visitaHandler.AgregarZona)
	borradores.Put("/:id/zonas/:seccion/:n", visitaHandler.ActualizarZona)
	borradores.Delete("/:id/zonas/:seccion/:n", visitaHandler.QuitarZona)
	borradores.Post("/:id/enviar", visitaHandler.Enviar)

	// Adjuntos
	adjuntoHandler := NewAdjuntoHandler(deps.Cargador)
	protected.Post("/adjuntos", adjuntoHandler.Subir)
}
