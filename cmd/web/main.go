package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/informetec/visitas-web/internal/application/sesion"
	"github.com/informetec/visitas-web/internal/application/usecase"
	"github.com/informetec/visitas-web/internal/infrastructure/informetec"
	httpRouter "github.com/informetec/visitas-web/internal/interfaces/http"
	"github.com/informetec/visitas-web/pkg/config"
	"github.com/informetec/visitas-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando pasarela")

	cliente := informetec.NewClient(cfg.Backend.BaseURL, log)
	autenticacionAPI := informetec.NewAutenticacion(cliente)
	usuariosAPI := informetec.NewUsuarios(cliente)
	empresaAPI := informetec.NewEmpresa(cliente)
	clientesAPI := informetec.NewClientes(cliente)
	visitasAPI := informetec.NewVisitas(cliente)
	archivosAPI := informetec.NewArchivos(cliente)

	sesionUC := sesion.NewUseCase(autenticacionAPI, usuariosAPI, empresaAPI)
	empresaUC := usecase.NewEmpresaForm(empresaAPI)
	clienteUC := usecase.NewClienteForm(clientesAPI)
	supervisorUC := usecase.NewSupervisorForm(usuariosAPI)
	editor := usecase.NewEditorVisitas(visitasAPI, clientesAPI, usuariosAPI, log)
	dashboardUC := usecase.NewDashboardUseCase(visitasAPI, log)
	cargador := usecase.NewCargador(archivosAPI, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SesionUC:     sesionUC,
		EmpresaUC:    empresaUC,
		ClienteUC:    clienteUC,
		SupervisorUC: supervisorUC,
		Editor:       editor,
		DashboardUC:  dashboardUC,
		Cargador:     cargador,

		SesionSecret:     cfg.Sesion.Secret,
		SesionIssuer:     cfg.Sesion.Issuer,
		SesionExpMinutes: cfg.Sesion.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("pasarela detenida")
}
