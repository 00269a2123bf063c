// Package informetec adaptador HTTP del backend Informetec. Implementa los
// puertos de internal/domain/backend con net/http: JSON con cookies de
// sesión, multipart para imágenes y respuesta binaria para el PDF. Las
// llamadas no se reintentan ni se cancelan; cada una clasifica su fallo según
// la taxonomía de domain (400 con mensaje del servidor, 500 genérico, sin
// respuesta = conexión).
package informetec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/pkg/logger"
)

// Client núcleo compartido por los adaptadores de recurso: origen del
// backend, http.Client y logger. Cada recurso (usuarios, empresa, visitas...)
// se construye sobre él, como los repositorios del mismo pool.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el núcleo contra el origen configurado.
func NewClient(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.Componente("informetec"),
	}
}

// peticion arma una petición JSON con la cookie de sesión si la hay.
func (c *Client) peticion(ctx context.Context, metodo, ruta string, s backend.Sesion, cuerpo any) (*http.Request, error) {
	var lector *bytes.Reader
	if cuerpo != nil {
		b, err := json.Marshal(cuerpo)
		if err != nil {
			return nil, fmt.Errorf("informetec: serializar cuerpo: %w", err)
		}
		lector = bytes.NewReader(b)
	} else {
		lector = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+ruta, lector)
	if err != nil {
		return nil, fmt.Errorf("informetec: crear petición: %w", err)
	}
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != "" {
		req.Header.Set("Cookie", string(s))
	}
	return req, nil
}

// llamar ejecuta una petición JSON y decodifica la respuesta en salida (si no
// es nil). Un fallo de red se clasifica como ErrConexion; un status de error,
// según clasificar.
func (c *Client) llamar(ctx context.Context, metodo, ruta string, s backend.Sesion, cuerpo, salida any) error {
	req, err := c.peticion(ctx, metodo, ruta, s, cuerpo)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("ruta", ruta).Msg("llamada al backend sin respuesta")
		return &domain.ErrorBackend{Tipo: domain.ErrConexion, Mensaje: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return clasificar(resp)
	}
	if salida != nil {
		if err := json.NewDecoder(resp.Body).Decode(salida); err != nil {
			return fmt.Errorf("informetec: decodificar respuesta de %s %s: %w", metodo, ruta, err)
		}
	}
	return nil
}

// mensajeRespuesta cuerpo estándar de error/reconocimiento del backend.
type mensajeRespuesta struct {
	Message string `json:"message"`
}

// clasificar traduce una respuesta de error a la taxonomía de domain,
// conservando el mensaje del servidor. El 400 por email duplicado se
// distingue para que la UI pueda mostrar su texto propio.
func clasificar(resp *http.Response) error {
	var cuerpo mensajeRespuesta
	_ = json.NewDecoder(resp.Body).Decode(&cuerpo)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		if strings.Contains(cuerpo.Message, "email ya está registrado") {
			return &domain.ErrorBackend{Tipo: domain.ErrEmailRegistrado, Mensaje: cuerpo.Message}
		}
		return &domain.ErrorBackend{Tipo: domain.ErrDatosInvalidos, Mensaje: cuerpo.Message}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &domain.ErrorBackend{Tipo: domain.ErrNoAutorizado, Mensaje: cuerpo.Message}
	case resp.StatusCode == http.StatusNotFound:
		return &domain.ErrorBackend{Tipo: domain.ErrNoEncontrado, Mensaje: cuerpo.Message}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &domain.ErrorBackend{Tipo: domain.ErrServidor, Mensaje: cuerpo.Message}
	default:
		return &domain.ErrorBackend{Tipo: domain.ErrDatosInvalidos, Mensaje: cuerpo.Message}
	}
}

// sesionDe junta las cookies que fijó la respuesta en una credencial opaca
// reenviable tal cual en el header Cookie.
func sesionDe(resp *http.Response) backend.Sesion {
	pares := make([]string, 0, 1)
	for _, c := range resp.Cookies() {
		pares = append(pares, c.Name+"="+c.Value)
	}
	return backend.Sesion(strings.Join(pares, "; "))
}
