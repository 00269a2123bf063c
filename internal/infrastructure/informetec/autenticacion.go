package informetec

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ backend.AutenticacionAPI = (*Autenticacion)(nil)

// Autenticacion adaptador de login/logout.
type Autenticacion struct {
	c *Client
}

// NewAutenticacion construye el adaptador sobre el núcleo compartido.
func NewAutenticacion(c *Client) *Autenticacion {
	return &Autenticacion{c: c}
}

// Login autentica contra POST /login. La credencial de sesión es la cookie
// que fija el backend, reenviada tal cual en las llamadas siguientes.
func (a *Autenticacion) Login(ctx context.Context, email, password string) (string, backend.Sesion, error) {
	cuerpo := map[string]string{"email": email, "password": password}
	req, err := a.c.peticion(ctx, http.MethodPost, "/login", "", cuerpo)
	if err != nil {
		return "", "", err
	}
	resp, err := a.c.httpClient.Do(req)
	if err != nil {
		return "", "", &domain.ErrorBackend{Tipo: domain.ErrConexion, Mensaje: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", "", clasificar(resp)
	}

	var salida struct {
		Rol string `json:"rol"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&salida); err != nil {
		return "", "", fmt.Errorf("informetec: decodificar respuesta de login: %w", err)
	}
	return salida.Rol, sesionDe(resp), nil
}

// Logout cierra la sesión del backend (POST /logout).
func (a *Autenticacion) Logout(ctx context.Context, s backend.Sesion) error {
	return a.c.llamar(ctx, http.MethodPost, "/logout", s, nil, nil)
}
