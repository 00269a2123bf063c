package informetec

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/internal/domain/entity"
)

var _ backend.UsuariosAPI = (*Usuarios)(nil)

// Usuarios adaptador de altas y listado de usuarios.
type Usuarios struct {
	c *Client
}

// NewUsuarios construye el adaptador sobre el núcleo compartido.
func NewUsuarios(c *Client) *Usuarios {
	return &Usuarios{c: c}
}

// Crear da de alta un usuario (POST /usuarios). El backend inicia sesión con
// la cuenta nueva: la respuesta trae rol, nombre y la cookie de esa sesión.
func (u *Usuarios) Crear(ctx context.Context, usuario entity.Usuario) (*backend.Alta, error) {
	req, err := u.c.peticion(ctx, http.MethodPost, "/usuarios", "", usuario)
	if err != nil {
		return nil, err
	}
	resp, err := u.c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ErrorBackend{Tipo: domain.ErrConexion, Mensaje: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, clasificar(resp)
	}

	var salida struct {
		Rol    string `json:"rol"`
		Nombre string `json:"nombre"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&salida); err != nil {
		return nil, fmt.Errorf("informetec: decodificar respuesta de alta: %w", err)
	}
	return &backend.Alta{
		Rol:    salida.Rol,
		Nombre: salida.Nombre,
		Sesion: sesionDe(resp),
	}, nil
}

// Listar trae todos los usuarios (GET /usuarios); el llamador filtra por rol.
func (u *Usuarios) Listar(ctx context.Context, s backend.Sesion) ([]entity.Usuario, error) {
	var usuarios []entity.Usuario
	if err := u.c.llamar(ctx, http.MethodGet, "/usuarios", s, nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}
