package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/domain/backend"
	"github.com/informetec/visitas-web/pkg/token"
)

// CookieSesion nombre de la cookie firmada de la pasarela.
const CookieSesion = "informetec_sesion"

// Locals keys para los claims de la sesión en Fiber.
const (
	LocalNombre     = "nombre"
	LocalRol        = "rol"
	LocalCredencial = "credencial"
)

// SesionMiddleware valida la cookie de sesión firmada y extrae nombre, rol y
// la credencial del backend a c.Locals.
func SesionMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valor := c.Cookies(CookieSesion)
		if valor == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SIN_SESION", Message: "Inicia sesión para continuar"})
		}
		nombre, rol, credencial, err := token.Parse(secret, valor)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESION_INVALIDA", Message: "Sesión inválida o expirada"})
		}
		c.Locals(LocalNombre, nombre)
		c.Locals(LocalRol, rol)
		c.Locals(LocalCredencial, credencial)
		return c.Next()
	}
}

// GetNombre devuelve el nombre del usuario del contexto (después del middleware).
func GetNombre(c *fiber.Ctx) string {
	v := c.Locals(LocalNombre)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol del contexto (después del middleware).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSesion devuelve la credencial de sesión del backend del contexto.
func GetSesion(c *fiber.Ctx) backend.Sesion {
	v := c.Locals(LocalCredencial)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return backend.Sesion(s)
}
