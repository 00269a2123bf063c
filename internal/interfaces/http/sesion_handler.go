package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/informetec/visitas-web/internal/application/dto"
	"github.com/informetec/visitas-web/internal/application/sesion"
	"github.com/informetec/visitas-web/internal/domain"
	"github.com/informetec/visitas-web/pkg/token"
)

// SesionHandler maneja login, registro y logout. Es el único handler que
// escribe la cookie de sesión firmada.
type SesionHandler struct {
	uc         *sesion.UseCase
	secret     string
	issuer     string
	expMinutes int
}

// NewSesionHandler construye el handler con los parámetros de la cookie.
func NewSesionHandler(uc *sesion.UseCase, secret, issuer string, expMinutes int) *SesionHandler {
	return &SesionHandler{uc: uc, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Login autentica contra el backend y fija la cookie de sesión.
func (h *SesionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return responderError(c, domain.Validacion("Por favor completa todos los campos"))
	}
	s, out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	if err := h.fijarCookie(c, out.Nombre, out.Rol, string(s)); err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Registro crea la cuenta y fija la cookie con la sesión que abre el backend.
func (h *SesionHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, out, err := h.uc.Registrar(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	if err := h.fijarCookie(c, out.Nombre, out.Rol, string(s)); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout cierra la sesión del backend y limpia la cookie. Un fallo remoto no
// impide la limpieza local.
func (h *SesionHandler) Logout(c *fiber.Ctx) error {
	_ = h.uc.Logout(c.UserContext(), GetSesion(c))
	c.Cookie(&fiber.Cookie{
		Name:     CookieSesion,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.NavegacionResponse{Mensaje: "Sesión cerrada", Destino: "/login"})
}

func (h *SesionHandler) fijarCookie(c *fiber.Ctx, nombre, rol, credencial string) error {
	firmado, err := token.Generate(h.secret, nombre, rol, credencial, h.issuer, h.expMinutes)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieSesion,
		Value:    firmado,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
