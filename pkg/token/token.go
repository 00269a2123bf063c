// Package token firma y valida la cookie de sesión de la pasarela.
//
// La sesión local del front-end original (marca de autenticación + nombre del
// usuario en localStorage) se modela como un JWT HS256 en una cookie: además
// del nombre y el rol transporta la credencial de sesión del backend, de modo
// que la pasarela no guarda estado de autenticación en memoria.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Nombre     string `json:"nombre"`
	Rol        string `json:"rol"` // "supervisor" | "tecnico" | "user"
	Credencial string `json:"credencial"`
}

// Generate genera un token firmado con nombre, rol y credencial del backend.
func Generate(secret, nombre, rol, credencial, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   nombre,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Nombre:     nombre,
		Rol:        rol,
		Credencial: credencial,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token y devuelve nombre, rol y credencial del backend.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (nombre, rol, credencial string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Nombre, claims.Rol, claims.Credencial, nil
}
