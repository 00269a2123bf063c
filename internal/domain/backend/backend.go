// Package backend define los puertos hacia el backend Informetec, la única
// fuente de verdad del sistema. La pasarela no cachea ni persiste nada: cada
// operación es una llamada HTTP independiente, sin reintentos ni cancelación.
package backend

// Sesion credencial opaca de sesión del backend (su cookie tal cual llegó en
// el login). Viaja explícita en cada llamada autenticada.
type Sesion string

// Alta resultado de crear un usuario: el backend inicia sesión automáticamente
// con la cuenta recién creada.
type Alta struct {
	Rol    string
	Nombre string
	Sesion Sesion
}
