// Package common contains shared constants, sentinel errors and the
// normalized server error used across authdesk components.
package common

const (
	// AuthorizationHeader carries the bearer token on protected requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token value in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader tags every outbound request for log correlation.
	RequestIDHeader = "X-Request-ID"
)

// Localized user-facing fallback messages.
const (
	MsgServerError       = "Error en el servidor"
	MsgLoginFailed       = "Error al iniciar sesión"
	MsgRegisterFailed    = "Error en el registro"
	MsgRegisterSucceeded = "Registro exitoso! Por favor inicia sesión"
	MsgProfileLoadFailed = "Error al cargar los datos del usuario"
	MsgNoUserToken       = "No user token found"
	MsgInvalidResponse   = "Invalid response format"
)
