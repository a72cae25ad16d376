// Package api is the HTTP transport to the remote authentication API.
//
// Endpoints, relative to the configured base URL:
//
//	POST /auth/register   {name,email,password}  → {message}
//	POST /auth/login      {email,password}       → {user:{...}, token}
//	GET  /users/profile   Authorization: Bearer  → {...}
//
// Every failure is returned as *common.ServerError: the server's "message"
// when it sent one, otherwise the generic localized fallback. Authorization
// is an explicit argument of the calls that need it; the client keeps no
// default headers.
package api

import (
	"context"
)

// Client is the transport contract used by the auth service.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Profile(ctx context.Context, token string) (Profile, error)
}
