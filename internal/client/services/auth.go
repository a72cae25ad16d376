// Package services contains application services for the authdesk client.
// This file defines the authentication service: register, login with session
// persistence, logout and profile retrieval.
package services

import (
	"context"

	"github.com/dmitrijs2005/authdesk/internal/client/api"
	"github.com/dmitrijs2005/authdesk/internal/client/session"
	"github.com/dmitrijs2005/authdesk/internal/common"
	"github.com/dmitrijs2005/authdesk/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account on the server; the session is untouched.
//   - Login: authenticate and persist the resulting session record.
//   - Logout: drop the local session. No network call.
//   - Profile: fetch the user profile with the stored token.
//
// Failures are *common.ServerError carrying a user-facing message.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (session.Record, error)
	Logout(ctx context.Context)
	Profile(ctx context.Context) (api.Profile, error)
}

type authService struct {
	client api.Client
	store  session.Store
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store session.Store, logger logging.Logger) AuthService {
	return &authService{client: client, store: store, logger: logger.With("component", "auth")}
}

// Register returns the server's confirmation message, which may be empty.
func (a *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	resp, err := a.client.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		a.logger.Info(ctx, "register failed", "email", email, "error", err)
		return "", err
	}
	a.logger.Info(ctx, "registered", "email", email)
	return resp.Message, nil
}

// Login authenticates and, only when the response carries both a user
// object and a token, saves and returns the new session record.
func (a *authService) Login(ctx context.Context, email, password string) (session.Record, error) {
	resp, err := a.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.logger.Info(ctx, "login failed", "email", email, "error", err)
		return session.Record{}, err
	}

	if resp.User == nil || resp.Token == "" {
		a.logger.Warn(ctx, "login response without user or token", "email", email)
		return session.Record{}, common.NewServerError(0, common.MsgInvalidResponse, common.ErrInvalidResponseFormat)
	}

	rec := session.NewRecord(resp.User, resp.Token)
	if err := a.store.Save(ctx, rec); err != nil {
		a.logger.Error(ctx, "session save failed", "error", err)
		return session.Record{}, common.NewServerError(0, "", err)
	}

	a.logger.Info(ctx, "logged in", "email", email)
	return rec, nil
}

// Logout clears the session. Store failures are logged only; the caller
// treats the user as logged out either way.
func (a *authService) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "session clear failed", "error", err)
		return
	}
	a.logger.Info(ctx, "logged out")
}

// Profile reads the token from the session at call time.
func (a *authService) Profile(ctx context.Context) (api.Profile, error) {
	rec, ok := a.store.Load(ctx)
	if !ok {
		return nil, common.NewServerError(0, common.MsgNoUserToken, common.ErrNoSession)
	}
	return a.client.Profile(ctx, rec.Token)
}
