package cli

import (
	"context"

	"github.com/dmitrijs2005/authdesk/internal/client/authflow"
	"github.com/dmitrijs2005/authdesk/internal/client/guard"
)

// Register opens the form on the register tab. The user may still switch to
// login inside the form, so a login outcome is handled here as well.
func (a *App) Register(ctx context.Context) error {
	return a.openForm(ctx, authflow.ModeRegister)
}

// Login opens the form on the login tab. An existing session is kept and
// reported instead.
func (a *App) Login(ctx context.Context) error {
	if rec, ok := a.store.Load(ctx); ok {
		a.printf("Already logged in as %s. Use 'logout' first.\n", rec.DisplayName())
		return nil
	}
	return a.openForm(ctx, authflow.ModeLogin)
}

func (a *App) openForm(ctx context.Context, mode authflow.Mode) error {
	flow := authflow.New(a.authService,
		authflow.WithMode(mode),
		authflow.WithSwitchDelay(a.config.RegisterSwitchDelay),
	)

	out, err := a.forms.Run(ctx, flow)
	if err != nil {
		a.logger.Error(ctx, "form failed", "mode", string(mode), "error", err)
		return err
	}

	switch out.Kind {
	case authflow.OutcomeLoggedIn:
		a.logger.Info(ctx, "session started", "user", out.Record.DisplayName())
		a.printf("Bienvenido, %s\n", out.Record.DisplayName())
		return a.Navigate(ctx, guard.Dashboard)
	case authflow.OutcomeRegistered:
		a.printf("Use 'login' to sign in.\n")
	case authflow.OutcomeNone:
		a.printf("Cancelled.\n")
	}
	return nil
}

// Logout ends the session and shows the public home screen.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.printf("Sesión cerrada\n")
	return a.Navigate(ctx, guard.Home)
}
