package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/authdesk/internal/client/guard"
	"github.com/dmitrijs2005/authdesk/internal/client/ui/views"
	"github.com/dmitrijs2005/authdesk/internal/common"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Navigate asks the guard which screen to show for view and renders it.
func (a *App) Navigate(ctx context.Context, view guard.View) error {
	d := a.guard.Navigate(ctx, view)
	if d.Redirected() {
		a.logger.Debug(ctx, "navigation redirected", "requested", string(d.Requested), "view", string(d.View))
		a.printf("-> %s\n", d.View)
	}

	switch d.View {
	case guard.Dashboard:
		a.printf("%s\n", views.Dashboard(d.Record, a.now()))
	case guard.Profile:
		p, err := a.authService.Profile(ctx)
		if err != nil {
			a.logger.Warn(ctx, "profile load failed", "error", err)
			a.printf("%s\n", views.Error(common.MessageOf(err, common.MsgProfileLoadFailed)))
			return nil
		}
		a.printf("%s\n", views.Profile(p))
	default:
		a.printf("%s\n", views.Home())
	}
	return nil
}

// WhoAmI prints the session user and, for JWT tokens, when the token expires.
func (a *App) WhoAmI(ctx context.Context) error {
	rec, ok := a.store.Load(ctx)
	if !ok {
		a.printf("Not logged in\n")
		return nil
	}

	a.printf("Name:  %s\n", rec.Name())
	a.printf("Email: %s\n", rec.Email())

	exp, err := tokenExpiry(rec.Token)
	switch {
	case err != nil:
		a.printf("Token: opaque\n")
	case exp.IsZero():
		a.printf("Token: no expiry\n")
	case exp.Before(a.now()):
		a.printf("Token: expired at %s\n", exp.Local().Format(time.DateTime))
	default:
		a.printf("Token: expires at %s\n", exp.Local().Format(time.DateTime))
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client has no key and only uses it for display.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
