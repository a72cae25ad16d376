// Package guard decides which view is shown for a navigation request based
// on the persisted session.
package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authdesk/internal/client/session"
)

type View string

const (
	Home      View = "home"
	Dashboard View = "dashboard"
	Profile   View = "profile"
)

// Protected reports whether v needs an authenticated session.
func (v View) Protected() bool {
	return v == Dashboard || v == Profile
}

// ParseView maps a user-typed name to a View.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case Home, Dashboard, Profile:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// Decision is the outcome of one navigation.
type Decision struct {
	Requested View
	View      View
	// Record is the session used for the decision; zero when absent.
	Record session.Record
}

// Redirected reports whether the rendered view differs from the requested one.
func (d Decision) Redirected() bool {
	return d.View != d.Requested
}

// Resolve is the pure guard rule. Protected views need a record with a
// token and fall back to Home otherwise; Home itself sends an authenticated
// user to the Dashboard.
func Resolve(rec session.Record, ok bool, requested View) Decision {
	authed := ok && rec.Authenticated()
	if !authed {
		rec = session.Record{}
	}

	d := Decision{Requested: requested, View: requested, Record: rec}
	switch {
	case requested.Protected() && !authed:
		d.View = Home
	case requested == Home && authed:
		d.View = Dashboard
	}
	return d
}

type Guard struct {
	loader session.Loader
}

func New(loader session.Loader) *Guard {
	return &Guard{loader: loader}
}

// Navigate reads the store on every call so a logout elsewhere takes effect
// on the very next navigation.
func (g *Guard) Navigate(ctx context.Context, requested View) Decision {
	rec, ok := g.loader.Load(ctx)
	return Resolve(rec, ok, requested)
}
