// Package views renders the static screens of authdesk: the public home
// screen and the protected dashboard and profile screens.
package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/authdesk/internal/client/api"
	"github.com/dmitrijs2005/authdesk/internal/client/session"
	"github.com/dmitrijs2005/authdesk/internal/client/ui"
)

const (
	defaultUserName = "Usuario"
	notAvailable    = "No disponible"
)

var (
	rowLabelStyle = ui.LabelStyle.Width(10)
	headerStyle   = lipgloss.NewStyle().Foreground(ui.Accent).Bold(true)
)

func row(label, value string) string {
	return rowLabelStyle.Render(label+":") + " " + value
}

// Home is the public entry screen.
func Home() string {
	body := strings.Join([]string{
		headerStyle.Render("Bienvenido"),
		"",
		"Inicia sesión o crea una cuenta para continuar.",
		"",
		ui.KeyStyle.Render("login") + "     iniciar sesión",
		ui.KeyStyle.Render("register") + "  registrarse",
	}, "\n")
	return ui.CardStyle.Render(body)
}

// Dashboard renders the session user. now is the "last access" stamp.
func Dashboard(rec session.Record, now time.Time) string {
	name := rec.Name()
	if name == "" {
		name = defaultUserName
	}

	side := strings.Join([]string{
		headerStyle.Render(name),
		ui.MutedStyle.Render(rec.Email()),
		"",
		ui.KeyStyle.Render("profile") + "  Perfil",
		ui.KeyStyle.Render("logout") + "   Cerrar Sesión",
	}, "\n")

	panel := strings.Join([]string{
		headerStyle.Render("Panel de Control"),
		"",
		ui.MutedStyle.Render("Último acceso: " + now.Format("02/01/2006 15:04:05")),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		ui.CardStyle.Render(side),
		ui.CardStyle.Render(panel),
	)
}

// Profile renders the fields returned by the profile endpoint. Name and
// email come first; any further fields follow in key order.
func Profile(p api.Profile) string {
	name := p.String("name")
	if name == "" {
		name = notAvailable
	}

	lines := []string{
		headerStyle.Render("Información Personal"),
		"",
		row("Nombre", name),
		row("Email", p.String("email")),
	}

	var extra []string
	for k := range p {
		if k == "name" || k == "email" {
			continue
		}
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		lines = append(lines, row(k, fmt.Sprint(p[k])))
	}

	return ui.CardStyle.Render(strings.Join(lines, "\n"))
}

// Error renders a failed screen load.
func Error(msg string) string {
	return ui.ErrorStyle.Render(msg)
}
