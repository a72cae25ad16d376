package cli

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/authdesk/internal/client/config"
	"github.com/dmitrijs2005/authdesk/internal/client/guard"
	"github.com/dmitrijs2005/authdesk/internal/client/services"
	"github.com/dmitrijs2005/authdesk/internal/client/session"
	"github.com/dmitrijs2005/authdesk/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	store       session.Loader
	guard       *guard.Guard
	forms       FormRunner
	reader      *bufio.Reader
	out         io.Writer
	logger      logging.Logger
	now         func() time.Time
}

// NewApp wires the REPL. The form flavour follows c.FormMode.
func NewApp(c *config.Config, as services.AuthService, store session.Loader, logger logging.Logger, in io.Reader, out io.Writer) *App {
	reader := bufio.NewReader(in)
	return &App{
		config:      c,
		authService: as,
		store:       store,
		guard:       guard.New(store),
		forms:       newFormRunner(c.FormMode, reader, out),
		reader:      reader,
		out:         out,
		logger:      logger.With("component", "cli"),
		now:         time.Now,
	}
}

func (a *App) Run(ctx context.Context) {
	a.printf("Welcome to authdesk (type 'help' for commands)\n")
	_ = a.Navigate(ctx, guard.Home)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.store.Load(ctx)
	return ok
}

// getStatus is the prompt suffix: the session user when there is one.
func (a *App) getStatus(ctx context.Context) string {
	rec, ok := a.store.Load(ctx)
	if !ok {
		return ""
	}
	if n := rec.DisplayName(); n != "" {
		return "(" + n + ")"
	}
	return "(logged in)"
}
