package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/authdesk/internal/client/authflow"
	"github.com/dmitrijs2005/authdesk/internal/client/config"
	"github.com/dmitrijs2005/authdesk/internal/client/ui/authform"
	"github.com/dmitrijs2005/authdesk/internal/client/validation"
	"github.com/dmitrijs2005/authdesk/internal/common"
)

// FormRunner presents a flow to the user until it produces a final outcome.
// A zero Outcome means the user left the form.
type FormRunner interface {
	Run(ctx context.Context, flow *authflow.Flow) (authflow.Outcome, error)
}

func newFormRunner(mode string, reader *bufio.Reader, out io.Writer) FormRunner {
	if mode == config.FormModePrompt {
		return &promptForm{reader: reader, out: out}
	}
	return tuiForm{}
}

// tuiForm runs the bubbletea form.
type tuiForm struct{}

func (tuiForm) Run(ctx context.Context, flow *authflow.Flow) (authflow.Outcome, error) {
	m, err := authform.Run(ctx, flow)
	if err != nil {
		return authflow.Outcome{}, fmt.Errorf("form: %w", err)
	}
	if m.Cancelled() {
		return authflow.Outcome{}, nil
	}
	return m.Outcome(), nil
}

// promptForm asks for each field on its own line. It submits once; a
// validation failure or a rejected request is printed and ends the form.
type promptForm struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *promptForm) Run(ctx context.Context, flow *authflow.Flow) (authflow.Outcome, error) {
	fmt.Fprintln(p.out, "== "+flow.Mode().Title()+" ==")

	for _, field := range authflow.Fields(flow.Mode()) {
		value, err := p.ask(field)
		if err != nil {
			return authflow.Outcome{}, err
		}
		if err := flow.SetField(field, value); err != nil {
			return authflow.Outcome{}, err
		}
	}

	out, err := flow.Submit(ctx)
	if err != nil {
		return authflow.Outcome{}, err
	}

	switch out.Kind {
	case authflow.OutcomeInvalid:
		for _, field := range authflow.Fields(flow.Mode()) {
			if msg := out.Errors[field]; msg != "" {
				fmt.Fprintf(p.out, "  %s: %s\n", authflow.Label(field), msg)
			}
		}
	case authflow.OutcomeFailed:
		fmt.Fprintln(p.out, out.Message)
	case authflow.OutcomeRegistered:
		fmt.Fprintln(p.out, out.Message)
		if err := sleepCtx(ctx, out.SwitchAfter); err != nil {
			return out, nil
		}
		flow.CompleteRegistration()
	}
	return out, nil
}

func (p *promptForm) ask(field string) (string, error) {
	label := authflow.Label(field)
	if field != validation.FieldPassword {
		return getSimpleText(p.reader, label, p.out)
	}
	pw, err := getPassword(label, p.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
