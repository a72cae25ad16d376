package authflow

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authdesk/internal/client/session"
	"github.com/dmitrijs2005/authdesk/internal/client/validation"
	"github.com/dmitrijs2005/authdesk/internal/common"
)

// Authenticator is the part of the auth service the form needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (session.Record, error)
	Register(ctx context.Context, name, email, password string) (string, error)
}

// Request is one validated submission, detached from the Flow.
type Request struct {
	Mode     Mode
	Name     string
	Email    string
	Password string

	auth Authenticator
}

// Result is what Request.Do produced.
type Result struct {
	Mode    Mode
	Record  session.Record
	Message string
	Err     error
}

// Do performs the network call. It never touches the Flow, so a UI may run
// it on another goroutine and hand the Result back to Finish.
func (r Request) Do(ctx context.Context) Result {
	res := Result{Mode: r.Mode}
	switch r.Mode {
	case ModeLogin:
		res.Record, res.Err = r.auth.Login(ctx, r.Email, r.Password)
	case ModeRegister:
		res.Message, res.Err = r.auth.Register(ctx, r.Name, r.Email, r.Password)
	default:
		res.Err = fmt.Errorf("%w: %q", common.ErrUnknownMode, r.Mode)
	}
	return res
}

type OutcomeKind int

const (
	// OutcomeNone is returned when Finish had nothing to apply.
	OutcomeNone OutcomeKind = iota
	OutcomeInvalid
	OutcomeLoggedIn
	OutcomeRegistered
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeLoggedIn:
		return "logged-in"
	case OutcomeRegistered:
		return "registered"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Outcome tells the UI what happened. LoggedIn carries the session record
// and closes the flow; Registered asks for CompleteRegistration after
// SwitchAfter.
type Outcome struct {
	Kind        OutcomeKind
	Record      session.Record
	Message     string
	Errors      validation.Errors
	SwitchAfter time.Duration
	Err         error
}

// Begin validates the active mode with every field touched. On failure the
// per-field errors are left in place and an error wrapping
// common.ErrValidation is returned; the authenticator is not involved.
func (f *Flow) Begin() (Request, error) {
	if err := f.checkEditable(); err != nil {
		return Request{}, err
	}

	st := f.state()
	for _, field := range fieldsByMode[f.mode] {
		st.touched[field] = true
	}
	f.validate(f.mode)
	if !st.errors.Valid() {
		return Request{}, fmt.Errorf("%w: %d field(s)", common.ErrValidation, len(st.errors))
	}

	f.status = StatusSubmitting
	f.alert = Alert{}
	return Request{
		Mode:     f.mode,
		Name:     st.values[validation.FieldName],
		Email:    st.values[validation.FieldEmail],
		Password: st.values[validation.FieldPassword],
		auth:     f.auth,
	}, nil
}

// Finish applies res to the flow. A result that does not belong to an
// in-flight submission is ignored.
func (f *Flow) Finish(res Result) Outcome {
	if f.status != StatusSubmitting || res.Mode != f.mode {
		return Outcome{Kind: OutcomeNone}
	}

	if res.Err != nil {
		fallback := common.MsgLoginFailed
		if res.Mode == ModeRegister {
			fallback = common.MsgRegisterFailed
		}
		msg := common.MessageOf(res.Err, fallback)
		f.status = StatusIdle
		f.alert = Alert{Kind: AlertError, Text: msg}
		return Outcome{Kind: OutcomeFailed, Message: msg, Err: res.Err}
	}

	switch res.Mode {
	case ModeLogin:
		f.status = StatusSucceeded
		f.closed = true
		return Outcome{Kind: OutcomeLoggedIn, Record: res.Record}
	default:
		msg := res.Message
		if msg == "" {
			msg = common.MsgRegisterSucceeded
		}
		f.status = StatusIdle
		f.alert = Alert{Kind: AlertSuccess, Text: msg}
		f.resetMode(ModeRegister)
		f.pendingSwitch = true
		return Outcome{Kind: OutcomeRegistered, Message: msg, SwitchAfter: f.switchDelay}
	}
}

// Submit runs Begin, Do and Finish in one go. Validation failures come back
// as an OutcomeInvalid; the error is reserved for a closed or busy flow.
func (f *Flow) Submit(ctx context.Context) (Outcome, error) {
	req, err := f.Begin()
	if err != nil {
		if f.checkEditable() != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeInvalid, Errors: f.Errors(), Err: err}, nil
	}
	return f.Finish(req.Do(ctx)), nil
}
