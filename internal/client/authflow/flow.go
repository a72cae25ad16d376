// Package authflow is the state machine behind the combined login/register
// form. It owns per-mode field values, touched sets, validation errors, the
// submission status and the alert line. It never renders anything; the
// bubbletea form and the line prompt both drive the same Flow.
//
// A submission is split in three steps so a UI can run the network call off
// its own state:
//
//	req, err := f.Begin()   // validate, status → submitting
//	res := req.Do(ctx)      // network only, touches no state
//	out := f.Finish(res)    // apply the result, report an Outcome
//
// Submit chains the three for synchronous callers. A Flow is not safe for
// concurrent use; only Request.Do may run on another goroutine.
package authflow

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/authdesk/internal/client/validation"
	"github.com/dmitrijs2005/authdesk/internal/common"
)

type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// Title is the heading shown for the mode.
func (m Mode) Title() string {
	if m == ModeRegister {
		return "Registrarse"
	}
	return "Iniciar Sesión"
}

// ParseMode maps "login"/"register" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLogin, ModeRegister:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownMode, s)
	}
}

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "idle"
	}
}

type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertError
	AlertSuccess
)

// Alert is the single message line above the form.
type Alert struct {
	Kind AlertKind
	Text string
}

// DefaultSwitchDelay is how long a registration success message stays up
// before the form goes back to login.
const DefaultSwitchDelay = 2 * time.Second

var fieldsByMode = map[Mode][]string{
	ModeLogin:    {validation.FieldEmail, validation.FieldPassword},
	ModeRegister: {validation.FieldName, validation.FieldEmail, validation.FieldPassword},
}

// Fields lists the inputs of mode in display order.
func Fields(m Mode) []string {
	return append([]string(nil), fieldsByMode[m]...)
}

// Label is the display label of a field.
func Label(field string) string {
	switch field {
	case validation.FieldName:
		return "Nombre"
	case validation.FieldEmail:
		return "Email"
	case validation.FieldPassword:
		return "Contraseña"
	default:
		return field
	}
}

type modeState struct {
	values  map[string]string
	touched map[string]bool
	errors  validation.Errors
}

func newModeState() *modeState {
	return &modeState{
		values:  map[string]string{},
		touched: map[string]bool{},
		errors:  validation.Errors{},
	}
}

type Flow struct {
	auth        Authenticator
	validator   *validation.Validator
	switchDelay time.Duration

	mode   Mode
	status Status
	alert  Alert
	closed bool

	// pendingSwitch is set by a successful registration and consumed by
	// CompleteRegistration.
	pendingSwitch bool

	states map[Mode]*modeState
}

type Option func(*Flow)

// WithMode sets the initial mode. Login is the default.
func WithMode(m Mode) Option {
	return func(f *Flow) { f.mode = m }
}

// WithSwitchDelay overrides DefaultSwitchDelay.
func WithSwitchDelay(d time.Duration) Option {
	return func(f *Flow) { f.switchDelay = d }
}

func New(auth Authenticator, opts ...Option) *Flow {
	f := &Flow{
		auth:        auth,
		validator:   validation.New(),
		switchDelay: DefaultSwitchDelay,
		mode:        ModeLogin,
		states: map[Mode]*modeState{
			ModeLogin:    newModeState(),
			ModeRegister: newModeState(),
		},
	}
	for _, o := range opts {
		o(f)
	}
	if _, ok := f.states[f.mode]; !ok {
		f.mode = ModeLogin
	}
	for m := range f.states {
		f.validate(m)
	}
	return f
}

func (f *Flow) Mode() Mode                         { return f.mode }
func (f *Flow) Status() Status                     { return f.status }
func (f *Flow) Alert() Alert                       { return f.alert }
func (f *Flow) Closed() bool                       { return f.closed }
func (f *Flow) Submitting() bool                   { return f.status == StatusSubmitting }
func (f *Flow) RegisterSwitchDelay() time.Duration { return f.switchDelay }

func (f *Flow) state() *modeState { return f.states[f.mode] }

// Value returns the current value of field in the active mode.
func (f *Flow) Value(field string) string {
	return f.state().values[field]
}

// FieldError is the validation message of field, shown only once the field
// has been touched.
func (f *Flow) FieldError(field string) string {
	st := f.state()
	if !st.touched[field] {
		return ""
	}
	return st.errors[field]
}

// Errors returns the visible (touched) errors of the active mode.
func (f *Flow) Errors() validation.Errors {
	st := f.state()
	out := validation.Errors{}
	for k, v := range st.errors {
		if st.touched[k] {
			out[k] = v
		}
	}
	return out
}

func (f *Flow) checkEditable() error {
	switch {
	case f.closed:
		return common.ErrFlowClosed
	case f.status == StatusSubmitting:
		return common.ErrSubmitting
	}
	return nil
}

func (f *Flow) hasField(field string) bool {
	for _, name := range fieldsByMode[f.mode] {
		if name == field {
			return true
		}
	}
	return false
}

// SetField changes a value of the active mode, marks it touched and
// revalidates the mode.
func (f *Flow) SetField(field, value string) error {
	if err := f.checkEditable(); err != nil {
		return err
	}
	if !f.hasField(field) {
		return fmt.Errorf("unknown field %q for %s", field, f.mode)
	}
	st := f.state()
	st.values[field] = value
	st.touched[field] = true
	f.validate(f.mode)
	return nil
}

// Touch marks field as visited without changing it.
func (f *Flow) Touch(field string) {
	if f.hasField(field) {
		f.state().touched[field] = true
	}
}

// SwitchMode moves to m, clearing the alert. Each mode keeps its own values.
// Switching is refused while a submission is in flight.
func (f *Flow) SwitchMode(m Mode) error {
	if err := f.checkEditable(); err != nil {
		return err
	}
	if _, ok := f.states[m]; !ok {
		return fmt.Errorf("%w: %q", common.ErrUnknownMode, m)
	}
	f.mode = m
	f.alert = Alert{}
	return nil
}

// CompleteRegistration is the delayed half of a successful registration:
// back to login with the success message cleared. It does nothing when no
// registration is pending or a submission is in flight, and reports whether
// it switched.
func (f *Flow) CompleteRegistration() bool {
	if !f.pendingSwitch || f.closed || f.status == StatusSubmitting {
		return false
	}
	f.pendingSwitch = false
	f.mode = ModeLogin
	f.alert = Alert{}
	return true
}

func (f *Flow) validate(m Mode) {
	st := f.states[m]
	switch m {
	case ModeLogin:
		st.errors = f.validator.Login(validation.LoginForm{
			Email:    st.values[validation.FieldEmail],
			Password: st.values[validation.FieldPassword],
		})
	case ModeRegister:
		st.errors = f.validator.Register(validation.RegisterForm{
			Name:     st.values[validation.FieldName],
			Email:    st.values[validation.FieldEmail],
			Password: st.values[validation.FieldPassword],
		})
	}
}

func (f *Flow) resetMode(m Mode) {
	f.states[m] = newModeState()
	f.validate(m)
}
