// Package authform is the interactive bubbletea rendering of the combined
// login/register form. All form state lives in an authflow.Flow; the model
// only mirrors it into text inputs and runs submissions as commands.
package authform

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/authdesk/internal/client/authflow"
	"github.com/dmitrijs2005/authdesk/internal/client/ui"
	"github.com/dmitrijs2005/authdesk/internal/client/validation"
)

// resultMsg carries a finished network call back into Update.
type resultMsg struct {
	res authflow.Result
}

// switchMsg fires after the registration success delay.
type switchMsg struct{}

type Model struct {
	ctx  context.Context
	flow *authflow.Flow

	inputs map[authflow.Mode][]textinput.Model
	focus  int

	last      authflow.Outcome
	cancelled bool

	width  int
	height int
}

func New(ctx context.Context, flow *authflow.Flow) Model {
	m := Model{
		ctx:    ctx,
		flow:   flow,
		inputs: map[authflow.Mode][]textinput.Model{},
	}
	for _, mode := range []authflow.Mode{authflow.ModeLogin, authflow.ModeRegister} {
		for _, field := range authflow.Fields(mode) {
			m.inputs[mode] = append(m.inputs[mode], newInput(field))
		}
	}
	m.syncFocus()
	return m
}

func newInput(field string) textinput.Model {
	in := textinput.New()
	in.Placeholder = strings.ToLower(authflow.Label(field))
	in.Width = 32
	in.CharLimit = 128
	if field == validation.FieldPassword {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// Outcome is the last non-empty outcome of the session with the form.
func (m Model) Outcome() authflow.Outcome { return m.last }

// LoggedIn reports whether the form closed on a successful login.
func (m Model) LoggedIn() bool { return m.last.Kind == authflow.OutcomeLoggedIn }

// Cancelled reports whether the user left the form with esc or ctrl+c.
func (m Model) Cancelled() bool { return m.cancelled }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) active() []textinput.Model {
	return m.inputs[m.flow.Mode()]
}

func (m *Model) syncFocus() {
	for mode, ins := range m.inputs {
		for i := range ins {
			if mode == m.flow.Mode() && i == m.focus {
				ins[i].Focus()
			} else {
				ins[i].Blur()
			}
		}
	}
}

func (m *Model) moveFocus(delta int) {
	n := len(m.active())
	if n == 0 {
		return
	}
	m.flow.Touch(authflow.Fields(m.flow.Mode())[m.focus])
	m.focus = (m.focus + delta + n) % n
	m.syncFocus()
}

func (m *Model) toggleMode() {
	next := authflow.ModeRegister
	if m.flow.Mode() == authflow.ModeRegister {
		next = authflow.ModeLogin
	}
	if m.flow.SwitchMode(next) != nil {
		return
	}
	m.focus = 0
	m.syncFocus()
}

// reloadInputs copies the flow's values of mode into the text inputs.
func (m *Model) reloadInputs(mode authflow.Mode) {
	cur := m.flow.Mode()
	if cur != mode {
		return
	}
	fields := authflow.Fields(mode)
	for i := range m.inputs[mode] {
		m.inputs[mode][i].SetValue(m.flow.Value(fields[i]))
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	req, err := m.flow.Begin()
	if err != nil {
		return m, nil
	}
	ctx := m.ctx
	return m, func() tea.Msg {
		return resultMsg{res: req.Do(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
		if m.flow.Submitting() {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "ctrl+t":
			m.toggleMode()
			return m, nil
		case "enter":
			return m.submit()
		}

	case resultMsg:
		out := m.flow.Finish(msg.res)
		if out.Kind == authflow.OutcomeNone {
			return m, nil
		}
		m.last = out
		switch out.Kind {
		case authflow.OutcomeLoggedIn:
			return m, tea.Quit
		case authflow.OutcomeRegistered:
			for i := range m.inputs[authflow.ModeRegister] {
				m.inputs[authflow.ModeRegister][i].SetValue("")
			}
			m.focus = 0
			m.syncFocus()
			return m, tea.Tick(out.SwitchAfter, func(time.Time) tea.Msg { return switchMsg{} })
		}
		return m, nil

	case switchMsg:
		if m.flow.CompleteRegistration() {
			m.focus = 0
			m.reloadInputs(authflow.ModeLogin)
			m.syncFocus()
		}
		return m, nil
	}

	if m.flow.Submitting() || m.flow.Closed() {
		return m, nil
	}

	ins := m.active()
	if m.focus >= len(ins) {
		return m, nil
	}
	field := authflow.Fields(m.flow.Mode())[m.focus]
	before := ins[m.focus].Value()

	var cmd tea.Cmd
	ins[m.focus], cmd = ins[m.focus].Update(msg)
	if v := ins[m.focus].Value(); v != before {
		_ = m.flow.SetField(field, v)
	}
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(ui.TitleStyle.Render(m.flow.Mode().Title()))
	sb.WriteString("\n")
	sb.WriteString(m.tabs())
	sb.WriteString("\n\n")

	switch a := m.flow.Alert(); a.Kind {
	case authflow.AlertError:
		sb.WriteString(ui.ErrorStyle.Render(a.Text))
		sb.WriteString("\n\n")
	case authflow.AlertSuccess:
		sb.WriteString(ui.SuccessStyle.Render(a.Text))
		sb.WriteString("\n\n")
	}

	fields := authflow.Fields(m.flow.Mode())
	for i, in := range m.active() {
		sb.WriteString(ui.LabelStyle.Render(authflow.Label(fields[i]) + ":"))
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n")
		if e := m.flow.FieldError(fields[i]); e != "" {
			sb.WriteString(ui.ErrorStyle.Render(e))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if m.flow.Submitting() {
		sb.WriteString(ui.MutedStyle.Render("Enviando..."))
	} else {
		sb.WriteString(ui.KeyStyle.Render("Enter") + " enviar, " +
			ui.KeyStyle.Render("Tab") + " siguiente campo, " +
			ui.KeyStyle.Render("Ctrl+T") + " cambiar formulario, " +
			ui.KeyStyle.Render("Esc") + " cancelar")
	}

	content := ui.CardStyle.Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) tabs() string {
	render := func(mode authflow.Mode) string {
		if mode == m.flow.Mode() {
			return ui.ActiveTabStyle.Render(mode.Title())
		}
		return ui.InactiveTabStyle.Render(mode.Title())
	}
	return render(authflow.ModeLogin) + "  " + render(authflow.ModeRegister)
}

// Run shows the form until it closes on a login or the user cancels.
func Run(ctx context.Context, flow *authflow.Flow, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(New(ctx, flow), opts...).Run()
	if m, ok := final.(Model); ok {
		return m, err
	}
	return Model{flow: flow}, err
}
