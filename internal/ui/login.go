package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const loginHint = "Enter your email and password above"

type LoginView struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

func NewLoginView() LoginView {
	email := textinput.New()
	email.Prompt = "Email:    "
	email.Placeholder = "you@example.com"
	email.Focus()

	password := textinput.New()
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginView{email: email, password: password}
}

// Ready reports whether both fields are filled, which is when the login and
// sign up actions become available.
func (v LoginView) Ready() bool {
	return v.email.Value() != "" && v.password.Value() != ""
}

func (v LoginView) Credentials() (string, string) {
	return v.email.Value(), v.password.Value()
}

func (v LoginView) Update(msg tea.Msg) (LoginView, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			v.focus = (v.focus + 1) % 2
			if v.focus == 0 {
				v.password.Blur()
				return v, v.email.Focus()
			}
			v.email.Blur()
			return v, v.password.Focus()
		}
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.email, cmd = v.email.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v LoginView) View(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Welcome to Simple Social"))
	b.WriteString("\n")
	b.WriteString(v.email.View())
	b.WriteString("\n")
	b.WriteString(v.password.View())
	b.WriteString("\n\n")

	if v.Ready() {
		b.WriteString(s.Selected.Render("[enter] Login"))
		b.WriteString("   ")
		b.WriteString(s.Muted.Render("[ctrl+r] Sign Up"))
	} else {
		b.WriteString(s.Info.Render(loginHint))
	}
	return b.String()
}
