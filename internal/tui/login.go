package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tui-demos/sessionpane/internal/session"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

// LoginPane is the form through which a user signs in. Typed input stays
// local to the pane; nothing reaches the shared store until submit.
type LoginPane struct {
	store  *session.Store
	keys   keyMap
	inputs [fieldCount]textinput.Model
	focus  int
}

// NewLoginPane builds the form. maskPassword switches the password field to a
// hidden echo.
func NewLoginPane(store *session.Store, keys keyMap, maskPassword bool) *LoginPane {
	user := textinput.New()
	user.Prompt = "username: "
	user.CharLimit = 64
	user.Focus()

	pass := textinput.New()
	pass.Prompt = "password: "
	pass.CharLimit = 64
	if maskPassword {
		pass.EchoMode = textinput.EchoPassword
		pass.EchoCharacter = '•'
	}

	p := &LoginPane{store: store, keys: keys}
	p.inputs[fieldUsername] = user
	p.inputs[fieldPassword] = pass
	return p
}

// Update handles form keys. Submit replaces the shared record
// unconditionally; whatever is typed is what gets published.
func (p *LoginPane) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keys.Next):
			p.moveFocus(1)
			return nil
		case key.Matches(msg, p.keys.Prev):
			p.moveFocus(-1)
			return nil
		case key.Matches(msg, p.keys.Submit):
			rec := &session.Record{
				Username: p.inputs[fieldUsername].Value(),
				Password: p.inputs[fieldPassword].Value(),
			}
			p.store.Set(rec)
			return func() tea.Msg {
				return statusMsg("signed in as " + rec.Username)
			}
		}
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

func (p *LoginPane) moveFocus(dir int) {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + dir + fieldCount) % fieldCount
	p.inputs[p.focus].Focus()
}

// View renders the two fields stacked.
func (p *LoginPane) View() string {
	lines := make([]string, 0, fieldCount)
	for _, in := range p.inputs {
		lines = append(lines, in.View())
	}
	return strings.Join(lines, "\n")
}
