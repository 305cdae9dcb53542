package tui

import (
	"fmt"

	"github.com/tui-demos/sessionpane/internal/session"
)

// GreetingPane shows who is signed in. It never writes to the store; it
// renders whatever the login form last published.
type GreetingPane struct {
	current     *session.Record
	placeholder string
	greeting    string
	cancel      func()
}

// NewGreetingPane subscribes to the store and keeps the record it is handed
// on each publish. greeting is printf-style with %s for the username.
func NewGreetingPane(store *session.Store, placeholder, greeting string) *GreetingPane {
	p := &GreetingPane{
		current:     store.Get(),
		placeholder: placeholder,
		greeting:    greeting,
	}
	p.cancel = store.Subscribe(func(rec *session.Record) {
		p.current = rec
	})
	return p
}

// Close drops the store subscription. Called when the pane leaves the tree.
func (p *GreetingPane) Close() {
	p.cancel()
}

// View renders the placeholder until a record exists, then the greeting.
func (p *GreetingPane) View() string {
	if p.current == nil {
		return p.placeholder
	}
	return fmt.Sprintf(p.greeting, p.current.Username)
}
