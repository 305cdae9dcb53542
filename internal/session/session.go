// Package session defines the record shared between the login form and the
// greeting view.
package session

import "github.com/tui-demos/sessionpane/internal/store"

// Record holds the credentials captured by the login form. A Record is built
// fresh on every submit; it has no identity of its own and is never persisted.
type Record struct {
	Username string
	Password string
}

// Store is the single shared holder of the current sign-in. A nil record
// means nobody has signed in yet; the only way back to nil is a restart.
type Store = store.Value[*Record]

// NewStore returns an empty store. Exactly one is created per program and
// passed to each pane that needs it.
func NewStore() *Store {
	return store.New[*Record]()
}
