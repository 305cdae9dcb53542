package tui

import (
	"strings"
	"testing"

	"github.com/tui-demos/sessionpane/internal/session"
)

const (
	testPlaceholder = "Please log in."
	testGreeting    = "Hello, %s! You are signed in."
)

func TestPlaceholderBeforeSignIn(t *testing.T) {
	store := session.NewStore()
	p := NewGreetingPane(store, testPlaceholder, testGreeting)

	if got := p.View(); got != testPlaceholder {
		t.Fatalf("View = %q, want placeholder", got)
	}
}

func TestGreetingAfterPublish(t *testing.T) {
	store := session.NewStore()
	p := NewGreetingPane(store, testPlaceholder, testGreeting)

	store.Set(&session.Record{Username: "alice", Password: "x"})

	if got := p.View(); !strings.Contains(got, "alice") {
		t.Fatalf("View = %q, want greeting containing alice", got)
	}
}

func TestRepeatPublishSameRecordNoExtraTransition(t *testing.T) {
	store := session.NewStore()
	p := NewGreetingPane(store, testPlaceholder, testGreeting)

	rec := &session.Record{Username: "alice", Password: "x"}
	store.Set(rec)
	first := p.View()
	store.Set(rec)
	second := p.View()

	if first != second {
		t.Fatalf("view changed across identical publishes: %q -> %q", first, second)
	}
}

func TestTwoPanesObserveOneStore(t *testing.T) {
	store := session.NewStore()
	a := NewGreetingPane(store, testPlaceholder, testGreeting)
	b := NewGreetingPane(store, testPlaceholder, testGreeting)

	store.Set(&session.Record{Username: "carol"})

	if a.View() != b.View() {
		t.Fatalf("sibling panes diverged: %q vs %q", a.View(), b.View())
	}
	if !strings.Contains(a.View(), "carol") {
		t.Fatalf("View = %q, want greeting containing carol", a.View())
	}
}

func TestCloseStopsUpdates(t *testing.T) {
	store := session.NewStore()
	p := NewGreetingPane(store, testPlaceholder, testGreeting)
	p.Close()

	store.Set(&session.Record{Username: "dave"})

	if got := p.View(); got != testPlaceholder {
		t.Fatalf("closed pane still updated: %q", got)
	}
}

func TestLateSubscriberSeesCurrentValue(t *testing.T) {
	store := session.NewStore()
	store.Set(&session.Record{Username: "erin"})

	p := NewGreetingPane(store, testPlaceholder, testGreeting)
	if !strings.Contains(p.View(), "erin") {
		t.Fatalf("pane built after publish shows %q", p.View())
	}
}
