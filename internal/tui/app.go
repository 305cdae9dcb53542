package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tui-demos/sessionpane/internal/config"
	"github.com/tui-demos/sessionpane/internal/session"
)

// App is the root composition: one shared session store wired to the login
// form and the greeting view. The panes are siblings and the store is the
// only channel between them.
type App struct {
	keys     keyMap
	st       styles
	login    *LoginPane
	greet    *GreetingPane
	width    int
	height   int
	status   string
	quitting bool
}

func New(cfg config.Config, store *session.Store) *App {
	keys := defaultKeyMap()
	return &App{
		keys:   keys,
		st:     newStyles(cfg.UI.Accent),
		login:  NewLoginPane(store, keys, cfg.UI.Mask),
		greet:  NewGreetingPane(store, cfg.UI.Placeholder, cfg.UI.Greeting),
		width:  80,
		height: 24,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			a.greet.Close()
			return a, tea.Quit
		}
	case statusMsg:
		a.status = string(msg)
		return a, nil
	}
	// everything else belongs to the form; the greeting pane takes no input
	return a, a.login.Update(msg)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	header := a.st.headerBar.Width(a.width).Render(a.st.header.Render("sessionpane"))

	paneHeight := 5
	leftWidth := a.width / 2
	left := pane{
		title:   "Sign in",
		content: a.login.View(),
		focused: true,
		accent:  a.st.accent,
	}.render(leftWidth, paneHeight)
	right := pane{
		title:   "Welcome",
		content: a.greet.View(),
		accent:  a.st.accent,
	}.render(a.width-leftWidth, paneHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	parts := []string{header, body}
	if a.status != "" {
		parts = append(parts, a.st.status.Width(a.width).Render(a.status))
	}
	parts = append(parts, a.st.footer.Width(a.width).Render(a.renderHelp()))
	return strings.Join(parts, "\n")
}

func (a *App) renderHelp() string {
	var b strings.Builder
	for i, bind := range a.keys.helpEntries() {
		if i > 0 {
			b.WriteString("  ")
		}
		h := bind.Help()
		b.WriteString(a.st.key.Render("[" + h.Key + "]"))
		b.WriteString(" ")
		b.WriteString(a.st.helpDesc.Render(h.Desc))
	}
	return b.String()
}

// messages
type statusMsg string
