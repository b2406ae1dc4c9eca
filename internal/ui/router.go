package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"simplesocial/internal/repository"
	"simplesocial/internal/service"
	"simplesocial/internal/session"
	"simplesocial/internal/storage"
)

type Nav int

const (
	NavFeed Nav = iota
	NavUpload
)

type Screen int

const (
	ScreenLogin Screen = iota
	ScreenFeed
	ScreenUpload
)

// Route picks the screen for a session state and navigation choice.
func Route(authenticated bool, nav Nav) Screen {
	if !authenticated {
		return ScreenLogin
	}
	if nav == NavUpload {
		return ScreenUpload
	}
	return ScreenFeed
}

// Model is the root Bubble Tea model. Action handlers return the next state;
// the view is always derived from state.
type Model struct {
	ctx      context.Context
	services *service.Service
	session  *session.Store
	styles   Styles
	now      func() time.Time

	nav    Nav
	login  LoginView
	upload UploadView
	feed   FeedView
	flash  flash
	busy   bool
}

func NewModel(ctx context.Context, services *service.Service, store *session.Store) Model {
	return Model{
		ctx:      ctx,
		services: services,
		session:  store,
		styles:   DefaultStyles(),
		now:      time.Now,
		login:    NewLoginView(),
		upload:   NewUploadView(),
	}
}

func (m Model) Screen() Screen {
	return Route(m.session.IsAuthenticated(), m.nav)
}

func (m Model) Busy() bool { return m.busy }

func (m Model) Init() tea.Cmd {
	if m.session.IsAuthenticated() {
		return m.startFeedLoad()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case loginResultMsg:
		return m.onLogin(msg)
	case registerResultMsg:
		return m.onRegister(msg)
	case feedLoadedMsg:
		return m.onFeedLoaded(msg)
	case uploadResultMsg:
		return m.onUpload(msg)
	case deleteResultMsg:
		return m.onDelete(msg)
	}

	return m.forward(msg)
}

// forward hands non-action messages (cursor blink and friends) to the active inputs.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Screen() {
	case ScreenLogin:
		m.login, cmd = m.login.Update(msg)
	case ScreenUpload:
		m.upload, cmd = m.upload.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.Screen()
	if screen == ScreenLogin {
		return m.handleLoginKey(key)
	}

	switch key.String() {
	case "ctrl+x":
		if m.busy {
			return m, nil
		}
		return m.logout()
	case "ctrl+f":
		m.nav = NavFeed
		m.flash = flash{}
		if !m.feed.Loaded() && !m.busy {
			return m.refresh()
		}
		return m, nil
	case "ctrl+u":
		m.nav = NavUpload
		m.flash = flash{}
		return m, nil
	}

	if screen == ScreenUpload {
		return m.handleUploadKey(key)
	}
	return m.handleFeedKey(key)
}

func (m Model) handleLoginKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		if m.busy || !m.login.Ready() {
			return m, nil
		}
		email, password := m.login.Credentials()
		m.busy = true
		m.flash = flash{}
		auth, ctx := m.services.Auth, m.ctx
		return m, func() tea.Msg {
			user, err := auth.Login(ctx, email, password)
			return loginResultMsg{user: user, err: err}
		}

	case "ctrl+r":
		if m.busy || !m.login.Ready() {
			return m, nil
		}
		email, password := m.login.Credentials()
		m.busy = true
		m.flash = flash{}
		auth, ctx := m.services.Auth, m.ctx
		return m, func() tea.Msg {
			return registerResultMsg{err: auth.Register(ctx, email, password)}
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.Update(key)
	return m, cmd
}

func (m Model) handleFeedKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		m.feed = m.feed.MoveUp()
	case "down", "j":
		m.feed = m.feed.MoveDown()
	case "r":
		if !m.busy {
			return m.refresh()
		}
	case "d":
		item, ok := m.feed.Selected()
		if m.busy || !ok || !item.CanDelete {
			return m, nil
		}
		m.busy = true
		m.flash = flash{}
		posts, ctx, id := m.services.Post, m.ctx, item.Post.ID
		return m, func() tea.Msg {
			return deleteResultMsg{postID: id, err: posts.Delete(ctx, id)}
		}
	}
	return m, nil
}

func (m Model) handleUploadKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		path := m.upload.Path()
		if m.busy || path == "" {
			return m, nil
		}
		if !storage.IsAllowedExtension(path) {
			m.flash = flash{flashError, "Choose a " + strings.Join(storage.AllowedExtensions, " ") + " file"}
			return m, nil
		}
		m.busy = true
		m.flash = flash{}
		posts, ctx, caption := m.services.Post, m.ctx, m.upload.Caption()
		return m, func() tea.Msg {
			return uploadResultMsg{err: posts.Upload(ctx, path, caption)}
		}
	}

	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(key)
	return m, cmd
}

func (m Model) startFeedLoad() tea.Cmd {
	posts, ctx := m.services.Post, m.ctx
	return func() tea.Msg {
		items, err := posts.Feed(ctx)
		return feedLoadedMsg{items: items, err: err}
	}
}

// refresh marks the model busy and reloads the feed.
func (m Model) refresh() (Model, tea.Cmd) {
	m.busy = true
	return m, m.startFeedLoad()
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.services.Auth.Logout()
	m.nav = NavFeed
	m.feed = FeedView{}
	m.login = NewLoginView()
	m.upload = NewUploadView()
	m.flash = flash{}
	return m, nil
}

func (m Model) onLogin(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrProfileUnavailable) {
			m.flash = flash{flashError, "Failed to get user info"}
		} else {
			m.flash = flash{flashError, "Invalid email or password!"}
		}
		return m, nil
	}

	m.nav = NavFeed
	m.login = NewLoginView()
	m.feed = FeedView{}
	m.flash = flash{}
	return m.refresh()
}

func (m Model) onRegister(msg registerResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		detail := "Registration failed"
		var authErr *repository.AuthError
		if errors.As(msg.err, &authErr) && authErr.Message != "" {
			detail = authErr.Message
		}
		m.flash = flash{flashError, "Registration failed: " + detail}
		return m, nil
	}

	m.flash = flash{flashSuccess, "Account created! Click Login now."}
	return m, nil
}

func (m Model) onFeedLoaded(msg feedLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if !m.session.IsAuthenticated() {
		return m, nil
	}
	if msg.err != nil {
		m.flash = flash{flashError, "Failed to load feed"}
		return m, nil
	}

	m.feed = m.feed.SetItems(msg.items)
	return m, nil
}

func (m Model) onUpload(msg uploadResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if !m.session.IsAuthenticated() {
		return m, nil
	}
	if msg.err != nil {
		var netErr *repository.NetworkError
		if errors.As(msg.err, &netErr) {
			m.flash = flash{flashError, "Upload failed!"}
		} else {
			m.flash = flash{flashError, fmt.Sprintf("Upload failed: %v", msg.err)}
		}
		return m, nil
	}

	m.upload = NewUploadView()
	m.nav = NavFeed
	m.flash = flash{flashSuccess, "Posted!"}
	return m.refresh()
}

func (m Model) onDelete(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if !m.session.IsAuthenticated() {
		return m, nil
	}
	if msg.err != nil {
		m.flash = flash{flashError, "Failed to delete post!"}
		return m, nil
	}

	m.flash = flash{flashSuccess, "Post deleted!"}
	return m.refresh()
}

func (m Model) sidebarView() string {
	s := m.styles
	var b strings.Builder

	if user, ok := m.session.User(); ok {
		b.WriteString(s.Author.Render(fmt.Sprintf("Hi %s!", user.Email)))
		b.WriteString("\n")
	}
	if exp, ok := m.session.ExpiresAt(); ok {
		b.WriteString(s.Muted.Render("session ends " + humanize.RelTime(exp, m.now(), "ago", "from now")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	entries := []struct {
		nav   Nav
		label string
		key   string
	}{
		{NavFeed, "Feed", "ctrl+f"},
		{NavUpload, "Upload", "ctrl+u"},
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s", e.label, s.Muted.Render(e.key))
		if e.nav == m.nav {
			line = s.Selected.Render("> "+e.label) + "  " + s.Muted.Render(e.key)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Logout  ctrl+x"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Quit    ctrl+c"))
	return s.Sidebar.Render(b.String())
}

func (m Model) View() string {
	var content string
	switch m.Screen() {
	case ScreenLogin:
		content = m.login.View(m.styles)
	case ScreenUpload:
		content = m.upload.View(m.styles, m.busy)
	default:
		content = m.feed.View(m.styles, m.busy, m.now())
	}

	if f := m.flash.render(m.styles); f != "" {
		content += "\n\n" + f
	}

	if m.Screen() == ScreenLogin {
		return m.styles.Content.Render(content)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.styles.Content.Render(content))
}
