package login

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/profile"
	"github.com/abhisek/studiz/internal/router"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/ui/layout"
	"github.com/abhisek/studiz/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldCount
)

// loadedMsg carries the stored user at screen start.
type loadedMsg struct {
	User *profile.User
}

// savedMsg is sent after the profile has been written or removed.
type savedMsg struct {
	User *profile.User
	Err  error
}

// LoginScreen shows the stored profile, or a form to create one. There
// is no authentication; the profile is a display name kept locally.
type LoginScreen struct {
	profiles *profile.Service

	user    *profile.User
	loaded  bool
	inputs  [fieldCount]textinput.Model
	focused int
	errMsg  string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen.
func New(profiles *profile.Service) *LoginScreen {
	s := &LoginScreen{profiles: profiles}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 60
	s.inputs[fieldName] = name

	email := textinput.New()
	email.Placeholder = "Email (optional)"
	email.CharLimit = 120
	s.inputs[fieldEmail] = email

	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	load := func() tea.Msg {
		u, _ := s.profiles.Current(context.Background())
		return loadedMsg{User: u}
	}
	return tea.Batch(load, s.inputs[fieldName].Focus())
}

func (s *LoginScreen) Title() string {
	return "Profile"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	if s.user != nil {
		return []layout.KeyHint{
			{Key: "L", Description: "Log out"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.user = msg.User
		s.loaded = true
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.user = msg.User
		name := ""
		if msg.User != nil {
			name = msg.User.Name
		}
		notify := func() tea.Msg { return screen.UserChangedMsg{Name: name} }
		if msg.User != nil {
			// Login closes the screen; logout keeps it open showing
			// the empty form.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Batch(notify, pop)
		}
		return s, tea.Batch(notify, s.inputs[fieldName].Focus())

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.updateFocused(msg)
}

func (s *LoginScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.user != nil {
		switch msg.String() {
		case "l", "L":
			return s, s.logout()
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.focus((s.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.focus((s.focused - 1 + fieldCount) % fieldCount)
	case "enter":
		name := strings.TrimSpace(s.inputs[fieldName].Value())
		if name == "" {
			s.errMsg = "Name is required"
			return s, s.focus(fieldName)
		}
		email := strings.TrimSpace(s.inputs[fieldEmail].Value())
		return s, s.login(name, email)
	}

	return s.updateFocused(msg)
}

func (s *LoginScreen) updateFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *LoginScreen) focus(field int) tea.Cmd {
	s.inputs[s.focused].Blur()
	s.focused = field
	return s.inputs[s.focused].Focus()
}

func (s *LoginScreen) login(name, email string) tea.Cmd {
	return func() tea.Msg {
		u, err := s.profiles.Login(context.Background(), name, email)
		return savedMsg{User: u, Err: err}
	}
}

func (s *LoginScreen) logout() tea.Cmd {
	return func() tea.Msg {
		if err := s.profiles.Logout(context.Background()); err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{}
	}
}

func (s *LoginScreen) View(width, height int) string {
	if !s.loaded {
		return ""
	}
	if s.user != nil {
		return s.renderProfile(width, height)
	}
	return s.renderForm(width, height)
}

func (s *LoginScreen) renderProfile(width, height int) string {
	u := s.user

	lines := []string{
		theme.Title.Render(u.Name),
	}
	if u.Email != "" {
		lines = append(lines, theme.Subtitle.Render(u.Email))
	}
	lines = append(lines, "",
		theme.Hint.Render("Joined "+u.Joined.Local().Format("Jan 02, 2006")))

	card := theme.Card.Render(strings.Join(lines, "\n"))

	content := card + "\n\n" +
		theme.Hint.Render("press l to log out")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LoginScreen) renderForm(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Who's studying?"))
	b.WriteString("\n\n")

	for i := range s.inputs {
		b.WriteString(s.renderField(i))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("⚠ %s", s.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *LoginScreen) renderField(field int) string {
	border := theme.Border
	if field == s.focused {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(44).
		Render(s.inputs[field].View())
}
