package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/history"
	"github.com/abhisek/studiz/internal/profile"
	"github.com/abhisek/studiz/internal/router"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/screens/explain"
	"github.com/abhisek/studiz/internal/screens/flashcards"
	historyscreen "github.com/abhisek/studiz/internal/screens/history"
	"github.com/abhisek/studiz/internal/screens/login"
	"github.com/abhisek/studiz/internal/screens/quiz"
	"github.com/abhisek/studiz/internal/screens/summarize"
	"github.com/abhisek/studiz/internal/studygen"
	"github.com/abhisek/studiz/internal/ui/components"
	"github.com/abhisek/studiz/internal/ui/theme"
)

// Deps holds the services the home screen hands down to sub-screens.
type Deps struct {
	Generator *studygen.Generator
	History   *history.Store
	Profile   *profile.Service
	Theme     *theme.Service
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
	mode theme.Mode
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, mode: theme.ModeDark}
	if deps.Theme != nil {
		if m, err := deps.Theme.Load(context.Background()); err == nil {
			h.mode = m
		}
	}

	aiDisabled := deps.Generator == nil
	aiHint := ""
	if aiDisabled {
		aiHint = "set an API key to enable"
	}

	items := []components.MenuItem{
		{Label: "EXPLAIN A CONCEPT", Hint: aiHint, Disabled: aiDisabled, Action: func() tea.Cmd {
			return push(explain.New(deps.Generator, deps.History))
		}},
		{Label: "SUMMARIZE TEXT", Hint: aiHint, Disabled: aiDisabled, Action: func() tea.Cmd {
			return push(summarize.New(deps.Generator, deps.History))
		}},
		{Label: "QUIZ ME", Hint: aiHint, Disabled: aiDisabled, Action: func() tea.Cmd {
			return push(quiz.New(deps.Generator, deps.History))
		}},
		{Label: "FLASHCARDS", Hint: aiHint, Disabled: aiDisabled, Action: func() tea.Cmd {
			return push(flashcards.New(deps.Generator, deps.History))
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return push(historyscreen.New(deps.History))
		}},
		{Label: "PROFILE", Action: func() tea.Cmd {
			return push(login.New(deps.Profile))
		}},
		{Label: "TOGGLE THEME", Action: h.toggleTheme},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) toggleTheme() tea.Cmd {
	if h.mode == theme.ModeDark {
		h.mode = theme.ModeLight
	} else {
		h.mode = theme.ModeDark
	}
	theme.SetMode(h.mode)
	if h.deps.Theme != nil {
		_ = h.deps.Theme.Save(context.Background(), h.mode)
	}
	return nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("StudyBuddy AI")
	subtitle := theme.Subtitle.Render("Your personal AI study companion")

	menuBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Render(h.menu.View())

	content := strings.Join([]string{title, subtitle, "", menuBox}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
