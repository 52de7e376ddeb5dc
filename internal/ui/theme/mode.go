package theme

import (
	"context"
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/store"
)

// Mode selects between the dark and light palettes.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// SetMode swaps the active palette and rebuilds the styles.
// Call before the TUI starts rendering; the palette is global.
func SetMode(m Mode) {
	if m == ModeLight {
		Primary = lipgloss.Color("#2563EB")
		Secondary = lipgloss.Color("#0891B2")
		Accent = lipgloss.Color("#059669")
		Success = lipgloss.Color("#16A34A")
		Error = lipgloss.Color("#E11D48")
		Text = lipgloss.Color("#0F172A")
		TextDim = lipgloss.Color("#64748B")
		BgDark = lipgloss.Color("#F8FAFC")
		BgCard = lipgloss.Color("#E2E8F0")
		Border = lipgloss.Color("#CBD5E1")
	} else {
		Primary = lipgloss.Color("#60A5FA")
		Secondary = lipgloss.Color("#22D3EE")
		Accent = lipgloss.Color("#34D399")
		Success = lipgloss.Color("#22C55E")
		Error = lipgloss.Color("#F43F5E")
		Text = lipgloss.Color("#F8FAFC")
		TextDim = lipgloss.Color("#94A3B8")
		BgDark = lipgloss.Color("#0F172A")
		BgCard = lipgloss.Color("#1E293B")
		Border = lipgloss.Color("#334155")
	}
	applyPalette()
}

// Service persists the theme preference.
type Service struct {
	kv store.KV
}

// NewService creates a theme service over the given KV.
func NewService(kv store.KV) *Service {
	return &Service{kv: kv}
}

// Load returns the stored preference. Anything but "light" reads as
// dark, which is also the default for a fresh install.
func (s *Service) Load(ctx context.Context) (Mode, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyTheme)
	if err != nil {
		return ModeDark, fmt.Errorf("load theme: %w", err)
	}
	if !ok || raw != string(ModeLight) {
		return ModeDark, nil
	}
	return ModeLight, nil
}

// Save stores the preference.
func (s *Service) Save(ctx context.Context, m Mode) error {
	if err := s.kv.Set(ctx, store.KeyTheme, string(m)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
