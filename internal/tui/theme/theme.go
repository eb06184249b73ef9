package theme

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Macchiato.
var (
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Overlay0 = lipgloss.Color("#6e738d")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")
	Lavender = lipgloss.Color("#b7bdf8")
	Sapphire = lipgloss.Color("#7dc4e4")
	Peach    = lipgloss.Color("#f5a97f")
	Flamingo = lipgloss.Color("#f0c6c6")
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
)

type Theme struct {
	HeaderTitle  lipgloss.Style
	HeaderSub    lipgloss.Style
	Bar          lipgloss.Style
	Border       lipgloss.Style
	ListTitle    lipgloss.Style
	PreviewTitle lipgloss.Style
	QueryBadge   lipgloss.Style
	Row          lipgloss.Style
	ActiveRow    lipgloss.Style
	Placeholder  lipgloss.Style
	Name         lipgloss.Style
	Description  lipgloss.Style
	Fallback     lipgloss.Style
	PopupBorder  lipgloss.Style
	PopupTitle   lipgloss.Style
	PopupText    lipgloss.Style
	StatusOK     lipgloss.Style
	StatusWarn   lipgloss.Style
}

func Default() Theme {
	return Theme{
		HeaderTitle:  lipgloss.NewStyle().Bold(true).Foreground(Flamingo).Background(Mantle),
		HeaderSub:    lipgloss.NewStyle().Foreground(Subtext0).Background(Mantle),
		Bar:          lipgloss.NewStyle().Background(Mantle),
		Border:       lipgloss.NewStyle().Foreground(Surface1),
		ListTitle:    lipgloss.NewStyle().Bold(true).Foreground(Lavender),
		PreviewTitle: lipgloss.NewStyle().Bold(true).Foreground(Sapphire),
		QueryBadge:   lipgloss.NewStyle().Foreground(Peach).Background(Surface0),
		Row:          lipgloss.NewStyle().Foreground(Text),
		ActiveRow:    lipgloss.NewStyle().Bold(true).Foreground(Flamingo).Background(Surface0),
		Placeholder:  lipgloss.NewStyle().Foreground(Overlay0),
		Name:         lipgloss.NewStyle().Bold(true).Foreground(Text),
		Description:  lipgloss.NewStyle().Foreground(Subtext0),
		Fallback:     lipgloss.NewStyle().Foreground(Overlay0),
		PopupBorder:  lipgloss.NewStyle().Foreground(Peach).Background(Surface0),
		PopupTitle:   lipgloss.NewStyle().Bold(true).Foreground(Peach).Background(Surface0),
		PopupText:    lipgloss.NewStyle().Foreground(Text).Background(Surface0),
		StatusOK:     lipgloss.NewStyle().Foreground(Sapphire).Background(Mantle),
		StatusWarn:   lipgloss.NewStyle().Foreground(Red).Background(Mantle),
	}
}

// HelpStyles renders key hints as mauve chips followed by muted descriptions.
func (t Theme) HelpStyles() help.Styles {
	styles := help.New().Styles
	styles.ShortKey = lipgloss.NewStyle().Foreground(Mauve).Background(Surface0)
	styles.ShortDesc = lipgloss.NewStyle().Foreground(Subtext0).Background(Mantle)
	styles.ShortSeparator = lipgloss.NewStyle().Background(Mantle)
	return styles
}

func (t Theme) RenderRow(active bool, line string) string {
	if active {
		return t.ActiveRow.Render(line)
	}
	return t.Row.Render(line)
}
