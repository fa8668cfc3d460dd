package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hatchery/internal/egg"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Egg tier colors, matching the in-game egg shells.
var (
	TierCommon = lipgloss.Color("#E2E8F0") // Off White
	TierGreat  = lipgloss.Color("#3B82F6") // Blue
	TierUltra  = lipgloss.Color("#EAB308") // Gold
	TierMaster = lipgloss.Color("#EC4899") // Pink
	Manaphy    = lipgloss.Color("#06B6D4") // Cyan
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(10)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Card frames a block of output.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// TierStyle returns the text style for an egg. Manaphy eggs get their own
// color; tiers above Master reuse the Master color.
func TierStyle(e egg.Egg) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	if e.IsRareException() {
		return base.Foreground(Manaphy)
	}
	switch e.Tier {
	case egg.TierCommon:
		return base.Foreground(TierCommon)
	case egg.TierGreat:
		return base.Foreground(TierGreat)
	case egg.TierUltra:
		return base.Foreground(TierUltra)
	default:
		return base.Foreground(TierMaster)
	}
}
