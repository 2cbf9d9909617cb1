package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor switches every style to plain text, e.g. when stdout is piped.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// TileStatusStyle colors a tile status by how far along the workflow it is.
func TileStatusStyle(s domain.TileStatus) lipgloss.Style {
	switch s {
	case domain.TileDone:
		return StyleDim
	case domain.TileOnHold, domain.TileNeedsRework:
		return StyleRed
	case domain.TileAwaitingApproval:
		return StyleYellow
	case domain.TileCutting, domain.TileCut, domain.TileReadyForAssembly:
		return StylePurple
	case domain.TileDesign, domain.TileDesignInProgress, domain.TileApproved:
		return StyleBlue
	default:
		return StyleFg
	}
}

// TileStatusPill renders a tile status as a colored indicator.
func TileStatusPill(s domain.TileStatus) string {
	mark := "●"
	switch s {
	case domain.TileDone:
		mark = "✔"
	case domain.TileOnHold:
		mark = "○"
	}
	return TileStatusStyle(s).Render(mark + " " + string(s))
}

// ProjectStatusPill renders a project status as a colored indicator.
func ProjectStatusPill(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectInProgress:
		return StyleGreen.Render("● " + string(s))
	case domain.ProjectNew:
		return StyleBlue.Render("● " + string(s))
	case domain.ProjectOnHold:
		return StyleYellow.Render("○ " + string(s))
	case domain.ProjectDone:
		return StyleDim.Render("✔ " + string(s))
	case domain.ProjectCancelled:
		return StyleDim.Render("✖ " + string(s))
	default:
		return StyleDim.Render(string(s))
	}
}

// PriorityBadge colors a tile priority; unset priorities render as "--".
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render(string(p))
	case domain.PriorityMedium:
		return StyleYellow.Render(string(p))
	case domain.PriorityLow:
		return StyleGreen.Render(string(p))
	default:
		return Dim("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
