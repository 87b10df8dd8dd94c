package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CardStyle wraps a summary stat card.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ErrorStyle renders inline failure notices.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// PlatformStyle returns a color-coded style for the given platform code
// (instagram, facebook, spotify, ...).
func PlatformStyle(code string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch code {
	case "instagram":
		return base.Foreground(ColorMagenta)
	case "facebook":
		return base.Foreground(ColorBlue)
	case "youtube":
		return base.Foreground(ColorRed)
	case "spotify":
		return base.Foreground(ColorGreen)
	case "tiktok":
		return base.Foreground(ColorWhite)
	case "twitter", "x":
		return base.Foreground(ColorBlue)
	case "soundcloud":
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}

// PlatformGlyph returns a short marker for the given platform code, used
// where an icon font is unavailable.
func PlatformGlyph(code string) string {
	switch code {
	case "instagram":
		return "IG"
	case "facebook":
		return "FB"
	case "youtube":
		return "YT"
	case "spotify":
		return "SP"
	case "tiktok":
		return "TT"
	case "twitter", "x":
		return "X"
	case "soundcloud":
		return "SC"
	default:
		return "--"
	}
}

// ActivityStyle returns a color-coded style for the given activity icon
// name from the reference data.
func ActivityStyle(icon string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch icon {
	case "music", "album", "release":
		return base.Foreground(ColorMagenta)
	case "microphone", "concert", "tour":
		return base.Foreground(ColorOrange)
	case "award", "trophy":
		return base.Foreground(ColorYellow)
	case "news", "press", "interview":
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// TrendStyle colors a metric delta: growth green, decline red.
func TrendStyle(delta float64) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch {
	case delta > 0:
		return base.Foreground(ColorGreen)
	case delta < 0:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}
