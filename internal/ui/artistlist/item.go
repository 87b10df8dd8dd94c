package artistlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"artistdesk/internal/model"
	"artistdesk/internal/theme"
)

// ArtistItem wraps a model.Artist so it can be used in a bubbles/list.
type ArtistItem struct {
	Artist model.Artist
}

// FilterValue returns the string used for fuzzy filtering.
func (i ArtistItem) FilterValue() string { return i.Artist.DisplayName() }

// Title returns the artist's display name for the list.
func (i ArtistItem) Title() string { return i.Artist.DisplayName() }

// Description returns a short summary line for the list.
func (i ArtistItem) Description() string {
	parts := []string{}
	if i.Artist.PrimaryGenre != "" {
		parts = append(parts, i.Artist.PrimaryGenre)
	}
	if i.Artist.Country != "" {
		parts = append(parts, i.Artist.Country)
	}
	return strings.Join(parts, " | ")
}

// ItemDelegate implements list.ItemDelegate for rendering artist rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single artist line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ai, ok := item.(ArtistItem)
	if !ok {
		return
	}

	a := ai.Artist
	isSelected := index == m.Index()

	genre := ""
	if a.PrimaryGenre != "" {
		genre = theme.HelpStyle.Render("  " + a.PrimaryGenre)
	}
	country := ""
	if a.Country != "" {
		country = theme.HelpStyle.Render("  " + a.Country)
	}

	// The roster endpoint returns active artists only and omits the
	// isActive flag, so every row gets the active marker.
	line := fmt.Sprintf("● %s%s%s", a.DisplayName(), genre, country)

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
