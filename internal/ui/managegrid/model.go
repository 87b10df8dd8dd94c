package managegrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artistdesk/internal/keys"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
	"artistdesk/internal/view"
)

// AddArtistMsg asks the app to open the artist form in create mode.
type AddArtistMsg struct{}

// EditArtistMsg asks the app to open the artist form for one artist.
type EditArtistMsg struct {
	Artist model.Artist
}

// DeleteArtistMsg asks the app to delete an artist after confirmation.
type DeleteArtistMsg struct {
	ArtistID int
}

// CloseMsg returns to the roster view.
type CloseMsg struct{}

// Model is the artist management table: every artist, active or not,
// with add, edit, and delete actions.
type Model struct {
	keys     *keys.KeyMap
	artists  []model.Artist
	page     int
	pageSize int
	cursor   int

	confirmingDelete bool
	deleteTarget     model.Artist

	width  int
	height int
}

// New creates the management view.
func New(k *keys.KeyMap, pageSize, width, height int) Model {
	if pageSize < 1 {
		pageSize = 10
	}
	return Model{
		keys:     k,
		page:     1,
		pageSize: pageSize,
		width:    width,
		height:   height,
	}
}

// SetArtists replaces the table contents. The page resets to the first
// page so a fresh mutation is always visible.
func (m *Model) SetArtists(artists []model.Artist) {
	m.artists = artists
	m.page = 1
	m.cursor = 0
}

func (m Model) currentPage() view.Page[model.Artist] {
	return view.Paginate(m.artists, m.pageSize, m.page)
}

// Update handles messages for the management view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmingDelete {
		return m.handleConfirmKeys(keyMsg)
	}

	page := m.currentPage()

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(page.Items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.NextPage):
		if page.HasNext() {
			m.page++
			m.cursor = 0
		}

	case key.Matches(keyMsg, m.keys.PrevPage):
		if page.HasPrev() {
			m.page--
			m.cursor = 0
		}

	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddArtistMsg{} }

	case key.Matches(keyMsg, m.keys.Edit):
		if a, ok := m.selected(); ok {
			return m, func() tea.Msg { return EditArtistMsg{Artist: a} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if a, ok := m.selected(); ok {
			m.confirmingDelete = true
			m.deleteTarget = a
		}

	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }
	}

	return m, nil
}

// handleConfirmKeys processes the delete confirmation prompt.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteTarget.ID
		m.confirmingDelete = false
		m.deleteTarget = model.Artist{}
		return m, func() tea.Msg { return DeleteArtistMsg{ArtistID: id} }
	case "n", "N", "esc":
		m.confirmingDelete = false
		m.deleteTarget = model.Artist{}
	}
	return m, nil
}

func (m Model) selected() (model.Artist, bool) {
	page := m.currentPage()
	if m.cursor < 0 || m.cursor >= len(page.Items) {
		return model.Artist{}, false
	}
	return page.Items[m.cursor], true
}

// View renders the management table.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.HeaderStyle.Render("Manage Artists"))
	b.WriteString("\n\n")

	if m.confirmingDelete {
		prompt := fmt.Sprintf(
			"Delete %q and all of its activities, metrics, and links? (y/n)",
			m.deleteTarget.DisplayName(),
		)
		b.WriteString(theme.ErrorStyle.Render(prompt))
		b.WriteString("\n\n")
	}

	page := m.currentPage()
	if len(page.Items) == 0 {
		b.WriteString(theme.HelpStyle.Render("No artists yet. Press a to add one."))
		return b.String()
	}

	for i, a := range page.Items {
		status := "active"
		if !a.IsActive {
			status = "inactive"
		}

		line := fmt.Sprintf(
			"%-24s %-16s %-12s %-8s %d links",
			truncate(a.DisplayName(), 24),
			truncate(a.PrimaryGenre, 16),
			truncate(a.Country, 12),
			status,
			a.SourcesCount,
		)

		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(
		view.PageStatus(page.Current, page.TotalPages, page.TotalItems),
	))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
