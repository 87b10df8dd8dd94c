package artistlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artistdesk/internal/keys"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
)

// SelectedArtistMsg is sent when the user picks an artist to open.
type SelectedArtistMsg struct {
	ArtistID int
}

// Model is the landing roster view.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	artists     []model.Artist
	query       string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new artist roster model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Artists"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search artists..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetArtists replaces the roster and re-applies the active search query.
func (m *Model) SetArtists(artists []model.Artist) tea.Cmd {
	m.artists = artists
	return m.applyFilter()
}

// SelectedArtist returns the artist under the cursor.
func (m Model) SelectedArtist() (model.Artist, bool) {
	item, ok := m.list.SelectedItem().(ArtistItem)
	if !ok {
		return model.Artist{}, false
	}
	return item.Artist, true
}

// Update handles messages for the roster view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(keyMsg)
		}
		return m.handleNormalKeys(keyMsg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = m.searchInput.Value()
		return m, m.applyFilter()

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query = ""
		return m, m.applyFilter()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(ArtistItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedArtistMsg{ArtistID: item.Artist.ID}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applyFilter rebuilds the visible items from the roster and the query.
func (m *Model) applyFilter() tea.Cmd {
	q := strings.ToLower(strings.TrimSpace(m.query))

	var items []list.Item
	for _, a := range m.artists {
		if q != "" && !matches(a, q) {
			continue
		}
		items = append(items, ArtistItem{Artist: a})
	}
	return m.list.SetItems(items)
}

func matches(a model.Artist, q string) bool {
	return strings.Contains(strings.ToLower(a.DisplayName()), q) ||
		strings.Contains(strings.ToLower(a.PrimaryGenre), q) ||
		strings.Contains(strings.ToLower(a.Country), q)
}

// View renders the roster, with the search input on top while active.
func (m Model) View() string {
	if m.searchMode {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.searchInput.View(),
			m.list.View(),
		)
	}
	return m.list.View()
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
