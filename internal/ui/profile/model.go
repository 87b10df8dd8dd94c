package profile

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

// EditProfileMsg asks the app to open the artist form for the shown
// artist.
type EditProfileMsg struct {
	Artist model.Artist
}

// AddPhotoMsg asks the app to open the photo form in create mode.
type AddPhotoMsg struct{}

// EditPhotoMsg asks the app to open the photo form for one photo.
type EditPhotoMsg struct {
	Photo model.Photo
}

// DeletePhotoMsg asks the app to delete a photo after confirmation.
type DeletePhotoMsg struct {
	PhotoID int
}

// photoPageSize is how many gallery rows fit on one page.
const photoPageSize = 6

// Model is the artist profile tab: bio, profile fields, and the photo
// gallery.
type Model struct {
	keys   *keys.KeyMap
	artist model.Artist
	photos []model.Photo

	page   int
	cursor int

	confirmingDelete bool
	deleteTarget     model.Photo

	width  int
	height int
}

// New creates the profile view.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   k,
		page:   1,
		width:  width,
		height: height,
	}
}

// SetData replaces the shown artist and gallery. The gallery page
// resets so a new photo is always visible.
func (m *Model) SetData(artist model.Artist, photos []model.Photo) {
	m.artist = artist
	m.photos = photos
	m.page = 1
	m.cursor = 0
}

func (m Model) currentPage() view.Page[model.Photo] {
	return view.Paginate(m.photos, photoPageSize, m.page)
}

// Update handles messages for the profile view.
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

	case key.Matches(keyMsg, m.keys.Edit):
		return m, func() tea.Msg { return EditProfileMsg{Artist: m.artist} }

	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddPhotoMsg{} }

	case keyMsg.String() == "p":
		if photo, ok := m.selectedPhoto(); ok {
			return m, func() tea.Msg { return EditPhotoMsg{Photo: photo} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if photo, ok := m.selectedPhoto(); ok {
			m.confirmingDelete = true
			m.deleteTarget = photo
		}
	}

	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteTarget.PhotoID
		m.confirmingDelete = false
		m.deleteTarget = model.Photo{}
		return m, func() tea.Msg { return DeletePhotoMsg{PhotoID: id} }
	case "n", "N", "esc":
		m.confirmingDelete = false
		m.deleteTarget = model.Photo{}
	}
	return m, nil
}

func (m Model) selectedPhoto() (model.Photo, bool) {
	page := m.currentPage()
	if m.cursor < 0 || m.cursor >= len(page.Items) {
		return model.Photo{}, false
	}
	return page.Items[m.cursor], true
}

// View renders the profile tab.
func (m Model) View() string {
	var b strings.Builder

	name := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).
		Render(m.artist.DisplayName())
	b.WriteString(name)
	if m.artist.FullName != "" && m.artist.FullName != m.artist.StageName {
		b.WriteString(theme.HelpStyle.Render("  (" + m.artist.FullName + ")"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderField("Genre", m.artist.PrimaryGenre))
	b.WriteString(m.renderField("Country", m.artist.Country))
	b.WriteString(m.renderField("Website", m.artist.WebsiteURL))

	if m.artist.Bio != "" {
		b.WriteString("\n")
		bio := lipgloss.NewStyle().Width(m.contentWidth()).Render(m.artist.Bio)
		b.WriteString(bio)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderGallery())

	return theme.DetailPanelStyle.Width(m.contentWidth()).Render(b.String())
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return theme.HelpStyle.Render(label+": ") + value + "\n"
}

func (m Model) renderGallery() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Photos"))
	b.WriteString("\n")

	if m.confirmingDelete {
		b.WriteString(theme.ErrorStyle.Render("Delete this photo? (y/n)"))
		b.WriteString("\n")
	}

	page := m.currentPage()
	if len(page.Items) == 0 {
		b.WriteString(theme.HelpStyle.Render("No photos. Press a to add one."))
		return b.String()
	}

	for i, photo := range page.Items {
		caption := photo.Caption
		if caption == "" {
			caption = "(no caption)"
		}
		line := fmt.Sprintf("%s  %s", caption, theme.HelpStyle.Render(photo.URL))

		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(
		view.PageStatus(page.Current, page.TotalPages, page.TotalItems),
	))
	return b.String()
}

func (m Model) contentWidth() int {
	w := m.width - 6
	if w < 30 {
		w = 30
	}
	return w
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
