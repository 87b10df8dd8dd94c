package links

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"artistdesk/internal/keys"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
	"artistdesk/internal/view"
)

// AddLinkMsg asks the app to open the social link form in create mode.
type AddLinkMsg struct{}

// EditLinkMsg asks the app to open the social link form for one link.
type EditLinkMsg struct {
	Link model.SocialLink
}

// DeleteLinkMsg asks the app to delete a link after confirmation.
type DeleteLinkMsg struct {
	SourceID int
}

// Model is the social links tab.
type Model struct {
	keys   *keys.KeyMap
	links  []model.SocialLink
	cursor int

	confirmingDelete bool
	deleteTarget     model.SocialLink

	width  int
	height int
}

// New creates the social links view.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetLinks replaces the shown links. The server orders them primary
// first, so no client-side sort is needed.
func (m *Model) SetLinks(links []model.SocialLink) {
	m.links = links
	m.cursor = 0
}

// Update handles messages for the links view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmingDelete {
		return m.handleConfirmKeys(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.links)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddLinkMsg{} }

	case key.Matches(keyMsg, m.keys.Edit):
		if l, ok := m.selected(); ok {
			return m, func() tea.Msg { return EditLinkMsg{Link: l} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if l, ok := m.selected(); ok {
			m.confirmingDelete = true
			m.deleteTarget = l
		}
	}

	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteTarget.ArtistSourceID
		m.confirmingDelete = false
		m.deleteTarget = model.SocialLink{}
		return m, func() tea.Msg { return DeleteLinkMsg{SourceID: id} }
	case "n", "N", "esc":
		m.confirmingDelete = false
		m.deleteTarget = model.SocialLink{}
	}
	return m, nil
}

func (m Model) selected() (model.SocialLink, bool) {
	if m.cursor < 0 || m.cursor >= len(m.links) {
		return model.SocialLink{}, false
	}
	return m.links[m.cursor], true
}

// View renders the social links list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.HeaderStyle.Render("Social Links"))
	b.WriteString("\n\n")

	if m.confirmingDelete {
		prompt := fmt.Sprintf("Remove %q? (y/n)", m.deleteTarget.Label())
		b.WriteString(theme.ErrorStyle.Render(prompt))
		b.WriteString("\n\n")
	}

	if len(m.links) == 0 {
		b.WriteString(theme.HelpStyle.Render("No links yet. Press a to add one."))
		return b.String()
	}

	for i, l := range m.links {
		b.WriteString(m.renderRow(l, i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderRow(l model.SocialLink, selected bool) string {
	badge := theme.PlatformStyle(l.SourceCode).Render(theme.PlatformGlyph(l.SourceCode))

	primary := ""
	if l.IsPrimary {
		primary = theme.TrendStyle(1).Render(" ★")
	}

	added := ""
	if l.DateAdded != "" {
		added = theme.HelpStyle.Render("  added " + view.NiceDate(l.DateAdded))
	}

	subtitle := l.Subtitle()
	if l.Handle == "" {
		if h := view.HandleFromURL(l.URL); h != "" {
			subtitle = h
		}
	}

	line := fmt.Sprintf(
		"%s %s%s  %s%s",
		badge, l.Label(), primary, theme.HelpStyle.Render(subtitle), added,
	)

	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
