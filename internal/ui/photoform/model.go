package photoform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"artistdesk/internal/api"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
)

// SubmitMsg is dispatched when the form is submitted. EditID is zero
// for a create.
type SubmitMsg struct {
	EditID  int
	Payload api.PhotoPayload
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	url     string
	caption string
}

// Model is the gallery photo create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   int
	artistID int
	saveErr  error
	width    int
	height   int
}

// New creates a new photo form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for adding a photo to one artist.
func (m *Model) StartCreate(artistID int) tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.artistID = artistID
	m.saveErr = nil
	*m.fb = formBindings{}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing photo's fields.
func (m *Model) StartEdit(artistID int, p model.Photo) tea.Cmd {
	m.editMode = true
	m.editID = p.PhotoID
	m.artistID = artistID
	m.saveErr = nil
	m.fb.url = p.URL
	m.fb.caption = p.Caption
	m.form = m.buildForm()
	return m.form.Init()
}

// SaveFailed reopens the form with the entered values intact and the
// server's error shown inline.
func (m *Model) SaveFailed(err error) tea.Cmd {
	m.saveErr = err
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the photo form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the photo form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Photo"
	if m.editMode {
		titleText = "Edit Photo"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText)
	if m.saveErr != nil {
		content += "\n" + theme.ErrorStyle.Render("save failed: "+m.saveErr.Error())
	}
	content += "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Photo URL").
			Placeholder("https://...").
			Value(&m.fb.url).
			Validate(validateRequired("Photo URL")),
		huh.NewInput().
			Title("Caption").
			Placeholder("Optional caption").
			Value(&m.fb.caption),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	payload := api.PhotoPayload{
		ArtistID: m.artistID,
		URL:      strings.TrimSpace(m.fb.url),
		Caption:  strings.TrimSpace(m.fb.caption),
	}

	editID := 0
	if m.editMode {
		editID = m.editID
	}
	return func() tea.Msg { return SubmitMsg{EditID: editID, Payload: payload} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
