package linkform

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
	Payload api.SourcePayload
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	sourceTypeID int
	url          string
	handle       string
	displayName  string
	isPrimary    bool
}

// Model is the social link create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   int
	artistID int
	types    []model.SourceType
	saveErr  error
	width    int
	height   int
}

// New creates a new social link form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetTypes sets the platform options for the selector.
func (m *Model) SetTypes(types []model.SourceType) {
	m.types = types
}

// StartCreate initializes the form for a new link on one artist.
func (m *Model) StartCreate(artistID int) tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.artistID = artistID
	m.saveErr = nil
	*m.fb = formBindings{}
	if len(m.types) > 0 {
		m.fb.sourceTypeID = m.types[0].SourceTypeID
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing link's fields.
func (m *Model) StartEdit(l model.SocialLink) tea.Cmd {
	m.editMode = true
	m.editID = l.ArtistSourceID
	m.artistID = l.ArtistID
	m.saveErr = nil
	m.fb.sourceTypeID = l.SourceTypeID
	m.fb.url = l.URL
	m.fb.handle = l.Handle
	m.fb.displayName = l.DisplayName
	m.fb.isPrimary = l.IsPrimary
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

// Update handles messages for the link form.
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

// View renders the link form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Social Link"
	if m.editMode {
		titleText = "Edit Social Link"
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
	opts := make([]huh.Option[int], len(m.types))
	for i, t := range m.types {
		opts[i] = huh.NewOption(t.Name, t.SourceTypeID)
	}

	fields := []huh.Field{
		huh.NewSelect[int]().
			Title("Platform").
			Options(opts...).
			Value(&m.fb.sourceTypeID),
		huh.NewInput().
			Title("URL").
			Placeholder("https://...").
			Value(&m.fb.url).
			Validate(validateRequired("URL")),
		huh.NewInput().
			Title("Handle").
			Placeholder("@name (optional)").
			Value(&m.fb.handle),
		huh.NewInput().
			Title("Display Name").
			Placeholder("Optional label").
			Value(&m.fb.displayName),
		huh.NewConfirm().
			Title("Primary").
			Value(&m.fb.isPrimary),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	payload := api.SourcePayload{
		ArtistID:     m.artistID,
		SourceTypeID: m.fb.sourceTypeID,
		URL:          strings.TrimSpace(m.fb.url),
		Handle:       strings.TrimSpace(m.fb.handle),
		DisplayName:  strings.TrimSpace(m.fb.displayName),
		IsPrimary:    m.fb.isPrimary,
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
