package activityform

import (
	"fmt"
	"strings"
	"time"

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
	Payload api.ActivityPayload
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	typeID      int
	date        string
	location    string
	description string
	externalURL string
}

// Model is the activity create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   int
	artistID int
	types    []model.ActivityType
	saveErr  error
	width    int
	height   int
}

// New creates a new activity form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetTypes sets the activity type options for the selector.
func (m *Model) SetTypes(types []model.ActivityType) {
	m.types = types
}

// StartCreate initializes the form for a new activity on one artist.
func (m *Model) StartCreate(artistID int) tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.artistID = artistID
	m.saveErr = nil
	*m.fb = formBindings{}
	if len(m.types) > 0 {
		m.fb.typeID = m.types[0].ActivityTypeID
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing activity's fields.
func (m *Model) StartEdit(a model.Activity) tea.Cmd {
	m.editMode = true
	m.editID = a.ID
	m.artistID = a.ArtistID
	m.saveErr = nil
	m.fb.title = a.Title
	m.fb.typeID = a.ActivityTypeID
	m.fb.date = a.Date
	m.fb.location = a.Location
	m.fb.description = a.Description
	m.fb.externalURL = a.ExternalURL
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

// Update handles messages for the activity form.
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

// View renders the activity form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Activity"
	if m.editMode {
		titleText = "Edit Activity"
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
			Title("Title").
			Placeholder("What happened?").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		m.typeField(),
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.date).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Location").
			Placeholder("Optional venue or city").
			Value(&m.fb.location),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewInput().
			Title("Link").
			Placeholder("https://... (optional)").
			Value(&m.fb.externalURL),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) typeField() huh.Field {
	opts := make([]huh.Option[int], len(m.types))
	for i, t := range m.types {
		opts[i] = huh.NewOption(t.Name, t.ActivityTypeID)
	}
	return huh.NewSelect[int]().
		Title("Type").
		Options(opts...).
		Value(&m.fb.typeID)
}

func (m Model) handleSubmit() tea.Cmd {
	payload := api.ActivityPayload{
		ArtistID:       m.artistID,
		ActivityTypeID: m.fb.typeID,
		Title:          strings.TrimSpace(m.fb.title),
		Date:           strings.TrimSpace(m.fb.date),
		Location:       strings.TrimSpace(m.fb.location),
		Description:    strings.TrimSpace(m.fb.description),
		ExternalURL:    strings.TrimSpace(m.fb.externalURL),
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

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
