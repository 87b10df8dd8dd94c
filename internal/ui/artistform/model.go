package artistform

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
	Payload api.ArtistPayload
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	stageName    string
	fullName     string
	bio          string
	imageURL     string
	country      string
	primaryGenre string
	websiteURL   string
	isActive     bool
}

// Model is the artist create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   int
	saveErr  error
	width    int
	height   int
}

// New creates a new artist form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{isActive: true},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for adding a new artist.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.saveErr = nil
	*m.fb = formBindings{isActive: true}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing artist's fields.
func (m *Model) StartEdit(a model.Artist) tea.Cmd {
	m.editMode = true
	m.editID = a.ID
	m.saveErr = nil
	m.fb.stageName = a.StageName
	m.fb.fullName = a.FullName
	m.fb.bio = a.Bio
	m.fb.imageURL = a.ProfileImageURL
	m.fb.country = a.Country
	m.fb.primaryGenre = a.PrimaryGenre
	m.fb.websiteURL = a.WebsiteURL
	m.fb.isActive = a.IsActive
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

// Update handles messages for the artist form.
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

// View renders the artist form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Artist"
	if m.editMode {
		titleText = "Edit Artist"
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
			Title("Stage Name").
			Placeholder("How the artist is billed").
			Value(&m.fb.stageName).
			Validate(validateRequired("Stage name")),
		huh.NewInput().
			Title("Full Name").
			Placeholder("Optional legal name").
			Value(&m.fb.fullName),
		huh.NewText().
			Title("Bio").
			Placeholder("Optional biography...").
			Value(&m.fb.bio),
		huh.NewInput().
			Title("Primary Genre").
			Value(&m.fb.primaryGenre),
		huh.NewInput().
			Title("Country").
			Value(&m.fb.country),
		huh.NewInput().
			Title("Website").
			Placeholder("https://...").
			Value(&m.fb.websiteURL),
		huh.NewInput().
			Title("Profile Image URL").
			Placeholder("https://...").
			Value(&m.fb.imageURL),
		huh.NewConfirm().
			Title("Active").
			Value(&m.fb.isActive),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	active := m.fb.isActive
	payload := api.ArtistPayload{
		StageName:       strings.TrimSpace(m.fb.stageName),
		FullName:        strings.TrimSpace(m.fb.fullName),
		Bio:             strings.TrimSpace(m.fb.bio),
		ProfileImageURL: strings.TrimSpace(m.fb.imageURL),
		Country:         strings.TrimSpace(m.fb.country),
		PrimaryGenre:    strings.TrimSpace(m.fb.primaryGenre),
		WebsiteURL:      strings.TrimSpace(m.fb.websiteURL),
		IsActive:        &active,
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
