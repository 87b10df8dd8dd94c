package metricform

import (
	"fmt"
	"strconv"
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
	Payload api.MetricPayload
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	metricTypeID int
	platformID   int
	date         string
	value        string
}

// Model is the metric observation create/edit form.
type Model struct {
	form      *huh.Form
	fb        *formBindings
	editMode  bool
	editID    int
	artistID  int
	types     []model.MetricType
	platforms []model.Platform
	saveErr   error
	width     int
	height    int
}

// New creates a new metric form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetReference sets the metric type and platform options.
func (m *Model) SetReference(types []model.MetricType, platforms []model.Platform) {
	m.types = types
	m.platforms = platforms
}

// StartCreate initializes the form for a new observation, defaulting
// the date to today.
func (m *Model) StartCreate(artistID int) tea.Cmd {
	m.editMode = false
	m.editID = 0
	m.artistID = artistID
	m.saveErr = nil
	*m.fb = formBindings{
		metricTypeID: model.MetricTypeFollowers,
		date:         time.Now().Format("2006-01-02"),
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing observation's fields.
// Observation rows carry no artist id, so the caller supplies it.
func (m *Model) StartEdit(artistID int, r model.MetricRow) tea.Cmd {
	m.editMode = true
	m.editID = r.ArtistMetricID
	m.artistID = artistID
	m.saveErr = nil
	m.fb.metricTypeID = r.MetricTypeID
	m.fb.platformID = r.Platform()
	m.fb.date = r.MetricDate
	m.fb.value = strconv.FormatFloat(r.Amount(), 'f', -1, 64)
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

// Update handles messages for the metric form.
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

// View renders the metric form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Observation"
	if m.editMode {
		titleText = "Edit Observation"
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
	typeOpts := make([]huh.Option[int], len(m.types))
	for i, t := range m.types {
		typeOpts[i] = huh.NewOption(t.Name, t.MetricTypeID)
	}

	platformOpts := []huh.Option[int]{
		huh.NewOption("None", 0),
	}
	for _, p := range m.platforms {
		platformOpts = append(platformOpts, huh.NewOption(p.Name, p.PlatformID))
	}

	fields := []huh.Field{
		huh.NewSelect[int]().
			Title("Metric").
			Options(typeOpts...).
			Value(&m.fb.metricTypeID),
		huh.NewSelect[int]().
			Title("Platform").
			Options(platformOpts...).
			Value(&m.fb.platformID),
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Value(&m.fb.date).
			Validate(validateDate),
		huh.NewInput().
			Title("Value").
			Placeholder("e.g. 12500").
			Value(&m.fb.value).
			Validate(validateNumber),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	value, _ := strconv.ParseFloat(strings.TrimSpace(m.fb.value), 64)

	payload := api.MetricPayload{
		ArtistID:     m.artistID,
		MetricTypeID: m.fb.metricTypeID,
		MetricDate:   strings.TrimSpace(m.fb.date),
		Value:        &value,
	}
	if m.fb.platformID != 0 {
		p := m.fb.platformID
		payload.PlatformID = &p
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

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("Date is required")
	}
	_, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("Value is required")
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("Value must be a number")
	}
	return nil
}
