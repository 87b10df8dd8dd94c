package settings

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"artistdesk/internal/api"
	"artistdesk/internal/credential"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
)

// Mode represents the current state of the settings view.
type Mode int

const (
	ModeForm    Mode = iota // Editing the settings form
	ModeTesting             // Probing the portal with the new settings
	ModeResult              // Showing the probe outcome
)

// DoneMsg signals the settings view should close.
type DoneMsg struct{}

// SavedMsg signals the configuration was written to disk. Connection
// settings take effect on the next start.
type SavedMsg struct {
	Config *model.AppConfig
}

// testResultMsg carries the outcome of the connection probe.
type testResultMsg struct {
	count int
	err   error
}

// formBindings holds the form's field values on the heap so the
// pointers huh binds to survive model copies.
type formBindings struct {
	baseURL       string
	timeoutSec    string
	pageSize      string
	refreshSec    string
	token         string
	cacheDisabled bool
}

// Model is the settings view: a form over the app configuration with a
// connection test before saving.
type Model struct {
	mode       Mode
	configPath string
	cfg        *model.AppConfig

	form     *huh.Form
	bindings *formBindings

	spinner    spinner.Model
	testCount  int
	testErr    error
	pendingCfg *model.AppConfig

	width, height int
}

// New creates the settings view for the given loaded configuration.
func New(configPath string, cfg *model.AppConfig, width, height int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		mode:       ModeForm,
		configPath: configPath,
		cfg:        cfg,
		spinner:    sp,
		width:      width,
		height:     height,
	}
}

// Start rebuilds the form from the current configuration.
func (m *Model) Start() tea.Cmd {
	m.mode = ModeForm
	m.bindings = &formBindings{
		baseURL:       m.cfg.Portal.BaseURL,
		timeoutSec:    strconv.Itoa(m.cfg.Portal.TimeoutSec),
		pageSize:      strconv.Itoa(m.cfg.Display.PageSize),
		refreshSec:    strconv.Itoa(m.cfg.Display.RefreshIntervalSec),
		cacheDisabled: m.cfg.Cache.Disabled,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	b := m.bindings
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Portal URL").
				Placeholder("http://localhost:5000").
				Value(&b.baseURL).
				Validate(validateURL),
			huh.NewInput().
				Title("Request timeout (seconds)").
				Value(&b.timeoutSec).
				Validate(validatePositiveInt("Timeout")),
			huh.NewInput().
				Title("Rows per page").
				Value(&b.pageSize).
				Validate(validatePositiveInt("Page size")),
			huh.NewInput().
				Title("Refresh interval (seconds, 0 disables)").
				Value(&b.refreshSec).
				Validate(validateNonNegativeInt("Refresh interval")),
			huh.NewInput().
				Title("API token").
				Description("Leave blank to keep the stored token").
				EchoMode(huh.EchoModePassword).
				Value(&b.token),
			huh.NewConfirm().
				Title("Disable snapshot cache").
				Affirmative("Yes").
				Negative("No").
				Value(&b.cacheDisabled),
		),
	).WithWidth(m.formWidth())
}

// Update handles messages for the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.mode == ModeTesting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case testResultMsg:
		m.testCount = msg.count
		m.testErr = msg.err
		m.mode = ModeResult
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeResult {
			return m.handleResultKeys(msg)
		}
		if m.mode == ModeTesting {
			if msg.String() == "esc" {
				m.mode = ModeForm
				return m, m.Start()
			}
			return m, nil
		}
	}

	if m.mode != ModeForm || m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.startTest()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return DoneMsg{} }
	}

	return m, cmd
}

// startTest probes the portal with the entered settings, then saves on
// success.
func (m Model) startTest() (Model, tea.Cmd) {
	cfg := m.collect()
	m.pendingCfg = cfg
	m.mode = ModeTesting
	return m, tea.Batch(m.spinner.Tick, m.testAndSave(cfg, m.bindings.token))
}

// collect builds the new configuration from the form values. The
// validators already guaranteed parseable numbers.
func (m Model) collect() *model.AppConfig {
	b := m.bindings
	cfg := *m.cfg
	cfg.Portal.BaseURL = strings.TrimRight(strings.TrimSpace(b.baseURL), "/")
	cfg.Portal.TimeoutSec, _ = strconv.Atoi(strings.TrimSpace(b.timeoutSec))
	cfg.Display.PageSize, _ = strconv.Atoi(strings.TrimSpace(b.pageSize))
	cfg.Display.RefreshIntervalSec, _ = strconv.Atoi(strings.TrimSpace(b.refreshSec))
	cfg.Cache.Disabled = b.cacheDisabled
	return &cfg
}

func (m Model) testAndSave(cfg *model.AppConfig, token string) tea.Cmd {
	configPath := m.configPath
	return func() tea.Msg {
		token = strings.TrimSpace(token)
		if token == "" {
			// Keep using the stored token for the probe.
			stored, err := credential.Get(credential.TokenKey)
			if err == nil {
				token = stored
			}
		}

		client := api.NewClient(
			cfg.Portal.BaseURL,
			token,
			time.Duration(cfg.Portal.TimeoutSec)*time.Second,
			zap.NewNop(),
		)

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Portal.TimeoutSec)*time.Second)
		defer cancel()

		artists, err := client.AllArtists(ctx)
		if err != nil {
			return testResultMsg{err: err}
		}

		if strings.TrimSpace(m.bindings.token) != "" {
			if err := credential.Set(credential.TokenKey, token); err != nil {
				return testResultMsg{err: fmt.Errorf("storing token: %w", err)}
			}
		}
		if err := model.SaveConfig(configPath, cfg); err != nil {
			return testResultMsg{err: fmt.Errorf("connection OK but save failed: %w", err)}
		}

		return testResultMsg{count: len(artists)}
	}
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		if m.testErr == nil && m.pendingCfg != nil {
			saved := m.pendingCfg
			*m.cfg = *saved
			return m, tea.Batch(
				func() tea.Msg { return SavedMsg{Config: saved} },
				func() tea.Msg { return DoneMsg{} },
			)
		}
		return m, m.Start()
	case "r":
		if m.testErr != nil && m.pendingCfg != nil {
			m.mode = ModeTesting
			return m, tea.Batch(m.spinner.Tick, m.testAndSave(m.pendingCfg, m.bindings.token))
		}
	}
	return m, nil
}

// View renders the settings view for the current mode.
func (m Model) View() string {
	frame := lipgloss.NewStyle().Padding(1, 2)

	switch m.mode {
	case ModeTesting:
		return frame.Render(fmt.Sprintf(
			"%s Testing portal connection...\n\nPress esc to cancel.",
			m.spinner.View(),
		))

	case ModeResult:
		if m.testErr != nil {
			return frame.Render(
				theme.ErrorStyle.Render("Connection failed") + "\n\n" +
					m.testErr.Error() + "\n\n" +
					theme.HelpStyle.Render("r retry | enter/esc back to form"))
		}
		return frame.Render(
			lipgloss.NewStyle().Bold(true).Foreground(theme.ColorGreen).
				Render("Settings saved") + "\n\n" +
				fmt.Sprintf("Portal reachable, %d artists visible.", m.testCount) + "\n" +
				"Connection changes apply on the next start." + "\n\n" +
				theme.HelpStyle.Render("enter/esc close"))

	default:
		if m.form == nil {
			return ""
		}
		return frame.Render(m.form.View())
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
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

func validateURL(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("URL is required")
	}
	parsed, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("URL must include scheme and host")
	}
	return nil
}

func validatePositiveInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive number", field)
		}
		return nil
	}
}

func validateNonNegativeInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a number", field)
		}
		return nil
	}
}
