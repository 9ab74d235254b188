package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gantry/internal/logtail"
	"gantry/internal/prefs"
	"gantry/internal/readiness"
	"gantry/internal/state"
)

// View represents the current active view.
type View int

const (
	// ViewSplash is the loading view shown while waiting for the backend.
	ViewSplash View = iota
	// ViewMain is the live monitor shown once the backend is ready.
	ViewMain
	// ViewFailed is the terminal error view shown before a non-zero exit.
	ViewFailed
)

const (
	monitorTick   = time.Second
	failureHold   = 3 * time.Second
	logTailLines  = 12
	failureStatus = "Failed to start. Please restart the app."
)

// StatusMsg carries a readiness status update from the background wait
// loop into the event loop.
type StatusMsg struct {
	Attempt int
	Text    string
}

// OutcomeMsg carries the terminal readiness outcome.
type OutcomeMsg struct {
	Report     readiness.Report
	BackendURL string
	PID        int
}

type tickMsg time.Time

type holdExpiredMsg struct{}

type snapshotMsg state.Snapshot

type logLinesMsg []string

// Options configure the UI.
type Options struct {
	Store       *state.Store
	BackendLog  string
	MaxAttempts int
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	opts  Options
	theme Theme

	view    View
	width   int
	height  int
	spinner spinner.Model

	// Splash state
	attempt    int
	statusText string

	// Main view state
	backendURL string
	pid        int
	readyAt    time.Time
	snapshot   state.Snapshot
	logLines   []string

	// Failure state
	failureText string
	exitCode    int
}

// New creates the launcher UI model.
func New(opts Options) Model {
	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 120
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = prefs.DefaultPath()
	}

	return Model{
		opts:       opts,
		theme:      theme,
		view:       ViewSplash,
		spinner:    sp,
		statusText: "Starting server...",
	}
}

// ExitCode returns the process exit status the launcher should use after
// the program finishes.
func (m Model) ExitCode() int {
	return m.exitCode
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.view != ViewSplash {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StatusMsg:
		if m.view == ViewSplash {
			m.attempt = msg.Attempt
			m.statusText = msg.Text
		}
		return m, nil

	case OutcomeMsg:
		return m.handleOutcome(msg)

	case tickMsg:
		if m.view != ViewMain {
			return m, nil
		}
		return m, tea.Batch(
			tickCmd(),
			fetchSnapshotCmd(m.opts.Store),
			fetchLogTailCmd(m.opts.BackendLog),
		)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case logLinesMsg:
		m.logLines = msg
		return m, nil

	case holdExpiredMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		// The splash cannot be dismissed while waiting; the failure view
		// quits early instead of sitting out the hold.
		if m.view == ViewSplash {
			return m, nil
		}
		return m, tea.Quit

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.opts.PrefsPath != "" {
			_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleOutcome(msg OutcomeMsg) (tea.Model, tea.Cmd) {
	if msg.Report.Outcome == readiness.BackendReady {
		m.view = ViewMain
		m.backendURL = msg.BackendURL
		m.pid = msg.PID
		m.readyAt = time.Now()
		return m, tea.Batch(
			tickCmd(),
			fetchSnapshotCmd(m.opts.Store),
			fetchLogTailCmd(m.opts.BackendLog),
		)
	}

	m.view = ViewFailed
	m.failureText = failureStatus
	m.exitCode = 1
	// Hold the error on screen long enough to read before exiting.
	return m, tea.Tick(failureHold, func(time.Time) tea.Msg {
		return holdExpiredMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.view {
	case ViewMain:
		return m.renderMain()
	case ViewFailed:
		return m.renderFailed()
	default:
		return m.renderSplash()
	}
}

func (m Model) renderSplash() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(renderLogo(styles))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(styles.Status.Render(m.statusText))
	b.WriteString("\n")
	if m.attempt > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("attempt %d/%d", m.attempt, m.opts.MaxAttempts)))
	}
	return m.center(b.String())
}

func (m Model) renderFailed() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(renderLogo(styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Danger.Render(m.failureText))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("q to close now"))
	return m.center(b.String())
}

func (m Model) renderMain() string {
	styles := m.theme.Styles()

	health := styles.Muted.Render("● waiting")
	if m.snapshot.HasHealth {
		switch {
		case m.snapshot.Health.Ok():
			health = styles.Success.Render("● healthy")
		case m.snapshot.IsDegraded():
			health = styles.Danger.Render("● unreachable")
		default:
			health = styles.Warning.Render("● degraded")
		}
	}

	header := strings.Join([]string{
		styles.Logo.Render("gantry"),
		health,
		styles.Status.Render(m.backendURL),
		styles.Muted.Render(fmt.Sprintf("pid %d", m.pid)),
		styles.Muted.Render("up " + formatUptime(time.Since(m.readyAt))),
	}, "  ")

	var checked string
	if !m.snapshot.LastChecked.IsZero() {
		checked = styles.Muted.Render("last check " + m.snapshot.LastChecked.Format("15:04:05"))
	}

	logPanel := styles.Panel.Render(m.renderLogLines(styles))

	parts := []string{header}
	if checked != "" {
		parts = append(parts, checked)
	}
	parts = append(parts, "", logPanel, "", styles.Muted.Render("q quit  T theme"))
	return strings.Join(parts, "\n")
}

func (m Model) renderLogLines(styles Styles) string {
	if len(m.logLines) == 0 {
		return styles.Muted.Render("no backend output yet")
	}
	return strings.Join(m.logLines, "\n")
}

// center positions content in the middle of the terminal when the size is
// known; otherwise it returns the content as-is.
func (m Model) center(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(monitorTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func fetchLogTailCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Tail(path, logTailLines)
		if err != nil {
			// Log display is best effort.
			return logLinesMsg(nil)
		}
		return logLinesMsg(lines)
	}
}

// NewProgram builds the Bubble Tea program for the launcher UI. The
// returned program's Send method is the status channel the readiness loop
// pushes into; sends after the program stops are dropped silently.
func NewProgram(opts Options) *tea.Program {
	return tea.NewProgram(New(opts), tea.WithAltScreen())
}

// Wait runs the program to completion and returns the exit code the
// process should terminate with.
func Wait(p *tea.Program) (int, error) {
	final, err := p.Run()
	if err != nil {
		return 1, err
	}
	if m, ok := final.(Model); ok {
		return m.ExitCode(), nil
	}
	return 0, nil
}
