// Package tui provides a Bubble Tea terminal user interface for bandcamp-meta.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/bandcamp-meta/internal/config"
	"github.com/handiism/bandcamp-meta/internal/http"
	"github.com/handiism/bandcamp-meta/internal/model"
	"github.com/handiism/bandcamp-meta/internal/normalize"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	albumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1B26")).
			Background(lipgloss.Color("#FFE66D")).
			Padding(0, 1)

	originalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")).
			Italic(true)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateFetching
	StateReview
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   normalize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Fetch context
	ctx    context.Context
	cancel context.CancelFunc

	manager *normalize.Manager
	events  chan normalize.ProgressEvent

	// Batch progress
	batchTotal int
	completed  int

	// Review state
	releases     []*model.ReleaseInfo
	selected     int
	trackOffset  int
	showOriginal bool
	exportNote   string

	// Options
	discography bool
	verbose     bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "https://artist.bandcamp.com/album/name"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every processing progress event.
	ProgressMsg struct {
		Event normalize.ProgressEvent
	}

	// ExpandDoneMsg is sent when discography expansion completes.
	ExpandDoneMsg struct {
		Inputs []string
		Err    error
	}

	// FetchDoneMsg is sent when every release has been processed.
	FetchDoneMsg struct {
		Releases []*model.ReleaseInfo
		Err      error
	}

	// ExportDoneMsg is sent when a JSON export finishes.
	ExportDoneMsg struct {
		Path string
		Err  error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		newModel, cmd, handled := m.handleKey(msg)
		if handled {
			return newModel, cmd
		}
		m = newModel

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.listenProgress())
		if msg.Event.Level == normalize.LevelSuccess && m.state == StateFetching {
			m.completed++
			if m.batchTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.completed)/float64(m.batchTotal)))
			}
		}
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == normalize.LevelVerbose && !m.verbose {
			return m, tea.Batch(cmds...)
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case ExpandDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.batchTotal = len(msg.Inputs)
		m.completed = 0
		cmds = append(cmds, m.startProcessing(msg.Inputs))

	case FetchDoneMsg:
		if m.state != StateFetching {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			if m.ctx.Err() != nil {
				m.err = fmt.Errorf("cancelled by user")
			} else {
				m.err = msg.Err
			}
		} else {
			m.releases = msg.Releases
			m.selected = 0
			m.trackOffset = 0
			m.state = StateReview
		}

	case ExportDoneMsg:
		if msg.Err != nil {
			m.exportNote = errorStyle.Render(fmt.Sprintf("Export failed: %v", msg.Err))
		} else {
			m.exportNote = successStyle.Render(fmt.Sprintf("Exported to %s", msg.Path))
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses. The handled result reports that the
// key ended the update cycle on its own.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit, true

	case "esc":
		if m.state == StateInput {
			return m, tea.Quit, true
		}
		if m.state == StateFetching {
			m.cancel()
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		}

	case "enter":
		if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
			return m.beginFetch()
		}

	case "d":
		if m.state == StateInput {
			m.discography = !m.discography
		}

	case "v":
		if m.state == StateInput {
			m.verbose = !m.verbose
		}

	case "tab":
		if m.state == StateReview && len(m.releases) > 1 {
			m.selected = (m.selected + 1) % len(m.releases)
			m.trackOffset = 0
			m.exportNote = ""
		}

	case "up", "k":
		if m.state == StateReview && m.trackOffset > 0 {
			m.trackOffset--
		}

	case "down", "j":
		if m.state == StateReview {
			if max := m.maxTrackOffset(); m.trackOffset < max {
				m.trackOffset++
			}
		}

	case "o":
		if m.state == StateReview {
			m.showOriginal = !m.showOriginal
		}

	case "e":
		if m.state == StateReview && len(m.releases) > 0 {
			return m, m.exportJSON(m.releases[m.selected]), true
		}

	case "q":
		if m.state == StateReview || m.state == StateError {
			return m, tea.Quit, true
		}

	case "r":
		if m.state == StateReview || m.state == StateError {
			// Reset for a new fetch
			m.state = StateInput
			m.logs = nil
			m.releases = nil
			m.err = nil
			m.batchTotal = 0
			m.completed = 0
			m.selected = 0
			m.trackOffset = 0
			m.showOriginal = false
			m.exportNote = ""
			m.manager = nil
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.textInput.SetValue("")
			m.textInput.Focus()
		}
	}

	return m, nil, false
}

// beginFetch builds the manager and kicks off discography expansion.
func (m Model) beginFetch() (Model, tea.Cmd, bool) {
	inputs := strings.Fields(m.textInput.Value())

	m.state = StateFetching
	m.logs = nil
	m.batchTotal = 0
	m.completed = 0
	m.events = make(chan normalize.ProgressEvent, 128)

	events := m.events
	client := http.NewClientWith(m.settings.UserAgent, 0)
	m.manager = normalize.NewManager(client, m.settings.ToManagerConfig(), func(event normalize.ProgressEvent) {
		// Best effort: drop events when the UI cannot keep up.
		select {
		case events <- event:
		default:
		}
	})

	return m, tea.Batch(m.expandInputs(inputs), m.listenProgress(), m.spinner.Tick), true
}

// expandInputs resolves the final release list, expanding artist pages
// when the discography option is on.
func (m Model) expandInputs(inputs []string) tea.Cmd {
	manager, ctx, discography := m.manager, m.ctx, m.discography
	return func() tea.Msg {
		if !discography {
			return ExpandDoneMsg{Inputs: inputs}
		}

		var expanded []string
		for _, input := range inputs {
			urls, err := manager.DiscoverReleaseURLs(ctx, input)
			if err != nil {
				return ExpandDoneMsg{Err: fmt.Errorf("expanding %s: %w", input, err)}
			}
			expanded = append(expanded, urls...)
		}
		return ExpandDoneMsg{Inputs: expanded}
	}
}

// startProcessing normalizes every release in the batch.
func (m Model) startProcessing(inputs []string) tea.Cmd {
	manager, ctx, events := m.manager, m.ctx, m.events
	return func() tea.Msg {
		defer close(events)
		releases, err := manager.ProcessAll(ctx, inputs)
		return FetchDoneMsg{Releases: releases, Err: err}
	}
}

// listenProgress waits for the next progress event.
func (m Model) listenProgress() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// exportJSON writes the release record to a JSON file in the working
// directory.
func (m Model) exportJSON(release *model.ReleaseInfo) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(release, "", "  ")
		if err != nil {
			return ExportDoneMsg{Err: err}
		}

		path := release.PlaylistName() + ".json"
		if err := os.WriteFile(path, data, 0644); err != nil {
			return ExportDoneMsg{Err: err}
		}
		return ExportDoneMsg{Path: path}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 bandcamp-meta"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Normalize Bandcamp release metadata"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter Bandcamp URLs or saved pages:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	discographyCheck := "[ ]"
	if m.discography {
		discographyCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Whole discography (d)\n", discographyCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Concurrent releases: %d", m.settings.MaxConcurrentReleases)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.batchTotal > 0 {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Normalizing %d release(s)...", m.batchTotal)))
	} else {
		b.WriteString(subtitleStyle.Render("Fetching release info..."))
	}
	b.WriteString("\n\n")

	// Progress bar for multi-release batches
	if m.batchTotal > 1 {
		b.WriteString(m.progress.View())
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Releases: %d/%d", m.completed, m.batchTotal)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	if len(m.releases) == 0 {
		b.WriteString(warningStyle.Render("No releases found."))
		return b.String()
	}

	release := m.releases[m.selected]

	if len(m.releases) > 1 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Release %d of %d", m.selected+1, len(m.releases))))
		b.WriteString("\n\n")
	}

	// Release header
	b.WriteString(albumStyle.Render(fmt.Sprintf("♪ %s - %s", release.AlbumArtist, release.Album)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.releaseFacts(release)))
	b.WriteString("\n\n")

	// Track listing window
	visible := m.visibleTracks()
	end := m.trackOffset + visible
	if end > len(release.Tracks) {
		end = len(release.Tracks)
	}

	if m.trackOffset > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more above", m.trackOffset)))
		b.WriteString("\n")
	}

	for i := m.trackOffset; i < end; i++ {
		b.WriteString(m.renderTrack(i, &release.Tracks[i]))
		b.WriteString("\n")
	}

	if remaining := len(release.Tracks) - end; remaining > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more below", remaining)))
		b.WriteString("\n")
	}

	if m.exportNote != "" {
		b.WriteString("\n")
		b.WriteString(m.exportNote)
		b.WriteString("\n")
	}

	return b.String()
}

// releaseFacts joins the release-level facts that are present.
func (m Model) releaseFacts(release *model.ReleaseInfo) string {
	facts := make([]string, 0, 4)
	if release.Label != "" {
		facts = append(facts, release.Label)
	}
	if release.Catalognum != "" {
		facts = append(facts, release.Catalognum)
	}
	if release.Date != "" {
		facts = append(facts, release.Date)
	}
	facts = append(facts, fmt.Sprintf("%d track(s)", len(release.Tracks)))

	return strings.Join(facts, " · ")
}

func (m Model) renderTrack(position int, track *model.TrackInfo) string {
	number := track.Index
	if number == 0 {
		number = position + 1
	}

	var line string
	if m.showOriginal {
		line = fmt.Sprintf("  %02d. %s", number, originalStyle.Render(track.OriginalName))
	} else {
		line = fmt.Sprintf("  %02d. %s", number, track.Display())
		if track.Length > 0 {
			line += dimStyle.Render(fmt.Sprintf("  %d:%02d", track.Length/60, track.Length%60))
		}
	}

	for _, badge := range trackBadges(track) {
		line += " " + badgeStyle.Render(badge)
	}

	return line
}

// trackBadges lists the short annotations shown after a track line.
func trackBadges(track *model.TrackInfo) []string {
	var badges []string
	if track.TrackAlt != "" {
		badges = append(badges, track.TrackAlt)
	}
	if track.DigiOnly {
		badges = append(badges, "DIGI")
	}
	return badges
}

// visibleTracks returns how many track lines fit the current window.
func (m Model) visibleTracks() int {
	visible := m.height - 14
	if visible < 5 {
		visible = 5
	}
	return visible
}

func (m Model) maxTrackOffset() int {
	if len(m.releases) == 0 {
		return 0
	}
	max := len(m.releases[m.selected].Tracks) - m.visibleTracks()
	if max < 0 {
		max = 0
	}
	return max
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case normalize.LevelError:
			style = errorStyle
			prefix = "✗"
		case normalize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case normalize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case normalize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: fetch • d: discography • v: verbose • esc: quit"
	case StateFetching:
		return "esc: cancel"
	case StateReview:
		return "tab: next release • ↑/↓: scroll • o: original names • e: export JSON • r: new • q: quit"
	case StateError:
		return "r: new fetch • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
