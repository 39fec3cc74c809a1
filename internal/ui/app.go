package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/AirdropSim/internal/client"
	"github.com/yildizm/AirdropSim/internal/logger"
	"github.com/yildizm/AirdropSim/internal/report"
)

// Model is the interactive wallet analysis screen
type Model struct {
	state    State
	analyzer client.Analyzer
	log      *logger.Logger
	styles   *Styles

	width    int
	height   int
	quitting bool
}

// NewModel creates a new model. address pre-fills the input field.
func NewModel(analyzer client.Analyzer, log *logger.Logger, address string) *Model {
	if log == nil {
		log = logger.NewWithCallback("ui", nil)
	}
	return &Model{
		state:    State{Address: address},
		analyzer: analyzer,
		log:      log,
		styles:   GetStyles(),
	}
}

// State returns a copy of the current UI state
func (m *Model) State() State {
	return m.state
}

// Init sets the window title once, on first mount
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(report.Title)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case analysisCompleteMsg:
		m.handleAnalysisComplete(msg)
	case analysisErrorMsg:
		m.handleAnalysisError(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyCtrlF:
		return m, m.Fetch()
	case tea.KeyBackspace:
		if r := []rune(m.state.Address); len(r) > 0 {
			m.state = m.state.WithAddress(string(r[:len(r)-1]))
		}
	case tea.KeyCtrlU:
		m.state = m.state.WithAddress("")
	case tea.KeySpace:
		m.state = m.state.WithAddress(m.state.Address + " ")
	case tea.KeyRunes:
		m.state = m.state.WithAddress(m.state.Address + string(msg.Runes))
	}
	return m, nil
}

// Fetch resets the state for a new request and returns the command that runs it.
// A fetch issued while another is in flight supersedes it.
func (m *Model) Fetch() tea.Cmd {
	if m.state.Loading {
		m.log.Debug("superseding in-flight request %d", m.state.Generation)
	}
	m.state = m.state.BeginFetch()
	m.log.InfoWithFields("fetch requested", []logger.Field{
		logger.F("generation", m.state.Generation),
		logger.F("address", m.state.Address),
	})
	return CreateAnalysisCommand(m.analyzer, m.state.Address, m.state.Generation)
}

func (m *Model) handleAnalysisComplete(msg analysisCompleteMsg) {
	next, ok := m.state.Succeed(msg.generation, msg.result)
	if !ok {
		m.log.Debug("dropping stale response for request %d", msg.generation)
		return
	}
	m.state = next
}

func (m *Model) handleAnalysisError(msg analysisErrorMsg) {
	m.log.ErrorWithFields("error analyzing wallet", []logger.Field{
		logger.F("generation", msg.generation),
		logger.F("error_type", string(client.TypeOf(msg.err))),
		logger.Error(msg.err),
	})

	next, ok := m.state.Fail(msg.generation, report.ErrorMessage)
	if !ok {
		m.log.Debug("dropping stale failure for request %d", msg.generation)
		return
	}
	m.state = next
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	view := Render(m.state, m.styles, m.width)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, view)
	}
	return view
}

// Run starts the interactive UI and blocks until the user quits
func Run(analyzer client.Analyzer, log *logger.Logger, address string) error {
	model := NewModel(analyzer, log, address)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
