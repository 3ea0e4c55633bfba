package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jayphen/taskbot/internal/command"
	"github.com/Jayphen/taskbot/internal/session"
)

const (
	transcriptLines = 2000
	headerHeight    = 3
	footerHeight    = 4
)

// Model is the Bubbletea model for the TUI.
type Model struct {
	// Data
	session    *session.Session
	transcript *session.Transcript

	// UI state
	busy          bool
	quitting      bool
	width, height int
	version       string

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
}

// Messages
type resultMsg struct {
	resp command.Response
	err  error
}

// NewModel creates a TUI over an already loaded session.
func NewModel(s *session.Session, version string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorCyan)

	ti := textinput.New()
	ti.Placeholder = "todo read book #fun !high"
	ti.Prompt = InputPrefix
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	tr := session.NewTranscript(transcriptLines)
	tr.Append(s.Greeting(time.Now()))

	vp := viewport.New(80, 20)

	m := Model{
		session:    s,
		transcript: tr,
		version:    version,
		input:      ti,
		viewport:   vp,
		spinner:    sp,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.input.Width = max(msg.Width-8, 10)
		m.refresh()
		return m, nil

	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.transcript.Append(msg.err.Error())
		} else {
			m.transcript.Append(msg.resp.Text)
		}
		m.transcript.Append("")
		m.refresh()
		if msg.resp.Exit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey handles keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		// One command runs to completion before the next is accepted.
		if m.busy {
			return m, nil
		}
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.input.Reset()
		m.transcript.Append(InputPrefix + line)
		m.refresh()
		m.busy = true
		return m, tea.Batch(m.execute(line), m.spinner.Tick)

	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderPrompt())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

// execute runs line against the session off the UI goroutine.
func (m *Model) execute(line string) tea.Cmd {
	s := m.session
	return func() tea.Msg {
		resp, err := s.Handle(context.Background(), line)
		return resultMsg{resp: resp, err: err}
	}
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
