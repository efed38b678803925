// Package bubbletea provides an interactive terminal session for asking
// follow-up questions about a report, built on the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wikilens/wikilens"
)

// Questioner answers a free-form question. Satisfied by report.Assembler.
type Questioner interface {
	Ask(ctx context.Context, question string) (string, error)
}

type answerMsg struct {
	question string
	answer   string
}

type answerErrMsg struct{ err error }

// Model is the Bubble Tea model for the question session.
type Model struct {
	questioner Questioner
	keys       KeyMap

	input    textinput.Model
	viewport viewport.Model
	entries  []wikilens.QAEntry

	intro   string
	waiting bool
	ready   bool
	err     error
}

// NewModel creates a Model. The intro text is shown above the first
// answer, typically the rendered report.
func NewModel(questioner Questioner, intro string) Model {
	input := textinput.New()
	input.Placeholder = "Ask a question about this report"
	input.Focus()

	return Model{
		questioner: questioner,
		keys:       DefaultKeyMap(),
		input:      input,
		intro:      intro,
	}
}

// Entries returns the questions asked during the session.
func (m Model) Entries() []wikilens.QAEntry {
	return m.entries
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.waiting {
				return m, nil
			}
			m.waiting = true
			m.err = nil
			return m, m.ask(question)
		}

	case answerMsg:
		m.waiting = false
		m.entries = append(m.entries, wikilens.QAEntry{Question: msg.question, Answer: msg.answer})
		m.input.Reset()
		m.refreshContent()
		m.viewport.GotoBottom()
		return m, nil

	case answerErrMsg:
		m.waiting = false
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		inputHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.refreshContent()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := ""
	switch {
	case m.waiting:
		status = "thinking..."
	case m.err != nil:
		status = "error: " + m.err.Error()
	}

	return m.viewport.View() + "\n" + m.input.View() + "  " + status
}

func (m *Model) refreshContent() {
	var sb strings.Builder
	sb.WriteString(m.intro)
	for _, entry := range m.entries {
		fmt.Fprintf(&sb, "\n\nQ: %s\n\nA: %s", entry.Question, entry.Answer)
	}
	m.viewport.SetContent(sb.String())
}

func (m Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.questioner.Ask(context.Background(), question)
		if err != nil {
			return answerErrMsg{err: err}
		}
		return answerMsg{question: question, answer: answer}
	}
}

// Run starts the interactive session and blocks until the user quits.
func Run(questioner Questioner, intro string) error {
	program := tea.NewProgram(NewModel(questioner, intro), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
