package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Laisky/explain/internal/explain"
	"github.com/Laisky/explain/library/wikipedia"
)

// ViewState represents the current view state of the TUI
type ViewState int

const (
	// ViewInput is the query input view
	ViewInput ViewState = iota
	// ViewRunning is the view while a lookup is in flight
	ViewRunning
	// ViewResult is the view showing the explanation or the failure
	ViewResult
)

// Explainer runs one lookup.
type Explainer interface {
	Explain(ctx context.Context, words []string, longForm bool) (*wikipedia.ArticleSummary, error)
}

// ExplainResult is delivered to the model when a lookup finishes.
type ExplainResult struct {
	Query   string
	Summary *wikipedia.ArticleSummary
	Err     error
}

// Model is the main TUI model following the Bubble Tea architecture
type Model struct {
	ctx       context.Context
	explainer Explainer

	// Current view state
	state ViewState

	input    textinput.Model
	spinner  spinner.Model
	longForm bool

	// query being looked up or last looked up
	query  string
	result *ExplainResult

	// Window dimensions
	width  int
	height int

	quitting bool
}

// keyMap defines the key bindings for the TUI
type keyMap struct {
	Enter  key.Binding
	Back   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "explain"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle long form"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// NewModel creates a TUI model that looks queries up with explainer.
// longForm is the initial summary mode.
func NewModel(ctx context.Context, explainer Explainer, longForm bool) Model {
	input := textinput.New()
	input.Placeholder = "turing machine"
	input.CharLimit = 256
	input.Width = 50
	input.Prompt = "🔎 "
	input.PromptStyle = GetInputLabelStyle()
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = GetProgressStyle()

	return Model{
		ctx:       ctx,
		explainer: explainer,
		state:     ViewInput,
		input:     input,
		spinner:   sp,
		longForm:  longForm,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case ViewInput:
			return m.handleInputView(msg)
		case ViewResult:
			return m.handleResultView(msg)
		case ViewRunning:
			// Don't handle input while running
			return m, nil
		}

	case spinner.TickMsg:
		if m.state == ViewRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case ExplainResult:
		m.result = &msg
		m.state = ViewResult
		return m, nil
	}

	if m.state == ViewInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleInputView handles key events in the query input view
func (m Model) handleInputView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Toggle):
		m.longForm = !m.longForm
		return m, nil

	case key.Matches(msg, keys.Enter):
		words := strings.Fields(m.input.Value())
		if explain.BuildQuery(words) == "" {
			return m, nil
		}

		m.query = strings.Join(words, " ")
		m.result = nil
		m.state = ViewRunning
		return m, tea.Batch(m.spinner.Tick, m.explainCmd(words))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResultView handles key events in result view
func (m Model) handleResultView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter):
		m.state = ViewInput
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	}

	return m, nil
}

// explainCmd runs the lookup off the update loop
func (m Model) explainCmd(words []string) tea.Cmd {
	ctx, explainer, longForm := m.ctx, m.explainer, m.longForm
	query := strings.Join(words, " ")
	return func() tea.Msg {
		summary, err := explainer.Explain(ctx, words, longForm)
		return ExplainResult{Query: query, Summary: summary, Err: err}
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return GetSubtitleStyle().Render("Goodbye! 👋\n")
	}

	switch m.state {
	case ViewInput:
		return m.renderInput()
	case ViewRunning:
		return m.renderRunning()
	case ViewResult:
		return m.renderResult()
	default:
		return "Unknown state"
	}
}

func (m Model) modeLabel() string {
	if m.longForm {
		return "long extract"
	}
	return "short description"
}

// renderInput renders the query input view
func (m Model) renderInput() string {
	var sb strings.Builder

	sb.WriteString(GetHeaderStyle().Render("📖 Explain") + "\n\n")
	sb.WriteString(GetInputLabelStyle().Render("Concept:") + "\n")
	sb.WriteString(m.input.View() + "\n\n")
	sb.WriteString(GetStatusBarStyle().Render("mode: " + m.modeLabel()))
	sb.WriteString("\n")
	sb.WriteString(GetHelpStyle().Render("enter: explain • tab: toggle long form • ctrl+c: quit"))

	return GetBoxStyle().Render(sb.String())
}

// renderRunning renders the running state view
func (m Model) renderRunning() string {
	return GetBoxStyle().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.spinner.View()+fmt.Sprintf(" Looking up %q...", m.query),
			GetSubtitleStyle().Render("Please wait..."),
		),
	)
}

// renderResult renders the explanation or the failure
func (m Model) renderResult() string {
	if m.result == nil {
		return "No result"
	}

	help := GetHelpStyle().Render("enter/esc: new query • ctrl+c: quit")
	if m.result.Err != nil {
		return GetBoxStyle().Render(
			lipgloss.JoinVertical(lipgloss.Left,
				GetErrorStyle().Render("❌ "+m.result.Err.Error()),
				help,
			),
		)
	}

	summary := m.result.Summary
	body := GetArticleTitleStyle().Render(summary.Title) + ": " + summary.Summary
	if m.width > 8 {
		body = lipgloss.NewStyle().Width(m.width - 8).Render(body)
	}

	return GetBoxStyle().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			body,
			"",
			GetURLStyle().Render(summary.URL),
			help,
		),
	)
}
