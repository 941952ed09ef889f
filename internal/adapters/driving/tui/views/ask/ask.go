// Package ask provides the question-and-answer view for the TUI.
package ask

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/keymap"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/messages"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/styles"
	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driving"
)

// sourcePreviewLimit bounds the excerpt shown per source row.
const sourcePreviewLimit = 120

// View represents the ask view with question input, answer panel and sources.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  textinput.Model

	retrieval driving.RetrievalService
	settings  driving.SettingsService
	ctx       context.Context

	result     *domain.QueryResult
	selected   int
	corpusSize int

	width      int
	height     int
	ready      bool
	asking     bool
	err        error
	focusInput bool // true = input mode (typing), false = sources mode (navigating)
}

// NewView creates a new ask view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	retrieval driving.RetrievalService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Placeholder = "Ask about the literature..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &View{
		styles:     s,
		keymap:     km,
		input:      ti,
		retrieval:  retrieval,
		settings:   settings,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AskCompleted:
		v.handleAskCompleted(msg)
		return v, nil

	case messages.CorpusStatusLoaded:
		if msg.Err == nil {
			v.corpusSize = msg.Passages
		}
		return v, nil

	case messages.ErrorOccurred:
		v.asking = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if !v.focusInput {
			// First esc returns to the input.
			v.focusInput = true
			v.input.Focus()
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	}

	if msg.Type == tea.KeyEnter && v.focusInput {
		question := strings.TrimSpace(v.input.Value())
		if question == "" || v.asking {
			return v, nil
		}
		v.asking = true
		v.err = nil
		v.focusInput = false
		v.input.Blur()
		return v, v.performAsk(question)
	}

	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.moveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.moveDown()
	case keymap.Matches(msg.String(), v.keymap.NewQuestion):
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

// performAsk runs the query and returns the result as a message.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		if v.retrieval == nil {
			return messages.ErrorOccurred{Err: ErrNoRetrievalService}
		}

		result, err := v.retrieval.Query(v.ctx, question, v.topK())
		if err != nil {
			return messages.AskCompleted{Err: err}
		}
		return messages.AskCompleted{Result: result}
	}
}

// topK resolves the number of sources to request.
func (v *View) topK() int {
	if v.settings != nil {
		if k := v.settings.Current().TopK; k > 0 {
			return k
		}
	}
	return domain.DefaultTopK
}

// handleAskCompleted stores the query result.
func (v *View) handleAskCompleted(msg messages.AskCompleted) {
	v.asking = false
	if msg.Err != nil {
		v.err = msg.Err
		return
	}

	v.err = nil
	result := msg.Result
	v.result = &result
	v.selected = 0
}

func (v *View) moveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

func (v *View) moveDown() {
	if v.result != nil && v.selected < len(v.result.Sources)-1 {
		v.selected++
	}
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	header := v.styles.Title.Render("Scholia")
	if v.corpusSize > 0 {
		header += v.styles.Muted.Render(fmt.Sprintf("  %d passages", v.corpusSize))
	}
	sections = append(sections, header, "")

	label := v.styles.Subtitle.Render("Question: ")
	inputView := v.styles.InputField.Render(v.input.View())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, label, inputView), "")

	switch {
	case v.asking:
		sections = append(sections, v.styles.Muted.Render("Searching the corpus..."), "")
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	case v.result != nil:
		sections = append(sections, v.renderResult()...)
	}

	sections = append(sections, "", v.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderResult renders the answer panel and the source list.
func (v *View) renderResult() []string {
	out := make([]string, 0, 4+len(v.result.Sources))

	confStyle := v.styles.Confidence(v.result.Confidence)
	confLine := confStyle.Render(fmt.Sprintf("Confidence: %.0f%%", v.result.Confidence*100))
	out = append(out, confLine, "")

	answer := v.styles.Normal.Width(max(v.width-4, 20)).Render(v.result.Answer)
	out = append(out, answer, "")

	if len(v.result.Sources) == 0 {
		return out
	}

	out = append(out, v.styles.Subtitle.Render(fmt.Sprintf("Sources (%d)", len(v.result.Sources))))
	for i, src := range v.result.Sources {
		out = append(out, v.renderSource(i, src))
	}
	return out
}

// renderSource renders one source row with a selection indicator.
func (v *View) renderSource(i int, src domain.ScoredPassage) string {
	title := src.Passage.Meta.Title
	if title == "" {
		title = "(untitled)"
	}

	excerpt := src.Preview
	if runes := []rune(excerpt); len(runes) > sourcePreviewLimit {
		excerpt = string(runes[:sourcePreviewLimit]) + "..."
	}

	line := fmt.Sprintf("%d. [%.2f] %s", i+1, src.Score, title)
	detail := fmt.Sprintf("   %s · %s", src.Passage.Meta.Section, excerpt)

	if i == v.selected && !v.focusInput {
		return v.styles.Selected.Render("> "+line) + "\n" + v.styles.Muted.Render(detail)
	}
	return v.styles.Normal.Render("  "+line) + "\n" + v.styles.Muted.Render(detail)
}

// renderFooter renders the keybinding hints.
func (v *View) renderFooter() string {
	if v.focusInput {
		return v.styles.Help.Render("[enter] ask  [esc] help  [ctrl+c] quit")
	}
	return v.styles.Help.Render("[n] new question  [↑/k ↓/j] sources  [esc] input  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	inputWidth := width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	v.input.Width = inputWidth
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Question returns the current question text.
func (v *View) Question() string {
	return v.input.Value()
}

// SetQuestion sets the question text.
func (v *View) SetQuestion(question string) {
	v.input.SetValue(question)
}

// Result returns the last query result, nil before the first question.
func (v *View) Result() *domain.QueryResult {
	return v.result
}

// SelectedIndex returns the index of the selected source.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Asking returns whether a query is in flight.
func (v *View) Asking() bool {
	return v.asking
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.result = nil
	v.selected = 0
	v.asking = false
	v.err = nil
}
