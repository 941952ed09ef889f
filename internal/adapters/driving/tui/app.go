package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/messages"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/styles"
	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/views/ask"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// askView is the question-and-answer view component.
	askView *ask.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	askView := ask.NewView(s, nil, ports.Retrieval, ports.Settings)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		askView:     askView,
		currentView: messages.ViewAsk,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.askView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("scholia - Literature Q&A"),
		a.askView.Init(),
		a.loadCorpusStatus(),
	)
}

// loadCorpusStatus fetches the passage count for the header.
func (a *App) loadCorpusStatus() tea.Cmd {
	return func() tea.Msg {
		count, err := a.ports.Retrieval.PassageCount(a.ctx)
		return messages.CorpusStatusLoaded{Passages: count, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.askView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
			a.err = a.askView.Err()
			return a, cmd

		case messages.ViewHelp:
			// Any key returns from help to the ask view.
			a.currentView = messages.ViewAsk
			return a, nil
		}
		return a, nil

	case messages.AskCompleted:
		a.askView, cmd = a.askView.Update(msg)
		a.err = a.askView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewAsk {
			a.askView, cmd = a.askView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	if a.currentView == messages.ViewAsk {
		a.askView, cmd = a.askView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.askView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Ask:
  (type)      Enter a question
  enter       Ask
  esc         Help (from input) / back to input (from sources)

Sources:
  j/k, ↑/↓    Navigate sources
  n           New question
  q           Quit

Global:
  ctrl+c      Quit

[any key] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.askView.SetDimensions(width, height)
}
