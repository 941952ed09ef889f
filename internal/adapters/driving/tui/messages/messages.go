// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// AskCompleted carries a query result back to the model.
type AskCompleted struct {
	Result domain.QueryResult
	Err    error
}

// CorpusStatusLoaded carries the corpus size for the status bar.
type CorpusStatusLoaded struct {
	Passages int
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAsk is the question input and results view.
	ViewAsk ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAsk:
		return "ask"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
