package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholia-labs/scholia-cli/internal/adapters/driving/tui/messages"
	"github.com/scholia-labs/scholia-cli/internal/core/domain"
)

// mockRetrievalService implements driving.RetrievalService for testing.
type mockRetrievalService struct {
	QueryFunc func(ctx context.Context, query string, topK int) (domain.QueryResult, error)
}

func (m *mockRetrievalService) Ingest(_ context.Context, _ []domain.RawDocument) (int, error) {
	return 0, nil
}

func (m *mockRetrievalService) Query(
	ctx context.Context,
	query string,
	topK int,
) (domain.QueryResult, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, topK)
	}
	return domain.QueryResult{Query: query}, nil
}

func (m *mockRetrievalService) PassageCount(_ context.Context) (int, error) {
	return 0, nil
}

func validPorts() *Ports {
	return &Ports{Retrieval: &mockRetrievalService{}}
}

func TestPorts_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validPorts().Validate())
	})

	t.Run("missing retrieval", func(t *testing.T) {
		p := &Ports{}
		assert.ErrorIs(t, p.Validate(), ErrMissingRetrievalService)
	})
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(validPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewAsk, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	require.Error(t, err)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingRetrievalService)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.True(t, updated.Ready())
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewHelp, updated.CurrentView())
}

func TestApp_HelpViewAnyKeyReturns(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	app.currentView = messages.ViewHelp

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewAsk, updated.CurrentView())
}

func TestApp_Update_AskCompleted(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	result := domain.QueryResult{
		Query:      "tau tangles",
		Answer:     "Tau tangles spread through connected regions.",
		Confidence: 0.7,
	}
	model, _ := app.Update(messages.AskCompleted{Result: result})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Contains(t, updated.View(), "Tau tangles spread through connected regions.")
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	model, _ := app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Error(t, updated.Err())
}

func TestApp_View(t *testing.T) {
	app, err := NewApp(validPorts())
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")

	app.SetDimensions(100, 40)
	assert.Contains(t, app.View(), "Scholia")

	app.currentView = messages.ViewHelp
	assert.Contains(t, app.View(), "Help")
}

func TestViewType_String(t *testing.T) {
	assert.Equal(t, "ask", messages.ViewAsk.String())
	assert.Equal(t, "help", messages.ViewHelp.String())
	assert.Equal(t, "unknown", messages.ViewType(99).String())
}
