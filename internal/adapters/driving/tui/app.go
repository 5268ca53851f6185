package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/messages"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/styles"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/views/chat"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/views/consolidate"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/views/graph"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/views/menu"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/views/timeline"
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

	// menuView is the main navigation menu.
	menuView *menu.View

	// chatView is the question/answer transcript view component.
	chatView *chat.View

	// graphView is the semantic graph view component.
	graphView *graph.View

	// timelineView is the extracted event timeline view component.
	timelineView *timeline.View

	// consolidateView is the memory consolidation view component.
	consolidateView *consolidate.View

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

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		menuView:        menu.NewView(s),
		chatView:        chat.NewView(s, nil, ports.Conversation),
		graphView:       graph.NewView(s, nil, ports.Graph),
		timelineView:    timeline.NewView(s, nil, ports.Timeline),
		consolidateView: consolidate.NewView(s, nil, ports.Consolidation),
		currentView:     messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	a.graphView.WithContext(ctx)
	a.timelineView.WithContext(ctx)
	a.consolidateView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("brief - Case Document Intelligence"),
	)
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
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.graphView.SetDimensions(msg.Width, msg.Height)
		a.timelineView.SetDimensions(msg.Width, msg.Height)
		a.consolidateView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewChat:
			return a, a.chatView.Init()
		case messages.ViewGraph:
			return a, a.graphView.Init()
		case messages.ViewTimeline:
			return a, a.timelineView.Init()
		case messages.ViewConsolidate:
			a.consolidateView.Reset()
			return a, a.consolidateView.Init()
		case messages.ViewMenu:
			// Menu needs no initialisation
		}
		return a, nil

	case messages.TranscriptChanged:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.GraphLoaded:
		a.graphView, cmd = a.graphView.Update(msg)
		return a, cmd

	case messages.TimelineLoaded:
		a.timelineView, cmd = a.timelineView.Update(msg)
		return a, cmd

	case messages.ConsolidationCompleted:
		a.consolidateView, cmd = a.consolidateView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)
	}

	return a.forward(msg)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
		a.err = a.chatView.Err()
	case messages.ViewGraph:
		a.graphView, cmd = a.graphView.Update(msg)
	case messages.ViewTimeline:
		a.timelineView, cmd = a.timelineView.Update(msg)
	case messages.ViewConsolidate:
		a.consolidateView, cmd = a.consolidateView.Update(msg)
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
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewGraph:
		return a.graphView.View()
	case messages.ViewTimeline:
		return a.timelineView.View()
	case messages.ViewConsolidate:
		return a.consolidateView.View()
	default:
		return a.menuView.View()
	}
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
	a.menuView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
}
