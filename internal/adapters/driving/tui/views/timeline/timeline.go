// Package timeline provides the extracted event timeline view for the TUI.
package timeline

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/keymap"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/messages"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/styles"
	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
)

// View represents the timeline view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	timeline driving.TimelineService
	ctx      context.Context

	events  []domain.TimelineEvent
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new timeline view.
func NewView(s *styles.Styles, km *keymap.KeyMap, timeline driving.TimelineService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		timeline: timeline,
		ctx:      context.Background(),
		width:    80,
		height:   24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial load.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// load fetches the timeline in the background.
func (v *View) load() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		events, err := v.timeline.Events(v.ctx)
		return messages.TimelineLoaded{Events: events, Err: err}
	}
}

// Update handles messages for the timeline view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.TimelineLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.events = msg.Events
		}
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if keymap.Matches(msg.String(), v.keymap.Refresh) {
			return v, v.load()
		}
	}

	return v, nil
}

// View renders the timeline.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Timeline"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("timeline unavailable: " + v.err.Error()))
		return b.String()
	}

	if len(v.events) == 0 {
		b.WriteString(v.styles.Muted.Render("No dated events extracted yet."))
		return b.String()
	}

	for _, event := range v.events {
		b.WriteString(v.styles.Subtitle.Render(event.Date))
		b.WriteString("  ")
		b.WriteString(v.styles.Normal.Render(event.Event))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("    source: %s", event.Source)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] refresh  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Events returns the currently displayed events.
func (v *View) Events() []domain.TimelineEvent {
	return v.events
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
