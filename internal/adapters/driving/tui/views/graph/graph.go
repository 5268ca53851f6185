// Package graph provides the semantic graph view for the TUI.
package graph

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

// View represents the semantic graph view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	graph driving.GraphService
	ctx   context.Context

	model   *domain.GraphModel
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new graph view.
func NewView(s *styles.Styles, km *keymap.KeyMap, graph driving.GraphService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		graph:  graph,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial refresh.
func (v *View) Init() tea.Cmd {
	return v.refresh()
}

// refresh rebuilds the graph model in the background.
func (v *View) refresh() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		model, err := v.graph.Refresh(v.ctx)
		return messages.GraphLoaded{Model: model, Err: err}
	}
}

// Update handles messages for the graph view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.GraphLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.model = msg.Model
		} else if v.model == nil {
			// A stale model from an earlier refresh is still worth showing.
			v.model = v.graph.Model()
		}
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if keymap.Matches(msg.String(), v.keymap.Refresh) {
			return v, v.refresh()
		}
	}

	return v, nil
}

// View renders the graph as a node and edge listing.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Semantic Graph"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("graph unavailable: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.model == nil {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("No graph yet. Upload documents to build one."))
		}
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Nodes (%d)", len(v.model.Nodes))))
	b.WriteString("\n")
	for _, id := range v.model.NodeIDs() {
		node := v.model.Nodes[id]
		line := fmt.Sprintf("  %-24s %s", id, node.Label)
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Edges (%d)", len(v.model.Edges))))
	b.WriteString("\n")
	for _, edge := range v.model.Edges {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s -> %s", edge.Source, edge.Target)))
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

// Model returns the currently displayed graph model.
func (v *View) Model() *domain.GraphModel {
	return v.model
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
