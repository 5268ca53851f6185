// Package consolidate provides the memory consolidation view for the TUI.
package consolidate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/keymap"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/messages"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/styles"
	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
)

// View represents the consolidation view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	consolidation driving.ConsolidationService
	ctx           context.Context

	threshold textinput.Model
	result    *domain.ConsolidationResult
	running   bool
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new consolidation view.
func NewView(s *styles.Styles, km *keymap.KeyMap, consolidation driving.ConsolidationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Placeholder = strconv.FormatFloat(domain.DefaultConsolidationThreshold, 'f', 2, 64)
	ti.CharLimit = 8
	ti.Width = 10
	ti.Focus()

	return &View{
		styles:        s,
		keymap:        km,
		consolidation: consolidation,
		ctx:           context.Background(),
		threshold:     ti,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.result = v.consolidation.Latest()
	return textinput.Blink
}

// run triggers a consolidation job in the background.
func (v *View) run(threshold float64) tea.Cmd {
	v.running = true
	v.err = nil
	return func() tea.Msg {
		result, err := v.consolidation.Run(v.ctx, threshold)
		return messages.ConsolidationCompleted{Result: result, Err: err}
	}
}

// Update handles messages for the consolidation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ConsolidationCompleted:
		v.running = false
		v.err = msg.Err
		if msg.Err == nil {
			result := msg.Result
			v.result = &result
		}
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if msg.Type == tea.KeyEnter {
			return v.submit()
		}
	}

	var cmd tea.Cmd
	v.threshold, cmd = v.threshold.Update(msg)
	return v, cmd
}

// submit parses the threshold and starts a run.
func (v *View) submit() (*View, tea.Cmd) {
	if v.running {
		return v, nil
	}

	threshold := domain.DefaultConsolidationThreshold
	if text := strings.TrimSpace(v.threshold.Value()); text != "" {
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			v.err = domain.ErrInvalidThreshold
			return v, nil
		}
		threshold = parsed
	}

	if err := domain.ValidateThreshold(threshold); err != nil {
		v.err = err
		return v, nil
	}

	return v, v.run(threshold)
}

// View renders the consolidation view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Consolidate Memories"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Similarity threshold: "))
	b.WriteString(v.styles.InputField.Render(v.threshold.View()))
	b.WriteString("\n\n")

	switch {
	case v.running:
		b.WriteString(v.styles.Muted.Render("Consolidating..."))
		b.WriteString("\n")
	case v.err != nil && errors.Is(v.err, domain.ErrInvalidThreshold):
		b.WriteString(v.styles.Error.Render("threshold must be in (0, 1]"))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("consolidation failed: " + v.err.Error()))
		b.WriteString("\n")
	}

	if v.result != nil && !v.running {
		b.WriteString(v.styles.Success.Render(v.result.Message))
		b.WriteString("\n\n")
		for _, group := range v.result.Groups {
			line := fmt.Sprintf("  %-20s %3d chunks", group.Source, group.MemberCount)
			b.WriteString(v.styles.Subtitle.Render(line))
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render("    " + group.Summary))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] run  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset clears the threshold input and error state.
func (v *View) Reset() {
	v.threshold.Reset()
	v.err = nil
	v.running = false
}

// Result returns the currently displayed result.
func (v *View) Result() *domain.ConsolidationResult {
	return v.result
}

// Err returns the last run error.
func (v *View) Err() error {
	return v.err
}
