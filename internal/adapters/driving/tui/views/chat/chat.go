// Package chat provides the question/answer transcript view for the TUI.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/components/input"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/components/status"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/keymap"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/messages"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui/styles"
	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
)

// View represents the chat view with input, transcript, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	spinner   spinner.Model
	statusbar *status.Bar

	conversation driving.ConversationService
	ctx          context.Context
	updates      <-chan struct{}

	width    int
	height   int
	ready    bool
	thinking bool
	err      error
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, conversation driving.ConversationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewQuestionInput(s),
		spinner:      sp,
		statusbar:    status.NewBar(s, km),
		conversation: conversation,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and starts listening for transcript changes.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateChat)
	if v.updates == nil && v.conversation != nil {
		v.updates = v.conversation.Subscribe()
	}
	return tea.Batch(v.input.Init(), v.listen())
}

// listen blocks on the subscription channel and converts each signal into
// a TranscriptChanged message. Returns nil once the service closes.
func (v *View) listen() tea.Cmd {
	ch := v.updates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.TranscriptChanged{}
	}
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TranscriptChanged:
		v.thinking = v.conversation.Transcript().HasPending()
		if v.thinking {
			v.statusbar.SetState(status.StateThinking)
			// Re-arm the listener and keep the spinner going.
			return v, tea.Batch(v.listen(), v.spinner.Tick)
		}
		v.statusbar.SetState(status.StateChat)
		v.statusbar.SetMessage("")
		return v, v.listen()

	case spinner.TickMsg:
		if !v.thinking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if keymap.Matches(keyStr, v.keymap.VoteUp) {
		return v, v.sendFeedback(domain.VoteUp)
	}
	if keymap.Matches(keyStr, v.keymap.VoteDown) {
		return v, v.sendFeedback(domain.VoteDown)
	}

	if msg.Type == tea.KeyEnter {
		return v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the composed question to the conversation service.
func (v *View) submit() (*View, tea.Cmd) {
	err := v.conversation.Submit(v.ctx, v.input.Value())
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return v, nil
	case errors.Is(err, domain.ErrQueryInFlight):
		v.statusbar.SetMessage("still thinking about the previous question")
		return v, nil
	case err != nil:
		v.err = err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return v, nil
	}

	v.input.Reset()
	v.thinking = true
	v.statusbar.SetState(status.StateThinking)
	return v, v.spinner.Tick
}

// sendFeedback votes on the most recent answer, if any.
func (v *View) sendFeedback(vote domain.Vote) tea.Cmd {
	transcript := v.conversation.Transcript()
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Kind != domain.TurnAnswer || transcript[i].MemoryID == "" {
			continue
		}
		if err := v.conversation.Feedback(i, vote); err != nil {
			v.statusbar.SetMessage(err.Error())
			return nil
		}
		v.statusbar.SetMessage("feedback sent")
		return nil
	}
	v.statusbar.SetMessage("no answer to rate yet")
	return nil
}

// View renders the chat view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Chat"))
	b.WriteString("\n\n")

	transcript := v.conversation.Transcript()
	if len(transcript) == 0 {
		b.WriteString(v.styles.Muted.Render("Ask a question about your case documents."))
		b.WriteString("\n")
	}

	for _, turn := range transcript {
		switch turn.Kind {
		case domain.TurnUser:
			b.WriteString(v.styles.Question.Render("You: "))
			b.WriteString(v.styles.Normal.Render(turn.Text))
		case domain.TurnPending:
			b.WriteString(v.spinner.View())
			b.WriteString(v.styles.Muted.Render(" Thinking..."))
		case domain.TurnAnswer:
			b.WriteString(v.styles.Subtitle.Render("Brief: "))
			b.WriteString(v.styles.Normal.Render(turn.Text))
			for i, src := range turn.Sources {
				b.WriteString("\n")
				citation := fmt.Sprintf("[%d] %s p.%d: %s", i+1, src.Filename, src.PageNumber, src.Snippet)
				b.WriteString(v.styles.Citation.Render(citation))
			}
		case domain.TurnError:
			b.WriteString(v.styles.Error.Render("Error: " + turn.Text))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	v.statusbar.SetWidth(v.width)
	b.WriteString(v.statusbar.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Thinking reports whether a submission is outstanding.
func (v *View) Thinking() bool {
	return v.thinking
}

// Err returns the last error shown by the view.
func (v *View) Err() error {
	return v.err
}
