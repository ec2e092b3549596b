// Package play implements the interactive playground: an editor whose
// contents are reparsed and re-highlighted on every change.
package play

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/lyqlplay/internal/ui/pretty"
	"github.com/yaklabco/lyqlplay/pkg/adapter"
	"github.com/yaklabco/lyqlplay/pkg/config"
	"github.com/yaklabco/lyqlplay/pkg/hosttree"
	"github.com/yaklabco/lyqlplay/pkg/render"
)

// View modes of the preview pane.
const (
	ViewHighlight = iota
	ViewTree
)

// chromeHeight is the rows used by the title and status lines.
const chromeHeight = 2

// Options configures a playground session.
type Options struct {
	Adapter  *adapter.Adapter
	Language string
	Filename string
	Text     string
	OnError  config.OnError
	Theme    render.Theme
	Styles   *pretty.Styles
}

// Model is the bubbletea model of the playground.
type Model struct {
	ctx  context.Context
	opts Options

	editor  textarea.Model
	preview viewport.Model

	text       string
	result     adapter.Result
	highlights []render.Highlight
	viewMode   int

	width  int
	height int
}

// New creates a model and runs the first pass over opts.Text.
func New(ctx context.Context, opts Options) *Model {
	if opts.OnError == "" {
		opts.OnError = config.OnErrorReset
	}
	if opts.Styles == nil {
		opts.Styles = pretty.NewStyles(false)
	}

	editor := textarea.New()
	editor.CharLimit = 0
	editor.ShowLineNumbers = true
	editor.Placeholder = "Type a query..."
	editor.SetValue(opts.Text)
	editor.Focus()

	m := &Model{
		ctx:     ctx,
		opts:    opts,
		editor:  editor,
		preview: viewport.New(0, 0),
		text:    editor.Value(),
	}
	m.reparse()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.viewMode = (m.viewMode + 1) % 2
			m.refreshPreview()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if text := m.editor.Value(); text != m.text {
		m.text = text
		m.reparse()
	}
	return m, cmd
}

// reparse runs one full pass over the current text. Each pass supersedes
// the previous one.
func (m *Model) reparse() {
	m.result = m.opts.Adapter.Reparse(m.ctx, m.text)

	switch {
	case m.result.OK():
		m.highlights = render.Highlights(m.result.Tree, len(m.text))
	case m.opts.OnError == config.OnErrorKeep:
		// Offsets may now overrun the text; rendering clips them.
	default:
		m.highlights = render.Highlights(hosttree.Empty, len(m.text))
	}
	m.refreshPreview()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	paneWidth := max(width/2-1, 1)
	paneHeight := max(height-chromeHeight, 1)

	m.editor.SetWidth(paneWidth)
	m.editor.SetHeight(paneHeight)
	m.preview.Width = paneWidth
	m.preview.Height = paneHeight
	m.refreshPreview()
}

func (m *Model) refreshPreview() {
	var b strings.Builder
	if m.viewMode == ViewTree {
		if err := hosttree.Encode(&b, m.result.Tree, hosttree.FormatText); err != nil {
			b.WriteString(err.Error())
		}
	} else if err := render.ANSI(&b, m.text, m.visibleHighlights(), m.opts.Theme); err != nil {
		b.WriteString(err.Error())
	}
	m.preview.SetContent(b.String())
}

// visibleHighlights drops runs that no longer fit the text.
func (m *Model) visibleHighlights() []render.Highlight {
	out := m.highlights[:0:0]
	for _, h := range m.highlights {
		if h.From < len(m.text) {
			h.To = min(h.To, len(m.text))
			out = append(out, h)
		}
	}
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	styles := m.opts.Styles

	title := styles.Title.Render("lyqlplay") + " " + styles.Dim.Render(m.opts.Filename)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), " ", m.preview.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, panes, m.status())
}

// status renders the bottom line: language, cached node types and the
// outcome of the last pass.
func (m *Model) status() string {
	styles := m.opts.Styles

	outcome := styles.Success.Render("ok")
	if m.result.Err != nil {
		outcome = styles.Error.Render(m.result.Err.Error())
	}

	line := fmt.Sprintf("%s | %d node types | %s", m.opts.Language, m.opts.Adapter.Builder().Types().Len(), outcome)
	help := styles.Help.Render("ctrl+t tree/highlight · esc quit")
	return styles.StatusBar.Render(line) + " " + help
}

// Text returns the editor contents.
func (m *Model) Text() string { return m.text }

// Result returns the outcome of the last pass.
func (m *Model) Result() adapter.Result { return m.result }

// Highlights returns the runs currently displayed.
func (m *Model) Highlights() []render.Highlight { return m.highlights }

// ViewMode returns the active preview mode.
func (m *Model) ViewMode() int { return m.viewMode }

// Run starts the playground on the terminal and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	program := tea.NewProgram(
		New(ctx, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
