package main

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/jtwebb/tokenize-comment/extract"
	"github.com/jtwebb/tokenize-comment/log"
	"github.com/jtwebb/tokenize-comment/output"
)

// ErrNotTerminal is returned by browse when stdout is not a terminal.
var ErrNotTerminal = errors.New("standard output is not a terminal")

const (
	logHistory    = 200
	logPaneLines  = 5
	defaultWidth  = 100
	defaultHeight = 30
	// Rows used outside the list and log panes.
	chromeLines   = 3
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [flags] [file|directory] ...",
		Short: "Browse tokenized comments interactively",
		Long: `browse tokenizes the given files and directories (the current directory by
default) and shows the results in a terminal view. Log records are shown in a
pane at the bottom instead of being written over the view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.isTerminal() {
				return ErrNotTerminal
			}

			return a.runBrowse(cmd, args)
		},
	}
}

func (a *app) runBrowse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	for _, arg := range args {
		if arg == extract.Stdin {
			return fmt.Errorf("%w: browse cannot read comments from stdin", extract.ErrInvalidOption)
		}
	}

	pub := log.NewPublisher(log.WithHistory(logHistory))
	defer pub.Close() //nolint:errcheck // Close always returns nil.

	logger, err := a.logCfg.NewLogger(pub)
	if err != nil {
		return err
	}

	docs, readErr := a.collect(cmd, logger, args)
	if docs == nil {
		return readErr
	}

	sub := pub.Subscribe()
	defer sub.Close()

	_, err = tea.NewProgram(newBrowser(docs, sub)).Run()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return readErr
}

// logMsg carries one log record from the publisher to the view.
type logMsg string

// browser is the bubbletea model for the browse command.
type browser struct {
	sub    *log.Subscription
	docs   []output.Document
	logs   []string
	width  int
	height int
	cursor int
	offset int // Index of the first visible list row.
}

func newBrowser(docs []output.Document, sub *log.Subscription) *browser {
	return &browser{
		sub:    sub,
		docs:   docs,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Init starts listening for log records.
func (b *browser) Init() tea.Cmd {
	return b.waitForLog()
}

func (b *browser) waitForLog() tea.Cmd {
	if b.sub == nil {
		return nil
	}

	ch := b.sub.C()

	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}

		return logMsg(entry)
	}
}

// Update handles key, resize, and log messages.
func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return b, b.onKey(msg.String())

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.scroll()

	case logMsg:
		b.appendLog(string(msg))

		return b, b.waitForLog()
	}

	return b, nil
}

func (b *browser) onKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case "j", "down":
		b.cursor = min(b.cursor+1, max(len(b.docs)-1, 0))
	case "k", "up":
		b.cursor = max(b.cursor-1, 0)
	case "g", "home":
		b.cursor = 0
	case "G", "end":
		b.cursor = max(len(b.docs)-1, 0)
	}

	b.scroll()

	return nil
}

func (b *browser) appendLog(entry string) {
	for line := range strings.SplitSeq(strings.TrimRight(entry, "\n"), "\n") {
		b.logs = append(b.logs, line)
	}

	if len(b.logs) > logPaneLines {
		b.logs = b.logs[len(b.logs)-logPaneLines:]
	}
}

// listRows is the number of list entries that fit on screen.
func (b *browser) listRows() int {
	return max(b.height-chromeLines-logPaneLines, 1)
}

// scroll moves the visible window so the cursor stays on screen.
func (b *browser) scroll() {
	rows := b.listRows()

	switch {
	case b.cursor < b.offset:
		b.offset = b.cursor
	case b.cursor >= b.offset+rows:
		b.offset = b.cursor - rows + 1
	}
}

// View renders the list, detail, and log panes.
func (b *browser) View() tea.View {
	v := tea.NewView(b.render())
	v.AltScreen = true

	return v
}

func (b *browser) render() string {
	listWidth := min(max(b.width*2/5, 24), 60)
	detailWidth := max(b.width-listWidth-2, 20)
	rows := b.listRows()

	header := headerStyle.Render(fmt.Sprintf("tokenize-comment: %d comments", len(b.docs)))

	list := lipgloss.NewStyle().Width(listWidth).MaxHeight(rows).Render(b.renderList(listWidth, rows))
	detail := lipgloss.NewStyle().Width(detailWidth).MaxHeight(rows).PaddingLeft(2).Render(b.renderDetail())
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)

	logs := make([]string, logPaneLines)
	copy(logs, b.logs)

	help := faintStyle.Render("j/k: move  g/G: first/last  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		faintStyle.Render("logs"),
		strings.Join(logs, "\n"),
		help,
	)
}

func (b *browser) renderList(width, rows int) string {
	if len(b.docs) == 0 {
		return faintStyle.Render("no comments found")
	}

	end := min(b.offset+rows, len(b.docs))
	lines := make([]string, 0, end-b.offset)

	for i := b.offset; i < end; i++ {
		label := truncate(entryLabel(b.docs[i]), width-2)
		if i == b.cursor {
			lines = append(lines, selectedStyle.Render("> "+label))

			continue
		}

		lines = append(lines, "  "+label)
	}

	return strings.Join(lines, "\n")
}

func (b *browser) renderDetail() string {
	if len(b.docs) == 0 {
		return ""
	}

	doc := b.docs[b.cursor]

	var sb strings.Builder

	sb.WriteString(headerStyle.Render(location(doc)))
	sb.WriteString("\n\n")

	if doc.Comment.Description != "" {
		sb.WriteString(doc.Comment.Description)
		sb.WriteString("\n\n")
	}

	// Tags are grouped under their key, keys in order of first appearance.
	seen := make(map[string]bool)

	for _, t := range doc.Comment.Tags {
		if seen[t.Key] {
			continue
		}

		seen[t.Key] = true

		sb.WriteString(keyStyle.Render("@" + t.Key))
		sb.WriteString("\n")

		for _, tag := range doc.Comment.TagsByKey(t.Key) {
			if tag.Val != "" {
				sb.WriteString("  " + tag.Val + "\n")
			}
		}
	}

	for _, ex := range doc.Comment.Examples {
		sb.WriteString("\n")
		sb.WriteString(keyStyle.Render("@" + ex.Key))
		sb.WriteString("\n")
		sb.WriteString(ex.Val)
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func location(doc output.Document) string {
	switch {
	case doc.Line == 0:
		return doc.File
	case doc.EndLine > doc.Line:
		return fmt.Sprintf("%s:%d-%d", doc.File, doc.Line, doc.EndLine)
	}

	return fmt.Sprintf("%s:%d", doc.File, doc.Line)
}

// entryLabel is the one-line list entry for doc: its location and the first
// line of its description.
func entryLabel(doc output.Document) string {
	label := fmt.Sprintf("%s:%d", doc.File, doc.Line)

	first, _, _ := strings.Cut(doc.Comment.Description, "\n")
	if first != "" {
		label += " " + first
	}

	return label
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	if n <= 1 {
		return string(r[:max(n, 0)])
	}

	return string(r[:n-1]) + "…"
}
