package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// MarkdownRenderer wraps glamour.TermRenderer for rendering model replies.
// Output here is one-shot, so unlike a resizable viewport the width is fixed
// at creation.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

func NewMarkdownRenderer(glamourStyle string, width int) *MarkdownRenderer {
	renderer, err := glamour.NewTermRenderer(
		// glamour.WithAutoStyle() hangs on an ENOTTY when stdout is a pipe
		glamour.WithStylePath(glamourStyle),
		glamour.WithEmoji(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		renderer = nil
	}
	return &MarkdownRenderer{renderer: renderer, width: width}
}

// Render renders Markdown, falling back to word-wrapped plain text when the
// renderer is unavailable or fails.
func (md *MarkdownRenderer) Render(markdown string) string {
	if md.renderer == nil {
		return wordwrap.String(markdown, md.width)
	}
	output, err := md.renderer.Render(markdown)
	if err != nil {
		return wordwrap.String(markdown, md.width)
	}
	return output
}
