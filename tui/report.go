/*
 * Formats and prints the outcome of a prompt cycle: elapsed time, token
 * usage, cost, and the reply text. Best-effort only; nothing here fails.
 */
package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/danromik/Chatbots/models"
)

type Reporter struct {
	Out io.Writer

	renderer *MarkdownRenderer
}

func NewReporter(out io.Writer, glamourStyle string, width int) *Reporter {
	return &Reporter{
		Out:      out,
		renderer: NewMarkdownRenderer(glamourStyle, width),
	}
}

// Report prints the stats line followed by the reply rendered as Markdown.
func (r *Reporter) Report(res *models.Result) {
	stats := fmt.Sprintf("[ %.2fs · %d prompt + %d completion tokens · $%.4f ]",
		res.Elapsed.Seconds(), res.PromptTokens, res.CompletionTokens, res.Cost)
	fmt.Fprintf(r.Out, "\n%s\n\n", ReportStyles.Stats.Render(stats))
	fmt.Fprintln(r.Out, r.renderer.Render(res.Reply))
}

// ReportError prints a request failure in a form matching its kind. Errors
// shown here are terminal for the cycle but not for the process exit code.
func (r *Reporter) ReportError(err error) {
	var (
		authErr *models.AuthError
		netErr  *models.NetworkError
		apiErr  *models.APIError
	)
	var msg string
	switch {
	case errors.As(err, &authErr):
		msg = authErr.Error()
	case errors.As(err, &netErr):
		msg = netErr.Error()
	case errors.As(err, &apiErr):
		msg = apiErr.Error()
	default:
		msg = fmt.Sprintf("error: %v", err)
	}
	fmt.Fprintf(r.Out, "\n%s\n", ReportStyles.ErrorText.Render(msg))
}

// Banner prints the capture instructions shown before typing begins.
func (r *Reporter) Banner(text string) {
	fmt.Fprintf(r.Out, "%s\n\n", ReportStyles.Banner.Render(text))
}

// Notice prints a one-line status message ("Aborted.", "Submitting prompt...").
func (r *Reporter) Notice(text string) {
	fmt.Fprintf(r.Out, "%s\n", ReportStyles.Notice.Render(text))
}
