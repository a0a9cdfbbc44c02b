package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/diogo/chatdb/internal/chat"
	apierrors "github.com/diogo/chatdb/internal/errors"
	"github.com/diogo/chatdb/internal/logger"
	"github.com/diogo/chatdb/internal/models"
	"github.com/diogo/chatdb/internal/render"
)

// Gradient colors for animation
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#2563eb"),
	lipgloss.Color("#3b82f6"),
	lipgloss.Color("#60a5fa"),
	lipgloss.Color("#93c5fd"),
	lipgloss.Color("#fde047"),
	lipgloss.Color("#eab308"),
}

var (
	colorText     = lipgloss.Color("#e5e7eb")
	colorTextDim  = lipgloss.Color("#9ca3af")
	colorTextMute = lipgloss.Color("#6b7280")
	colorSuccess  = lipgloss.Color("#22c55e")
	colorError    = lipgloss.Color("#f87171")
	colorPrimary  = lipgloss.Color("#2563eb")
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginBottom(0)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// spinner handles the animated loading indicator
type spinner struct {
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool // Flag to prevent double-close
}

// newSpinner creates a new animated spinner writing to out
func newSpinner(out io.Writer, message string) *spinner {
	return &spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(s.out, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(s.out, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

// render draws the current animation frame
func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	spinIdx := s.frame % len(chars)
	spinColor := gradientColors[s.frame%len(gradientColors)]
	spinnerChar := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	var dots strings.Builder
	numDots := (s.frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < numDots {
			dotColor := gradientColors[(s.frame+i)%len(gradientColors)]
			dots.WriteString(lipgloss.NewStyle().Foreground(dotColor).Render("●"))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(colorTextMute).Render("○"))
		}
	}

	msg := lipgloss.NewStyle().Foreground(colorText).Render(s.message)

	fmt.Fprintf(s.out, "\r\033[K%s %s %s", spinnerChar, msg, dots.String())
}

// stopOnce safely closes the stop channel only once
func (s *spinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

// stopWithSuccess stops the spinner and shows success message
func (s *spinner) stopWithSuccess(message string) {
	s.stopOnce()
	<-s.done

	checkmark := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("✓")
	msg := lipgloss.NewStyle().Foreground(colorSuccess).Render(message)
	fmt.Fprintf(s.out, "%s %s\n", checkmark, msg)
}

// stopWithError stops the spinner and shows nothing
func (s *spinner) stopWithError() {
	s.stopOnce()
	<-s.done
}

// runQuery submits a single question and prints the reply.
// Without a terminal, or with --raw, only the plain reply is printed.
func runQuery(ctx context.Context, deps *Dependencies, opts *rootOptions, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}

	a, err := loadApp(deps, opts)
	if err != nil {
		return err
	}

	rawOutput := opts.raw || !deps.IsTTY()
	verbose := a.cfg.Verbose && !rawOutput

	if verbose {
		fmt.Fprintf(deps.Stderr, "[verbose] Endpoint: %s\n", a.endpoint())
	}

	gw, err := deps.NewGateway(a.baseURL, a.cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	var spin *spinner
	if !rawOutput {
		spin = newSpinner(deps.Stderr, strings.TrimSuffix(models.PendingText, "..."))
		spin.start()
	}

	startTime := time.Now()
	result, err := gw.Submit(ctx, question)
	requestDuration := time.Since(startTime)

	if err != nil {
		if apierrors.IsGatewayError(err) {
			logger.Warn("one-shot query failed endpoint=%s status=%d: %v", apierrors.GetEndpoint(err), apierrors.GetHTTPStatus(err), err)
		} else {
			logger.Warn("one-shot query failed: %v", err)
		}
		if rawOutput {
			fmt.Fprintln(deps.Stderr, chat.FormatFailure(err).Content)
		} else {
			spin.stopWithError()
			fmt.Fprintln(deps.Stderr, formatErrorMessage(err, "Query failed"))
		}
		return fmt.Errorf("query failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Done")
	}

	if verbose {
		fmt.Fprintf(deps.Stderr, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
		if result.HasResult() {
			fmt.Fprintf(deps.Stderr, "[verbose] Response includes a result (%d bytes)\n", len(result.Result))
		}
	}

	reply := chat.FormatReply(result)

	if rawOutput {
		if opts.output != "" {
			if err := os.WriteFile(opts.output, []byte(reply.Content+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Fprintln(deps.Stdout, reply.Content)
		return nil
	}

	fmt.Fprintln(deps.Stderr)

	if a.cfg.CopyToClipboard {
		copyReply(deps, reply)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(reply.Content+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Reply saved to %s", opts.output),
		)
		fmt.Fprintln(deps.Stderr, successMsg)
		return nil
	}

	dark := false
	if theme, err := loadTheme(deps); err == nil {
		dark = theme.Dark()
	}

	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	fmt.Fprintln(deps.Stdout, assistantLabelStyle.Render(models.AppTitle))

	renderOpts := render.LoadOptionsFromConfigWithWidth(a.cfg, dark, contentWidth)
	body := render.Reply(reply.Content, reply.Markdown, renderOpts)
	fmt.Fprintln(deps.Stdout, assistantBubbleStyle.Width(bubbleWidth).Render(body))

	return nil
}

// copyReply puts the generated SQL on the clipboard, or the whole reply
// when there is none. Failures only warn.
func copyReply(deps *Dependencies, reply models.Message) {
	text := reply.SQL
	if text == "" {
		text = reply.Content
	}

	if err := deps.Clipboard(text); err != nil {
		warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
			fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
		)
		fmt.Fprintln(deps.Stderr, warnMsg)
		return
	}
	clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
	fmt.Fprintln(deps.Stderr, clipMsg)
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func indentBody(body string) string {
	return strings.ReplaceAll(body, "\n", "\n  ")
}

// formatErrorMessage formats an error with additional context from gateway errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %s", context, apierrors.UserMessage(err))))

	gwErr, ok := apierrors.AsGatewayError(err)
	if !ok {
		return sb.String()
	}

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	body := apierrors.GetResponseBody(err)
	switch gwErr.Kind {
	case apierrors.KindTransport:
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the query service is running and --endpoint is correct"))
	case apierrors.KindParse:
		sb.WriteString(dimStyle.Render("\n  Hint: The service answered with something other than a JSON object"))
		if body != "" {
			sb.WriteString(dimStyle.Render("\n\n  " + indentBody(body)))
		}
	case apierrors.KindRemote:
		// Raw body only when no error text came out of it
		if body != "" && !strings.Contains(body, gwErr.Message) {
			sb.WriteString(dimStyle.Render("\n  Response: " + indentBody(body)))
		}
	}

	return sb.String()
}
