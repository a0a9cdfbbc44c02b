package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/chatdb/internal/logger"
	"github.com/diogo/chatdb/internal/render"
)

func newChatCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with the query service.

Enter sends the question; Alt+Enter or Ctrl+J inserts a newline.
Ctrl+T switches between light and dark mode, Ctrl+Y copies the last
generated SQL. Press Esc or Ctrl+C to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(deps, opts)
		},
	}
}

func runChat(deps *Dependencies, opts *rootOptions) error {
	a, err := loadApp(deps, opts)
	if err != nil {
		return err
	}

	gw, err := deps.NewGateway(a.baseURL, a.cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	theme, err := loadTheme(deps)
	if err != nil {
		// An unreadable preference file starts the chat in light mode
		logger.Warn("%v", err)
		fmt.Fprintf(deps.Stderr, "Warning: %v\n", err)
		if theme == nil {
			return err
		}
	}

	logger.Info("starting chat endpoint=%s theme=%s", a.endpoint(), theme.Name())

	renderOpts := render.LoadOptionsFromConfig(a.cfg, theme.Dark())
	return deps.TUI.RunChat(gw, theme, renderOpts, a.endpoint())
}
