package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/chatdb/internal/prefs"
)

func newThemeCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the chat color theme",
		Long:  `Print whether the chat view starts in light or dark mode.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := themeForCommand(deps, opts)
			if err != nil {
				return err
			}
			printTheme(deps, theme)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := themeForCommand(deps, opts)
			if err != nil {
				return err
			}
			if _, err := theme.Toggle(); err != nil {
				return err
			}
			printTheme(deps, theme)
			return nil
		},
	})

	return cmd
}

func themeForCommand(deps *Dependencies, opts *rootOptions) (*prefs.Theme, error) {
	if _, err := loadApp(deps, opts); err != nil {
		return nil, err
	}
	return loadTheme(deps)
}

func printTheme(deps *Dependencies, theme *prefs.Theme) {
	icon := "🌞"
	if theme.Dark() {
		icon = "🌙"
	}
	fmt.Fprintf(deps.Stdout, "%s %s\n", icon, theme.Name())
}
