package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/chatdb/internal/config"
)

var (
	configKeyStyle   = lipgloss.NewStyle().Foreground(colorTextDim).Width(20)
	configValueStyle = lipgloss.NewStyle().Foreground(colorText)
)

func newConfigCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration chatdb runs with, after applying the config
file, the environment (including .env) and the command line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(deps, opts)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(deps, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

func showConfig(deps *Dependencies, opts *rootOptions) error {
	a, err := loadApp(deps, opts)
	if err != nil {
		return err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath += " (not found, using defaults)"
	}
	prefsPath, err := config.GetPreferencesPath()
	if err != nil {
		return err
	}
	logPath, err := config.GetLogPath()
	if err != nil {
		return err
	}

	timeout := "none"
	if a.cfg.RequestTimeout > 0 {
		timeout = fmt.Sprintf("%ds", a.cfg.RequestTimeout)
	}

	themeName := "unknown"
	if theme, err := loadTheme(deps); err == nil {
		themeName = theme.Name()
	}

	rows := [][2]string{
		{"Config file", configPath},
		{"Preferences", prefsPath},
		{"Log file", logPath},
		{"Endpoint", a.endpoint()},
		{"Request timeout", timeout},
		{"Copy to clipboard", fmt.Sprintf("%t", a.cfg.CopyToClipboard)},
		{"Verbose", fmt.Sprintf("%t", a.cfg.Verbose)},
		{"Theme", themeName},
	}
	for _, row := range rows {
		fmt.Fprintln(deps.Stdout, configKeyStyle.Render(row[0])+configValueStyle.Render(row[1]))
	}
	return nil
}

func initConfig(deps *Dependencies, force bool) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote default config to %s\n", path)
	return nil
}
