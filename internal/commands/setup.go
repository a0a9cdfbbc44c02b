package commands

import (
	"fmt"
	"io"

	"github.com/diogo/chatdb/internal/config"
	"github.com/diogo/chatdb/internal/logger"
	"github.com/diogo/chatdb/internal/models"
	"github.com/diogo/chatdb/internal/prefs"
)

// app is the resolved runtime settings shared by every command
type app struct {
	cfg     config.Config
	baseURL string
}

// endpoint returns the full query URL
func (a *app) endpoint() string {
	return a.baseURL + models.PathQuery
}

// loadApp loads .env, the config file and the flags, then starts logging
func loadApp(deps *Dependencies, opts *rootOptions) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		cfg.Verbose = true
	}

	initLogging(deps.Stderr, cfg.Verbose)

	a := &app{
		cfg:     cfg,
		baseURL: config.ResolveBaseURL(opts.endpoint, cfg),
	}
	logger.Debug("resolved endpoint=%s timeout=%ds", a.endpoint(), cfg.RequestTimeout)
	return a, nil
}

func initLogging(stderr io.Writer, verbose bool) {
	logger.SetDebug(verbose)

	path, err := config.GetLogPath()
	if err == nil {
		err = logger.Init(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}
}

// openPrefs returns the injected store or the preferences file
func openPrefs(deps *Dependencies) (prefs.Store, error) {
	if deps.Prefs != nil {
		return deps.Prefs, nil
	}
	path, err := config.GetPreferencesPath()
	if err != nil {
		return nil, err
	}
	return prefs.NewFileStore(path), nil
}

// loadTheme reads the dark-mode flag
func loadTheme(deps *Dependencies) (*prefs.Theme, error) {
	store, err := openPrefs(deps)
	if err != nil {
		return nil, err
	}
	return prefs.LoadTheme(store)
}
