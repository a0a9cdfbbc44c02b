package commands

import (
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/diogo/chatdb/internal/api"
	"github.com/diogo/chatdb/internal/prefs"
	"github.com/diogo/chatdb/internal/render"
	"github.com/diogo/chatdb/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(gw api.Gateway, theme *prefs.Theme, opts render.Options, endpoint string) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewGateway builds the query client for a service root
	NewGateway func(baseURL string, timeoutSeconds int) (api.Gateway, error)

	// Prefs is the preference store. Nil means the file in the config dir.
	Prefs prefs.Store

	// TUI is the terminal user interface.
	TUI TUIInterface

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsTTY reports whether stdout is a terminal; decorated output needs one
	IsTTY func() bool

	Clipboard func(text string) error
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(gw api.Gateway, theme *prefs.Theme, opts render.Options, endpoint string) error {
	return tui.RunChat(gw, theme, opts, endpoint)
}

func newGateway(baseURL string, timeoutSeconds int) (api.Gateway, error) {
	return api.NewClient(
		api.WithBaseURL(baseURL),
		api.WithTimeout(timeoutSeconds),
	)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewGateway: newGateway,
		TUI:        &DefaultTUI{},
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTTY:      isStdoutTTY,
		Clipboard:  clipboard.WriteAll,
	}
}
