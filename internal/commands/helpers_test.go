package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diogo/chatdb/internal/api"
	"github.com/diogo/chatdb/internal/prefs"
	"github.com/diogo/chatdb/internal/render"
)

// mockTUI records the chat launch instead of taking over the terminal
type mockTUI struct {
	calls    int
	gateway  api.Gateway
	theme    *prefs.Theme
	opts     render.Options
	endpoint string
	err      error
}

func (m *mockTUI) RunChat(gw api.Gateway, theme *prefs.Theme, opts render.Options, endpoint string) error {
	m.calls++
	m.gateway = gw
	m.theme = theme
	m.opts = opts
	m.endpoint = endpoint
	return m.err
}

// testEnv is a command tree wired to in-memory fakes
type testEnv struct {
	deps      *Dependencies
	gateway   *api.MockGateway
	tui       *mockTUI
	prefs     *prefs.MemoryStore
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	baseURLs  []string
	timeouts  []int
	clipboard []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("CHATDB_CONFIG_DIR", t.TempDir())
	t.Setenv("CHATDB_BASE_URL", "")
	t.Setenv("GLAMOUR_STYLE", "")

	env := &testEnv{
		gateway: &api.MockGateway{},
		tui:     &mockTUI{},
		prefs:   prefs.NewMemoryStore(),
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}

	env.deps = &Dependencies{
		NewGateway: func(baseURL string, timeoutSeconds int) (api.Gateway, error) {
			env.baseURLs = append(env.baseURLs, baseURL)
			env.timeouts = append(env.timeouts, timeoutSeconds)
			return env.gateway, nil
		},
		Prefs:  env.prefs,
		TUI:    env.tui,
		Stdout: env.stdout,
		Stderr: env.stderr,
		IsTTY:  func() bool { return false },
		Clipboard: func(text string) error {
			env.clipboard = append(env.clipboard, text)
			return nil
		},
	}
	return env
}

// run executes the command tree with args and optional stdin
func (e *testEnv) run(stdin string, args ...string) error {
	if stdin != "" {
		e.deps.Stdin = strings.NewReader(stdin)
	}
	cmd := NewRootCmd(e.deps)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}
