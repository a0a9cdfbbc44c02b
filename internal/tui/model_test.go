package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/chatdb/internal/api"
	apierrors "github.com/diogo/chatdb/internal/errors"
	"github.com/diogo/chatdb/internal/models"
	"github.com/diogo/chatdb/internal/prefs"
	"github.com/diogo/chatdb/internal/render"
)

func newTestModel(t *testing.T, gw api.Gateway, store prefs.Store) Model {
	t.Helper()

	theme, err := prefs.LoadTheme(store)
	if err != nil {
		t.Fatalf("LoadTheme() error: %v", err)
	}
	t.Cleanup(func() {
		render.SetDark(false)
		UpdateTheme()
	})

	m := NewChatModel(gw, theme, render.DefaultOptions(), "http://localhost:5000")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// collect runs cmd and any batched children, returning every message.
// Commands that sleep (cursor blink) must not be passed here.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func replies(msgs []tea.Msg) []replyMsg {
	var out []replyMsg
	for _, msg := range msgs {
		if r, ok := msg.(replyMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

func pressEnter(m Model) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestNewChatModel(t *testing.T) {
	m := newTestModel(t, &api.MockGateway{}, prefs.NewMemoryStore())

	msgs := m.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleSystem || msgs[0].Content != models.WelcomeMessage {
		t.Errorf("first message = %+v, want welcome system message", msgs[0])
	}
	if m.Pending() {
		t.Error("new model should not be pending")
	}
	if m.textarea.Placeholder != models.InputPlaceholder {
		t.Errorf("placeholder = %q", m.textarea.Placeholder)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, &api.MockGateway{}, prefs.NewMemoryStore())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	if !m.ready {
		t.Fatal("model should be ready after a size message")
	}
	if m.viewport.Width != 76 {
		t.Errorf("viewport width = %d, want 76", m.viewport.Width)
	}
	if m.viewport.Height != 11 {
		t.Errorf("viewport height = %d, want 11", m.viewport.Height)
	}

	// Tiny terminals keep a usable message area
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if h := updated.(Model).viewport.Height; h != 5 {
		t.Errorf("viewport height = %d, want minimum 5", h)
	}
}

func TestModel_EnterSubmits(t *testing.T) {
	gw := &api.MockGateway{Result: &models.QueryResult{SQL: "SELECT * FROM users", Result: `[{"id":1}]`}}
	m := newTestModel(t, gw, prefs.NewMemoryStore())

	m.textarea.SetValue("show all users")
	m, cmd := pressEnter(m)

	if m.textarea.Value() != "" {
		t.Errorf("textarea should be cleared, got %q", m.textarea.Value())
	}
	if !m.Pending() {
		t.Error("model should be pending after submit")
	}
	last, _ := m.store.Last()
	if last.Role != models.RoleUser || last.Content != "show all users" {
		t.Errorf("last message = %+v, want the user turn", last)
	}
	if !strings.Contains(m.View(), models.PendingText) {
		t.Error("view should show the pending indicator")
	}

	got := replies(collect(cmd))
	if len(got) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(got))
	}
	if gw.Calls() != 1 || gw.Commands()[0] != "show all users" {
		t.Errorf("gateway commands = %v", gw.Commands())
	}

	updated, _ := m.Update(got[0])
	m = updated.(Model)

	if m.Pending() {
		t.Error("model should not be pending after the reply")
	}
	if m.store.Len() != 3 {
		t.Fatalf("expected 3 messages, got %d", m.store.Len())
	}
	reply, _ := m.store.Last()
	if reply.Role != models.RoleAssistant {
		t.Errorf("reply role = %s", reply.Role)
	}
	if !strings.Contains(reply.Content, "SELECT * FROM users") || !strings.Contains(reply.Content, "\"id\": 1") {
		t.Errorf("reply content = %q", reply.Content)
	}
	if strings.Contains(m.View(), models.PendingText) {
		t.Error("pending indicator should be gone")
	}
}

func TestModel_NewlineKeysDoNotSubmit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}},
		{"ctrl+j", tea.KeyMsg{Type: tea.KeyCtrlJ}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &api.MockGateway{}
			m := newTestModel(t, gw, prefs.NewMemoryStore())
			m.textarea.SetValue("first line")

			updated, _ := m.Update(tt.msg)
			m = updated.(Model)

			if m.store.Len() != 1 {
				t.Errorf("expected no new messages, got %d", m.store.Len())
			}
			if m.Pending() {
				t.Error("newline key must not submit")
			}
			if !strings.Contains(m.textarea.Value(), "\n") {
				t.Errorf("expected a newline in the input, got %q", m.textarea.Value())
			}
			if gw.Calls() != 0 {
				t.Errorf("gateway called %d times", gw.Calls())
			}
		})
	}
}

func TestModel_LongPasteIsKept(t *testing.T) {
	gw := &api.MockGateway{Result: &models.QueryResult{SQL: "SELECT 1"}}
	m := newTestModel(t, gw, prefs.NewMemoryStore())

	long := strings.Repeat("a", 5000)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long), Paste: true})
	m = updated.(Model)

	if got := len(m.textarea.Value()); got != len(long) {
		t.Fatalf("textarea holds %d chars, want %d", got, len(long))
	}

	m, _ = pressEnter(m)
	last, _ := m.store.Last()
	if last.Content != long {
		t.Errorf("submitted %d chars, want %d", len(last.Content), len(long))
	}
}

func TestModel_ManyLinesAreKept(t *testing.T) {
	m := newTestModel(t, &api.MockGateway{}, prefs.NewMemoryStore())

	text := strings.TrimSuffix(strings.Repeat("line\n", 150), "\n")
	m.textarea.SetValue(text)

	if got := m.textarea.Value(); got != text {
		t.Errorf("textarea kept %d lines, want 150", strings.Count(got, "\n")+1)
	}
}

func TestModel_StatusBarCountsQuestions(t *testing.T) {
	gw := &api.MockGateway{Result: &models.QueryResult{SQL: "SELECT 1"}}
	m := newTestModel(t, gw, prefs.NewMemoryStore())

	if !strings.Contains(m.View(), "0 questions") {
		t.Error("a new session should show 0 questions")
	}

	m.textarea.SetValue("first")
	m, _ = pressEnter(m)
	if !strings.Contains(m.View(), "1 question") {
		t.Error("status bar should count the submitted question")
	}

	m.textarea.SetValue("second")
	m, _ = pressEnter(m)
	if !strings.Contains(m.View(), "2 questions") {
		t.Error("status bar should count both questions")
	}
}

func TestModel_BlankInputIgnored(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		gw := &api.MockGateway{}
		m := newTestModel(t, gw, prefs.NewMemoryStore())
		m.textarea.SetValue(input)

		m, cmd := pressEnter(m)

		if cmd != nil {
			t.Errorf("input %q: expected no command", input)
		}
		if m.store.Len() != 1 {
			t.Errorf("input %q: expected no new messages, got %d", input, m.store.Len())
		}
		if m.Pending() {
			t.Errorf("input %q: should not be pending", input)
		}
		if gw.Calls() != 0 {
			t.Errorf("input %q: gateway called", input)
		}
	}
}

func TestModel_OverlappingSubmissions(t *testing.T) {
	gw := &api.MockGateway{Result: &models.QueryResult{SQL: "SELECT 1"}}
	m := newTestModel(t, gw, prefs.NewMemoryStore())

	m.textarea.SetValue("first")
	m, cmd1 := pressEnter(m)
	m.textarea.SetValue("second")
	m, cmd2 := pressEnter(m)

	if m.inFlight != 2 {
		t.Fatalf("inFlight = %d, want 2", m.inFlight)
	}
	if m.store.Count(models.RoleUser) != 2 {
		t.Errorf("expected 2 user messages, got %d", m.store.Count(models.RoleUser))
	}

	// Replies land in arrival order
	r2 := replies(collect(cmd2))
	r1 := replies(collect(cmd1))
	for _, r := range append(r2, r1...) {
		updated, _ := m.Update(r)
		m = updated.(Model)
	}

	if m.Pending() {
		t.Error("all replies arrived; should not be pending")
	}
	if m.store.Count(models.RoleAssistant) != 2 {
		t.Errorf("expected 2 assistant messages, got %d", m.store.Count(models.RoleAssistant))
	}
}

func TestModel_FailureAppendsError(t *testing.T) {
	gw := &api.MockGateway{Err: apierrors.NewRemoteError(400, "/natural-language", "table not found", "")}
	m := newTestModel(t, gw, prefs.NewMemoryStore())

	m.textarea.SetValue("select from nowhere")
	m, cmd := pressEnter(m)
	for _, r := range replies(collect(cmd)) {
		updated, _ := m.Update(r)
		m = updated.(Model)
	}

	last, _ := m.store.Last()
	if !last.IsError() {
		t.Fatalf("expected an error reply, got %+v", last)
	}
	if last.Content != "❌ Error: table not found" {
		t.Errorf("content = %q", last.Content)
	}
	if !strings.Contains(m.View(), "table not found") {
		t.Error("view should show the failure")
	}
}

func TestModel_ToggleTheme(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := newTestModel(t, &api.MockGateway{}, store)

	if !strings.Contains(m.View(), "🌞") {
		t.Error("light mode should show the sun indicator")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)

	if !m.theme.Dark() {
		t.Fatal("expected dark mode after toggle")
	}
	if v, _, _ := store.Get(models.DarkModeKey); v != "true" {
		t.Errorf("persisted value = %q, want true", v)
	}
	if render.GetTUITheme().Name != render.StyleDark {
		t.Errorf("palette = %q, want dark", render.GetTUITheme().Name)
	}
	if m.opts.Style != render.StyleDark {
		t.Errorf("markdown style = %q, want dark", m.opts.Style)
	}
	if !strings.Contains(m.View(), "🌙") {
		t.Error("dark mode should show the moon indicator")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)

	if m.theme.Dark() {
		t.Error("toggling twice should restore light mode")
	}
	if v, _, _ := store.Get(models.DarkModeKey); v != "false" {
		t.Errorf("persisted value = %q, want false", v)
	}
}

func TestModel_StartsInStoredTheme(t *testing.T) {
	store := prefs.NewMemoryStore()
	_ = store.Set(models.DarkModeKey, "true")

	m := newTestModel(t, &api.MockGateway{}, store)

	if !m.theme.Dark() || m.opts.Style != render.StyleDark {
		t.Error("model should start in dark mode")
	}
	if render.GetTUITheme().Name != render.StyleDark {
		t.Error("palette should start dark")
	}
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, nil }
func (brokenStore) Set(string, string) error { return errors.New("disk full") }

func TestModel_ToggleThemeFailure(t *testing.T) {
	m := newTestModel(t, &api.MockGateway{}, brokenStore{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)

	if m.theme.Dark() {
		t.Error("failed toggle must leave the mode unchanged")
	}
	if !strings.Contains(m.notice, "disk full") {
		t.Errorf("notice = %q, want the write error", m.notice)
	}
}

func TestModel_CopyLastSQL(t *testing.T) {
	var copied []string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	defer func() { writeClipboard = orig }()

	m := newTestModel(t, &api.MockGateway{}, prefs.NewMemoryStore())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = updated.(Model)
	if len(copied) != 0 {
		t.Error("nothing should be copied before a reply")
	}
	if m.notice == "" {
		t.Error("expected a notice when there is no SQL")
	}

	for _, sql := range []string{"SELECT 1", "SELECT 2"} {
		updated, _ = m.Update(replyMsg{message: models.Message{Role: models.RoleAssistant, Content: "x", SQL: sql}})
		m = updated.(Model)
	}
	updated, _ = m.Update(replyMsg{message: models.Message{Role: models.RoleAssistant, Content: models.ErrorPrefix + "boom"}})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = updated.(Model)

	if len(copied) != 1 || copied[0] != "SELECT 2" {
		t.Errorf("copied = %v, want [SELECT 2]", copied)
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, &api.MockGateway{}, prefs.NewMemoryStore())

		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
		if m.ctx.Err() == nil {
			t.Errorf("%s: in-flight context should be cancelled", msg)
		}
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, &api.MockGateway{}, prefs.NewMemoryStore())
	m.store = m.store.Append(
		models.Message{Role: models.RoleUser, Content: "Hello"},
		models.Message{Role: models.RoleAssistant, Content: "plain reply"},
	)
	m.updateViewport()

	view := m.View()
	for _, want := range []string{models.AppTitle, models.WelcomeMessage, "Hello", "plain reply", "Send"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestModel_View_NotReady(t *testing.T) {
	m := Model{}
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("unsized model should show the initializing text")
	}
}
