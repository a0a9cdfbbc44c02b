package chat

import (
	"testing"

	"github.com/diogo/chatdb/internal/models"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	first, _ := s.Last()
	if first.Role != models.RoleSystem || first.Content != models.WelcomeMessage {
		t.Errorf("first message = %+v, want the welcome system message", first)
	}
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Last(); ok {
		t.Error("Last() on empty store should report false")
	}
	if len(s.Messages()) != 0 {
		t.Error("Messages() should be empty")
	}
}

func TestStore_AppendIsImmutable(t *testing.T) {
	base := NewStore(models.Message{Role: models.RoleUser, Content: "a"})
	next := base.Append(models.Message{Role: models.RoleAssistant, Content: "b"})

	if base.Len() != 1 {
		t.Errorf("original store changed: Len() = %d, want 1", base.Len())
	}
	if next.Len() != 2 {
		t.Errorf("Len() = %d, want 2", next.Len())
	}

	// Appending twice to the same base must not share a backing array
	other := base.Append(models.Message{Role: models.RoleAssistant, Content: "c"})
	if last, _ := next.Last(); last.Content != "b" {
		t.Errorf("sibling append clobbered message: got %q", last.Content)
	}
	if last, _ := other.Last(); last.Content != "c" {
		t.Errorf("Last() = %q, want c", last.Content)
	}
}

func TestStore_MessagesReturnsCopy(t *testing.T) {
	s := NewStore(models.Message{Role: models.RoleUser, Content: "original"})

	msgs := s.Messages()
	msgs[0].Content = "changed"

	if got := s.Messages()[0].Content; got != "original" {
		t.Errorf("store mutated through Messages(): %q", got)
	}
}

func TestStore_Order(t *testing.T) {
	var s Store
	contents := []string{"one", "two", "three", "four"}
	for _, c := range contents {
		s = s.Append(models.Message{Role: models.RoleUser, Content: c})
	}

	for i, m := range s.Messages() {
		if m.Content != contents[i] {
			t.Errorf("message %d = %q, want %q", i, m.Content, contents[i])
		}
	}
}

func TestStore_Count(t *testing.T) {
	s := NewSession().
		Append(UserMessage("q1")).
		Append(models.Message{Role: models.RoleAssistant, Content: "a1"}).
		Append(UserMessage("q2"))

	if got := s.Count(models.RoleUser); got != 2 {
		t.Errorf("Count(user) = %d, want 2", got)
	}
	if got := s.Count(models.RoleAssistant); got != 1 {
		t.Errorf("Count(assistant) = %d, want 1", got)
	}
	if got := s.Count(models.RoleSystem); got != 1 {
		t.Errorf("Count(system) = %d, want 1", got)
	}
}
