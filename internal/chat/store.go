// Package chat holds the conversation state and the send sequence shared
// by the chat view and the one-shot command.
package chat

import "github.com/diogo/chatdb/internal/models"

// Store is an append-only, insertion-ordered list of messages.
// The zero value is an empty store. Append never mutates the receiver.
type Store struct {
	messages []models.Message
}

// NewStore creates a store seeded with the given messages
func NewStore(initial ...models.Message) Store {
	return Store{}.Append(initial...)
}

// NewSession creates a store holding the welcome system message
func NewSession() Store {
	return NewStore(models.Message{Role: models.RoleSystem, Content: models.WelcomeMessage})
}

// Append returns a new store with msgs at the tail
func (s Store) Append(msgs ...models.Message) Store {
	next := make([]models.Message, len(s.messages), len(s.messages)+len(msgs))
	copy(next, s.messages)
	next = append(next, msgs...)
	return Store{messages: next}
}

// Messages returns a copy of all messages in append order
func (s Store) Messages() []models.Message {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages
func (s Store) Len() int {
	return len(s.messages)
}

// Last returns the most recent message
func (s Store) Last() (models.Message, bool) {
	if len(s.messages) == 0 {
		return models.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Count returns how many messages have the given role
func (s Store) Count(role models.Role) int {
	n := 0
	for _, m := range s.messages {
		if m.Role == role {
			n++
		}
	}
	return n
}
