package models

import "strings"

// Role identifies who authored a chat turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in the conversation. Messages are values and are
// never edited after creation.
type Message struct {
	Role    Role
	Content string
	// Markdown is an optional display form of Content. Empty means
	// Content is shown as plain text.
	Markdown string
	// SQL is the generated query for a successful reply
	SQL string
}

// IsError reports whether the message is a rendered gateway failure
func (m Message) IsError() bool {
	return m.Role == RoleAssistant && strings.HasPrefix(m.Content, ErrorPrefix)
}
