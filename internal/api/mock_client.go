package api

import (
	"context"
	"sync"

	"github.com/diogo/chatdb/internal/models"
)

// MockGateway is a mock implementation of Gateway for testing
type MockGateway struct {
	// Mock return values
	Result *models.QueryResult
	Err    error

	// SubmitFunc, when set, takes precedence over Result/Err
	SubmitFunc func(ctx context.Context, command string) (*models.QueryResult, error)

	mu       sync.Mutex
	commands []string
}

// Ensure MockGateway implements Gateway
var _ Gateway = (*MockGateway)(nil)

// Submit records the command and returns the configured outcome
func (m *MockGateway) Submit(ctx context.Context, command string) (*models.QueryResult, error) {
	m.mu.Lock()
	m.commands = append(m.commands, command)
	fn := m.SubmitFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, command)
	}
	return m.Result, m.Err
}

// Calls returns how many times Submit was called
func (m *MockGateway) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.commands)
}

// Commands returns every submitted command in call order
func (m *MockGateway) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.commands))
	copy(out, m.commands)
	return out
}
