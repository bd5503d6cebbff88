// Package notify_test provides a mock Sender for notifier testing.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"errors"
	"sync"
)

// MockSender records every Send call and returns a configured error.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	SendError error

	// Call tracking
	Calls            []Notification
	LastNotification Notification
}

// NewMockSender creates a new mock sender that always succeeds
func NewMockSender() *MockSender {
	return &MockSender{
		Calls: make([]Notification, 0),
	}
}

// WithSendError configures the mock to return an error on Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

// Send records the call and returns the configured error
func (m *MockSender) Send(n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, n)
	m.LastNotification = n

	return m.SendError
}

// CallCount returns how many times Send was called
func (m *MockSender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Common test errors
var ErrMockSend = errors.New("mock send error")
