// Package notify_test provides mock implementations for notification sender testing.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"errors"
	"sync"
)

// MockSender is a mock implementation of Sender for testing.
// It records all calls and allows configuring availability and errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	SendError error
	available bool
	SendFunc  func(Toast) error

	// Call tracking
	Calls     []Toast
	CallCount int
	LastToast Toast
}

// NewMockSender creates a new mock sender with default behavior (available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{
		available: true,
		Calls:     make([]Toast, 0),
	}
}

// WithSendError configures the mock to return an error on Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

// WithAvailable configures whether the sender reports itself available
func (m *MockSender) WithAvailable(available bool) *MockSender {
	m.available = available
	return m
}

// WithSendFunc configures a custom send function
func (m *MockSender) WithSendFunc(fn func(Toast) error) *MockSender {
	m.SendFunc = fn
	return m
}

func (m *MockSender) Name() string { return "mock" }

// Send records the call and returns the configured error
func (m *MockSender) Send(_ context.Context, t Toast) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, t)
	m.CallCount++
	m.LastToast = t

	if m.SendFunc != nil {
		return m.SendFunc(t)
	}

	return m.SendError
}

// Available returns whether the mock is available
func (m *MockSender) Available() bool {
	return m.available
}

// Common test errors
var (
	ErrMockSend = errors.New("mock send error")
)
