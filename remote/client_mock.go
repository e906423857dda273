package remote

import (
	"sync"
	"time"
)

// MockClient records the requests and answers them with the Responder,
// answers success with empty body if the Responder is nil
type MockClient struct {
	sync.Mutex
	Requests  []*Command
	Responder func(addr string, cmd *Command) (*Command, error)

	Started, Shutdowned bool
}

// RequestSync records the request and returns the response of the responder
func (m *MockClient) RequestSync(addr string, cmd *Command, timeout time.Duration) (*Command, error) {
	m.Lock()
	m.Requests = append(m.Requests, cmd)
	responder := m.Responder
	m.Unlock()

	if responder == nil {
		return NewResponse(cmd, Success, "", nil), nil
	}
	return responder(addr, cmd)
}

// Start marks started
func (m *MockClient) Start() error {
	m.Lock()
	m.Started = true
	m.Unlock()
	return nil
}

// Shutdown marks shutdowned
func (m *MockClient) Shutdown() {
	m.Lock()
	m.Shutdowned = true
	m.Unlock()
}

// Bodies returns the bodies of the recorded requests
func (m *MockClient) Bodies() []string {
	m.Lock()
	defer m.Unlock()
	bodies := make([]string, len(m.Requests))
	for i, r := range m.Requests {
		bodies[i] = string(r.Body)
	}
	return bodies
}

// Reset clears the recorded requests
func (m *MockClient) Reset() {
	m.Lock()
	m.Requests = nil
	m.Unlock()
}
