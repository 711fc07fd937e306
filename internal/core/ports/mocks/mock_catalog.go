package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

// MockCatalog is an in-memory Catalog for testing
type MockCatalog struct {
	mu     sync.RWMutex
	topics []domain.Topic
	err    error
	calls  int
}

// NewMockCatalog creates a mock catalog holding the given topics in order
func NewMockCatalog(topics ...domain.Topic) *MockCatalog {
	return &MockCatalog{topics: topics}
}

// Add appends a topic to the catalog
func (m *MockCatalog) Add(topic domain.Topic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, topic)
}

// SetError makes every subsequent call fail with err
func (m *MockCatalog) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times the catalog was read
func (m *MockCatalog) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Topics returns a copy of the topics
func (m *MockCatalog) Topics(ctx context.Context) ([]domain.Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Topic, len(m.topics))
	copy(out, m.topics)
	return out, nil
}

// Get retrieves a topic by exact name
func (m *MockCatalog) Get(ctx context.Context, name string) (*domain.Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.err != nil {
		return nil, m.err
	}
	for i := range m.topics {
		if m.topics[i].Name == name {
			t := m.topics[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ports.ErrTopicNotFound, name)
}

// --- MockRenderer ---

// MockRenderer records rendered details and returns their markdown
type MockRenderer struct {
	mu       sync.Mutex
	rendered []string
	err      error
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockRenderer) Render(detail domain.Detail) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.rendered = append(m.rendered, detail.Name)
	return detail.Markdown(), nil
}

// Rendered returns the names of the details rendered so far
func (m *MockRenderer) Rendered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.rendered))
	copy(out, m.rendered)
	return out
}

// --- MockClipboard ---

type MockClipboard struct {
	mu      sync.Mutex
	content string
	err     error
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.content = text
	return nil
}

// Content returns the last text written
func (m *MockClipboard) Content() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}
