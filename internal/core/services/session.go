package services

import (
	"context"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
)

// Session holds the interactive state of a browsing session: the active
// filter, the detail view and the latest suggestion keystroke.
type Session struct {
	details *DetailService

	filter  string
	state   domain.DetailState
	current *domain.Detail

	suggestSeq uint64
}

// NewSession creates a session with the detail view closed
func NewSession(details *DetailService, filter string) *Session {
	if filter == "" {
		filter = domain.FilterAll
	}
	return &Session{
		details: details,
		filter:  filter,
		state:   domain.DetailClosed,
	}
}

// Filter returns the active category filter
func (s *Session) Filter() string {
	return s.filter
}

// SetFilter changes the active category filter
func (s *Session) SetFilter(filter string) {
	s.filter = filter
}

// State returns the detail view state
func (s *Session) State() domain.DetailState {
	return s.state
}

// Current returns the detail on display, nil when closed
func (s *Session) Current() *domain.Detail {
	return s.current
}

// Open shows the detail of the named topic. It reports false and leaves the
// view unchanged when no topic has that name. Opening while open replaces
// the content.
func (s *Session) Open(ctx context.Context, name string) (bool, error) {
	detail, err := s.details.Open(ctx, name)
	if err != nil {
		return false, err
	}
	if detail == nil {
		return false, nil
	}

	s.current = detail
	s.state = domain.DetailOpen
	return true, nil
}

// Close hides the detail view. Closing a closed view is a no-op.
func (s *Session) Close() {
	s.current = nil
	s.state = domain.DetailClosed
}

// NextSuggestSeq records a keystroke and returns its sequence number
func (s *Session) NextSuggestSeq() uint64 {
	s.suggestSeq++
	return s.suggestSeq
}

// IsLatestSuggest reports whether seq belongs to the most recent keystroke.
// Results for older keystrokes must be discarded.
func (s *Session) IsLatestSuggest(seq uint64) bool {
	return seq == s.suggestSeq
}
