package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

// NoResultsMessage is the notification shown when a search matches nothing
const NoResultsMessage = "No results found. Try: Foundation, Kitchen, Bathroom, etc."

const (
	DefaultSuggestMinChars = 2
	DefaultSuggestLimit    = 5
)

// SearchStatus distinguishes "nothing asked" from "nothing found"
type SearchStatus int

const (
	SearchNoQuery SearchStatus = iota
	SearchNoResults
	SearchFound
)

func (s SearchStatus) String() string {
	switch s {
	case SearchNoResults:
		return "no-results"
	case SearchFound:
		return "found"
	default:
		return "no-query"
	}
}

// SearchOptions tunes the live suggestions
type SearchOptions struct {
	SuggestMinChars int
	SuggestLimit    int
}

// SearchService handles full searches and live suggestions over the catalog
type SearchService struct {
	catalog ports.Catalog
	opts    SearchOptions
}

// NewSearchService creates a new search service. Non-positive options fall back to defaults.
func NewSearchService(catalog ports.Catalog, opts SearchOptions) *SearchService {
	if opts.SuggestMinChars <= 0 {
		opts.SuggestMinChars = DefaultSuggestMinChars
	}
	if opts.SuggestLimit <= 0 {
		opts.SuggestLimit = DefaultSuggestLimit
	}
	return &SearchService{
		catalog: catalog,
		opts:    opts,
	}
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query string
}

// SearchResponse represents search results
type SearchResponse struct {
	Query  string // trimmed, lower-cased
	Status SearchStatus
	Topics []domain.Topic
	Total  int
}

// First returns the topic the activation path opens, or nil
func (r *SearchResponse) First() *domain.Topic {
	if len(r.Topics) == 0 {
		return nil
	}
	return &r.Topics[0]
}

// Search matches name, description and category, case-insensitively, in catalog order
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	query := normalizeQuery(req.Query)
	if query == "" {
		return &SearchResponse{Status: SearchNoQuery}, nil
	}

	topics, err := s.catalog.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search topics: %w", err)
	}

	matches := matchTopics(topics, query, 0,
		domain.FieldName, domain.FieldDescription, domain.FieldCategory)

	status := SearchFound
	if len(matches) == 0 {
		status = SearchNoResults
	}

	return &SearchResponse{
		Query:  query,
		Status: status,
		Topics: matches,
		Total:  len(matches),
	}, nil
}

// SuggestRequest represents the search box contents after a keystroke
type SuggestRequest struct {
	Query string
	Seq   uint64 // keystroke sequence, echoed back so stale results can be dropped
}

// SuggestResponse represents the suggestion dropdown
type SuggestResponse struct {
	Seq     uint64
	Query   string
	Visible bool
	Topics  []domain.Topic
}

// Suggest returns at most SuggestLimit topics whose name or description contains the query.
// Queries shorter than SuggestMinChars hide the dropdown.
func (s *SearchService) Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error) {
	query := normalizeQuery(req.Query)
	resp := &SuggestResponse{Seq: req.Seq, Query: query}

	if len([]rune(query)) < s.opts.SuggestMinChars {
		return resp, nil
	}

	topics, err := s.catalog.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest topics: %w", err)
	}

	resp.Topics = matchTopics(topics, query, s.opts.SuggestLimit,
		domain.FieldName, domain.FieldDescription)
	resp.Visible = len(resp.Topics) > 0

	return resp, nil
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// matchTopics keeps catalog order; limit <= 0 means no limit
func matchTopics(topics []domain.Topic, query string, limit int, fields ...domain.Field) []domain.Topic {
	matches := []domain.Topic{}
	for _, t := range topics {
		if !t.Matches(query, fields...) {
			continue
		}
		matches = append(matches, t)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}
