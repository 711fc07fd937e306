package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

// ListService handles rendering the catalog filtered by category
type ListService struct {
	catalog ports.Catalog
}

// NewListService creates a new list service
func NewListService(catalog ports.Catalog) *ListService {
	return &ListService{
		catalog: catalog,
	}
}

// ListRequest represents a request to list topics
type ListRequest struct {
	Filter string // A category or domain.FilterAll
}

// ListResponse represents the topics visible under a filter
type ListResponse struct {
	Filter string
	Topics []domain.Topic
	Total  int
}

// Execute returns the topics matching the filter in catalog order.
// An unknown filter yields an empty list.
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	all, err := s.catalog.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	topics := filterByCategory(all, req.Filter)

	return &ListResponse{
		Filter: req.Filter,
		Topics: topics,
		Total:  len(topics),
	}, nil
}

func filterByCategory(topics []domain.Topic, filter string) []domain.Topic {
	if filter == domain.FilterAll {
		return topics
	}

	filtered := []domain.Topic{}
	for _, t := range topics {
		if string(t.Category) == filter {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
