package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

// DetailService builds the detail view of a topic
type DetailService struct {
	catalog ports.Catalog
}

// NewDetailService creates a new detail service
func NewDetailService(catalog ports.Catalog) *DetailService {
	return &DetailService{
		catalog: catalog,
	}
}

// Open returns the detail of the topic with the exact given name.
// An unknown or empty name returns nil without error.
func (s *DetailService) Open(ctx context.Context, name string) (*domain.Detail, error) {
	if name == "" {
		return nil, nil
	}

	topic, err := s.catalog.Get(ctx, name)
	if errors.Is(err, ports.ErrTopicNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open topic: %w", err)
	}

	detail := domain.NewDetail(*topic)
	return &detail, nil
}

// ResolveLink finds the topic a link points at, or nil when none does
func (s *DetailService) ResolveLink(ctx context.Context, link string) (*domain.Topic, error) {
	slug := domain.SlugFromLink(link)
	if slug == "" {
		return nil, nil
	}

	topics, err := s.catalog.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve link: %w", err)
	}

	for i := range topics {
		if topics[i].Slug() == slug {
			return &topics[i], nil
		}
	}
	return nil, nil
}
