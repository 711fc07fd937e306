package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

// Stat is a labelled number shown by the stats counter
type Stat struct {
	Label  string
	Target int
}

// StatsService computes catalog statistics
type StatsService struct {
	catalog ports.Catalog
}

// NewStatsService creates a new stats service
func NewStatsService(catalog ports.Catalog) *StatsService {
	return &StatsService{
		catalog: catalog,
	}
}

// StatsResponse holds the headline numbers and the per-category breakdown
type StatsResponse struct {
	Stats      []Stat
	ByCategory []Stat
}

// Execute counts topics overall and per category. Categories keep their fixed order.
func (s *StatsService) Execute(ctx context.Context) (*StatsResponse, error) {
	topics, err := s.catalog.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	counts := make(map[domain.Category]int)
	for _, t := range topics {
		counts[t.Category]++
	}

	resp := &StatsResponse{
		Stats: []Stat{
			{Label: "Topics", Target: len(topics)},
			{Label: "Categories", Target: len(domain.Categories())},
		},
	}
	for _, c := range domain.Categories() {
		resp.ByCategory = append(resp.ByCategory, Stat{
			Label:  titleCase(string(c)),
			Target: counts[c],
		})
	}

	return resp, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
