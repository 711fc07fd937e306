package catalog

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

// topics is the compiled-in catalog. Order is the display order.
var topics = []domain.Topic{
	{
		Name:        "Foundation",
		Icon:        "images/icon-foundation.png",
		Description: "Essential foundation planning, excavation, and concrete work for a solid base",
		Category:    domain.CategoryStructural,
		Link:        "sections/foundation/index.html",
	},
	{
		Name:        "Floors",
		Icon:        "images/icon-floors.png",
		Description: "Flooring installation, subflooring, and finishing techniques",
		Category:    domain.CategoryStructural,
		Link:        "sections/floors/index.html",
	},
	{
		Name:        "Walls",
		Icon:        "images/icon-walls.png",
		Description: "Framing, insulation, drywall, and wall finishing methods",
		Category:    domain.CategoryStructural,
		Link:        "sections/walls/index.html",
	},
	{
		Name:        "Roof",
		Icon:        "images/icon-roof.png",
		Description: "Roofing materials, installation, and weatherproofing strategies",
		Category:    domain.CategoryExterior,
		Link:        "sections/roof/index.html",
	},
	{
		Name:        "Windows",
		Icon:        "images/icon-windows.png",
		Description: "Window selection, installation, and energy efficiency considerations",
		Category:    domain.CategoryExterior,
		Link:        "sections/windows/index.html",
	},
	{
		Name:        "Doors",
		Icon:        "images/icon-doors.png",
		Description: "Interior and exterior door installation and hardware",
		Category:    domain.CategoryExterior,
		Link:        "sections/doors/index.html",
	},
	{
		Name:        "Kitchen",
		Icon:        "images/icon-kitchen.png",
		Description: "Kitchen layout, cabinetry, appliances, and plumbing fixtures",
		Category:    domain.CategoryInterior,
		Link:        "sections/kitchen/index.html",
	},
	{
		Name:        "Bathroom",
		Icon:        "images/icon-bathroom.png",
		Description: "Bathroom design, plumbing, fixtures, and tile work",
		Category:    domain.CategoryInterior,
		Link:        "sections/bathroom/index.html",
	},
	{
		Name:        "Bedroom",
		Icon:        "images/icon-bedroom.png",
		Description: "Bedroom planning, closets, and finishing touches",
		Category:    domain.CategoryInterior,
		Link:        "sections/bedroom/index.html",
	},
	{
		Name:        "Living Room",
		Icon:        "images/icon-living-room.png",
		Description: "Living space design, lighting, and electrical planning",
		Category:    domain.CategoryInterior,
		Link:        "sections/living-room/index.html",
	},
	{
		Name:        "Garage",
		Icon:        "images/icon-garage.png",
		Description: "Garage construction, doors, and storage solutions",
		Category:    domain.CategoryExterior,
		Link:        "sections/garage/index.html",
	},
	{
		Name:        "Ceilings",
		Icon:        "images/icon-ceilings.png",
		Description: "Ceiling installation, types, and finishing options",
		Category:    domain.CategoryStructural,
		Link:        "sections/ceilings/index.html",
	},
}

// StaticCatalog implements the Catalog port over the compiled-in topic table
type StaticCatalog struct {
	topics []domain.Topic
}

// NewStaticCatalog creates the catalog backed by the built-in topics
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{topics: topics}
}

// Topics returns a copy of every topic in catalog order
func (c *StaticCatalog) Topics(ctx context.Context) ([]domain.Topic, error) {
	out := make([]domain.Topic, len(c.topics))
	copy(out, c.topics)
	return out, nil
}

// Get retrieves a topic by its exact name
func (c *StaticCatalog) Get(ctx context.Context, name string) (*domain.Topic, error) {
	for i := range c.topics {
		if c.topics[i].Name == name {
			t := c.topics[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ports.ErrTopicNotFound, name)
}

// Validate checks every topic and the uniqueness of names
func (c *StaticCatalog) Validate() error {
	seen := make(map[string]bool, len(c.topics))
	for _, t := range c.topics {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate topic name: %s", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}
