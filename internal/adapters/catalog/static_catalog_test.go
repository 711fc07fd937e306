package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

func TestStaticCatalog_Validate(t *testing.T) {
	if err := NewStaticCatalog().Validate(); err != nil {
		t.Fatalf("built-in catalog is invalid: %v", err)
	}
}

func TestStaticCatalog_Topics(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	got, err := c.Topics(ctx)
	if err != nil {
		t.Fatalf("Topics() error: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("expected 12 topics, got %d", len(got))
	}

	wantOrder := []string{
		"Foundation", "Floors", "Walls", "Roof", "Windows", "Doors",
		"Kitchen", "Bathroom", "Bedroom", "Living Room", "Garage", "Ceilings",
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("topic %d = %q, want %q", i, got[i].Name, name)
		}
	}

	// Mutating the returned slice must not touch the catalog
	got[0].Name = "Changed"
	again, _ := c.Topics(ctx)
	if again[0].Name != "Foundation" {
		t.Error("Topics() returned the internal slice")
	}
}

func TestStaticCatalog_Get(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	topic, err := c.Get(ctx, "Living Room")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if topic.Category != domain.CategoryInterior {
		t.Errorf("category = %q, want interior", topic.Category)
	}

	for _, name := range []string{"", "living room", "Nonexistent"} {
		_, err := c.Get(ctx, name)
		if !errors.Is(err, ports.ErrTopicNotFound) {
			t.Errorf("Get(%q) error = %v, want ErrTopicNotFound", name, err)
		}
	}
}

func TestStaticCatalog_ValidateDuplicate(t *testing.T) {
	c := &StaticCatalog{topics: []domain.Topic{topics[0], topics[0]}}
	if err := c.Validate(); err == nil {
		t.Error("expected duplicate name error")
	}
}
