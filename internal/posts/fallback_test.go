package posts

import (
	"context"
	"testing"
)

func TestFallbackStore_Create(t *testing.T) {
	ctx := context.Background()
	store := NewFallbackStore()

	first, err := store.Create(ctx, "First", "one", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}
	if first.CreatedAt == "" || first.CreatedAt != first.UpdatedAt {
		t.Errorf("timestamps = %q / %q, want equal and set", first.CreatedAt, first.UpdatedAt)
	}
	if first.ImageURL != nil {
		t.Errorf("image_url = %v, want nil", *first.ImageURL)
	}

	second, err := store.Create(ctx, "Second", "two", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}
}

func TestFallbackStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields empty slice", func(t *testing.T) {
		store := NewFallbackStore()
		got, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d posts, want 0", len(got))
		}
	})

	t.Run("newest first", func(t *testing.T) {
		store := NewFallbackStore()
		a, _ := store.Create(ctx, "A", "a", nil)
		b, _ := store.Create(ctx, "B", "b", nil)
		c, _ := store.Create(ctx, "C", "c", nil)
		a.CreatedAt = "2024-01-01T00:00:00.000Z"
		b.CreatedAt = "2024-01-03T00:00:00.000Z"
		c.CreatedAt = "2024-01-02T00:00:00.000Z"

		got, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		var order []int64
		for _, p := range got {
			order = append(order, p.ID)
		}
		if len(order) != 3 || order[0] != b.ID || order[1] != c.ID || order[2] != a.ID {
			t.Errorf("order = %v, want [%d %d %d]", order, b.ID, c.ID, a.ID)
		}
	})

	t.Run("equal timestamps keep insertion order", func(t *testing.T) {
		store := NewFallbackStore()
		a, _ := store.Create(ctx, "A", "a", nil)
		b, _ := store.Create(ctx, "B", "b", nil)
		a.CreatedAt = "2024-06-01T12:00:00.000Z"
		b.CreatedAt = "2024-06-01T12:00:00.000Z"

		got, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if got[0].ID != a.ID || got[1].ID != b.ID {
			t.Errorf("tie order = [%d %d], want [%d %d]", got[0].ID, got[1].ID, a.ID, b.ID)
		}
	})
}
