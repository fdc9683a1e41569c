package posts

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection, or each pool connection gets its own empty memory db.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func migrate(t *testing.T, db *sql.DB) {
	t.Helper()
	if _, err := db.Exec(SchemaSQLite); err != nil {
		t.Fatalf("create schema: %v", err)
	}
}

func TestSQLRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("missing table is zero posts", func(t *testing.T) {
		repo := NewSQLRepository(openTestDB(t), "sqlite")
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d posts, want 0", len(got))
		}
	})

	t.Run("empty table is zero posts", func(t *testing.T) {
		db := openTestDB(t)
		migrate(t, db)
		repo := NewSQLRepository(db, "sqlite")
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d posts, want 0", len(got))
		}
	})

	t.Run("newest first, ties in insertion order", func(t *testing.T) {
		db := openTestDB(t)
		migrate(t, db)
		seed := []struct {
			title     string
			createdAt string
		}{
			{"old", "2024-01-01T00:00:00.000Z"},
			{"tie-a", "2024-02-01T00:00:00.000Z"},
			{"tie-b", "2024-02-01T00:00:00.000Z"},
			{"new", "2024-03-01T00:00:00.000Z"},
		}
		for _, s := range seed {
			if _, err := db.Exec(
				`INSERT INTO posts (title, content, image_url, created_at, updated_at) VALUES (?, ?, NULL, ?, ?)`,
				s.title, "body", s.createdAt, s.createdAt); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}

		repo := NewSQLRepository(db, "sqlite")
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		var titles []string
		for _, p := range got {
			titles = append(titles, p.Title)
		}
		want := []string{"new", "tie-a", "tie-b", "old"}
		for i := range want {
			if i >= len(titles) || titles[i] != want[i] {
				t.Fatalf("order = %v, want %v", titles, want)
			}
		}
	})
}

func TestSQLRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids", func(t *testing.T) {
		db := openTestDB(t)
		migrate(t, db)
		repo := NewSQLRepository(db, "sqlite")

		first, err := repo.Create(ctx, "First", "one", nil)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if first.ID != 1 {
			t.Errorf("first id = %d, want 1", first.ID)
		}
		if first.CreatedAt == "" || first.CreatedAt != first.UpdatedAt {
			t.Errorf("timestamps = %q / %q", first.CreatedAt, first.UpdatedAt)
		}

		second, err := repo.Create(ctx, "Second", "two", nil)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if second.ID != 2 {
			t.Errorf("second id = %d, want 2", second.ID)
		}
	})

	t.Run("round-trips image url and null", func(t *testing.T) {
		db := openTestDB(t)
		migrate(t, db)
		repo := NewSQLRepository(db, "sqlite")

		url := "/api/images/1717171717171-cat.png"
		if _, err := repo.Create(ctx, "With image", "c", &url); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := repo.Create(ctx, "Without image", "c", nil); err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d posts, want 2", len(got))
		}
		byTitle := map[string]*Post{}
		for _, p := range got {
			byTitle[p.Title] = p
		}
		if p := byTitle["With image"]; p.ImageURL == nil || *p.ImageURL != url {
			t.Errorf("image_url = %v, want %q", p.ImageURL, url)
		}
		if p := byTitle["Without image"]; p.ImageURL != nil {
			t.Errorf("image_url = %q, want nil", *p.ImageURL)
		}
	})

	t.Run("missing table surfaces an error", func(t *testing.T) {
		repo := NewSQLRepository(openTestDB(t), "sqlite")
		if _, err := repo.Create(ctx, "T", "C", nil); err == nil {
			t.Error("expected error on create without schema")
		}
	})
}

func TestIsMissingTable(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Query("SELECT * FROM posts")
	if err == nil {
		t.Fatal("expected query against missing table to fail")
	}
	if !isMissingTable(err) {
		t.Errorf("isMissingTable(%v) = false, want true", err)
	}
}
