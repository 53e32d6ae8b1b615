package main

import (
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"inkpost/views"
)

func setupTestStore(t *testing.T) *store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.db")

	s, err := newStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPost(title string) views.BlogPost {
	return views.BlogPost{
		Title:    title,
		Subtitle: "A subtitle",
		Date:     "March 4, 2024",
		Body:     "<p>Some body text.</p>",
		Author:   "Jane Doe",
		ImgURL:   "https://example.com/bg.jpg",
	}
}

func TestInsertAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.InsertPost(testPost("Hello World"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("InsertPost should assign an id")
	}
	if created.Link != postLink(created.ID) {
		t.Errorf("Link = %q, want %q", created.Link, postLink(created.ID))
	}

	got, err := s.GetPost(created.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Hello World" {
		t.Errorf("Title = %q, want %q", got.Title, "Hello World")
	}
	if got.Subtitle != "A subtitle" {
		t.Errorf("Subtitle = %q, want %q", got.Subtitle, "A subtitle")
	}
	if got.Date != "March 4, 2024" {
		t.Errorf("Date = %q, want %q", got.Date, "March 4, 2024")
	}
	if got.Body != "<p>Some body text.</p>" {
		t.Errorf("Body = %q, want body preserved verbatim", got.Body)
	}
	if got.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", got.Author, "Jane Doe")
	}
	if got.ImgURL != "https://example.com/bg.jpg" {
		t.Errorf("ImgURL = %q, want %q", got.ImgURL, "https://example.com/bg.jpg")
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetPost(42)
	if !errors.Is(err, errNotFound) {
		t.Errorf("expected errNotFound, got %v", err)
	}
}

func TestInsertDuplicateTitle(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.InsertPost(testPost("Unique Title")); err != nil {
		t.Fatalf("first InsertPost failed: %v", err)
	}
	_, err := s.InsertPost(testPost("Unique Title"))
	if !errors.Is(err, errDuplicateTitle) {
		t.Fatalf("expected errDuplicateTitle, got %v", err)
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("only one row should persist, got %d", len(posts))
	}
}

func TestListPostsOrder(t *testing.T) {
	s := setupTestStore(t)

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := s.InsertPost(testPost(title)); err != nil {
			t.Fatalf("InsertPost failed: %v", err)
		}
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("ListPosts count = %d, want 3", len(posts))
	}
	// Ascending id order, i.e. insertion order.
	want := []string{"First", "Second", "Third"}
	for i, title := range want {
		if posts[i].Title != title {
			t.Errorf("posts[%d].Title = %q, want %q", i, posts[i].Title, title)
		}
	}
}

func TestUpdatePostPreservesDate(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.InsertPost(testPost("Original"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	updated, err := s.UpdatePost(created.ID, views.BlogPost{
		Title:    "Changed",
		Subtitle: "Changed sub",
		Body:     "<p>New body.</p>",
		Author:   "John Roe",
		ImgURL:   "https://example.com/new.jpg",
	})
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}

	if updated.Title != "Changed" {
		t.Errorf("Title = %q, want %q", updated.Title, "Changed")
	}
	if updated.Date != created.Date {
		t.Errorf("Date = %q, want unchanged %q", updated.Date, created.Date)
	}
	if updated.ID != created.ID {
		t.Errorf("ID = %d, want unchanged %d", updated.ID, created.ID)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.UpdatePost(99, testPost("Ghost"))
	if !errors.Is(err, errNotFound) {
		t.Errorf("expected errNotFound, got %v", err)
	}
}

func TestUpdatePostDuplicateTitle(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.InsertPost(testPost("Taken")); err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	other, err := s.InsertPost(testPost("Free"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	_, err = s.UpdatePost(other.ID, testPost("Taken"))
	if !errors.Is(err, errDuplicateTitle) {
		t.Errorf("expected errDuplicateTitle, got %v", err)
	}
}

func TestUpdatePostKeepOwnTitle(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.InsertPost(testPost("Keeper"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	// Re-submitting the same title must not count as a collision.
	if _, err := s.UpdatePost(created.ID, testPost("Keeper")); err != nil {
		t.Errorf("UpdatePost with own title should succeed, got %v", err)
	}
}

func TestStoreDeletePost(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.InsertPost(testPost("Doomed"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	if err := s.DeletePost(created.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}

	_, err = s.GetPost(created.ID)
	if !errors.Is(err, errNotFound) {
		t.Errorf("post should not exist after delete, got err: %v", err)
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("deleted post still listed, got %d posts", len(posts))
	}
}

func TestDeletePostNotFound(t *testing.T) {
	s := setupTestStore(t)

	if err := s.DeletePost(7); !errors.Is(err, errNotFound) {
		t.Errorf("expected errNotFound, got %v", err)
	}
}
