package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

var testCfg = SiteConfig{
	Name:        "Test Blog",
	URL:         "http://localhost:5003",
	Description: "Testing things.",
}

func renderComponent(t *testing.T, render func(buf *bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestHomeEscapesPostFields(t *testing.T) {
	posts := []BlogPost{{
		ID:       1,
		Title:    `<script>alert("x")</script>`,
		Subtitle: "Sub & sub",
		Date:     "March 4, 2024",
		Author:   "A & B",
		Link:     "/1",
	}}
	out := renderComponent(t, func(buf *bytes.Buffer) error {
		return Home(testCfg, posts, "").Render(context.Background(), buf)
	})
	if strings.Contains(out, `<script>alert`) {
		t.Error("post title must be escaped in the list")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("escaped title should still be visible")
	}
	if !strings.Contains(out, `href="/1"`) {
		t.Error("list entries should link to the post detail")
	}
}

func TestHomeShowsFlash(t *testing.T) {
	out := renderComponent(t, func(buf *bytes.Buffer) error {
		return Home(testCfg, nil, "Post created.").Render(context.Background(), buf)
	})
	if !strings.Contains(out, "Post created.") {
		t.Error("flash message should be rendered")
	}
}

func TestPostRendersBodyVerbatim(t *testing.T) {
	post := BlogPost{
		ID:       3,
		Title:    "Rich Text",
		Subtitle: "With markup",
		Date:     "March 4, 2024",
		Body:     "<p>Hello <strong>world</strong></p>",
		Author:   "Jane",
		ImgURL:   "https://example.com/bg.jpg",
		Link:     "/3",
	}
	out := renderComponent(t, func(buf *bytes.Buffer) error {
		return Post(testCfg, post).Render(context.Background(), buf)
	})
	if !strings.Contains(out, "<p>Hello <strong>world</strong></p>") {
		t.Error("body must be rendered without escaping")
	}
	if !strings.Contains(out, "https://example.com/bg.jpg") {
		t.Error("header should use the post image URL")
	}
	if !strings.Contains(out, "/edit-post/3") {
		t.Error("detail page should link to the edit form")
	}
}

func TestPostEditorPrefillAndErrors(t *testing.T) {
	form := PostForm{
		Title:  "Draft",
		Body:   "<p>wip</p>",
		Errors: map[string]string{"author": "This field is required."},
	}
	out := renderComponent(t, func(buf *bytes.Buffer) error {
		return PostEditor(testCfg, form, true, "/edit-post/7", "tok123").Render(context.Background(), buf)
	})
	if !strings.Contains(out, `value="Draft"`) {
		t.Error("form should pre-fill the title")
	}
	if !strings.Contains(out, "This field is required.") {
		t.Error("form should show the field error")
	}
	if !strings.Contains(out, `name="_csrf" value="tok123"`) {
		t.Error("form should carry the CSRF token")
	}
	if !strings.Contains(out, `action="/edit-post/7"`) {
		t.Error("form should target the edit route")
	}
	if !strings.Contains(out, "Edit Post") {
		t.Error("editing form should use the edit heading")
	}
}

func TestNotFoundPage(t *testing.T) {
	out := renderComponent(t, func(buf *bytes.Buffer) error {
		return NotFound(testCfg).Render(context.Background(), buf)
	})
	if !strings.Contains(out, "Page Not Found") {
		t.Error("404 page should say so")
	}
}
