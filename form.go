package main

import (
	"strings"

	"github.com/labstack/echo/v4"

	"inkpost/views"
)

// requiredFields are the submitted fields a post form must fill in. Only
// presence is checked; length and URL shape are left to the database and the
// reader's judgement.
var requiredFields = []string{"title", "subtitle", "author", "img_url", "body"}

// parsePostForm reads the five post fields from the request. Text fields are
// trimmed; the body is kept verbatim because it carries rich-text markup.
func parsePostForm(c echo.Context) views.PostForm {
	return views.PostForm{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Subtitle: strings.TrimSpace(c.FormValue("subtitle")),
		Author:   strings.TrimSpace(c.FormValue("author")),
		ImgURL:   strings.TrimSpace(c.FormValue("img_url")),
		Body:     c.FormValue("body"),
		Errors:   map[string]string{},
	}
}

// validatePostForm fills form.Errors with a message per empty required field
// and reports whether the form is valid.
func validatePostForm(form *views.PostForm) bool {
	values := map[string]string{
		"title":    form.Title,
		"subtitle": form.Subtitle,
		"author":   form.Author,
		"img_url":  form.ImgURL,
		"body":     strings.TrimSpace(form.Body),
	}
	for _, name := range requiredFields {
		if values[name] == "" {
			form.Errors[name] = "This field is required."
		}
	}
	return len(form.Errors) == 0
}

// formToPost maps a validated form onto a BlogPost. Date is left empty; the
// caller decides whether it is newly computed or preserved from the existing
// row.
func formToPost(form views.PostForm) views.BlogPost {
	return views.BlogPost{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Author:   form.Author,
		ImgURL:   form.ImgURL,
		Body:     form.Body,
	}
}

// postToForm pre-fills a form with an existing post's values for editing.
func postToForm(p views.BlogPost) views.PostForm {
	return views.PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Author:   p.Author,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
		Errors:   map[string]string{},
	}
}
