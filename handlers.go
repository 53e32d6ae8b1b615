package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"inkpost/views"
)

// dateLayout renders creation dates as e.g. "March 4, 2024". The value is
// stored as text and never recomputed on edit.
const dateLayout = "January 2, 2006"

func postLink(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

// postID parses the :id route param. Non-numeric values can never match a
// row, so they are reported as not found.
func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errNotFound
	}
	return id, nil
}

// handleHome serves the post listing page.
func (a *app) handleHome(c echo.Context) error {
	posts, err := a.store.ListPosts()
	if err != nil {
		return err
	}
	return render(c, views.Home(a.cfg, posts, takeFlash(c)))
}

// handlePost serves a single post's detail page.
func (a *app) handlePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return a.renderNotFound(c)
	}
	post, err := a.store.GetPost(id)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	return render(c, views.Post(a.cfg, post))
}

// handleNewPostForm serves the empty create form.
func (a *app) handleNewPostForm(c echo.Context) error {
	form := views.PostForm{Errors: map[string]string{}}
	return render(c, views.PostEditor(a.cfg, form, false, "/new-post", csrfToken(c)))
}

// handleCreatePost validates the submitted form and inserts a new post. The
// creation date is computed here and never changes afterwards.
func (a *app) handleCreatePost(c echo.Context) error {
	if !a.writeLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many posts. Try again later.")
	}
	form := parsePostForm(c)
	if !validatePostForm(&form) {
		return renderStatus(c, http.StatusUnprocessableEntity,
			views.PostEditor(a.cfg, form, false, "/new-post", csrfToken(c)))
	}
	post := formToPost(form)
	post.Date = time.Now().Format(dateLayout)
	if _, err := a.store.InsertPost(post); err != nil {
		if errors.Is(err, errDuplicateTitle) {
			form.Errors["title"] = err.Error()
			return renderStatus(c, http.StatusConflict,
				views.PostEditor(a.cfg, form, false, "/new-post", csrfToken(c)))
		}
		return err
	}
	setFlash(c, "Post created.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// handleEditPostForm serves the form pre-filled with an existing post.
func (a *app) handleEditPostForm(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return a.renderNotFound(c)
	}
	post, err := a.store.GetPost(id)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	form := postToForm(post)
	return render(c, views.PostEditor(a.cfg, form, true, fmt.Sprintf("/edit-post/%d", id), csrfToken(c)))
}

// handleUpdatePost validates the submitted form and replaces every field of
// the post except its id and creation date.
func (a *app) handleUpdatePost(c echo.Context) error {
	if !a.writeLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many edits. Try again later.")
	}
	id, err := postID(c)
	if err != nil {
		return a.renderNotFound(c)
	}
	if _, err := a.store.GetPost(id); err != nil {
		if errors.Is(err, errNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	action := fmt.Sprintf("/edit-post/%d", id)
	form := parsePostForm(c)
	if !validatePostForm(&form) {
		return renderStatus(c, http.StatusUnprocessableEntity,
			views.PostEditor(a.cfg, form, true, action, csrfToken(c)))
	}
	if _, err := a.store.UpdatePost(id, formToPost(form)); err != nil {
		if errors.Is(err, errDuplicateTitle) {
			form.Errors["title"] = err.Error()
			return renderStatus(c, http.StatusConflict,
				views.PostEditor(a.cfg, form, true, action, csrfToken(c)))
		}
		return err
	}
	setFlash(c, "Post updated.")
	return c.Redirect(http.StatusSeeOther, action)
}

// handleDeletePost removes a post. Registered for both GET and POST: the site
// itself submits a POST form carrying the CSRF token, while GET is kept for
// plain links.
func (a *app) handleDeletePost(c echo.Context) error {
	if !a.writeLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many deletions. Try again later.")
	}
	id, err := postID(c)
	if err != nil {
		return a.renderNotFound(c)
	}
	if err := a.store.DeletePost(id); err != nil {
		if errors.Is(err, errNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	setFlash(c, "Post deleted.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *app) handleAbout(c echo.Context) error {
	return render(c, views.About(a.cfg))
}

func (a *app) handleContact(c echo.Context) error {
	return render(c, views.Contact(a.cfg))
}

// handleRobots generates robots.txt dynamically using SITE_URL.
func (a *app) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.cfg.URL)
	return c.String(http.StatusOK, body)
}

func (a *app) renderNotFound(c echo.Context) error {
	return renderStatus(c, http.StatusNotFound, views.NotFound(a.cfg))
}

// httpErrorHandler renders styled 404/500 pages for errors that escape the
// handlers.
func (a *app) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = renderStatus(c, code, views.ServerError(a.cfg))
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
