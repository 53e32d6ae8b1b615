// Package views renders every page of the blog as a templ component. Each
// component is a pure function of its arguments; handlers pass in everything a
// page needs, so no template reads shared state.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing render function as a templ.Component.
func component(fn func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

func writeHead(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	buf.WriteString("<meta charset=\"utf-8\"/>")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	buf.WriteString("<title>" + esc(meta.Title) + "</title>")
	if meta.Description != "" {
		buf.WriteString("<meta name=\"description\" content=\"" + esc(meta.Description) + "\"/>")
		buf.WriteString("<meta property=\"og:description\" content=\"" + esc(meta.Description) + "\"/>")
	}
	buf.WriteString("<meta property=\"og:title\" content=\"" + esc(meta.Title) + "\"/>")
	buf.WriteString("<meta property=\"og:type\" content=\"" + esc(meta.OGType) + "\"/>")
	if meta.URL != "" {
		buf.WriteString("<meta property=\"og:url\" content=\"" + esc(meta.URL) + "\"/>")
		buf.WriteString("<link rel=\"canonical\" href=\"" + esc(meta.URL) + "\"/>")
	}
	buf.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + esc(cfg.Name) + "\" href=\"/feed.xml\"/>")
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\"/>")
	buf.WriteString("</head><body>")
	writeNav(buf, cfg)
	buf.WriteString("<main class=\"container\">")
}

func writeNav(buf *bytes.Buffer, cfg SiteConfig) {
	buf.WriteString("<nav class=\"navbar\"><a class=\"brand\" href=\"/\">" + esc(cfg.Name) + "</a>")
	buf.WriteString("<div class=\"nav-links\">")
	buf.WriteString("<a href=\"/\">Home</a>")
	buf.WriteString("<a href=\"/new-post\">New Post</a>")
	buf.WriteString("<a href=\"/about\">About</a>")
	buf.WriteString("<a href=\"/contact\">Contact</a>")
	buf.WriteString("</div></nav>")
}

func writeFoot(buf *bytes.Buffer, cfg SiteConfig) {
	buf.WriteString("</main>")
	buf.WriteString("<footer class=\"footer\"><p>" + esc(cfg.Name) + "</p></footer>")
	buf.WriteString("</body></html>")
}

// writeHeader renders the hero banner used by every page: a background image
// (when given) with a heading and subheading on top.
func writeHeader(buf *bytes.Buffer, imgURL, heading, subheading string) {
	if imgURL != "" {
		buf.WriteString("<header class=\"masthead\" style=\"background-image: url('" + esc(imgURL) + "')\">")
	} else {
		buf.WriteString("<header class=\"masthead\">")
	}
	buf.WriteString("<div class=\"masthead-text\"><h1>" + esc(heading) + "</h1>")
	if subheading != "" {
		buf.WriteString("<h2 class=\"subheading\">" + esc(subheading) + "</h2>")
	}
	buf.WriteString("</div></header>")
}

// Home renders the post list. flash, when non-empty, is shown once as a
// confirmation banner after a successful write.
func Home(cfg SiteConfig, posts []BlogPost, flash string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{
			Title:       cfg.Name,
			Description: cfg.Description,
			URL:         buildURL(cfg.URL),
			OGType:      "website",
		})
		buf.WriteString("<script type=\"application/ld+json\">" + WebsiteJsonLD(cfg) + "</script>")
		writeHeader(buf, "", cfg.Name, cfg.Description)
		if flash != "" {
			buf.WriteString("<div class=\"flash\">" + esc(flash) + "</div>")
		}
		if len(posts) == 0 {
			buf.WriteString("<p class=\"empty\">No posts yet. <a href=\"/new-post\">Write the first one.</a></p>")
		}
		buf.WriteString("<section class=\"post-list\">")
		for _, p := range posts {
			buf.WriteString("<article class=\"post-preview\">")
			buf.WriteString("<a href=\"" + esc(p.Link) + "\">")
			buf.WriteString("<h2 class=\"post-title\">" + esc(p.Title) + "</h2>")
			buf.WriteString("<h3 class=\"post-subtitle\">" + esc(p.Subtitle) + "</h3>")
			buf.WriteString("</a>")
			buf.WriteString("<p class=\"post-meta\">Posted by " + esc(p.Author) + " on " + esc(p.Date) + "</p>")
			buf.WriteString("</article>")
		}
		buf.WriteString("</section>")
		buf.WriteString("<div class=\"actions\"><a class=\"btn\" href=\"/new-post\">Create New Post</a></div>")
		writeFoot(buf, cfg)
	})
}

// Post renders a single post. The body is stored rich-text HTML and is written
// without escaping.
func Post(cfg SiteConfig, post BlogPost) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{
			Title:       post.Title + " — " + cfg.Name,
			Description: post.Subtitle,
			URL:         buildURL(cfg.URL, post.Link),
			OGType:      "article",
		})
		buf.WriteString("<script type=\"application/ld+json\">" + BlogPostingJsonLD(cfg, post) + "</script>")
		writeHeader(buf, post.ImgURL, post.Title, post.Subtitle)
		buf.WriteString("<p class=\"post-meta\">Posted by " + esc(post.Author) + " on " + esc(post.Date) + "</p>")
		buf.WriteString("<article class=\"post-body\">")
		buf.WriteString(post.Body)
		buf.WriteString("</article>")
		buf.WriteString("<div class=\"actions\">")
		buf.WriteString("<a class=\"btn\" href=\"/edit-post/" + fmt.Sprint(post.ID) + "\">Edit Post</a>")
		buf.WriteString("<form class=\"inline\" method=\"post\" action=\"/delete/" + fmt.Sprint(post.ID) + "\">")
		buf.WriteString("<button class=\"btn btn-danger\" type=\"submit\">Delete Post</button>")
		buf.WriteString("</form>")
		buf.WriteString("</div>")
		writeFoot(buf, cfg)
	})
}

// PostEditor renders the create/edit form. When editing, action points at the
// edit route and fields come pre-filled; csrfToken goes into a hidden input
// validated by the CSRF middleware.
func PostEditor(cfg SiteConfig, form PostForm, editing bool, action, csrfToken string) templ.Component {
	heading := "New Post"
	if editing {
		heading = "Edit Post"
	}
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{
			Title: heading + " — " + cfg.Name,
			URL:   buildURL(cfg.URL, action),
		})
		writeHeader(buf, form.ImgURL, heading, "You're going to make a great blog post!")
		buf.WriteString("<form class=\"post-form\" method=\"post\" action=\"" + esc(action) + "\">")
		buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
		writeField(buf, form, "title", "Blog Post Title", form.Title)
		writeField(buf, form, "subtitle", "Subtitle", form.Subtitle)
		writeField(buf, form, "author", "Your Name", form.Author)
		writeField(buf, form, "img_url", "Blog Image URL", form.ImgURL)
		buf.WriteString("<div class=\"form-group\"><label for=\"body\">Blog Content</label>")
		buf.WriteString("<textarea id=\"body\" name=\"body\" rows=\"16\">" + esc(form.Body) + "</textarea>")
		writeFieldError(buf, form, "body")
		buf.WriteString("</div>")
		buf.WriteString("<button class=\"btn\" type=\"submit\">Submit Post</button>")
		buf.WriteString("</form>")
		writeFoot(buf, cfg)
	})
}

func writeField(buf *bytes.Buffer, form PostForm, name, label, value string) {
	buf.WriteString("<div class=\"form-group\"><label for=\"" + name + "\">" + esc(label) + "</label>")
	buf.WriteString("<input type=\"text\" id=\"" + name + "\" name=\"" + name + "\" value=\"" + esc(value) + "\"/>")
	writeFieldError(buf, form, name)
	buf.WriteString("</div>")
}

func writeFieldError(buf *bytes.Buffer, form PostForm, name string) {
	if msg, ok := form.Errors[name]; ok {
		buf.WriteString("<p class=\"field-error\">" + esc(msg) + "</p>")
	}
}

// About renders the static about page.
func About(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{
			Title: "About — " + cfg.Name,
			URL:   buildURL(cfg.URL, "/about"),
		})
		writeHeader(buf, "", "About Me", "This is what I do.")
		buf.WriteString("<article class=\"page-body\">")
		buf.WriteString("<p>Hi there, welcome to the blog. This site is a small corner of the internet for writing about whatever seems worth writing about.</p>")
		buf.WriteString("<p>Everything here is published with a plain HTML form and stored in a single SQLite table. No frameworks were harmed.</p>")
		buf.WriteString("</article>")
		writeFoot(buf, cfg)
	})
}

// Contact renders the static contact page.
func Contact(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{
			Title: "Contact — " + cfg.Name,
			URL:   buildURL(cfg.URL, "/contact"),
		})
		writeHeader(buf, "", "Contact Me", "Have questions? I have answers.")
		buf.WriteString("<article class=\"page-body\">")
		buf.WriteString("<p>Want to get in touch? Send an email and I'll respond as soon as I can.</p>")
		buf.WriteString("</article>")
		writeFoot(buf, cfg)
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{Title: "Not Found — " + cfg.Name})
		writeHeader(buf, "", "Page Not Found", "")
		buf.WriteString("<article class=\"page-body\"><p>That post doesn't exist. <a href=\"/\">Back to the blog.</a></p></article>")
		writeFoot(buf, cfg)
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, PageMeta{Title: "Server Error — " + cfg.Name})
		writeHeader(buf, "", "Something Went Wrong", "")
		buf.WriteString("<article class=\"page-body\"><p>The server hit an unexpected error. <a href=\"/\">Back to the blog.</a></p></article>")
		writeFoot(buf, cfg)
	})
}
