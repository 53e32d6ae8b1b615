package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Blog")
	URL         string // SITE_URL   (default "http://localhost:5003")
	Description string // SITE_DESCRIPTION
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// BlogPost is the core content type stored in SQLite and rendered by templates.
// Body may contain rich-text HTML produced by the form editor; it is stored and
// rendered verbatim.
type BlogPost struct {
	ID       int64
	Title    string
	Subtitle string
	Date     string // "Month D, YYYY", fixed at creation time
	Body     string
	Author   string
	ImgURL   string
	Link     string
}

// PostForm carries submitted (or pre-filled) form values plus per-field error
// messages back into the create/edit template.
type PostForm struct {
	Title    string
	Subtitle string
	Author   string
	ImgURL   string
	Body     string
	Errors   map[string]string
}
