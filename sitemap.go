package main

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"inkpost/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *app) handleSitemap(c echo.Context) error {
	posts, err := a.store.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *app) renderSitemap(c echo.Context, posts []views.BlogPost) error {
	urls := []sitemapURL{
		{Loc: a.cfg.URL + "/"},
		{Loc: a.cfg.URL + "/about"},
		{Loc: a.cfg.URL + "/contact"},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: a.cfg.URL + p.Link}
		if t, err := time.Parse(dateLayout, p.Date); err == nil {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
