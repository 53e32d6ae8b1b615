// main.go — inkpost HTTP server
// A server-rendered blog: posts live in a single SQLite table and every page
// is an HTML form away. Site branding comes from environment variables.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	_ "modernc.org/sqlite"

	"inkpost/views"
)

// app holds shared dependencies injected into every handler.
type app struct {
	cfg          views.SiteConfig
	store        *store
	writeLimiter *writeLimiter
}

func main() {
	addr := flag.String("addr", listenAddr(), "listen address")
	flag.Parse()

	store, err := newStore(databasePath())
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	a := &app{
		cfg:          siteConfig(),
		store:        store,
		writeLimiter: newWriteLimiter(10, time.Minute),
	}

	e := echo.New()
	a.setupMiddleware(e)
	a.routes(e)

	if err := e.Start(*addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// routes registers every endpoint. Kept separate from middleware setup so
// tests can exercise handlers directly.
func (a *app) routes(e *echo.Echo) {
	e.Static("/public", "public")
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about", a.handleAbout)
	e.GET("/contact", a.handleContact)
	e.GET("/new-post", a.handleNewPostForm)
	e.POST("/new-post", a.handleCreatePost)
	e.GET("/edit-post/:id", a.handleEditPostForm)
	e.POST("/edit-post/:id", a.handleUpdatePost)
	e.GET("/delete/:id", a.handleDeletePost)
	e.POST("/delete/:id", a.handleDeletePost)

	// Catch-all numeric route; must come after the named pages above.
	e.GET("/:id", a.handlePost)
}
