package main

import (
	"os"
	"strings"

	"inkpost/views"
)

// defaultSessionSecret signs the session cookie when SESSION_SECRET is unset.
// The value itself is not a contract; override it in any real deployment.
const defaultSessionSecret = "8BYkEfBA6O6donzWlSihBXox7C0sKR6b"

// envOr returns the value of the environment variable key, or fallback if empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func databasePath() string {
	return envOr("DATABASE_PATH", "data/posts.db")
}

func sessionSecret() string {
	return envOr("SESSION_SECRET", defaultSessionSecret)
}

func listenAddr() string {
	return envOr("ADDR", ":5003")
}

func cookieSecure() bool {
	return strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true")
}

// siteConfig builds site-wide settings from environment variables.
func siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        envOr("SITE_NAME", "Blog"),
		URL:         strings.TrimSuffix(envOr("SITE_URL", "http://localhost:5003"), "/"),
		Description: envOr("SITE_DESCRIPTION", "A collection of random musings."),
	}
}
