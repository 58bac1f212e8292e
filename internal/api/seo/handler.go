package seo

import (
	"fmt"
	"net/http"
	"strings"

	"freelanceros/config"

	"github.com/gin-gonic/gin"
)

// Authenticated prefixes stay out of search indexes.
var protectedPrefixes = []string{
	"/dashboard",
	"/clients",
	"/projects",
	"/payments",
	"/reminders",
	"/scope",
	"/settings",
}

// GET /robots.txt
func Robots(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, p := range protectedPrefixes {
		fmt.Fprintf(&b, "Disallow: %s/\n", p)
	}
	b.WriteString("Allow: /\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", config.APP_URL)

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

// GET /sitemap.xml - public pages only.
func Sitemap(c *gin.Context) {
	public := []string{"/", "/login", "/register", "/plans"}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range public {
		fmt.Fprintf(&b, "  <url><loc>%s%s</loc></url>\n", config.APP_URL, p)
	}
	b.WriteString("</urlset>\n")

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}
