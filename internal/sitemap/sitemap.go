// Package sitemap renders the storefront sitemap in the sitemaps.org format.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/carespace/carespace-api/internal/models"
)

const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

type URL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod"`
	ChangeFreq ChangeFreq `xml:"changefreq"`
	Priority   string     `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type page struct {
	path       string
	priority   float64
	changeFreq ChangeFreq
}

var staticPages = []page{
	{"/", 1.0, Weekly},
	{"/rent", 0.8, Weekly},
	{"/about", 0.7, Monthly},
	{"/contact", 0.7, Monthly},
	{"/blog", 0.6, Weekly},
	{"/faq", 0.6, Monthly},
}

// Build lists the static pages, then every category, then every product.
func Build(baseURL string, categories []*models.Category, products []*models.Product, now time.Time) *URLSet {

	baseURL = strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Format(time.DateOnly)

	set := &URLSet{Xmlns: Namespace}

	add := func(path string, priority float64, freq ChangeFreq) {
		set.URLs = append(set.URLs, URL{
			Loc:        baseURL + path,
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   fmt.Sprintf("%.1f", priority),
		})
	}

	for _, p := range staticPages {
		add(p.path, p.priority, p.changeFreq)
	}

	for _, c := range categories {
		add("/category/"+c.Slug, 0.8, Weekly)
	}

	for _, p := range products {
		add("/product/"+p.Slug, 0.6, Monthly)
	}

	return set
}

// Write encodes set as an indented XML document with declaration.
func Write(w io.Writer, set *URLSet) error {

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}

	return enc.Close()
}
