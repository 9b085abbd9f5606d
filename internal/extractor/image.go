package extractor

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/user/site-analyzer/internal/entity"
)

// Image collects <img> sources and og:image previews as absolute URLs.
type Image struct{}

func (Image) Name() string { return "image" }

// Extract fills ImageURLs and OGImageURLs. Each list is de-duplicated on its
// own; an image present in both lists stays in both.
func (Image) Extract(doc *goquery.Document, rec *entity.ExtractionRecord) {
	images := newOrderedSet()
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		images.add(absAttr(doc, s, "src"))
	})
	rec.ImageURLs = images.items

	ogImages := newOrderedSet()
	metaWith(doc, "property", "og:image").Each(func(_ int, s *goquery.Selection) {
		ogImages.add(absAttr(doc, s, "content"))
	})
	rec.OGImageURLs = ogImages.items
}
