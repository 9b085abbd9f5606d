package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/site-analyzer/internal/entity"
)

// BasicInfo extracts the page title and description.
type BasicInfo struct{}

func (BasicInfo) Name() string { return "basic_info" }

// Extract sets Title (possibly empty, never nil) and MetaDescription from
// <meta name="description">, falling back to og:description.
func (BasicInfo) Extract(doc *goquery.Document, rec *entity.ExtractionRecord) {
	title := doc.Find("title").First().Text()
	rec.SetTitle(strings.Join(strings.Fields(title), " "))

	if desc := metaWith(doc, "name", "description").First(); desc.Length() > 0 {
		rec.SetMetaDescription(desc.AttrOr("content", ""))
		return
	}
	if desc := metaWith(doc, "property", "og:description").First(); desc.Length() > 0 {
		rec.SetMetaDescription(desc.AttrOr("content", ""))
	}
}
