package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/site-analyzer/internal/entity"
)

const (
	openGraphPrefix = "og:"
	twitterPrefix   = "twitter:"
)

// MetadataTag collects Open Graph and Twitter-card meta tags.
type MetadataTag struct{}

func (MetadataTag) Name() string { return "metadata_tag" }

// Extract maps og:* properties and twitter:* names to their content.
// Keys are kept as written; a repeated key keeps the last value.
func (MetadataTag) Extract(doc *goquery.Document, rec *entity.ExtractionRecord) {
	rec.OpenGraphTags = collectPrefixed(doc, "property", openGraphPrefix)
	rec.TwitterTags = collectPrefixed(doc, "name", twitterPrefix)
}

func collectPrefixed(doc *goquery.Document, attr, prefix string) map[string]string {
	tags := make(map[string]string)
	doc.Find("meta[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr(attr)
		if strings.HasPrefix(strings.ToLower(key), prefix) {
			tags[key] = s.AttrOr("content", "")
		}
	})
	return tags
}
