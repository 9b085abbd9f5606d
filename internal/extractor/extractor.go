// Package extractor turns a parsed page into the raw fields of an ExtractionRecord.
// Extractors never fail: missing markup leaves fields empty.
package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/site-analyzer/internal/entity"
	"github.com/user/site-analyzer/pkg/utils"
)

// Extractor populates part of an ExtractionRecord from a non-nil document.
type Extractor interface {
	Name() string
	Extract(doc *goquery.Document, rec *entity.ExtractionRecord)
}

// Default returns the standard extractors. They are independent of each other,
// so the order only affects logging.
func Default() []Extractor {
	return []Extractor{
		BasicInfo{},
		Image{},
		MetadataTag{},
		SocialLink{},
	}
}

// absAttr returns the named attribute of s resolved to an absolute URL
// against the document base, or "" when missing or unresolvable.
func absAttr(doc *goquery.Document, s *goquery.Selection, attr string) string {
	raw, ok := s.Attr(attr)
	if !ok {
		return ""
	}
	return utils.ToAbsoluteURL(doc.Url, raw)
}

// metaWith selects <meta> elements whose attr equals value, ignoring case.
func metaWith(doc *goquery.Document, attr, value string) *goquery.Selection {
	return doc.Find("meta[" + attr + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr(attr)
		return strings.EqualFold(strings.TrimSpace(v), value)
	})
}

// orderedSet collects strings once each, in first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (o *orderedSet) add(s string) {
	if s == "" {
		return
	}
	if _, ok := o.seen[s]; ok {
		return
	}
	o.seen[s] = struct{}{}
	o.items = append(o.items, s)
}
