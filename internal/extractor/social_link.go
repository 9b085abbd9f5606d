package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/site-analyzer/internal/entity"
)

type socialDomain struct {
	pattern string
	// exclude lists substrings marking share/intent links rather than profiles.
	exclude []string
}

var twitterExclusions = []string{"/intent/", "/share", "/search"}

// socialDomains is checked in order and the first match wins, so the
// specific YouTube paths come before the bare domain.
var socialDomains = []socialDomain{
	{pattern: "linkedin.com/company", exclude: []string{"/sharearticle?"}},
	{pattern: "linkedin.com/in"},
	{pattern: "twitter.com", exclude: twitterExclusions},
	{pattern: "x.com", exclude: twitterExclusions},
	{pattern: "facebook.com", exclude: []string{"/sharer/", "/plugins/"}},
	{pattern: "instagram.com"},
	{pattern: "youtube.com/channel"},
	{pattern: "youtube.com/user"},
	{pattern: "youtube.com"},
}

// SocialLink collects outbound links to social media profiles.
type SocialLink struct{}

func (SocialLink) Name() string { return "social_link" }

// Extract fills SocialMediaLinks with de-duplicated absolute profile links in
// document order, keeping their original case.
func (SocialLink) Extract(doc *goquery.Document, rec *entity.ExtractionRecord) {
	links := newOrderedSet()
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := absAttr(doc, s, "href")
		if href == "" {
			return
		}
		if _, ok := MatchSocialProfile(href); ok {
			links.add(href)
		}
	})
	rec.SocialMediaLinks = links.items
}

// MatchSocialProfile reports which social domain pattern href belongs to and
// whether it is a profile link. Matching is case-insensitive.
func MatchSocialProfile(href string) (string, bool) {
	lower := strings.ToLower(href)
	for _, d := range socialDomains {
		if !strings.Contains(lower, d.pattern) {
			continue
		}
		for _, ex := range d.exclude {
			if strings.Contains(lower, ex) {
				return d.pattern, false
			}
		}
		return d.pattern, true
	}
	return "", false
}
