package extractor

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/site-analyzer/internal/entity"
)

const testPageURL = "https://acme.example/about/"

func newDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	doc.Url, err = url.Parse(testPageURL)
	require.NoError(t, err)
	return doc
}

func extract(t *testing.T, ex Extractor, html string) *entity.ExtractionRecord {
	t.Helper()
	rec := entity.NewExtractionRecord(testPageURL)
	ex.Extract(newDoc(t, html), rec)
	return rec
}

func TestBasicInfo_TitleAndDescription(t *testing.T) {
	rec := extract(t, BasicInfo{}, `<html><head>
		<title>
		  Acme   Co
		</title>
		<meta name="Description" content="We make anvils.">
		<meta property="og:description" content="OG description">
	</head></html>`)

	require.NotNil(t, rec.Title)
	assert.Equal(t, "Acme Co", *rec.Title)
	require.NotNil(t, rec.MetaDescription)
	assert.Equal(t, "We make anvils.", *rec.MetaDescription)
}

func TestBasicInfo_DescriptionFallsBackToOpenGraph(t *testing.T) {
	rec := extract(t, BasicInfo{}, `<head><title>Acme</title><meta property="og:description" content="OG description"></head>`)

	require.NotNil(t, rec.MetaDescription)
	assert.Equal(t, "OG description", *rec.MetaDescription)
}

func TestBasicInfo_MissingTitleAndDescription(t *testing.T) {
	rec := extract(t, BasicInfo{}, `<html><body><p>no head</p></body></html>`)

	require.NotNil(t, rec.Title, "title is never nil when a document exists")
	assert.Equal(t, "", *rec.Title)
	assert.Nil(t, rec.MetaDescription)
}

func TestImage_ResolvesDeduplicatesAndKeepsOrder(t *testing.T) {
	rec := extract(t, Image{}, `<body>
		<img src="b.png">
		<img src="/img/a.png">
		<img src="https://acme.example/about/b.png">
		<img src="">
		<img>
		<img src="//cdn.example/c.png">
	</body>`)

	assert.Equal(t, []string{
		"https://acme.example/about/b.png",
		"https://acme.example/img/a.png",
		"https://cdn.example/c.png",
	}, rec.ImageURLs)
	assert.Empty(t, rec.OGImageURLs)
	assert.NotNil(t, rec.OGImageURLs)
}

func TestImage_OpenGraphImagesAreSeparateNamespace(t *testing.T) {
	rec := extract(t, Image{}, `<head>
		<meta property="og:image" content="/img/a.png">
		<meta property="og:image" content="/img/a.png">
		<meta property="og:image" content="">
	</head><body><img src="/img/a.png"></body>`)

	assert.Equal(t, []string{"https://acme.example/img/a.png"}, rec.ImageURLs)
	assert.Equal(t, []string{"https://acme.example/img/a.png"}, rec.OGImageURLs)
}

func TestMetadataTag_CollectsOpenGraphAndTwitter(t *testing.T) {
	rec := extract(t, MetadataTag{}, `<head>
		<meta property="og:title" content="Acme">
		<meta property="og:type" content="website">
		<meta property="og:title" content="Acme Corporation">
		<meta property="article:author" content="ignored">
		<meta name="twitter:card" content="summary">
		<meta name="twitter:site" content="@acme">
		<meta name="description" content="ignored">
		<meta property="twitter:image" content="ignored, property not name">
	</head>`)

	assert.Equal(t, map[string]string{
		"og:title": "Acme Corporation",
		"og:type":  "website",
	}, rec.OpenGraphTags)
	assert.Equal(t, map[string]string{
		"twitter:card": "summary",
		"twitter:site": "@acme",
	}, rec.TwitterTags)
}

func TestMetadataTag_EmptyDocumentYieldsEmptyMaps(t *testing.T) {
	rec := extract(t, MetadataTag{}, `<html></html>`)

	assert.NotNil(t, rec.OpenGraphTags)
	assert.Empty(t, rec.OpenGraphTags)
	assert.NotNil(t, rec.TwitterTags)
	assert.Empty(t, rec.TwitterTags)
}

func TestSocialLink_FiltersIntentLinksAndDeduplicates(t *testing.T) {
	rec := extract(t, SocialLink{}, `<body>
		<a href="https://twitter.com/intent/tweet?text=hi">Tweet</a>
		<a href="https://Twitter.com/AcmeCo">Twitter</a>
		<a href="https://x.com/share?url=acme">Share</a>
		<a href="https://www.facebook.com/sharer/sharer.php?u=acme">Share</a>
		<a href="https://www.facebook.com/AcmeCo">Facebook</a>
		<a href="https://www.linkedin.com/company/acme">LinkedIn</a>
		<a href="https://www.linkedin.com/company/acme/shareArticle?mini=true">LinkedIn share</a>
		<a href="https://www.youtube.com/channel/UC123">YouTube</a>
		<a href="https://instagram.com/acme">Instagram</a>
		<a href="https://twitter.com/AcmeCo">Twitter again</a>
		<a href="/contact">Contact</a>
		<a href="mailto:hello@acme.example">Mail</a>
	</body>`)

	assert.Equal(t, []string{
		"https://Twitter.com/AcmeCo",
		"https://www.facebook.com/AcmeCo",
		"https://www.linkedin.com/company/acme",
		"https://www.youtube.com/channel/UC123",
		"https://instagram.com/acme",
		"https://twitter.com/AcmeCo",
	}, rec.SocialMediaLinks)
}

func TestSocialLink_NoLinks(t *testing.T) {
	rec := extract(t, SocialLink{}, `<body><a href="/about">About</a></body>`)

	assert.NotNil(t, rec.SocialMediaLinks)
	assert.Empty(t, rec.SocialMediaLinks)
}

func TestMatchSocialProfile(t *testing.T) {
	tests := []struct {
		href    string
		pattern string
		ok      bool
	}{
		{href: "https://www.linkedin.com/in/jane", pattern: "linkedin.com/in", ok: true},
		{href: "https://twitter.com/search?q=acme", pattern: "twitter.com", ok: false},
		{href: "https://x.com/intent/follow?screen_name=acme", pattern: "x.com", ok: false},
		{href: "https://x.com/acme", pattern: "x.com", ok: true},
		{href: "https://www.facebook.com/plugins/like.php", pattern: "facebook.com", ok: false},
		{href: "https://twitter.com/share?u=https://facebook.com/acme", pattern: "twitter.com", ok: false},
		{href: "https://youtube.com/user/acme", pattern: "youtube.com/user", ok: true},
		{href: "https://www.youtube.com/@acme", pattern: "youtube.com", ok: true},
		{href: "https://github.com/acme", pattern: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			pattern, ok := MatchSocialProfile(tt.href)
			assert.Equal(t, tt.pattern, pattern)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDefault_RunsAllExtractors(t *testing.T) {
	doc := newDoc(t, `<head><title>Acme</title><meta property="og:image" content="/og.png"></head>
		<body><img src="/a.png"><a href="https://instagram.com/acme">ig</a></body>`)
	rec := entity.NewExtractionRecord(testPageURL)

	for _, ex := range Default() {
		ex.Extract(doc, rec)
	}

	assert.Equal(t, "Acme", rec.TitleOrEmpty())
	assert.Len(t, rec.ImageURLs, 1)
	assert.Len(t, rec.OGImageURLs, 1)
	assert.Equal(t, map[string]string{"og:image": "/og.png"}, rec.OpenGraphTags)
	assert.Equal(t, []string{"https://instagram.com/acme"}, rec.SocialMediaLinks)
	assert.Len(t, Default(), 4)
}
