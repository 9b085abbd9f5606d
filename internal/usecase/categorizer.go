package usecase

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/user/site-analyzer/internal/entity"
	"github.com/user/site-analyzer/pkg/logger"
)

// faviconRel matches rel values naming a favicon, including variants such as
// apple-touch-icon-precomposed and mask-icon. "iconic" does not match.
var faviconRel = regexp.MustCompile(`\bicon\b|\bshortcut icon\b|\bapple-touch-icon\b`)

// Categorizer derives counts and booleans from extracted fields.
type Categorizer interface {
	// Categorize fills ImageCount, OpenGraphTagCount, TwitterTagCount and
	// HasFavicon. doc may be nil when the fetch failed.
	Categorize(doc *goquery.Document, rec *entity.ExtractionRecord)
}

type categorizerUseCase struct {
	logger *zap.Logger
}

// NewCategorizer creates the default Categorizer.
func NewCategorizer(l *zap.Logger) Categorizer {
	return &categorizerUseCase{logger: logger.OrNop(l)}
}

func (uc *categorizerUseCase) Categorize(doc *goquery.Document, rec *entity.ExtractionRecord) {
	if rec == nil {
		uc.logger.Warn("extraction record is nil, skipping categorization")
		return
	}

	// og:image entries are counted on top of <img> entries even when they
	// point at the same file.
	imageCount := len(rec.ImageURLs) + len(rec.OGImageURLs)
	ogCount := len(rec.OpenGraphTags)
	twitterCount := len(rec.TwitterTags)
	rec.ImageCount = &imageCount
	rec.OpenGraphTagCount = &ogCount
	rec.TwitterTagCount = &twitterCount

	hasFavicon := false
	if doc == nil {
		uc.logger.Warn("no document available, categorizing from extracted fields only",
			zap.String("url", rec.RequestedURL))
	} else {
		hasFavicon = HasFavicon(doc)
	}
	rec.HasFavicon = &hasFavicon

	uc.logger.Debug("categorization complete",
		zap.String("url", rec.RequestedURL),
		zap.Int("image_count", imageCount),
		zap.Int("og_tag_count", ogCount),
		zap.Int("twitter_tag_count", twitterCount),
		zap.Bool("has_favicon", hasFavicon),
	)
}

// HasFavicon reports whether doc declares a favicon through <link rel>.
// rel is matched case-insensitively on word boundaries.
func HasFavicon(doc *goquery.Document) bool {
	return doc.Find("link[rel]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		return faviconRel.MatchString(strings.ToLower(rel))
	}).Length() > 0
}
