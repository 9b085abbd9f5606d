package usecase

import (
	"fmt"
	"strings"

	"github.com/user/site-analyzer/internal/entity"
)

const (
	failedSummary = "Analysis could not be performed due to issues fetching website data."
	failedRedFlag = "Website data extraction failed or was incomplete."

	defaultSummary = "The company appears to have a basic online presence. " +
		"Key areas for improvement include optimizing meta tags and ensuring clear social media profile linkage."
)

// Analyzer turns a categorized ExtractionRecord into findings.
type Analyzer interface {
	Analyze(rec *entity.ExtractionRecord) entity.FindingsReport
}

// rule appends zero or more findings to the report. Rules must not modify rec.
type rule struct {
	name  string
	apply func(rec *entity.ExtractionRecord, r *entity.FindingsReport)
}

// rules run in order; their order fixes the order of items within each list.
var rules = []rule{
	{name: "title", apply: titleRule},
	{name: "meta_description", apply: metaDescriptionRule},
	{name: "favicon", apply: faviconRule},
	{name: "image_count", apply: imageCountRule},
	{name: "open_graph", apply: openGraphRule},
	{name: "twitter_card", apply: twitterCardRule},
	{name: "social_links", apply: socialLinksRule},
	{name: "summary", apply: summaryRule},
}

type analyzerUseCase struct{}

// NewAnalyzer creates the rule-table Analyzer. It is pure and safe for concurrent use.
func NewAnalyzer() Analyzer {
	return analyzerUseCase{}
}

func (analyzerUseCase) Analyze(rec *entity.ExtractionRecord) entity.FindingsReport {
	report := entity.NewFindingsReport()
	if rec.IsFailed() {
		report.RedFlags = append(report.RedFlags, failedRedFlag)
		report.Summary = failedSummary
		return report
	}

	for _, r := range rules {
		r.apply(rec, &report)
	}
	return report
}

func titleRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	r.Pros = append(r.Pros, fmt.Sprintf("Company has an online presence with a website titled: '%s'.", rec.TitleOrEmpty()))
}

func metaDescriptionRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	if rec.DescriptionOrEmpty() != "" {
		r.Pros = append(r.Pros, "Website includes a meta description, good for SEO.")
		return
	}
	r.Cons = append(r.Cons, "Website is missing a meta description, which can negatively impact SEO.")
}

func faviconRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	if rec.HasFavicon != nil && *rec.HasFavicon {
		r.Pros = append(r.Pros, "Website has a favicon, improving brand recognition in browser tabs.")
		return
	}
	r.Cons = append(r.Cons, "Website is missing a favicon.")
}

// imageCountRule leaves counts 2 through 5 without a finding.
func imageCountRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	if rec.ImageCount == nil {
		return
	}
	switch n := *rec.ImageCount; {
	case n > 5:
		r.Pros = append(r.Pros, fmt.Sprintf("Website contains multiple images (%d), suggesting visual content.", n))
	case n > 0 && n < 2:
		r.Cons = append(r.Cons, fmt.Sprintf("Website has very few images (%d), potentially lacking visual appeal or content.", n))
	case n == 0:
		r.Cons = append(r.Cons, "Website does not seem to contain any images.")
	}
}

func openGraphRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	if rec.OpenGraphTagCount != nil && *rec.OpenGraphTagCount > 2 {
		r.Pros = append(r.Pros, fmt.Sprintf("Good use of OpenGraph tags (%d) for social media sharing.", *rec.OpenGraphTagCount))
		return
	}
	r.Cons = append(r.Cons, "Limited use of OpenGraph tags, potentially impacting social media preview quality.")
	r.Opportunities = append(r.Opportunities, "Enhance OpenGraph tags (og:title, og:description, og:image) for better social media sharing.")
}

func twitterCardRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	if rec.TwitterTagCount != nil && *rec.TwitterTagCount > 1 {
		r.Pros = append(r.Pros, "Twitter card tags are present, good for Twitter sharing.")
		return
	}
	r.Opportunities = append(r.Opportunities, "Implement Twitter card meta tags for optimized sharing on Twitter/X.")
}

func socialLinksRule(rec *entity.ExtractionRecord, r *entity.FindingsReport) {
	if len(rec.SocialMediaLinks) > 0 {
		r.Pros = append(r.Pros, "Links to social media profiles detected, indicating social presence.")
		r.Opportunities = append(r.Opportunities, fmt.Sprintf(
			"Verify and leverage identified social media channels (%s) for engagement.",
			strings.Join(rec.SocialMediaLinks, ", ")))
		return
	}
	r.Cons = append(r.Cons, "No clear links to social media profiles found on the homepage. "+
		"This might indicate a weak social media strategy or poor website navigation to these assets.")
	r.Opportunities = append(r.Opportunities, "If social media profiles exist, ensure they are clearly linked from the website.")
}

func summaryRule(_ *entity.ExtractionRecord, r *entity.FindingsReport) {
	r.Summary = defaultSummary
}
