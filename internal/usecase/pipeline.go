package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/user/site-analyzer/internal/entity"
	"github.com/user/site-analyzer/internal/extractor"
	"github.com/user/site-analyzer/internal/repository"
	"github.com/user/site-analyzer/pkg/logger"
	"github.com/user/site-analyzer/pkg/metrics"
	"github.com/user/site-analyzer/pkg/utils"
)

// Pipeline sequences fetch, extraction and categorization for one URL at a
// time. It keeps no per-request state and can serve concurrent callers.
type Pipeline struct {
	fetcher     repository.DocumentFetcher
	categorizer Categorizer
	analyzer    Analyzer
	extractors  []extractor.Extractor
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExtractors replaces the default extractor set.
func WithExtractors(extractors ...extractor.Extractor) Option {
	return func(p *Pipeline) { p.extractors = extractors }
}

// WithLogger sets the logger; nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logger.OrNop(l) }
}

// WithMetrics sets the collectors; nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(fetcher repository.DocumentFetcher, categorizer Categorizer, analyzer Analyzer, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:     fetcher,
		categorizer: categorizer,
		analyzer:    analyzer,
		extractors:  extractor.Default(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process fetches url and builds its ExtractionRecord. It never fails: fetch
// and extraction errors are reported through the record's title, and the
// returned record is always categorized.
func (p *Pipeline) Process(ctx context.Context, url string) *entity.ExtractionRecord {
	rec := entity.NewExtractionRecord(url)
	p.logger.Info("processing URL", zap.String("url", url))

	doc, err := p.fetch(ctx, url)
	switch {
	case err != nil:
		var fetchErr *repository.FetchError
		if errors.As(err, &fetchErr) {
			p.logger.Warn("could not fetch content", zap.String("url", url), zap.String("kind", string(fetchErr.Kind)), zap.Error(err))
			rec.MarkFetchFailed(fetchErr.Error())
		} else {
			p.logger.Error("unexpected error during fetch", zap.String("url", url), zap.Error(err))
			rec.MarkExtractionFailed(err.Error())
		}
		doc = nil
	default:
		if err := p.extract(doc, rec); err != nil {
			p.logger.Error("unexpected error during extraction", zap.String("url", url), zap.Error(err))
			rec.MarkExtractionFailed(err.Error())
		}
	}

	p.categorize(doc, rec)
	return rec
}

// Analyze runs the heuristic analysis on rec.
func (p *Pipeline) Analyze(rec *entity.ExtractionRecord) entity.FindingsReport {
	report := p.analyzer.Analyze(rec)

	outcome := "analyzed"
	if rec.IsFailed() {
		outcome = "short_circuit"
	}
	p.metrics.IncAnalyses(outcome)
	p.metrics.AddFindings("pros", len(report.Pros))
	p.metrics.AddFindings("cons", len(report.Cons))
	p.metrics.AddFindings("opportunities", len(report.Opportunities))
	p.metrics.AddFindings("red_flags", len(report.RedFlags))
	return report
}

// Run processes url and analyzes the resulting record.
func (p *Pipeline) Run(ctx context.Context, url string) (*entity.ExtractionRecord, entity.FindingsReport) {
	rec := p.Process(ctx, url)
	return rec, p.Analyze(rec)
}

func (p *Pipeline) fetch(ctx context.Context, url string) (doc *goquery.Document, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("fetcher panic: %v", r)
		}
		errorType := ""
		var fetchErr *repository.FetchError
		switch {
		case errors.As(err, &fetchErr):
			errorType = string(fetchErr.Kind)
		case err != nil:
			errorType = "unexpected"
		}
		p.metrics.ObserveFetch(utils.Hostname(url), errorType, time.Since(start).Seconds())
	}()

	doc, err = p.fetcher.Fetch(ctx, url)
	if err == nil && doc == nil {
		err = &repository.FetchError{URL: url, Kind: repository.FetchErrorParse, Err: errors.New("empty document")}
	}
	return doc, err
}

func (p *Pipeline) extract(doc *goquery.Document, rec *entity.ExtractionRecord) (err error) {
	current := ""
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("extractor panicked", zap.String("extractor", current), zap.Any("panic", r))
			err = fmt.Errorf("%v", r)
		}
	}()

	for _, ex := range p.extractors {
		current = ex.Name()
		ex.Extract(doc, rec)
	}
	return nil
}

// categorize runs the categorizer once. If it panics the categorization
// fields are zero-filled so the record still reaches the analyzer complete.
func (p *Pipeline) categorize(doc *goquery.Document, rec *entity.ExtractionRecord) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("categorizer panicked", zap.String("url", rec.RequestedURL), zap.Any("panic", r))
			fillCategoryDefaults(rec)
		}
	}()
	p.categorizer.Categorize(doc, rec)
	fillCategoryDefaults(rec)
}

func fillCategoryDefaults(rec *entity.ExtractionRecord) {
	if rec.ImageCount == nil {
		zero := 0
		rec.ImageCount = &zero
	}
	if rec.OpenGraphTagCount == nil {
		zero := 0
		rec.OpenGraphTagCount = &zero
	}
	if rec.TwitterTagCount == nil {
		zero := 0
		rec.TwitterTagCount = &zero
	}
	if rec.HasFavicon == nil {
		no := false
		rec.HasFavicon = &no
	}
}
