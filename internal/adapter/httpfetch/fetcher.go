package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/user/site-analyzer/internal/repository"
	"github.com/user/site-analyzer/pkg/config"
	"github.com/user/site-analyzer/pkg/logger"
	"github.com/user/site-analyzer/pkg/utils"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxRedirects = 10
	defaultMaxBodyBytes = 10 * 1024 * 1024
)

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxRedirects int
	MaxBodyBytes int64
	Proxies      []string
}

// Fetcher performs a single GET per call and parses the response into a goquery document.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *zap.Logger
}

var _ repository.DocumentFetcher = (*Fetcher)(nil)

// New creates a Fetcher. It fails only on an invalid proxy list.
func New(opts Options, l *zap.Logger) (*Fetcher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = config.DefaultUserAgent
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = defaultMaxRedirects
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if len(opts.Proxies) > 0 {
		rotator, err := NewProxyRotator(opts.Proxies)
		if err != nil {
			return nil, err
		}
		transport.Proxy = rotator.Proxy
	}

	maxRedirects := opts.MaxRedirects
	client := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Fetcher{
		client:       client,
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       logger.OrNop(l),
	}, nil
}

// Fetch retrieves targetURL and returns its parsed document. The document's
// Url is the final URL after redirects, overridden by a <base href> if present.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return nil, &repository.FetchError{URL: targetURL, Kind: repository.FetchErrorRequest, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	f.logger.Debug("fetching page", zap.String("url", targetURL))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &repository.FetchError{URL: targetURL, Kind: classify(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &repository.FetchError{
			URL:  targetURL,
			Kind: repository.FetchErrorStatus,
			Err:  fmt.Errorf("HTTP error fetching URL. Status=%d, URL=%s", resp.StatusCode, resp.Request.URL),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isMarkup(contentType) {
		return nil, &repository.FetchError{
			URL:  targetURL,
			Kind: repository.FetchErrorContentType,
			Err:  fmt.Errorf("unhandled content type %q for %s", contentType, resp.Request.URL),
		}
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodyBytes), contentType)
	if err != nil {
		return nil, &repository.FetchError{URL: targetURL, Kind: repository.FetchErrorRead, Err: fmt.Errorf("decode body: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		kind := repository.FetchErrorParse
		if isTimeout(err) {
			kind = repository.FetchErrorTimeout
		}
		return nil, &repository.FetchError{URL: targetURL, Kind: kind, Err: fmt.Errorf("parse document: %w", err)}
	}

	doc.Url = resp.Request.URL
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if abs := utils.ToAbsoluteURL(doc.Url, href); abs != "" {
			if baseURL, err := doc.Url.Parse(abs); err == nil {
				doc.Url = baseURL
			}
		}
	}

	f.logger.Debug("fetched page",
		zap.String("url", targetURL),
		zap.String("final_url", resp.Request.URL.String()),
		zap.Int("status", resp.StatusCode),
	)
	return doc, nil
}

func classify(err error) repository.FetchErrorKind {
	if isTimeout(err) {
		return repository.FetchErrorTimeout
	}
	return repository.FetchErrorNetwork
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isMarkup accepts the content types an HTML parser can make sense of.
// A missing Content-Type is given the benefit of the doubt.
func isMarkup(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/xhtml+xml", mediaType == "application/xml":
		return true
	case strings.HasSuffix(mediaType, "+xml"):
		return true
	}
	return false
}
