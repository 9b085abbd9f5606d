package repository

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
)

// ErrFetch matches every *FetchError via errors.Is.
var ErrFetch = errors.New("could not fetch document")

// FetchErrorKind classifies why a fetch failed.
type FetchErrorKind string

const (
	FetchErrorRequest     FetchErrorKind = "request"
	FetchErrorTimeout     FetchErrorKind = "timeout"
	FetchErrorNetwork     FetchErrorKind = "network"
	FetchErrorStatus      FetchErrorKind = "status"
	FetchErrorContentType FetchErrorKind = "content_type"
	FetchErrorRead        FetchErrorKind = "read"
	FetchErrorParse       FetchErrorKind = "parse"
)

// FetchError describes a failed document fetch.
type FetchError struct {
	URL  string
	Kind FetchErrorKind
	Err  error
}

// Error returns the underlying cause, which is what ends up in the record title.
func (e *FetchError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFetch) match any fetch error.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// DocumentFetcher retrieves a single page and returns its parsed document tree.
type DocumentFetcher interface {
	// Fetch performs one GET of url. A failure is always returned as *FetchError.
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}
