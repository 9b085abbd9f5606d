package entity

import "strings"

// ErrorMarkerPrefix is the prefix placed on Title when extraction fails.
// Consumers detect a failed extraction purely from the record's title.
const ErrorMarkerPrefix = "Error:"

// ExtractionRecord holds everything extracted and derived for one requested URL.
// Nil pointers, slices and maps mean the owning stage did not populate them.
type ExtractionRecord struct {
	RequestedURL     string            `json:"requestedUrl"`
	Title            *string           `json:"title"`
	MetaDescription  *string           `json:"metaDescription"`
	ImageURLs        []string          `json:"imageUrls"`
	OGImageURLs      []string          `json:"ogImageUrls"`
	OpenGraphTags    map[string]string `json:"openGraphTags"`
	TwitterTags      map[string]string `json:"twitterTags"`
	SocialMediaLinks []string          `json:"socialMediaLinks"`

	// Categorization fields, always non-nil once the categorizer has run.
	ImageCount        *int  `json:"imageCount"`
	OpenGraphTagCount *int  `json:"openGraphTagCount"`
	TwitterTagCount   *int  `json:"twitterTagCount"`
	HasFavicon        *bool `json:"hasFavicon"`
}

// NewExtractionRecord creates a record with only the requested URL set.
func NewExtractionRecord(requestedURL string) *ExtractionRecord {
	return &ExtractionRecord{RequestedURL: requestedURL}
}

// SetTitle stores the page title.
func (r *ExtractionRecord) SetTitle(title string) {
	r.Title = &title
}

// SetMetaDescription stores the page description.
func (r *ExtractionRecord) SetMetaDescription(description string) {
	r.MetaDescription = &description
}

// MarkFetchFailed records a fetch failure using the error-marker convention.
func (r *ExtractionRecord) MarkFetchFailed(cause string) {
	r.SetTitle(ErrorMarkerPrefix + " Could not fetch content - " + cause)
}

// MarkExtractionFailed records an unexpected failure inside the extraction stages.
func (r *ExtractionRecord) MarkExtractionFailed(cause string) {
	r.SetTitle(ErrorMarkerPrefix + " Unexpected error during extraction - " + cause)
}

// IsFailed reports whether the record lacks a title or carries the error marker.
func (r *ExtractionRecord) IsFailed() bool {
	if r == nil || r.Title == nil {
		return true
	}
	return strings.Contains(strings.ToLower(*r.Title), strings.ToLower(ErrorMarkerPrefix))
}

// IsCategorized reports whether every categorization field has been set.
func (r *ExtractionRecord) IsCategorized() bool {
	return r.ImageCount != nil && r.OpenGraphTagCount != nil && r.TwitterTagCount != nil && r.HasFavicon != nil
}

// TitleOrEmpty returns the title, or "" when absent.
func (r *ExtractionRecord) TitleOrEmpty() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}

// DescriptionOrEmpty returns the meta description, or "" when absent.
func (r *ExtractionRecord) DescriptionOrEmpty() string {
	if r.MetaDescription == nil {
		return ""
	}
	return *r.MetaDescription
}
