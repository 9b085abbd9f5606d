package request

// ExtractRequest is the payload for /api/extract and /api/report.
type ExtractRequest struct {
	URL string `json:"url"`
}
