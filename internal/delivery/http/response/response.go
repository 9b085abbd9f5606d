package response

import "github.com/user/site-analyzer/internal/entity"

// ReportResponse bundles the extraction record with its analysis.
type ReportResponse struct {
	Extraction *entity.ExtractionRecord `json:"extraction"`
	Analysis   entity.FindingsReport    `json:"analysis"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
