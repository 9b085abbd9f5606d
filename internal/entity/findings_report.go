package entity

// FindingsReport is the output of the heuristic analysis of one ExtractionRecord.
// Lists are never nil so they encode as [] rather than null.
type FindingsReport struct {
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Opportunities []string `json:"opportunities"`
	RedFlags      []string `json:"redFlags"`
	Summary       string   `json:"summary"`
}

// NewFindingsReport returns a report with empty, non-nil lists.
func NewFindingsReport() FindingsReport {
	return FindingsReport{
		Pros:          []string{},
		Cons:          []string{},
		Opportunities: []string{},
		RedFlags:      []string{},
	}
}
