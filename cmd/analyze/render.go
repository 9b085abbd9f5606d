package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/user/site-analyzer/internal/entity"
)

const (
	valueColumnWidth   = 100
	findingColumnWidth = 110
)

func renderReport(out io.Writer, rec *entity.ExtractionRecord, report entity.FindingsReport) {
	renderExtraction(out, rec)
	renderFindings(out, report)
	fmt.Fprintf(out, "\nSummary: %s\n", report.Summary)
}

func renderExtraction(out io.Writer, rec *entity.ExtractionRecord) {
	t := newTable(out)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: valueColumnWidth}})
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRow(table.Row{"URL", rec.RequestedURL})
	t.AppendRow(table.Row{"Title", orNA(rec.TitleOrEmpty())})
	t.AppendRow(table.Row{"Description", orNA(rec.DescriptionOrEmpty())})
	t.AppendRow(table.Row{"Images", intOrNA(rec.ImageCount)})
	t.AppendRow(table.Row{"Open Graph tags", intOrNA(rec.OpenGraphTagCount)})
	t.AppendRow(table.Row{"Twitter tags", intOrNA(rec.TwitterTagCount)})
	t.AppendRow(table.Row{"Favicon", boolOrNA(rec.HasFavicon)})
	t.AppendRow(table.Row{"Social links", orNA(strings.Join(rec.SocialMediaLinks, "\n"))})

	fmt.Fprintf(out, "\nExtraction:\n")
	t.Render()
}

func renderFindings(out io.Writer, report entity.FindingsReport) {
	t := newTable(out)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: findingColumnWidth}})
	t.AppendHeader(table.Row{"Category", "Finding"})

	sections := []struct {
		name  string
		items []string
	}{
		{"Pro", report.Pros},
		{"Con", report.Cons},
		{"Opportunity", report.Opportunities},
		{"Red flag", report.RedFlags},
	}
	total := 0
	for _, s := range sections {
		for _, item := range s.items {
			t.AppendRow(table.Row{s.name, item})
			total++
		}
	}
	t.AppendFooter(table.Row{"Total", total})

	fmt.Fprintf(out, "\nFindings:\n")
	t.Render()
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	return t
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func boolOrNA(v *bool) string {
	switch {
	case v == nil:
		return "N/A"
	case *v:
		return "yes"
	default:
		return "no"
	}
}
