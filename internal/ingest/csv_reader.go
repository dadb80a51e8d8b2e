package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
)

const (
	ColumnURL   = "url"
	ColumnTitle = "title"
	ColumnText  = "text"
)

// Row is one dataset line turned into an analysis request.
type Row struct {
	Line    int
	Request analysis.Request
}

// Options are applied to every request read from a dataset.
type Options struct {
	FindRelatedSources bool
	GenerateNeutral    bool
}

type CSVReader struct {
	reader io.Reader
	opts   Options
}

func NewCSVReader(reader io.Reader, opts Options) *CSVReader {
	return &CSVReader{
		reader: reader,
		opts:   opts,
	}
}

// Read expects a header row naming at least one of url, title and text.
// Header names are matched case-insensitively and unknown columns are ignored.
func (cr *CSVReader) Read() ([]Row, error) {
	csvReader := csv.NewReader(cr.reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	headers, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if !hasAny(index, ColumnURL, ColumnTitle, ColumnText) {
		return nil, fmt.Errorf("header must contain %q or %q and %q columns", ColumnURL, ColumnTitle, ColumnText)
	}

	var rows []Row
	line := 1
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		req := analysis.Request{
			URL:                field(ColumnURL),
			Title:              field(ColumnTitle),
			Text:               field(ColumnText),
			FindRelatedSources: cr.opts.FindRelatedSources,
			GenerateNeutral:    cr.opts.GenerateNeutral,
		}
		if blank(req) {
			continue
		}
		rows = append(rows, Row{Line: line, Request: req})
	}

	return rows, nil
}

func hasAny(index map[string]int, names ...string) bool {
	for _, n := range names {
		if _, ok := index[n]; ok {
			return true
		}
	}
	return false
}

func blank(r analysis.Request) bool {
	return strings.TrimSpace(r.URL) == "" &&
		strings.TrimSpace(r.Title) == "" &&
		strings.TrimSpace(r.Text) == ""
}
