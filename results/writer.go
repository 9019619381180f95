// Package results persists accepted search hits as JSON result files
// whose names carry the searched date range.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ghsieve/searcher"
)

// Record is one row of a result file.
type Record struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	Repository string `json:"repository"`
	Date       string `json:"date"`
	Author     string `json:"author"`
}

// Writer writes result files under a directory.
type Writer struct {
	dir string
}

// NewWriter builds a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write converts items to records (IDs are 1-based, in order) and
// writes them as an indented JSON array. It returns the path of the
// file written.
func (w *Writer) Write(items []searcher.Item, baseName string, start, end time.Time) (string, error) {
	records := make([]Record, 0, len(items))
	for i, item := range items {
		records = append(records, Record{
			ID:         i + 1,
			Title:      item.Title,
			URL:        item.URL,
			Type:       string(item.Kind),
			Repository: item.Repository,
			Date:       item.Date.Format(time.RFC3339),
			Author:     item.Author,
		})
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create result dir: %w", err)
	}

	path := filepath.Join(w.dir, suffixedName(baseName, start, end))
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}
	return path, nil
}

// suffixedName derives the result file name from the configured base
// name plus a date-range suffix, e.g. "hits.json" becomes
// "hits_20240101_to_20240110.json".
func suffixedName(base string, start, end time.Time) string {
	suffix := start.Format("20060102") + "_to_" + end.Format("20060102")

	ext := filepath.Ext(base)
	if ext == "" {
		return base + "_" + suffix + ".json"
	}
	return strings.TrimSuffix(base, ext) + "_" + suffix + ext
}
