// Package summary computes per-category row counts over a single column of
// a delimited text file.
package summary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/samber/lo"
)

// Options controls how a delimited file is read.
type Options struct {
	Delimiter string // field separator, "," when empty
	Column    int    // zero-based index of the column to summarize
	Header    bool   // skip the first non-empty line
}

// DefaultOptions summarizes the first column of a comma-delimited file with
// a header row.
func DefaultOptions() Options {
	return Options{Delimiter: ",", Column: 0, Header: true}
}

// ColumnSummary holds the per-category counts for one column, along with the
// number of rows skipped as malformed or empty.
type ColumnSummary struct {
	Counts  map[string]int
	Skipped int
}

// readMapped returns the file contents as a memory map where possible,
// falling back to a plain read for files that cannot be mapped (empty files,
// pipes). The returned func releases the mapping.
func readMapped(path string) ([]byte, func(), error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	if mmapErr != nil {
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			return nil, nil, readErr
		}
		return data, func() {}, nil
	}
	return fileMmap, func() {
		fileMmap.Unmap()
		file.Close()
	}, nil
}

// Summarize reads the delimited file at path and counts the occurrences of
// each distinct value of the configured column. Rows with too few fields and
// rows whose value is empty are skipped, not fatal; an unreadable file is.
func Summarize(path string, opts Options) (*ColumnSummary, error) {
	if opts.Column < 0 {
		return nil, errors.New(
			fmt.Sprintf("column index %d out of range", opts.Column))
	}
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	data, done, err := readMapped(path)
	if err != nil {
		return nil, err
	}
	defer done()

	counts := make(map[string]int)
	skipped := 0
	firstLine := true
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if firstLine {
			firstLine = false
			if opts.Header {
				continue
			}
		}
		fields := strings.Split(line, opts.Delimiter)
		if opts.Column >= len(fields) {
			skipped += 1
			continue
		}
		value := strings.TrimSpace(fields[opts.Column])
		if value == "" {
			skipped += 1
			continue
		}
		counts[value] += 1
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}
	return &ColumnSummary{Counts: counts, Skipped: skipped}, nil
}

// Categories returns the distinct column values in sorted order.
func (s *ColumnSummary) Categories() []string {
	categories := lo.Keys(s.Counts)
	sort.Strings(categories)
	return categories
}

// Total returns the number of rows that contributed to the counts.
func (s *ColumnSummary) Total() int {
	return lo.Sum(lo.Values(s.Counts))
}
