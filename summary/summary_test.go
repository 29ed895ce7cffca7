package summary

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ridesPath = "testdata/rides.csv"

func TestSummarize(t *testing.T) {
	opts := DefaultOptions()
	opts.Column = 1
	result, err := Summarize(ridesPath, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"member":   3,
		"casual":   2,
		"day-pass": 1,
	}, result.Counts)
	// One row with an empty membership value, one row with too few fields.
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 6, result.Total())
	assert.Equal(t, []string{"casual", "day-pass", "member"},
		result.Categories())
}

func TestSummarize_NoHeader(t *testing.T) {
	opts := Options{Delimiter: ",", Column: 0, Header: false}
	result, err := Summarize(ridesPath, opts)
	require.NoError(t, err)
	// The header line now counts as a row of data.
	assert.Equal(t, 1, result.Counts["ride_id"])
	assert.Equal(t, 9, result.Total())
}

func TestSummarize_AlternateDelimiter(t *testing.T) {
	dir := t.TempDir()
	filePath := path.Join(dir, "scores.tsv")
	content := "name\tgrade\nana\tA\nbob\tB\ncarol\tA\n"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	result, err := Summarize(filePath, Options{
		Delimiter: "\t",
		Column:    1,
		Header:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, result.Counts)
}

func TestSummarize_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	filePath := path.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(filePath, []byte{}, 0644))

	// Empty files cannot be mapped; the plain-read fallback must kick in.
	result, err := Summarize(filePath, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Counts)
	assert.Equal(t, 0, result.Total())
}

func TestSummarize_Errors(t *testing.T) {
	if _, err := Summarize("testdata/nonexistent.csv",
		DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}
	opts := DefaultOptions()
	opts.Column = -1
	if _, err := Summarize(ridesPath, opts); err == nil {
		t.Error("expected error for negative column index")
	}
}
