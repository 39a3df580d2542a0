// Package dataset loads and aggregates the yearly solar-radiation series
// that drives the visualization. Loading degrades instead of failing: a
// missing file or unmatched table yields an empty Series and the scene runs
// statically.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Domain errors for dataset loading.
var (
	// ErrNoColumns indicates no header cell matched the year/value aliases.
	ErrNoColumns = errors.New("dataset: no year and value columns matched")

	// ErrNoRows indicates the table held no parseable data rows.
	ErrNoRows = errors.New("dataset: no usable data rows")
)

// Entry is one aggregated year.
type Entry struct {
	Year  int
	Total float64
}

// Series is the aggregated dataset, ascending by year. Min and Max span the
// totals and are fixed at load time; normalization reads them every frame.
type Series struct {
	Entries []Entry
	Min     float64
	Max     float64
}

// Matcher locates the year and value columns by case-insensitive substring
// match against header cells. The first matching column wins, and a column
// claimed for the year is not considered for the value.
type Matcher struct {
	Year  []string
	Value []string
}

// DefaultMatcher recognizes the column spellings the observatory exports
// use, including the bilingual headers.
func DefaultMatcher() Matcher {
	return Matcher{
		Year:  []string{"year", "年"},
		Value: []string{"value", "數值", "total"},
	}
}

// Columns returns the indices of the year and value columns in header, or
// -1 where nothing matched.
func (m Matcher) Columns(header []string) (yearIdx, valueIdx int) {
	yearIdx, valueIdx = -1, -1
	for i, cell := range header {
		lc := strings.ToLower(strings.TrimSpace(cell))
		if yearIdx < 0 && matchAny(lc, m.Year) {
			yearIdx = i
			continue
		}
		if valueIdx < 0 && matchAny(lc, m.Value) {
			valueIdx = i
		}
	}
	return yearIdx, valueIdx
}

func matchAny(cell string, aliases []string) bool {
	for _, a := range aliases {
		if strings.Contains(cell, a) {
			return true
		}
	}
	return false
}

// Source supplies the series. The implementation is picked once at startup:
// a readable file gets the CSV source, anything else the degraded source
// whose Load reports why it carries no data.
type Source interface {
	Load() (Series, error)
}

// Resolve returns the Source for path.
func Resolve(path string) Source {
	if _, err := os.Stat(path); err != nil {
		return unavailable{err: fmt.Errorf("dataset: %w", err)}
	}
	return FileSource{Path: path, Matcher: DefaultMatcher()}
}

type unavailable struct{ err error }

func (u unavailable) Load() (Series, error) { return Series{}, u.err }

// FileSource loads and aggregates a CSV table from disk.
type FileSource struct {
	Path    string
	Matcher Matcher
}

// Load reads the file and aggregates totals by year.
func (f FileSource) Load() (Series, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return Series{}, fmt.Errorf("dataset: open %s: %w", f.Path, err)
	}
	defer file.Close()
	return LoadReader(file, f.Matcher)
}

// LoadReader aggregates a CSV table from r. The delimiter is sniffed from
// the header line; rows with unparseable year or value cells are skipped;
// totals for duplicate years are summed.
func LoadReader(r io.Reader, m Matcher) (Series, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Series{}, fmt.Errorf("dataset: read: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = sniffDelimiter(raw)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Series{}, fmt.Errorf("dataset: parse csv: %w", err)
	}
	if len(records) == 0 {
		return Series{}, ErrNoRows
	}

	yearIdx, valueIdx := m.Columns(records[0])
	if yearIdx < 0 || valueIdx < 0 {
		return Series{}, ErrNoColumns
	}

	totals := make(map[int]float64)
	for _, rec := range records[1:] {
		if yearIdx >= len(rec) || valueIdx >= len(rec) {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[yearIdx]), 64)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[valueIdx]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		totals[int(y)] += v
	}
	if len(totals) == 0 {
		return Series{}, ErrNoRows
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	entries := make([]Entry, len(years))
	for i, y := range years {
		entries[i] = Entry{Year: y, Total: totals[y]}
	}
	return NewSeries(entries), nil
}

// sniffDelimiter inspects the header line and picks the separator with the
// most occurrences; comma wins ties.
func sniffDelimiter(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	best := ','
	bestCount := bytes.Count(line, []byte{','})
	for _, c := range []byte{';', '\t'} {
		if n := bytes.Count(line, []byte{c}); n > bestCount {
			best, bestCount = rune(c), n
		}
	}
	return best
}

// NewSeries wraps already-aggregated entries, fixing Min and Max. Entries
// are assumed ascending by year.
func NewSeries(entries []Entry) Series {
	s := Series{Entries: entries}
	if len(entries) > 0 {
		vals := s.Values()
		s.Min = floats.Min(vals)
		s.Max = floats.Max(vals)
	}
	return s
}

// Len reports the number of aggregated years.
func (s Series) Len() int { return len(s.Entries) }

// Empty reports whether the series carries no data.
func (s Series) Empty() bool { return len(s.Entries) == 0 }

// Values returns the totals in year order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s.Entries))
	for i, e := range s.Entries {
		vals[i] = e.Total
	}
	return vals
}

// Normalized maps entry i's total onto [0, 1] within the series range. A
// constant series normalizes to 0.5 so the animation sits mid-range.
func (s Series) Normalized(i int) float64 {
	if s.Max <= s.Min {
		return 0.5
	}
	return (s.Entries[i].Total - s.Min) / (s.Max - s.Min)
}

// Sum totals the whole series.
func (s Series) Sum() float64 { return floats.Sum(s.Values()) }

// Mean is the average yearly total, zero for an empty series.
func (s Series) Mean() float64 {
	if s.Empty() {
		return 0
	}
	return s.Sum() / float64(len(s.Entries))
}
