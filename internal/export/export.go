// Package export writes loaded series data to interchange formats and
// renders vector snapshots of the scene.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/radviz/internal/dataset"
)

// Summary is the JSON export shape: series statistics followed by the
// yearly entries in ascending year order.
type Summary struct {
	Years   int     `json:"years"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Entries []Entry `json:"entries"`
}

type Entry struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// WriteJSON writes the series with its statistics as indented JSON.
func WriteJSON(w io.Writer, s dataset.Series) error {
	data := Summary{
		Years:   s.Len(),
		Min:     s.Min,
		Max:     s.Max,
		Mean:    s.Mean(),
		Entries: make([]Entry, s.Len()),
	}
	for i, e := range s.Entries {
		data.Entries[i] = Entry{Year: e.Year, Total: e.Total}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes the series as year,total rows. The header matches the
// loader's default column aliases, so exported files load back in.
func WriteCSV(w io.Writer, s dataset.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"year", "total"}); err != nil {
		return err
	}
	for _, e := range s.Entries {
		row := []string{
			strconv.Itoa(e.Year),
			strconv.FormatFloat(e.Total, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
