package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
)

// ReadCSV loads observations from CSV data with the canonical header
// (otter_id, partner_id, behavior_type, duration_minutes, location,
// time_of_day). Extra columns are ignored. Each loaded observation gets a
// fresh record ID.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r, dataframe.WithTypes(map[string]series.Type{
		string(ColDuration): series.Float,
	}))
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}
	present := map[string]bool{}
	for _, n := range df.Names() {
		present[n] = true
	}
	for _, c := range Columns() {
		if !present[string(c)] {
			return nil, fmt.Errorf("read csv: missing required column %q", string(c))
		}
	}

	cols := map[Column]series.Series{}
	for _, c := range Columns() {
		s := df.Col(string(c))
		if s.Err != nil {
			return nil, fmt.Errorf("read csv column %q: %w", string(c), s.Err)
		}
		cols[c] = s
	}

	rows := make([]Observation, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		dur := cols[ColDuration].Elem(i).Float()
		if math.IsNaN(dur) {
			return nil, fmt.Errorf("read csv row %d: duration_minutes is not numeric", i+1)
		}
		rows = append(rows, Observation{
			ID:              uuid.NewString(),
			SubjectID:       cols[ColSubjectID].Elem(i).String(),
			PartnerID:       cols[ColPartnerID].Elem(i).String(),
			Behavior:        cols[ColBehavior].Elem(i).String(),
			DurationMinutes: dur,
			Location:        cols[ColLocation].Elem(i).String(),
			TimeOfDay:       cols[ColTimeOfDay].Elem(i).String(),
		})
	}
	return NewTable(rows)
}

// ReadCSVFile loads observations from a CSV file on disk.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes the table in the canonical CSV layout.
func (t *Table) WriteCSV(w io.Writer) error {
	header := make([]string, 0, len(Columns()))
	for _, c := range Columns() {
		header = append(header, string(c))
	}
	records := [][]string{header}
	for i := 0; i < t.Len(); i++ {
		o := t.Row(i)
		records = append(records, []string{
			o.SubjectID,
			o.PartnerID,
			o.Behavior,
			strconv.FormatFloat(o.DurationMinutes, 'f', -1, 64),
			o.Location,
			o.TimeOfDay,
		})
	}
	// Keep durations as the exact strings formatted above; letting gota
	// re-detect floats would reformat them on write.
	df := dataframe.LoadRecords(records, dataframe.WithTypes(map[string]series.Type{
		string(ColDuration): series.String,
	}))
	if df.Err != nil {
		return fmt.Errorf("build csv records: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
