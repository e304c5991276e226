package dataset

import (
	"fmt"
	"math"
)

// Column identifies a field of the observation schema. Column identifiers
// are checked up front: every operation that takes a Column fails with
// *InvalidColumnError before touching any row if the identifier is not part
// of the schema.
type Column string

const (
	ColSubjectID Column = "otter_id"
	ColPartnerID Column = "partner_id"
	ColBehavior  Column = "behavior_type"
	ColDuration  Column = "duration_minutes"
	ColLocation  Column = "location"
	ColTimeOfDay Column = "time_of_day"
)

// Columns lists the full schema in canonical order (CSV header order).
func Columns() []Column {
	return []Column{ColSubjectID, ColPartnerID, ColBehavior, ColDuration, ColLocation, ColTimeOfDay}
}

// Valid reports whether c belongs to the observation schema.
func (c Column) Valid() bool {
	switch c {
	case ColSubjectID, ColPartnerID, ColBehavior, ColDuration, ColLocation, ColTimeOfDay:
		return true
	}
	return false
}

// Categorical reports whether c holds categorical (string) values.
func (c Column) Categorical() bool {
	return c.Valid() && c != ColDuration
}

// Observation is one behavioral record: a focal subject, an interaction
// partner, what they did, for how long, where, and when. Observations are
// immutable once constructed; tables never rewrite them.
type Observation struct {
	ID              string
	SubjectID       string
	PartnerID       string
	Behavior        string
	DurationMinutes float64
	Location        string
	TimeOfDay       string
}

// Category returns the observation's value for a categorical column.
func (o Observation) Category(c Column) (string, error) {
	switch c {
	case ColSubjectID:
		return o.SubjectID, nil
	case ColPartnerID:
		return o.PartnerID, nil
	case ColBehavior:
		return o.Behavior, nil
	case ColLocation:
		return o.Location, nil
	case ColTimeOfDay:
		return o.TimeOfDay, nil
	}
	return "", &InvalidColumnError{Column: c}
}

// Numeric returns the observation's value for a numeric column.
func (o Observation) Numeric(c Column) (float64, error) {
	if c == ColDuration {
		return o.DurationMinutes, nil
	}
	return 0, &InvalidColumnError{Column: c}
}

// Table is an ordered sequence of observations. Order is input order and
// carries no meaning for aggregation; duplicates are allowed. Analysis
// operations treat the table as read-only.
type Table struct {
	rows []Observation
}

// NewTable validates the rows and wraps them in a table. The only row-level
// invariant is a non-negative, finite duration.
func NewTable(rows []Observation) (*Table, error) {
	for i, o := range rows {
		if o.DurationMinutes < 0 || math.IsNaN(o.DurationMinutes) || math.IsInf(o.DurationMinutes, 0) {
			return nil, fmt.Errorf("row %d: duration_minutes must be a non-negative number, got %v", i, o.DurationMinutes)
		}
	}
	return &Table{rows: rows}, nil
}

// Len returns the number of observations.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the observation at index i.
func (t *Table) Row(i int) Observation { return t.rows[i] }

// Numeric extracts the full column of numeric values in row order.
func (t *Table) Numeric(c Column) ([]float64, error) {
	if !c.Valid() || c.Categorical() {
		return nil, &InvalidColumnError{Column: c}
	}
	out := make([]float64, t.Len())
	for i := range t.rows {
		out[i] = t.rows[i].DurationMinutes
	}
	return out, nil
}
