package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
)

// NumericSummary holds descriptive statistics for one numeric column. Mean
// and Median are NaN when the column is empty.
type NumericSummary struct {
	Count  int
	Mean   float64
	Median float64
}

// DescribeNumeric computes count, mean and median of a numeric column.
func DescribeNumeric(t *dataset.Table, col dataset.Column) (NumericSummary, error) {
	vals, err := t.Numeric(col)
	if err != nil {
		return NumericSummary{}, err
	}
	s := NumericSummary{Count: len(vals), Mean: math.NaN(), Median: math.NaN()}
	if len(vals) == 0 {
		return s, nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Mean = stat.Mean(vals, nil)
	// Midpoint convention for even-length samples.
	n := len(sorted)
	if n%2 == 1 {
		s.Median = sorted[n/2]
	} else {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return s, nil
}
