// Package analysis implements the tabular analysis pipeline over behavioral
// observation tables: categorical filtering, group-by aggregation, frequency
// ranking, and pairwise interaction counting. All operations are pure reads
// of the input table.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
)

// GroupResult captures count and mean of the value column for one distinct
// grouping-key combination. Mean is NaN when Count is zero; it is never
// coerced to a number.
type GroupResult struct {
	Key   []string
	Count int
	Mean  float64
}

// KeyString renders the grouping key for display, one part per group-by
// column.
func (g GroupResult) KeyString() string { return strings.Join(g.Key, " | ") }

// EntityCount is one entry of a frequency ranking.
type EntityCount struct {
	Entity string
	Count  int
}

// PairCount counts co-occurring social observations for one ordered
// (subject, partner) pair.
type PairCount struct {
	Subject string
	Partner string
	Count   int
}

// FilterByCategory returns a new table holding exactly the rows whose value
// in col equals value, preserving relative order. An empty result is valid.
func FilterByCategory(t *dataset.Table, col dataset.Column, value string) (*dataset.Table, error) {
	if !col.Categorical() {
		return nil, &dataset.InvalidColumnError{Column: col}
	}
	var rows []dataset.Observation
	for i := 0; i < t.Len(); i++ {
		o := t.Row(i)
		v, err := o.Category(col)
		if err != nil {
			return nil, err
		}
		if v == value {
			rows = append(rows, o)
		}
	}
	return dataset.NewTable(rows)
}

// GroupAggregate groups the table by one or more categorical columns and
// computes the count of rows and the arithmetic mean of the value column per
// distinct key combination. Keys are exactly the combinations present in the
// input. Results are sorted lexicographically by key parts so repeated runs
// over the same table are identical; callers must not read any other meaning
// into the order.
func GroupAggregate(t *dataset.Table, groupBy []dataset.Column, value dataset.Column) ([]GroupResult, error) {
	if len(groupBy) == 0 {
		return nil, fmt.Errorf("group aggregate: at least one group-by column required")
	}
	for _, c := range groupBy {
		if !c.Categorical() {
			return nil, &dataset.InvalidColumnError{Column: c}
		}
	}
	if value.Categorical() || !value.Valid() {
		return nil, &dataset.InvalidColumnError{Column: value}
	}

	type acc struct {
		key []string
		n   int
		sum float64
	}
	groups := map[string]*acc{}
	for i := 0; i < t.Len(); i++ {
		o := t.Row(i)
		key := make([]string, len(groupBy))
		for j, c := range groupBy {
			v, err := o.Category(c)
			if err != nil {
				return nil, err
			}
			key[j] = v
		}
		x, err := o.Numeric(value)
		if err != nil {
			return nil, err
		}
		mk := strings.Join(key, "\x00")
		ga := groups[mk]
		if ga == nil {
			ga = &acc{key: key}
			groups[mk] = ga
		}
		ga.n++
		ga.sum += x
	}

	out := make([]GroupResult, 0, len(groups))
	for _, ga := range groups {
		mean := math.NaN()
		if ga.n > 0 {
			mean = ga.sum / float64(ga.n)
		}
		out = append(out, GroupResult{Key: ga.key, Count: ga.n, Mean: mean})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out, nil
}

// RankByFrequency counts occurrences of each distinct value in col and
// returns the topN most frequent, count descending with ties broken by
// ascending entity identifier. topN of zero yields an empty ranking.
func RankByFrequency(t *dataset.Table, col dataset.Column, topN int) ([]EntityCount, error) {
	if topN < 0 {
		return nil, fmt.Errorf("rank by frequency: topN must be >= 0, got %d", topN)
	}
	if !col.Categorical() {
		return nil, &dataset.InvalidColumnError{Column: col}
	}
	counts := map[string]int{}
	for i := 0; i < t.Len(); i++ {
		v, err := t.Row(i).Category(col)
		if err != nil {
			return nil, err
		}
		counts[v]++
	}
	ranked := make([]EntityCount, 0, len(counts))
	for v, n := range counts {
		ranked = append(ranked, EntityCount{Entity: v, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Entity < ranked[j].Entity
		}
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// PairwiseInteractionCounts counts ordered (subject, partner) pairs among
// rows whose behavior is in socialBehaviors. Whether a subject paired with
// itself counts is caller policy, so includeSelfPairs is explicit rather
// than a hidden default. Pairs are sorted count descending, then subject and
// partner ascending.
func PairwiseInteractionCounts(t *dataset.Table, subjectCol, partnerCol dataset.Column, socialBehaviors []string, includeSelfPairs bool) ([]PairCount, error) {
	if !subjectCol.Categorical() {
		return nil, &dataset.InvalidColumnError{Column: subjectCol}
	}
	if !partnerCol.Categorical() {
		return nil, &dataset.InvalidColumnError{Column: partnerCol}
	}
	social := make(map[string]bool, len(socialBehaviors))
	for _, b := range socialBehaviors {
		social[b] = true
	}

	type pair struct{ subject, partner string }
	counts := map[pair]int{}
	for i := 0; i < t.Len(); i++ {
		o := t.Row(i)
		if !social[o.Behavior] {
			continue
		}
		s, err := o.Category(subjectCol)
		if err != nil {
			return nil, err
		}
		p, err := o.Category(partnerCol)
		if err != nil {
			return nil, err
		}
		if !includeSelfPairs && s == p {
			continue
		}
		counts[pair{s, p}]++
	}

	out := make([]PairCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, PairCount{Subject: k.subject, Partner: k.partner, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].Partner < out[j].Partner
	})
	return out, nil
}
