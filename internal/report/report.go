// Package report renders analysis results as compact markdown suitable for
// the terminal or a study notebook.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/skysheng7/sea-otter-social-analysis/internal/analysis"
	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
	"github.com/skysheng7/sea-otter-social-analysis/internal/stats"
)

// Behavior summarizes one behavior category: overall duration statistics
// plus a group-by breakdown.
type Behavior struct {
	Behavior string
	Summary  analysis.NumericSummary
	GroupBy  dataset.Column
	Groups   []analysis.GroupResult
}

// Markdown renders the behavior analysis.
func (r *Behavior) Markdown() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s BEHAVIOR ANALYSIS]\n", strings.ToUpper(r.Behavior)))
	b.WriteString(fmt.Sprintf("Observations: %d\n", r.Summary.Count))
	b.WriteString(fmt.Sprintf("Average duration: %s minutes\n", fmtStat(r.Summary.Mean)))
	b.WriteString(fmt.Sprintf("Median duration: %s minutes\n", fmtStat(r.Summary.Median)))
	if len(r.Groups) > 0 {
		b.WriteString(fmt.Sprintf("\n[BY %s]\n", strings.ToUpper(string(r.GroupBy))))
		for _, g := range r.Groups {
			b.WriteString(fmt.Sprintf("- %s: n=%d, mean %s min\n", g.KeyString(), g.Count, fmtStat(g.Mean)))
		}
	}
	return b.String()
}

// Network summarizes social activity: total social observations, distinct
// pairs, the most active otters, and the strongest pair bonds.
type Network struct {
	TotalSocial int
	TopOtters   []analysis.EntityCount
	Pairs       []analysis.PairCount
	MaxPairs    int
}

// Markdown renders the social network summary.
func (r *Network) Markdown() string {
	var b strings.Builder
	b.WriteString("[SOCIAL NETWORK ANALYSIS]\n")
	b.WriteString(fmt.Sprintf("Total social interactions: %d\n", r.TotalSocial))
	b.WriteString(fmt.Sprintf("Unique otter pairs: %d\n", len(r.Pairs)))
	if len(r.TopOtters) > 0 {
		b.WriteString("\n[MOST SOCIALLY ACTIVE]\n")
		for _, e := range r.TopOtters {
			b.WriteString(fmt.Sprintf("- %s: %d interactions\n", e.Entity, e.Count))
		}
	}
	if len(r.Pairs) > 0 {
		b.WriteString("\n[STRONGEST PAIRS]\n")
		limit := r.MaxPairs
		if limit <= 0 || limit > len(r.Pairs) {
			limit = len(r.Pairs)
		}
		for _, p := range r.Pairs[:limit] {
			b.WriteString(fmt.Sprintf("- %s ~ %s: %d\n", p.Subject, p.Partner, p.Count))
		}
	}
	return b.String()
}

// Comparison reports a two-sample duration test between two behavior
// categories at a given significance level.
type Comparison struct {
	BehaviorA string
	BehaviorB string
	CountA    int
	CountB    int
	Result    stats.Result
	Alpha     float64
}

// Markdown renders the test outcome with a verdict at the configured alpha.
func (r *Comparison) Markdown() string {
	var b strings.Builder
	b.WriteString("[STATISTICAL ANALYSIS]\n")
	b.WriteString(fmt.Sprintf("Mann-Whitney U test: %s (n=%d) vs %s (n=%d)\n", r.BehaviorA, r.CountA, r.BehaviorB, r.CountB))
	b.WriteString(fmt.Sprintf("Statistic U: %.2f\n", r.Result.U))
	b.WriteString(fmt.Sprintf("P-value: %.4f\n", r.Result.PValue))
	if r.Result.PValue < r.Alpha {
		b.WriteString(fmt.Sprintf("Significant difference between %s and %s durations (p < %g).\n", r.BehaviorA, r.BehaviorB, r.Alpha))
	} else {
		b.WriteString(fmt.Sprintf("No significant difference between %s and %s durations (p >= %g).\n", r.BehaviorA, r.BehaviorB, r.Alpha))
	}
	return b.String()
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
