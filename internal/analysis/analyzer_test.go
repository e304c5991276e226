package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/skysheng7/sea-otter-social-analysis/internal/dataset"
)

func fixtureTable(t *testing.T) *dataset.Table {
	t.Helper()
	rows := []dataset.Observation{
		{SubjectID: "otter_001", PartnerID: "otter_002", Behavior: "grooming", DurationMinutes: 2.0, Location: "kelp_forest", TimeOfDay: "morning"},
		{SubjectID: "otter_002", PartnerID: "otter_001", Behavior: "grooming", DurationMinutes: 4.0, Location: "kelp_forest", TimeOfDay: "evening"},
		{SubjectID: "otter_001", PartnerID: "otter_003", Behavior: "grooming", DurationMinutes: 6.0, Location: "rocky_shore", TimeOfDay: "morning"},
		{SubjectID: "otter_003", PartnerID: "otter_003", Behavior: "play", DurationMinutes: 1.0, Location: "open_water", TimeOfDay: "afternoon"},
		{SubjectID: "otter_001", PartnerID: "otter_002", Behavior: "play", DurationMinutes: 3.0, Location: "kelp_forest", TimeOfDay: "morning"},
		{SubjectID: "otter_002", PartnerID: "otter_002", Behavior: "rest", DurationMinutes: 9.0, Location: "open_water", TimeOfDay: "evening"},
		{SubjectID: "otter_001", PartnerID: "otter_002", Behavior: "grooming", DurationMinutes: 0.0, Location: "rocky_shore", TimeOfDay: "evening"},
	}
	tab, err := dataset.NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tab
}

func TestFilterByCategory(t *testing.T) {
	tab := fixtureTable(t)
	got, err := FilterByCategory(tab, dataset.ColBehavior, "grooming")
	if err != nil {
		t.Fatalf("FilterByCategory: %v", err)
	}
	if got.Len() != 4 {
		t.Fatalf("expected 4 grooming rows, got %d", got.Len())
	}
	// Relative order preserved
	wantDur := []float64{2.0, 4.0, 6.0, 0.0}
	for i, w := range wantDur {
		o := got.Row(i)
		if o.Behavior != "grooming" {
			t.Fatalf("row %d has behavior %q", i, o.Behavior)
		}
		if o.DurationMinutes != w {
			t.Fatalf("row %d duration = %v, want %v (order not preserved)", i, o.DurationMinutes, w)
		}
	}
}

func TestFilterByCategoryNoMatch(t *testing.T) {
	tab := fixtureTable(t)
	got, err := FilterByCategory(tab, dataset.ColBehavior, "diving")
	if err != nil {
		t.Fatalf("FilterByCategory: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected empty result, got %d rows", got.Len())
	}
}

func TestFilterByCategoryInvalidColumn(t *testing.T) {
	tab := fixtureTable(t)
	var colErr *dataset.InvalidColumnError
	if _, err := FilterByCategory(tab, dataset.Column("mood"), "x"); !errors.As(err, &colErr) {
		t.Fatalf("expected InvalidColumnError for unknown column, got %v", err)
	}
	if _, err := FilterByCategory(tab, dataset.ColDuration, "x"); !errors.As(err, &colErr) {
		t.Fatalf("expected InvalidColumnError for numeric column, got %v", err)
	}
}

func TestGroupAggregateCompleteness(t *testing.T) {
	tab := fixtureTable(t)
	grooming, err := FilterByCategory(tab, dataset.ColBehavior, "grooming")
	if err != nil {
		t.Fatalf("FilterByCategory: %v", err)
	}
	groups, err := GroupAggregate(grooming, []dataset.Column{dataset.ColLocation}, dataset.ColDuration)
	if err != nil {
		t.Fatalf("GroupAggregate: %v", err)
	}
	// Exactly the distinct locations present in the filtered rows, sorted.
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].KeyString() != "kelp_forest" || groups[1].KeyString() != "rocky_shore" {
		t.Fatalf("unexpected group keys: %q, %q", groups[0].KeyString(), groups[1].KeyString())
	}
	if groups[0].Count != 2 || groups[0].Mean != 3.0 {
		t.Fatalf("kelp_forest: got count=%d mean=%v, want 2 and 3.0", groups[0].Count, groups[0].Mean)
	}
	if groups[1].Count != 2 || groups[1].Mean != 3.0 {
		t.Fatalf("rocky_shore: got count=%d mean=%v, want 2 and 3.0", groups[1].Count, groups[1].Mean)
	}
}

func TestGroupAggregateMean(t *testing.T) {
	rows := []dataset.Observation{
		{SubjectID: "a", Behavior: "play", DurationMinutes: 2.0, Location: "kelp_forest"},
		{SubjectID: "a", Behavior: "play", DurationMinutes: 4.0, Location: "kelp_forest"},
		{SubjectID: "a", Behavior: "play", DurationMinutes: 6.0, Location: "kelp_forest"},
		{SubjectID: "a", Behavior: "play", DurationMinutes: 1.0, Location: "open_water"},
	}
	tab, err := dataset.NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	groups, err := GroupAggregate(tab, []dataset.Column{dataset.ColLocation}, dataset.ColDuration)
	if err != nil {
		t.Fatalf("GroupAggregate: %v", err)
	}
	if groups[0].Mean != 4.0 {
		t.Fatalf("mean of [2,4,6] = %v, want 4.0", groups[0].Mean)
	}
	if groups[1].Count != 1 || groups[1].Mean != 1.0 {
		t.Fatalf("singleton group: count=%d mean=%v, want 1 and 1.0", groups[1].Count, groups[1].Mean)
	}
}

func TestGroupAggregateMultiColumnAndIdempotence(t *testing.T) {
	tab := fixtureTable(t)
	cols := []dataset.Column{dataset.ColLocation, dataset.ColTimeOfDay}
	first, err := GroupAggregate(tab, cols, dataset.ColDuration)
	if err != nil {
		t.Fatalf("GroupAggregate: %v", err)
	}
	second, err := GroupAggregate(tab, cols, dataset.ColDuration)
	if err != nil {
		t.Fatalf("GroupAggregate: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result length changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].KeyString() != second[i].KeyString() || first[i].Count != second[i].Count || first[i].Mean != second[i].Mean {
			t.Fatalf("result %d changed between runs: %+v vs %+v", i, first[i], second[i])
		}
		if len(first[i].Key) != 2 {
			t.Fatalf("expected 2-part keys, got %v", first[i].Key)
		}
	}
}

func TestGroupAggregateEmptyTable(t *testing.T) {
	tab, err := dataset.NewTable(nil)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	groups, err := GroupAggregate(tab, []dataset.Column{dataset.ColLocation}, dataset.ColDuration)
	if err != nil {
		t.Fatalf("GroupAggregate: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("no groups may be fabricated for an empty table, got %d", len(groups))
	}
}

func TestGroupAggregateInvalidColumns(t *testing.T) {
	tab := fixtureTable(t)
	var colErr *dataset.InvalidColumnError
	if _, err := GroupAggregate(tab, []dataset.Column{dataset.ColDuration}, dataset.ColDuration); !errors.As(err, &colErr) {
		t.Fatalf("expected InvalidColumnError grouping by numeric column, got %v", err)
	}
	if _, err := GroupAggregate(tab, []dataset.Column{dataset.ColLocation}, dataset.ColLocation); !errors.As(err, &colErr) {
		t.Fatalf("expected InvalidColumnError aggregating categorical column, got %v", err)
	}
}

func TestRankByFrequencyTieBreak(t *testing.T) {
	rows := []dataset.Observation{
		{SubjectID: "B", Behavior: "play"},
		{SubjectID: "A", Behavior: "play"},
		{SubjectID: "B", Behavior: "play"},
		{SubjectID: "A", Behavior: "play"},
		{SubjectID: "C", Behavior: "play"},
		{SubjectID: "B", Behavior: "play"},
		{SubjectID: "A", Behavior: "play"},
	}
	tab, err := dataset.NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	ranked, err := RankByFrequency(tab, dataset.ColSubjectID, 2)
	if err != nil {
		t.Fatalf("RankByFrequency: %v", err)
	}
	want := []EntityCount{{Entity: "A", Count: 3}, {Entity: "B", Count: 3}}
	if len(ranked) != 2 || ranked[0] != want[0] || ranked[1] != want[1] {
		t.Fatalf("got %v, want %v", ranked, want)
	}
}

func TestRankByFrequencyBounds(t *testing.T) {
	tab := fixtureTable(t)
	empty, err := RankByFrequency(tab, dataset.ColSubjectID, 0)
	if err != nil {
		t.Fatalf("RankByFrequency topN=0: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("topN=0 must return empty, got %v", empty)
	}
	all, err := RankByFrequency(tab, dataset.ColSubjectID, 100)
	if err != nil {
		t.Fatalf("RankByFrequency topN=100: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 distinct subjects, got %d", len(all))
	}
	if _, err := RankByFrequency(tab, dataset.ColSubjectID, -1); err == nil {
		t.Fatalf("expected error for negative topN")
	}
}

func TestPairwiseInteractionCounts(t *testing.T) {
	tab := fixtureTable(t)
	social := []string{"grooming", "play"}

	withSelf, err := PairwiseInteractionCounts(tab, dataset.ColSubjectID, dataset.ColPartnerID, social, true)
	if err != nil {
		t.Fatalf("PairwiseInteractionCounts: %v", err)
	}
	// Social rows: 4 grooming + 2 play; rest excluded. Distinct ordered pairs
	// including the (otter_003, otter_003) self-pair.
	if len(withSelf) != 4 {
		t.Fatalf("expected 4 pairs with self-pairs, got %d: %v", len(withSelf), withSelf)
	}
	if withSelf[0].Subject != "otter_001" || withSelf[0].Partner != "otter_002" || withSelf[0].Count != 3 {
		t.Fatalf("strongest pair = %+v, want otter_001~otter_002 x3", withSelf[0])
	}

	noSelf, err := PairwiseInteractionCounts(tab, dataset.ColSubjectID, dataset.ColPartnerID, social, false)
	if err != nil {
		t.Fatalf("PairwiseInteractionCounts: %v", err)
	}
	if len(noSelf) != 3 {
		t.Fatalf("expected 3 pairs without self-pairs, got %d: %v", len(noSelf), noSelf)
	}
	for _, p := range noSelf {
		if p.Subject == p.Partner {
			t.Fatalf("self-pair leaked through: %+v", p)
		}
	}
}

func TestDescribeNumeric(t *testing.T) {
	rows := []dataset.Observation{
		{SubjectID: "a", DurationMinutes: 1.0},
		{SubjectID: "a", DurationMinutes: 3.0},
		{SubjectID: "a", DurationMinutes: 8.0},
	}
	tab, err := dataset.NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	s, err := DescribeNumeric(tab, dataset.ColDuration)
	if err != nil {
		t.Fatalf("DescribeNumeric: %v", err)
	}
	if s.Count != 3 || s.Mean != 4.0 || s.Median != 3.0 {
		t.Fatalf("got %+v, want count=3 mean=4 median=3", s)
	}
}

func TestDescribeNumericEmpty(t *testing.T) {
	tab, err := dataset.NewTable(nil)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	s, err := DescribeNumeric(tab, dataset.ColDuration)
	if err != nil {
		t.Fatalf("DescribeNumeric: %v", err)
	}
	if s.Count != 0 || !math.IsNaN(s.Mean) || !math.IsNaN(s.Median) {
		t.Fatalf("empty summary must report NaN, got %+v", s)
	}
}
