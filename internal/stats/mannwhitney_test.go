package stats

import (
	"errors"
	"math"
	"testing"
)

func TestMannWhitneyEmptySampleGuard(t *testing.T) {
	var insufficient *InsufficientDataError
	if _, err := MannWhitneyU(nil, []float64{1.0, 2.0}); !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError for empty first sample, got %v", err)
	}
	if _, err := MannWhitneyU([]float64{1.0, 2.0}, nil); !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError for empty second sample, got %v", err)
	}
}

func TestMannWhitneySeparatedSamples(t *testing.T) {
	res, err := MannWhitneyU([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("MannWhitneyU: %v", err)
	}
	if res.U != 0 {
		t.Fatalf("U = %v, want 0 (every first-sample value below every second)", res.U)
	}
	if res.PValue > 0.1 {
		t.Fatalf("p = %v, want <= 0.1 for clearly separated samples", res.PValue)
	}
	if res.Z >= 0 {
		t.Fatalf("z = %v, want negative for a downward shift", res.Z)
	}

	// Reversed direction gives the complementary statistic n1*n2 - U.
	rev, err := MannWhitneyU([]float64{4, 5, 6}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("MannWhitneyU: %v", err)
	}
	if rev.U != 9 {
		t.Fatalf("reversed U = %v, want 9", rev.U)
	}
	if math.Abs(rev.PValue-res.PValue) > 1e-12 {
		t.Fatalf("two-sided p must not depend on direction: %v vs %v", rev.PValue, res.PValue)
	}
}

func TestMannWhitneyIdenticalSamples(t *testing.T) {
	res, err := MannWhitneyU([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("MannWhitneyU: %v", err)
	}
	if res.PValue < 0.95 || res.PValue > 1 {
		t.Fatalf("p = %v, want close to 1 for identical samples", res.PValue)
	}
	if res.U != 4.5 {
		t.Fatalf("U = %v, want 4.5 (mid-ranks across the tie runs)", res.U)
	}
}

func TestMannWhitneyAllTied(t *testing.T) {
	res, err := MannWhitneyU([]float64{2, 2}, []float64{2, 2, 2})
	if err != nil {
		t.Fatalf("MannWhitneyU: %v", err)
	}
	if res.PValue != 1 || res.Z != 0 {
		t.Fatalf("fully tied samples: got p=%v z=%v, want p=1 z=0", res.PValue, res.Z)
	}
}

func TestMannWhitneyMidRanks(t *testing.T) {
	// Pooled sample 1,2,2,3: the tied 2s occupy ranks 2 and 3, mid-rank 2.5.
	// Rank sum of {1,2} = 1 + 2.5 = 3.5, so U = 3.5 - 3 = 0.5.
	res, err := MannWhitneyU([]float64{1, 2}, []float64{2, 3})
	if err != nil {
		t.Fatalf("MannWhitneyU: %v", err)
	}
	if res.U != 0.5 {
		t.Fatalf("U = %v, want 0.5 under the mid-rank convention", res.U)
	}
	if res.PValue < 0 || res.PValue > 1 {
		t.Fatalf("p = %v out of [0,1]", res.PValue)
	}
}

func TestMannWhitneyPValueRange(t *testing.T) {
	a := []float64{0.1, 0.2, 0.3, 5, 6, 7, 8}
	b := []float64{0.15, 0.25, 4, 5.5, 6.5, 9}
	res, err := MannWhitneyU(a, b)
	if err != nil {
		t.Fatalf("MannWhitneyU: %v", err)
	}
	if res.PValue < 0 || res.PValue > 1 {
		t.Fatalf("p = %v out of [0,1]", res.PValue)
	}
}
