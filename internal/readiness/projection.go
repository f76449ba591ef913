// Package readiness derives the displayable readiness score from backend
// performance averages. The derivation is pure; absence of data is an
// explicit state, never a numeric zero pretending to be a real score.
package readiness

import (
	"math"

	"github.com/jmaydwell1/eliteprep/internal/types"
)

// Projection is what the Home screen renders. When Known is false the
// averages were unavailable (still loading or fetch failed) and callers
// must show a loading or empty indicator, not the number 0.
type Projection struct {
	Known    bool
	Score    int
	Progress float64
	Traits   Traits
}

// Traits carries the per-trait averages for the breakdown cards.
type Traits struct {
	Focus      float64
	Anxiety    float64
	Enjoyment  float64
	Burnout    float64
	Confidence float64
}

// Project computes the readiness projection from fetched averages.
// Score is the total average rounded to the nearest integer and clamped
// to [0,10]; Progress is the fraction of the 0-10 scale filled.
func Project(averages *types.PerformanceAverages) Projection {
	if averages == nil {
		return Projection{}
	}

	total := clamp(averages.TotalAverage, 0, 10)
	return Projection{
		Known:    true,
		Score:    int(math.Round(total)),
		Progress: total / 10,
		Traits: Traits{
			Focus:      averages.AverageFocus,
			Anxiety:    averages.AverageAnxiety,
			Enjoyment:  averages.AverageEnjoyment,
			Burnout:    averages.AverageBurnout,
			Confidence: averages.AverageConfidence,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
