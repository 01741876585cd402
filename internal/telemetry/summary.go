package telemetry

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Round is the outcome of one headless run.
type Round struct {
	Score    int
	Survival float64 // simulated seconds until termination
	Ticks    int
	Reason   string
	Spawned  int
}

// Summary aggregates a batch of rounds.
type Summary struct {
	Rounds       int
	MeanScore    float64
	StdDevScore  float64
	BestScore    int
	MeanSurvival float64
	P50Survival  float64
	P90Survival  float64
	Reasons      map[string]int
}

// Summarize computes the batch statistics. An empty batch yields a zero
// Summary.
func Summarize(rounds []Round) Summary {
	s := Summary{Rounds: len(rounds), Reasons: make(map[string]int)}
	if len(rounds) == 0 {
		return s
	}

	scores := make([]float64, len(rounds))
	survival := make([]float64, len(rounds))
	for i, r := range rounds {
		scores[i] = float64(r.Score)
		survival[i] = r.Survival
		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		s.Reasons[r.Reason]++
	}

	if len(scores) > 1 {
		s.MeanScore, s.StdDevScore = stat.MeanStdDev(scores, nil)
	} else {
		s.MeanScore = scores[0]
	}
	s.MeanSurvival = stat.Mean(survival, nil)

	sort.Float64s(survival)
	s.P50Survival = stat.Quantile(0.5, stat.Empirical, survival, nil)
	s.P90Survival = stat.Quantile(0.9, stat.Empirical, survival, nil)
	return s
}

// String renders the summary as an aligned text block.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rounds:        %d\n", s.Rounds)
	fmt.Fprintf(&b, "score mean:    %.2f (sd %.2f)\n", s.MeanScore, s.StdDevScore)
	fmt.Fprintf(&b, "score best:    %d\n", s.BestScore)
	fmt.Fprintf(&b, "survival mean: %.2fs\n", s.MeanSurvival)
	fmt.Fprintf(&b, "survival p50:  %.2fs\n", s.P50Survival)
	fmt.Fprintf(&b, "survival p90:  %.2fs\n", s.P90Survival)

	reasons := make([]string, 0, len(s.Reasons))
	for r := range s.Reasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		label := r
		if label == "" {
			label = "time limit"
		}
		fmt.Fprintf(&b, "ended by %s: %d\n", label, s.Reasons[r])
	}
	return b.String()
}
