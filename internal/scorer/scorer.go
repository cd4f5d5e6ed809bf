// Package scorer turns sentences into polarity scores. The lexical
// layer is VADER (govader); on top of it sit a context adjuster for
// negation, sarcasm and comparative constructions, and a confidence
// estimator that weights each sentence for aggregation.
package scorer

import (
	"math"

	"github.com/jonreiter/govader"
)

// Score is the lexical result for one sentence. Compound is the signed
// polarity in [-1,1]; Positive, Negative and Neutral are component
// magnitudes summing to 1 within rounding.
type Score struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// Neutral is the score assigned when a sentence cannot be scored.
var neutralScore = Score{Compound: 0, Positive: 0, Negative: 0, Neutral: 1}

type Scorer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func New() *Scorer {
	return &Scorer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score computes the lexical polarity of a sentence. Scoring never
// fails the pipeline: a panic inside the lexicon or a non-finite result
// degrades to the neutral score.
func (s *Scorer) Score(sentence string) (out Score) {
	defer func() {
		if recover() != nil {
			out = neutralScore
		}
	}()
	if sentence == "" {
		return neutralScore
	}
	polarity := s.vader.PolarityScores(sentence)
	out = Score{
		Compound: polarity.Compound,
		Positive: polarity.Positive,
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
	}
	if !finite(out.Compound) || !finite(out.Positive) || !finite(out.Negative) || !finite(out.Neutral) {
		return neutralScore
	}
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
