package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Recommendation labels and their score floors.
const (
	labelRecommended    = "recommended"
	labelAcceptable     = "acceptable"
	labelNotRecommended = "not recommended"

	recommendedFloor = 70
	acceptableFloor  = 50
)

// synthesize folds the overall distribution, the ranked aspects and the
// meta block into the 0-100 worth-to-buy score and its label. The
// distribution buckets are effective weights rather than review counts;
// the ratios intentionally follow those weights.
func synthesize(dist Distribution, ranked []rankedAspect, meta Meta) (int, string) {
	total := dist.Positive + dist.Negative + dist.Neutral
	var posRatio, neuRatio float64
	if total > 0 {
		posRatio = dist.Positive / total
		neuRatio = dist.Neutral / total
	}

	normAspect := 0.5
	var diversityBonus, posBonus, negPenalty float64
	if len(ranked) > 0 {
		means := make([]float64, len(ranked))
		for i, asp := range ranked {
			means[i] = asp.mean
		}
		normAspect = (stat.Mean(means, nil) + 1) / 2
		diversityBonus = math.Min(float64(len(ranked))/float64(maxAspects), 1) * 0.05
		for _, asp := range ranked {
			if asp.mean > 0.3 {
				posBonus += 0.05
			}
			if asp.mean < -0.3 {
				negPenalty += 0.08
			}
		}
	}

	qualityBonus := 0.05 * math.Min(float64(meta.ReviewsUsed)/50, 1)
	consistency := 1 - 0.3*neuRatio

	base := 0.6*posRatio + 0.3*normAspect + qualityBonus + diversityBonus
	adjusted := base + posBonus - negPenalty
	final := adjusted * consistency

	score := int(math.Round(math.Max(0, math.Min(100, 100*final))))
	switch {
	case score >= recommendedFloor:
		return score, labelRecommended
	case score >= acceptableFloor:
		return score, labelAcceptable
	default:
		return score, labelNotRecommended
	}
}
