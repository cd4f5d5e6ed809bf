package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeAllPositiveNoAspects(t *testing.T) {
	dist := Distribution{Positive: 4.0}
	meta := Meta{ReviewsUsed: 4}
	// base = 0.6*1 + 0.3*0.5 + 0.05*(4/50) = 0.754, consistency = 1
	score, label := synthesize(dist, nil, meta)
	assert.Equal(t, 75, score)
	assert.Equal(t, labelRecommended, label)
}

func TestSynthesizeZeroTotal(t *testing.T) {
	score, label := synthesize(Distribution{}, nil, Meta{})
	// base = 0.3*0.5 = 0.15
	assert.Equal(t, 15, score)
	assert.Equal(t, labelNotRecommended, label)
}

func TestSynthesizeAspectBonusesAndPenalties(t *testing.T) {
	dist := Distribution{Positive: 3, Negative: 1}
	ranked := []rankedAspect{
		{name: "camera", mean: 0.6},
		{name: "battery", mean: 0.4},
		{name: "packaging", mean: -0.5},
	}
	meta := Meta{ReviewsUsed: 10}
	// posRatio 0.75, avg aspect 1/6, norm 0.5833..
	// base = 0.45 + 0.175 + 0.01 + 0.03 = 0.665
	// adjusted = 0.665 + 2*0.05 - 0.08 = 0.685, consistency = 1
	score, label := synthesize(dist, ranked, meta)
	assert.Equal(t, 69, score)
	assert.Equal(t, labelAcceptable, label)
}

func TestSynthesizeNeutralDampening(t *testing.T) {
	dist := Distribution{Neutral: 10}
	score, _ := synthesize(dist, nil, Meta{ReviewsUsed: 1})
	// base = 0.3*0.5 + 0.001 = 0.151, consistency = 0.7
	assert.Equal(t, 11, score)
}

func TestSynthesizeClampedLow(t *testing.T) {
	dist := Distribution{Negative: 5}
	ranked := []rankedAspect{
		{name: "battery", mean: -0.9},
		{name: "screen", mean: -0.8},
		{name: "hinge", mean: -0.7},
		{name: "speaker", mean: -0.6},
		{name: "case", mean: -0.5},
	}
	score, label := synthesize(dist, ranked, Meta{ReviewsUsed: 5})
	assert.Equal(t, 0, score)
	assert.Equal(t, labelNotRecommended, label)
}

func TestSynthesizeLabelFloors(t *testing.T) {
	// posRatio 1 with a strongly positive aspect set lands above the
	// recommended floor.
	dist := Distribution{Positive: 10}
	ranked := []rankedAspect{
		{name: "camera", mean: 0.9},
		{name: "battery", mean: 0.8},
	}
	score, label := synthesize(dist, ranked, Meta{ReviewsUsed: 50})
	assert.GreaterOrEqual(t, score, recommendedFloor)
	assert.Equal(t, labelRecommended, label)
}
