package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceStrongClearSentence(t *testing.T) {
	// 0.5 + 0.3*0.8 + 0.2 (clear split) + 0.1 (5..20 words) + 0.15 (strong word)
	s := Score{Compound: 0.8, Positive: 0.5, Negative: 0.05, Neutral: 0.45}
	got := Confidence(s, "This camera is absolutely excellent overall.")
	assert.InDelta(t, 1.0, got, 1e-9) // clamped from 1.19
}

func TestConfidenceMixedSignals(t *testing.T) {
	// |pos-neg| = 0.35 > 0.3 but neither side dominates: +0.1, not +0.2.
	s := Score{Compound: 0.2, Positive: 0.5, Negative: 0.15, Neutral: 0.35}
	got := Confidence(s, "Decent camera with several rough edges though.")
	// 0.5 + 0.3*0.2 + 0.1 + 0.1 (7 words)
	assert.InDelta(t, 0.76, got, 1e-9)
}

func TestConfidenceShortFragmentPenalty(t *testing.T) {
	s := Score{Compound: 0, Positive: 0, Negative: 0, Neutral: 1}
	got := Confidence(s, "Nice phone")
	// 0.5 - 0.2 (under 3 words)
	assert.InDelta(t, 0.3, got, 1e-9)
}

func TestConfidenceRunOnPenalty(t *testing.T) {
	long := ""
	for i := 0; i < 60; i++ {
		long += "word "
	}
	s := Score{Compound: 0.1, Positive: 0.2, Negative: 0.1, Neutral: 0.7}
	got := Confidence(s, long)
	// 0.5 + 0.03 - 0.2
	assert.InDelta(t, 0.33, got, 1e-9)
}

func TestConfidenceBounds(t *testing.T) {
	cases := []struct {
		s    Score
		text string
	}{
		{Score{Compound: 1, Positive: 1}, "absolutely perfect outstanding amazing excellent brilliant"},
		{Score{Compound: -1, Negative: 1}, "x"},
		{Score{}, ""},
	}
	for _, c := range cases {
		got := Confidence(c.s, c.text)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
