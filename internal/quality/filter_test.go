package quality

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterRejectsShortAndLong(t *testing.T) {
	reviews := []string{
		"too short",
		strings.Repeat("very long review text ", 120), // > 2000 chars
		"This product works well and I am satisfied with the quality.",
	}
	accepted, fallback := Filter(reviews)
	assert.False(t, fallback)
	assert.Len(t, accepted, 1)
	assert.Contains(t, accepted[0].Review, "works well")
}

func TestFilterRejectsSpam(t *testing.T) {
	spam := []string{
		"BUY NOW!!! CLICK HERE www.spam.tld",
		"Visit our store at https://example.com for the best deal",
		"contact me at seller@example.com for discounts",
		"greaaaaat product wow #sponsored",
		"THIS IS ABSOLUTELY THE BEST THING EVER MADE",
	}
	genuine := "The delivery was quick and the product quality is good."
	accepted, fallback := Filter(append(spam, genuine))
	assert.False(t, fallback)
	if assert.Len(t, accepted, 1) {
		assert.Equal(t, genuine, accepted[0].Review)
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"greaaaaat", true},
		{"!!!!!", true},
		{"greaaat", false},
		{"", false},
		{"abababababab", false},
		{"soooo gooood", false},
		{"nooooo way", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hasRepeatedRun(tt.text, repeatedRunLimit), tt.text)
	}
}

func TestFilterRejectsRepeatedRuns(t *testing.T) {
	accepted, fallback := Filter([]string{
		"This product is greaaaaat, totally worth the price!!",
		"Solid build quality, arrived on time and works as described.",
	})
	assert.False(t, fallback)
	if assert.Len(t, accepted, 1) {
		assert.Contains(t, accepted[0].Review, "Solid build")
	}
}

func TestFilterExactDuplicates(t *testing.T) {
	review := "Good quality product, the battery life is excellent."
	reviews := make([]string, 10)
	for i := range reviews {
		reviews[i] = review
	}
	accepted, fallback := Filter(reviews)
	assert.False(t, fallback)
	assert.Len(t, accepted, 1)
}

func TestFilterNearDuplicates(t *testing.T) {
	reviews := []string{
		"The camera quality is excellent and the battery lasts all day long",
		"The camera quality is excellent and the battery lasts all day long indeed",
		"Terrible product, broke within a week and support was useless.",
	}
	accepted, fallback := Filter(reviews)
	assert.False(t, fallback)
	assert.Len(t, accepted, 2)
}

func TestFilterDedupWindowIsLocal(t *testing.T) {
	// The near-duplicate buffer only covers the most recent 20 accepted
	// keys, so a near-copy arriving after 20 distinct reviews is
	// accepted again. Exact-key dedup stays global, so the near-copy
	// varies one word.
	first := "The camera quality is excellent and the battery lasts all day long"
	var reviews []string
	reviews = append(reviews, first)
	for i := 0; i < 20; i++ {
		reviews = append(reviews, fmt.Sprintf(
			"Review number %d talks about totally unrelated topic alpha%d beta%d gamma%d with plenty of words.",
			i, i, i, i))
	}
	reviews = append(reviews, first+" indeed")

	accepted, _ := Filter(reviews)
	assert.Len(t, accepted, 22, "stale window must re-admit the near-duplicate")

	// Inside the window the same pair is rejected.
	accepted, _ = Filter([]string{first, first + " indeed"})
	assert.Len(t, accepted, 1)
}

func TestFilterFallbackWhenAllRejected(t *testing.T) {
	reviews := []string{
		"BUY NOW!!! CLICK HERE www.spam.tld",
		"BUY NOW!!! CLICK HERE www.spam.tld",
	}
	accepted, fallback := Filter(reviews)
	assert.True(t, fallback)
	if assert.Len(t, accepted, 1) {
		assert.Equal(t, 0.5, accepted[0].Quality)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	accepted, fallback := Filter(nil)
	assert.Empty(t, accepted)
	assert.False(t, fallback)

	accepted, fallback = Filter([]string{"", "   "})
	assert.Empty(t, accepted)
	assert.True(t, fallback)
}

func TestScoreArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		review string
		want   float64
	}{
		{
			// 0.5 + 0.2 (length 30..150) + 0.2 (all unique) + 0.05 (cue "good")
			name:   "ideal length with cue",
			review: "Battery good, camera fine, truly superb",
			want:   0.95,
		},
		{
			// 0.5 - 0.2 (length < 20) + 0.2 (all unique)
			name:   "short fragment",
			review: "nice phone camera",
			want:   0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.review), 1e-9)
		})
	}
}

func TestScoreClamped(t *testing.T) {
	reviews := []string{
		"Excellent quality product, good price, quick delivery. Very satisfied and happy, would recommend!",
		"meh",
	}
	for _, review := range reviews {
		score := Score(review)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
