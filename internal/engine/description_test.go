package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDescriptionEmpty(t *testing.T) {
	eng := newTestEngine()
	verdict := eng.AnalyzeDescription("   ")
	assert.Equal(t, 0, verdict.UsabilityScore)
	assert.Equal(t, "avoid", verdict.UsabilityVerdict)
	assert.Empty(t, verdict.KeyFeatures)
	assert.NotEmpty(t, verdict.Summary)
}

func TestAnalyzeDescriptionPositive(t *testing.T) {
	eng := newTestEngine()
	verdict := eng.AnalyzeDescription(
		"This premium laptop offers excellent performance and a durable aluminium body. " +
			"The lightweight design makes it easy to carry. " +
			"Advanced cooling technology keeps it quiet under load. " +
			"Comes with a two year warranty.")

	assert.GreaterOrEqual(t, verdict.UsabilityScore, 65)
	assert.Contains(t, []string{"excellent", "good"}, verdict.UsabilityVerdict)
	assert.NotEmpty(t, verdict.Pros)
	assert.Empty(t, verdict.Cons)
	assert.NotEmpty(t, verdict.KeyFeatures, "technology sentence should be a key feature")
}

func TestAnalyzeDescriptionNegative(t *testing.T) {
	eng := newTestEngine()
	verdict := eng.AnalyzeDescription(
		"The casing feels cheap and fragile. " +
			"Setup is complicated and the manual is difficult to follow. " +
			"Battery capacity is limited compared to rivals. " +
			"Known issue with the hinge after a month of use.")

	assert.LessOrEqual(t, verdict.UsabilityScore, 50)
	assert.NotEmpty(t, verdict.Cons)
}

func TestAnalyzeDescriptionBounds(t *testing.T) {
	eng := newTestEngine()
	descriptions := []string{
		"excellent excellent excellent excellent premium durable reliable. " +
			"Superior advanced innovative professional powerful fast. " +
			"Modern latest improved enhanced upgraded certified tested approved.",
		"cheap fragile basic limited slow. heavy bulky outdated complicated. " +
			"difficult poor defective issue problem.",
	}
	for _, desc := range descriptions {
		verdict := eng.AnalyzeDescription(desc)
		assert.GreaterOrEqual(t, verdict.UsabilityScore, 0)
		assert.LessOrEqual(t, verdict.UsabilityScore, 100)
		assert.LessOrEqual(t, len(verdict.KeyFeatures), 5)
		assert.LessOrEqual(t, len(verdict.Pros), 3)
		assert.LessOrEqual(t, len(verdict.Cons), 3)
	}
}

func TestUsabilityLabelBuckets(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "excellent"}, {80, "excellent"},
		{79, "good"}, {65, "good"},
		{64, "average"}, {50, "average"},
		{49, "poor"}, {35, "poor"},
		{34, "avoid"}, {0, "avoid"},
	}
	for _, tt := range tests {
		if got := usabilityLabel(tt.score); got != tt.want {
			t.Errorf("usabilityLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAnalyzeDescriptionDeterministic(t *testing.T) {
	eng := newTestEngine()
	desc := "Compact design with reliable performance and modern connectivity features."
	first := eng.AnalyzeDescription(desc)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, eng.AnalyzeDescription(desc))
	}
}
