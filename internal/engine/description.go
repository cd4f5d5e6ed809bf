package engine

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/shopverdict/shopverdict/internal/nlp"
	"github.com/shopverdict/shopverdict/internal/textutil"
)

const (
	maxKeyFeatures  = 5
	maxDescProsCons = 3
	featureMinLen   = 20
	featureMaxLen   = 200
	cueWeight       = 5.0
)

var positiveFeatureCues = []string{
	"excellent", "premium", "high-quality", "durable", "reliable",
	"efficient", "advanced", "innovative", "superior", "professional",
	"powerful", "fast", "lightweight", "compact", "user-friendly",
	"easy", "comfortable", "stylish", "modern", "latest", "improved",
	"enhanced", "upgraded", "warranty", "certified", "tested", "approved",
}

var negativeFeatureCues = []string{
	"cheap", "fragile", "basic", "limited", "slow", "heavy", "bulky",
	"outdated", "complicated", "difficult", "poor", "low-quality",
	"defective", "issue", "problem",
}

var featureIndicators = []string{
	"feature", "specification", "capacity", "size", "weight",
	"dimension", "material", "technology", "compatibility",
	"connectivity", "performance", "efficiency", "design",
}

// UsabilityVerdict is the analysis result for a product description.
type UsabilityVerdict struct {
	UsabilityScore   int      `json:"usability_score"`
	UsabilityVerdict string   `json:"usability_verdict"`
	KeyFeatures      []string `json:"key_features"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	Summary          string   `json:"summary"`
}

// AnalyzeDescription runs the mini-pipeline over a single product
// description: per-sentence lexical scoring plus three fixed cue
// vocabularies. Like AnalyzeReviews it is total and deterministic.
func (eng *Engine) AnalyzeDescription(description string) UsabilityVerdict {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return UsabilityVerdict{
			UsabilityVerdict: "avoid",
			Summary:          "No description available to analyze.",
		}
	}

	sentences := eng.splitSentences(trimmed)
	var (
		compounds         []float64
		pros, cons, feats []string
		posCues, negCues  int
	)
	for _, sent := range sentences {
		score := eng.scorer.Score(sent)
		compounds = append(compounds, score.Compound)
		lower := strings.ToLower(sent)

		hasPos := containsCue(lower, positiveFeatureCues)
		hasNeg := containsCue(lower, negativeFeatureCues)
		if hasPos {
			posCues++
		}
		if hasNeg {
			negCues++
		}

		if score.Compound > 0.1 && hasPos && len(pros) < maxDescProsCons {
			pros = append(pros, sent)
		}
		if (score.Compound < -0.1 || hasNeg) && len(cons) < maxDescProsCons {
			cons = append(cons, sent)
		}
		if containsCue(lower, featureIndicators) &&
			len(sent) >= featureMinLen && len(sent) <= featureMaxLen &&
			len(feats) < maxKeyFeatures {
			feats = append(feats, sent)
		}
	}

	mean := 0.0
	if len(compounds) > 0 {
		mean = stat.Mean(compounds, nil)
	}
	raw := ((mean+1)/2)*100 + cueWeight*float64(posCues-negCues)
	score := int(clampF(raw, 0, 100))

	verdict := UsabilityVerdict{
		UsabilityScore:   score,
		UsabilityVerdict: usabilityLabel(score),
		KeyFeatures:      feats,
		Pros:             pros,
		Cons:             cons,
	}
	verdict.Summary = fmt.Sprintf("Scored %d/100 (%s) from %d sentences: %d highlighted strengths, %d flagged concerns.",
		score, verdict.UsabilityVerdict, len(sentences), len(pros), len(cons))
	return verdict
}

func usabilityLabel(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 65:
		return "good"
	case score >= 50:
		return "average"
	case score >= 35:
		return "poor"
	default:
		return "avoid"
	}
}

// containsCue matches cues as whole words; hyphenated cues like
// "high-quality" match as substrings since normalization would split
// them.
func containsCue(lower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(cue, "-") {
			if strings.Contains(lower, cue) {
				return true
			}
			continue
		}
		if containsWord(lower, cue) {
			return true
		}
	}
	return false
}

func containsWord(lower, word string) bool {
	for _, tok := range strings.Fields(textutil.Normalize(lower)) {
		if tok == word {
			return true
		}
	}
	return false
}

func clampF(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// HelperMode reports which sentence-splitting path the engine uses.
// Exposed for the CLI's verbose output.
func (eng *Engine) HelperMode() string {
	if eng.useHelper && nlp.Available() {
		return "linguistic"
	}
	return "fallback"
}
