package scorer

import (
	"strings"
)

var negationCues = []string{
	"not", "no", "never", "without", "barely", "hardly",
	"can't", "won't", "doesn't", "isn't",
}

var sarcasmCues = []string{
	"yeah right", "sure", "obviously", "definitely not", "as if",
}

var positiveCues = []string{
	"good", "great", "excellent", "amazing", "love", "perfect",
	"fantastic", "awesome", "nice", "best",
}

var negativeCues = []string{
	"bad", "terrible", "awful", "horrible", "hate", "poor",
	"worst", "disappointing", "broken", "useless",
}

// negationLookahead is how far past a negation cue the adjuster scans
// for a sentiment-bearing word.
const negationLookahead = 50

// Adjust applies context corrections to a lexical compound score: a
// negated positive pulls the score down (and a negated negative up),
// sarcasm inverts and dampens, and comparative constructions override
// the magnitude entirely. The result is clamped to [-1,1].
func Adjust(compound float64, sentence string) float64 {
	adjusted := compound
	lower := strings.ToLower(sentence)

	for _, cue := range negationCues {
		idx := indexWord(lower, cue)
		if idx < 0 {
			continue
		}
		window := lower[idx+len(cue):]
		if len(window) > negationLookahead {
			window = window[:negationLookahead]
		}
		if containsAny(window, positiveCues) {
			adjusted -= 0.8 * abs(compound)
		} else if containsAny(window, negativeCues) {
			adjusted += 0.8 * abs(compound)
		}
	}

	if containsAny(lower, sarcasmCues) {
		adjusted *= -0.7
	}

	switch {
	case strings.Contains(lower, "better than") || strings.Contains(lower, "improved from"):
		adjusted = 0.7 * abs(compound)
	case strings.Contains(lower, "worse than") || strings.Contains(lower, "downgrade from"):
		adjusted = -0.7 * abs(compound)
	}

	return clamp(adjusted, -1, 1)
}

// indexWord finds cue as a whole word in text, -1 if absent.
func indexWord(text, cue string) int {
	from := 0
	for {
		idx := strings.Index(text[from:], cue)
		if idx < 0 {
			return -1
		}
		idx += from
		end := idx + len(cue)
		leftOK := idx == 0 || !isWordRune(text[idx-1])
		rightOK := end == len(text) || !isWordRune(text[end])
		if leftOK && rightOK {
			return idx
		}
		from = end
		if from >= len(text) {
			return -1
		}
	}
}

func isWordRune(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '\''
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if indexWord(text, cue) >= 0 {
			return true
		}
	}
	return false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
