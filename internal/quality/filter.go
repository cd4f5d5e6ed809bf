// Package quality filters raw review strings before analysis: spam,
// out-of-range lengths, exact and near duplicates, and low-information
// text are dropped, and every survivor carries a quality weight used by
// the aggregator downstream.
package quality

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopverdict/shopverdict/internal/textutil"
)

const (
	minLength      = 15
	maxLength      = 2000
	minQuality     = 0.3
	dedupWindow    = 20
	jaccardCutoff  = 0.8
	uppercaseLimit = 0.7
)

// Result is an accepted review with its derived attributes.
type Result struct {
	Review  string
	Key     string // normalized dedup key
	Quality float64
}

var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(buy now|click here|limited offer|best deal|order now|free shipping|visit (us|our)|use code|discount code|promo code)\b`),
	regexp.MustCompile(`(?i)(https?://|www\.|\S+@\S+\.\S+|#\w+)`),
}

const repeatedRunLimit = 5

// hasRepeatedRun reports whether any character appears limit or more
// times in a row. RE2 has no backreferences, so this is a plain scan.
func hasRepeatedRun(text string, limit int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= limit {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// Domain cues that suggest an actual shopping experience behind the
// text. Each adds a small quality bonus.
var domainCues = []string{
	"good", "bad", "quality", "product", "item", "price", "value",
	"delivery", "packaging", "service", "recommend", "satisfied",
	"happy", "disappointed", "excellent", "poor", "average",
}

// Filter applies the rejection rules in order and returns the accepted
// reviews with quality weights. The second result reports whether the
// all-rejected fallback fired: when nothing survives, every non-empty
// input is re-admitted at quality 0.5 so the pipeline still produces a
// verdict.
func Filter(reviews []string) ([]Result, bool) {
	var accepted []Result
	seen := make(map[string]bool)
	var recent []map[string]bool // word sets of the last accepted keys

	for _, review := range reviews {
		trimmed := strings.TrimSpace(review)
		if len(trimmed) < minLength || len(trimmed) > maxLength {
			continue
		}
		if isSpam(trimmed) {
			continue
		}
		key := textutil.Normalize(trimmed)
		key = strings.Join(strings.Fields(key), " ")
		if seen[key] {
			continue
		}
		words := wordSet(key)
		if nearDuplicate(words, recent) {
			continue
		}
		score := Score(trimmed)
		if score < minQuality {
			continue
		}

		seen[key] = true
		recent = append(recent, words)
		if len(recent) > dedupWindow {
			recent = recent[1:]
		}
		accepted = append(accepted, Result{Review: trimmed, Key: key, Quality: score})
	}

	if len(accepted) == 0 {
		return readmit(reviews), len(reviews) > 0
	}
	return accepted, false
}

func readmit(reviews []string) []Result {
	var out []Result
	seen := make(map[string]bool)
	for _, review := range reviews {
		trimmed := strings.TrimSpace(review)
		if trimmed == "" {
			continue
		}
		key := strings.Join(strings.Fields(textutil.Normalize(trimmed)), " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Result{Review: trimmed, Key: key, Quality: 0.5})
	}
	return out
}

func isSpam(text string) bool {
	for _, pat := range spamPatterns {
		if pat.MatchString(text) {
			return true
		}
	}
	if hasRepeatedRun(text, repeatedRunLimit) {
		return true
	}
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters > 0 && float64(upper)/float64(letters) > uppercaseLimit
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}

// nearDuplicate checks Jaccard similarity against the most recent
// accepted keys. The window keeps dedup O(N·20) instead of O(N²);
// global dedup is intentionally not a goal.
func nearDuplicate(words map[string]bool, recent []map[string]bool) bool {
	for _, prev := range recent {
		if jaccard(words, prev) > jaccardCutoff {
			return true
		}
	}
	return false
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Score rates a single review in [0,1]. The baseline is 0.5; length,
// vocabulary diversity, multi-sentence structure and domain cues move
// it up or down.
func Score(review string) float64 {
	score := 0.5
	trimmed := strings.TrimSpace(review)

	switch n := len(trimmed); {
	case n >= 30 && n <= 150:
		score += 0.2
	case n > 150 && n <= 300:
		score += 0.1
	case n < 20 || n > 500:
		score -= 0.2
	}

	words := textutil.ContentWords(trimmed)
	if len(words) > 0 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		score += 0.2 * float64(len(unique)) / float64(len(words))
	}

	if len(textutil.SplitSentences(trimmed)) >= 2 {
		score += 0.1
	}

	lower := strings.ToLower(trimmed)
	cueBonus := 0.0
	for _, cue := range domainCues {
		if strings.Contains(lower, cue) {
			cueBonus += 0.05
			if cueBonus >= 0.2 {
				break
			}
		}
	}
	score += cueBonus

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
