package aspects

import (
	"strings"

	"github.com/shopverdict/shopverdict/internal/textutil"
)

// Attributed is a candidate together with the indices of the sentences
// that support it, in sentence order.
type Attributed struct {
	Candidate
	Sentences []int
}

// Attribute maps each candidate to the sentences whose content-word
// token set contains every token of the phrase. Subset matching avoids
// the substring traps ("cam" hitting "camera") of the naive approach.
// Candidates with no support are dropped.
func Attribute(candidates []Candidate, sentences []string) []Attributed {
	sets := make([]map[string]bool, len(sentences))
	for i, sent := range sentences {
		sets[i] = textutil.TokenSet(sent)
	}

	var out []Attributed
	for _, cand := range candidates {
		tokens := strings.Fields(cand.Phrase)
		if len(tokens) == 0 {
			continue
		}
		var support []int
		for i, set := range sets {
			if containsAll(set, tokens) {
				support = append(support, i)
			}
		}
		if len(support) == 0 {
			continue
		}
		out = append(out, Attributed{Candidate: cand, Sentences: support})
	}
	return out
}

func containsAll(set map[string]bool, tokens []string) bool {
	for _, tok := range tokens {
		if !set[tok] {
			return false
		}
	}
	return true
}
