// Package aspects finds the product features a review batch talks
// about and attributes each one to the sentences that mention it.
// Extraction is a capability: the linguistic extractor walks POS-tagged
// tokens when the helper is available, and the frequency extractor is a
// pure fallback over content-word statistics. Both are deterministic
// for a fixed input.
package aspects

import (
	"sort"
	"strings"

	"github.com/shopverdict/shopverdict/internal/nlp"
	"github.com/shopverdict/shopverdict/internal/textutil"
)

// maxCandidates bounds the candidate list handed to attribution.
const maxCandidates = 30

// Candidate is a lowercase aspect phrase of one to three tokens with
// its batch-wide frequency.
type Candidate struct {
	Phrase    string
	Frequency int
}

// Extractor produces candidate aspect phrases from accepted reviews.
type Extractor interface {
	Extract(reviews []string) []Candidate
}

// Select returns the linguistic extractor when the helper is usable and
// the frequency fallback otherwise.
func Select() Extractor {
	if nlp.Available() {
		return LinguisticExtractor{}
	}
	return FrequencyExtractor{}
}

// counter tracks phrase frequencies while remembering first-occurrence
// order so ranking stays stable across map iteration.
type counter struct {
	counts map[string]int
	order  map[string]int
	next   int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), order: make(map[string]int)}
}

func (c *counter) add(phrase string) {
	if _, ok := c.counts[phrase]; !ok {
		c.order[phrase] = c.next
		c.next++
	}
	c.counts[phrase]++
}

func (c *counter) top(n int) []Candidate {
	candidates := make([]Candidate, 0, len(c.counts))
	for phrase, freq := range c.counts {
		candidates = append(candidates, Candidate{Phrase: phrase, Frequency: freq})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Frequency != candidates[j].Frequency {
			return candidates[i].Frequency > candidates[j].Frequency
		}
		return c.order[candidates[i].Phrase] < c.order[candidates[j].Phrase]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// acceptable rejects phrases containing stopwords or tokens of two
// runes or fewer.
func acceptable(tokens []string) bool {
	if len(tokens) == 0 || len(tokens) > 3 {
		return false
	}
	for _, tok := range tokens {
		if len([]rune(tok)) <= 2 || textutil.IsStopword(tok) {
			return false
		}
	}
	return true
}

// FrequencyExtractor counts unigrams and consecutive bigrams over the
// content words of every review.
type FrequencyExtractor struct{}

func (FrequencyExtractor) Extract(reviews []string) []Candidate {
	c := newCounter()
	for _, review := range reviews {
		words := textutil.ContentWords(review)
		for i, w := range words {
			if acceptable([]string{w}) {
				c.add(w)
			}
			if i+1 < len(words) {
				pair := []string{w, words[i+1]}
				if acceptable(pair) {
					c.add(strings.Join(pair, " "))
				}
			}
		}
	}
	return c.top(maxCandidates)
}

// LinguisticExtractor derives noun chunks, adjective+noun and noun+noun
// bigrams, and singularized single nouns from the POS-tagged token
// stream.
type LinguisticExtractor struct{}

func (LinguisticExtractor) Extract(reviews []string) []Candidate {
	c := newCounter()
	for _, review := range reviews {
		tokens := nlp.TagTokens(textutil.Normalize(review))
		if tokens == nil {
			// Tagging failed for this text; frequency stats still apply.
			for _, cand := range (FrequencyExtractor{}).Extract([]string{review}) {
				for i := 0; i < cand.Frequency; i++ {
					c.add(cand.Phrase)
				}
			}
			continue
		}
		collectChunks(c, tokens)
		collectBigrams(c, tokens)
		collectNouns(c, tokens)
	}
	return c.top(maxCandidates)
}

// collectChunks finds maximal adjective/noun runs ending in a noun and
// keeps the multi-word ones.
func collectChunks(c *counter, tokens []nlp.Token) {
	var run []string
	lastNoun := -1
	flush := func() {
		if lastNoun >= 1 {
			chunk := run[:lastNoun+1]
			if acceptable(chunk) {
				c.add(strings.Join(chunk, " "))
			}
		}
		run = run[:0]
		lastNoun = -1
	}
	for _, tok := range tokens {
		text := strings.ToLower(tok.Text)
		switch {
		case nlp.IsNoun(tok.Tag):
			run = append(run, text)
			lastNoun = len(run) - 1
		case nlp.IsAdjective(tok.Tag):
			run = append(run, text)
		default:
			flush()
		}
		if len(run) > 3 {
			flush()
		}
	}
	flush()
}

func collectBigrams(c *counter, tokens []nlp.Token) {
	for i := 0; i+1 < len(tokens); i++ {
		a, b := tokens[i], tokens[i+1]
		if !nlp.IsNoun(b.Tag) {
			continue
		}
		if nlp.IsAdjective(a.Tag) || nlp.IsNoun(a.Tag) {
			pair := []string{strings.ToLower(a.Text), strings.ToLower(b.Text)}
			if acceptable(pair) {
				c.add(strings.Join(pair, " "))
			}
		}
	}
}

func collectNouns(c *counter, tokens []nlp.Token) {
	for _, tok := range tokens {
		if !nlp.IsNoun(tok.Tag) {
			continue
		}
		noun := nlp.Singularize(strings.ToLower(tok.Text))
		if acceptable([]string{noun}) {
			c.add(noun)
		}
	}
}
