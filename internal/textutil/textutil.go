package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// Stopwords that never count as content words. Articles, pronouns and
// common auxiliaries; anything surviving this filter is treated as a
// candidate aspect token.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"your": true, "this": true, "that": true, "was": true, "are": true,
	"but": true, "not": true, "have": true, "has": true, "had": true,
	"from": true, "were": true, "they": true, "them": true, "their": true,
	"there": true, "here": true, "very": true, "just": true, "about": true,
	"into": true, "out": true, "over": true, "under": true, "more": true,
	"some": true, "any": true, "get": true, "got": true, "much": true,
	"than": true, "then": true, "also": true, "can": true, "could": true,
	"would": true, "should": true, "really": true, "been": true,
	"being": true, "after": true, "before": true, "when": true,
	"while": true, "because": true, "which": true, "who": true,
	"what": true, "why": true, "how": true, "does": true, "did": true,
	"doing": true, "too": true, "is": true, "it": true, "its": true,
	"i": true, "we": true, "me": true, "my": true, "mine": true,
	"our": true, "ours": true, "us": true, "u": true, "im": true,
	"ive": true, "he": true, "she": true, "him": true, "her": true,
	"his": true, "hers": true, "of": true, "to": true, "in": true,
	"on": true, "at": true, "as": true, "by": true, "an": true,
	"be": true, "or": true,
}

// IsStopword reports whether the lowercase token is in the stopword set.
func IsStopword(token string) bool {
	return stopwords[token]
}

// Normalize lowercases text and strips punctuation and symbol runes,
// keeping letters, digits and whitespace.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAlphabetic(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(token) > 0
}

// ContentWords tokenizes text into lowercase alphabetic tokens longer
// than two runes that are not stopwords, in source order.
func ContentWords(text string) []string {
	var words []string
	for _, tok := range strings.Fields(Normalize(text)) {
		if len([]rune(tok)) <= 2 || !isAlphabetic(tok) || stopwords[tok] {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// TokenSet returns the set of content words in text.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range ContentWords(text) {
		set[tok] = true
	}
	return set
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// SplitSentences splits text on terminal punctuation followed by
// whitespace and returns non-empty trimmed sentences in source order.
// This is the pure fallback; callers with the linguistic helper
// available should prefer its segmenter.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// Keep the terminal punctuation with the sentence.
		sent := strings.TrimSpace(text[start : loc[0]+1])
		if sent != "" {
			sentences = append(sentences, sent)
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
