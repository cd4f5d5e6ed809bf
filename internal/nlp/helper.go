// Package nlp wraps the prose toolkit behind a process-wide, lazily
// initialized helper. Loading the tagger model is expensive, so it
// happens at most once; if it fails, every caller sees the helper as
// unavailable and falls back to the pure text path.
package nlp

import (
	"strings"
	"sync"

	prose "github.com/tsawler/prose/v3"
)

// Token is a POS-tagged token. Tags follow the Penn Treebank set
// (NN, NNS, JJ, ...).
type Token struct {
	Text string
	Tag  string
}

var (
	initOnce  sync.Once
	available bool
)

// Available reports whether the linguistic helper can be used. The
// first call runs a smoke test through the tagger; later calls are
// lock-free reads of the cached result.
func Available() bool {
	initOnce.Do(func() {
		defer func() {
			if recover() != nil {
				available = false
			}
		}()
		doc, err := prose.NewDocument("The battery lasts long.", prose.WithExtraction(false))
		available = err == nil && doc != nil && len(doc.Tokens()) > 0
	})
	return available
}

// SplitSentences segments text using the Punkt segmenter. Returns nil
// when the helper is unavailable or segmentation fails; callers must
// fall back to regex splitting.
func SplitSentences(text string) []string {
	if !Available() {
		return nil
	}
	doc, err := newDoc(text)
	if err != nil || doc == nil {
		return nil
	}
	var sentences []string
	for _, sent := range doc.Sentences() {
		if trimmed := strings.TrimSpace(sent.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// TagTokens returns the POS-tagged token stream for text, or nil when
// tagging is unavailable.
func TagTokens(text string) []Token {
	if !Available() {
		return nil
	}
	doc, err := newDoc(text)
	if err != nil || doc == nil {
		return nil
	}
	var tokens []Token
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return tokens
}

func newDoc(text string) (doc *prose.Document, err error) {
	// prose panics on some malformed inputs; treat that as unavailability
	// for this text rather than letting it escape the engine.
	defer func() {
		if recover() != nil {
			doc, err = nil, nil
		}
	}()
	return prose.NewDocument(text, prose.WithExtraction(false))
}

// IsNoun reports whether tag marks a noun.
func IsNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// IsAdjective reports whether tag marks an adjective.
func IsAdjective(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

// Singularize strips a plural suffix from a noun so that "cameras" and
// "camera" count as the same aspect. Deliberately conservative.
func Singularize(noun string) string {
	switch {
	case strings.HasSuffix(noun, "ies") && len(noun) > 4:
		return noun[:len(noun)-3] + "y"
	case strings.HasSuffix(noun, "sses") || strings.HasSuffix(noun, "shes") || strings.HasSuffix(noun, "ches"):
		return noun[:len(noun)-2]
	case strings.HasSuffix(noun, "s") && !strings.HasSuffix(noun, "ss") && len(noun) > 3:
		return noun[:len(noun)-1]
	}
	return noun
}
