// Package engine is the review-analysis pipeline: filter, score,
// extract aspects, aggregate and synthesize a verdict. It is a pure
// function over its input batch; the only shared state is the lazily
// initialized linguistic helper, which is read-only after first use.
package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/shopverdict/shopverdict/internal/aspects"
	"github.com/shopverdict/shopverdict/internal/nlp"
	"github.com/shopverdict/shopverdict/internal/quality"
	"github.com/shopverdict/shopverdict/internal/scorer"
	"github.com/shopverdict/shopverdict/internal/textutil"
)

const (
	maxAspects       = 5
	minSupport       = 2
	maxExamples      = 3
	maxProsCons      = 2
	positiveCut      = 0.1
	negativeCut      = -0.1
	prosConsCut      = 0.05
	sufficiencyScale = 20.0
)

// Distribution holds the weighted overall sentiment buckets. Values are
// sums of sentence effective weights, not review counts.
type Distribution struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// AspectOpinion is a ranked aspect with its mean sentiment, as surfaced
// in the pros and cons lists.
type AspectOpinion struct {
	Name      string  `json:"name"`
	Sentiment float64 `json:"sentiment"`
}

// Meta describes how much data backed the verdict.
type Meta struct {
	ReviewsUsed       int     `json:"reviews_used"`
	Sentences         int     `json:"sentences"`
	Confidence        float64 `json:"confidence"`
	AvgQuality        float64 `json:"avg_quality"`
	DataSufficiency   string  `json:"data_sufficiency"`
	FallbackFiltering bool    `json:"fallback_filtering"`
}

// Verdict is the analysis result for one review batch.
type Verdict struct {
	OverallSentiment Distribution        `json:"overall_sentiment"`
	AspectSentiments map[string]float64  `json:"aspect_sentiments"`
	AspectSupport    map[string][]string `json:"aspect_support"`
	Pros             []AspectOpinion     `json:"pros"`
	Cons             []AspectOpinion     `json:"cons"`
	Score            int                 `json:"score"`
	Recommendation   string              `json:"recommendation"`
	Meta             Meta                `json:"meta"`
}

// sentence is one scored sentence of an accepted review.
type sentence struct {
	text       string
	review     int
	raw        scorer.Score
	adjusted   float64
	confidence float64
	quality    float64
}

func (s sentence) weight() float64 { return s.quality * s.confidence }

// rankedAspect is an aspect that met the support floor.
type rankedAspect struct {
	name    string
	mean    float64
	support []int // supporting sentence indices
	order   int
}

type Engine struct {
	scorer    *scorer.Scorer
	extractor aspects.Extractor
	useHelper bool
}

type Option func(*Engine)

// WithExtractor pins the aspect extractor instead of selecting it from
// helper availability.
func WithExtractor(e aspects.Extractor) Option {
	return func(eng *Engine) { eng.extractor = e }
}

// WithoutHelper forces the pure fallback path for sentence splitting
// and aspect extraction.
func WithoutHelper() Option {
	return func(eng *Engine) {
		eng.useHelper = false
		eng.extractor = aspects.FrequencyExtractor{}
	}
}

func New(opts ...Option) *Engine {
	eng := &Engine{scorer: scorer.New(), useHelper: true}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// AnalyzeReviews runs the full pipeline over a review batch. It is
// total: no input produces an error or a panic, and empty or
// all-rejected input yields the canonical zero verdict.
func (eng *Engine) AnalyzeReviews(reviews []string) Verdict {
	accepted, fallback := quality.Filter(reviews)
	if len(accepted) == 0 {
		return zeroVerdict()
	}

	sentences := eng.scoreSentences(accepted)
	if len(sentences) == 0 {
		return zeroVerdict()
	}

	texts := make([]string, len(accepted))
	for i, res := range accepted {
		texts[i] = res.Review
	}
	candidates := eng.pickExtractor().Extract(texts)

	sentenceTexts := make([]string, len(sentences))
	for i, s := range sentences {
		sentenceTexts[i] = s.text
	}
	attributed := aspects.Attribute(candidates, sentenceTexts)

	ranked := rankAspects(attributed, sentences)

	verdict := Verdict{
		OverallSentiment: overall(sentences),
		AspectSentiments: make(map[string]float64, len(ranked)),
		AspectSupport:    make(map[string][]string, len(ranked)),
	}
	for _, asp := range ranked {
		verdict.AspectSentiments[asp.name] = asp.mean
		examples := asp.support
		if len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		for _, idx := range examples {
			verdict.AspectSupport[asp.name] = append(verdict.AspectSupport[asp.name], sentences[idx].text)
		}
	}
	verdict.Pros, verdict.Cons = prosCons(ranked)
	verdict.Meta = metaBlock(accepted, sentences, fallback)
	verdict.Score, verdict.Recommendation = synthesize(verdict.OverallSentiment, ranked, verdict.Meta)
	return verdict
}

func (eng *Engine) pickExtractor() aspects.Extractor {
	if eng.extractor != nil {
		return eng.extractor
	}
	return aspects.Select()
}

func (eng *Engine) splitSentences(text string) []string {
	if eng.useHelper {
		if sents := nlp.SplitSentences(text); sents != nil {
			return sents
		}
	}
	return textutil.SplitSentences(text)
}

func (eng *Engine) scoreSentences(accepted []quality.Result) []sentence {
	var sentences []sentence
	for ri, res := range accepted {
		for _, text := range eng.splitSentences(res.Review) {
			raw := eng.scorer.Score(text)
			sentences = append(sentences, sentence{
				text:       text,
				review:     ri,
				raw:        raw,
				adjusted:   scorer.Adjust(raw.Compound, text),
				confidence: scorer.Confidence(raw, text),
				quality:    res.Quality,
			})
		}
	}
	return sentences
}

func overall(sentences []sentence) Distribution {
	var dist Distribution
	for _, s := range sentences {
		w := s.weight()
		switch {
		case s.adjusted >= positiveCut:
			dist.Positive += w
		case s.adjusted <= negativeCut:
			dist.Negative += w
		default:
			dist.Neutral += w
		}
	}
	return dist
}

// rankAspects promotes attributed candidates with enough support and
// orders them by (support desc, |mean| desc, first occurrence).
func rankAspects(attributed []aspects.Attributed, sentences []sentence) []rankedAspect {
	var ranked []rankedAspect
	for order, asp := range attributed {
		if len(asp.Sentences) < minSupport {
			continue
		}
		scores := make([]float64, len(asp.Sentences))
		for i, idx := range asp.Sentences {
			scores[i] = sentences[idx].raw.Compound
		}
		ranked = append(ranked, rankedAspect{
			name:    asp.Phrase,
			mean:    round2(stat.Mean(scores, nil)),
			support: asp.Sentences,
			order:   order,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if len(a.support) != len(b.support) {
			return len(a.support) > len(b.support)
		}
		if math.Abs(a.mean) != math.Abs(b.mean) {
			return math.Abs(a.mean) > math.Abs(b.mean)
		}
		return a.order < b.order
	})
	if len(ranked) > maxAspects {
		ranked = ranked[:maxAspects]
	}
	return ranked
}

// prosCons takes up to two aspects past each threshold, padding from
// the remaining ranked aspects when fewer than two qualify.
func prosCons(ranked []rankedAspect) (pros, cons []AspectOpinion) {
	used := make(map[string]bool)
	for _, asp := range ranked {
		if len(pros) < maxProsCons && asp.mean > prosConsCut {
			pros = append(pros, AspectOpinion{Name: asp.name, Sentiment: asp.mean})
			used[asp.name] = true
		}
	}
	for _, asp := range ranked {
		if len(cons) < maxProsCons && asp.mean < -prosConsCut && !used[asp.name] {
			cons = append(cons, AspectOpinion{Name: asp.name, Sentiment: asp.mean})
			used[asp.name] = true
		}
	}
	for _, asp := range ranked {
		if used[asp.name] {
			continue
		}
		if len(pros) < maxProsCons && asp.mean >= 0 {
			pros = append(pros, AspectOpinion{Name: asp.name, Sentiment: asp.mean})
			used[asp.name] = true
		} else if len(cons) < maxProsCons && asp.mean < 0 {
			cons = append(cons, AspectOpinion{Name: asp.name, Sentiment: asp.mean})
			used[asp.name] = true
		}
	}
	return pros, cons
}

func metaBlock(accepted []quality.Result, sentences []sentence, fallback bool) Meta {
	qualities := make([]float64, len(accepted))
	for i, res := range accepted {
		qualities[i] = res.Quality
	}
	confidences := make([]float64, len(sentences))
	for i, s := range sentences {
		confidences[i] = s.confidence
	}
	used := len(accepted)
	meta := Meta{
		ReviewsUsed:       used,
		Sentences:         len(sentences),
		AvgQuality:        round2(stat.Mean(qualities, nil)),
		FallbackFiltering: fallback,
	}
	meta.Confidence = round2(0.4*stat.Mean(confidences, nil) +
		0.3*stat.Mean(qualities, nil) +
		0.3*math.Min(float64(used)/sufficiencyScale, 1))
	switch {
	case used >= 20:
		meta.DataSufficiency = "high"
	case used >= 8:
		meta.DataSufficiency = "medium"
	default:
		meta.DataSufficiency = "low"
	}
	return meta
}

func zeroVerdict() Verdict {
	return Verdict{
		AspectSentiments: map[string]float64{},
		AspectSupport:    map[string][]string{},
		Recommendation:   "not recommended",
		Meta:             Meta{DataSufficiency: "none"},
	}
}

func round2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*100) / 100
}
