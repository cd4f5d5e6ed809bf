// Package formatter renders verdicts as plain text for terminal use.
// JSON output is handled by the caller; this is the human-readable
// alternative.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopverdict/shopverdict/internal/engine"
)

// FormatVerdict generates the terminal summary for a review verdict.
func FormatVerdict(v engine.Verdict) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Worth-to-buy: %d/100 (%s)\n", v.Score, v.Recommendation)
	fmt.Fprintf(&b, "Sentiment: %.1f positive / %.1f negative / %.1f neutral (weighted)\n",
		v.OverallSentiment.Positive, v.OverallSentiment.Negative, v.OverallSentiment.Neutral)

	if len(v.AspectSentiments) > 0 {
		b.WriteString("\nAspects:\n")
		names := make([]string, 0, len(v.AspectSentiments))
		for name := range v.AspectSentiments {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return v.AspectSentiments[names[i]] > v.AspectSentiments[names[j]]
		})
		for _, name := range names {
			fmt.Fprintf(&b, "  %s %s %+.2f\n", sentimentSymbol(v.AspectSentiments[name]), name, v.AspectSentiments[name])
		}
	}

	writeOpinions(&b, "Pros", v.Pros)
	writeOpinions(&b, "Cons", v.Cons)

	fmt.Fprintf(&b, "\nBased on %d reviews, %d sentences (confidence %.2f, avg quality %.2f, %s data)\n",
		v.Meta.ReviewsUsed, v.Meta.Sentences, v.Meta.Confidence, v.Meta.AvgQuality, v.Meta.DataSufficiency)
	if v.Meta.FallbackFiltering {
		b.WriteString("Note: quality filtering rejected every review; raw input was re-admitted.\n")
	}
	return b.String()
}

// FormatUsability generates the terminal summary for a description
// verdict.
func FormatUsability(v engine.UsabilityVerdict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usability: %d/100 (%s)\n", v.UsabilityScore, v.UsabilityVerdict)
	writeList(&b, "Key features", v.KeyFeatures)
	writeList(&b, "Pros", v.Pros)
	writeList(&b, "Cons", v.Cons)
	fmt.Fprintf(&b, "\n%s\n", v.Summary)
	return b.String()
}

func writeOpinions(b *strings.Builder, heading string, opinions []engine.AspectOpinion) {
	if len(opinions) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, op := range opinions {
		fmt.Fprintf(b, "  - %s (%+.2f)\n", op.Name, op.Sentiment)
	}
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

// sentimentSymbol returns + for positive, - for negative, x for neutral.
func sentimentSymbol(sentiment float64) string {
	switch {
	case sentiment > 0.05:
		return "+"
	case sentiment < -0.05:
		return "-"
	default:
		return "x"
	}
}
