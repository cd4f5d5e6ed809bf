package scorer

import (
	"strings"
)

// Words whose presence marks an emphatic, low-ambiguity sentence.
var strongSentimentWords = []string{
	"excellent", "amazing", "fantastic", "perfect", "outstanding",
	"brilliant", "terrible", "awful", "horrible", "worst",
	"disgusting", "pathetic",
}

// Confidence estimates how much weight a sentence score deserves, in
// [0,1]. Strong polarity, a clear positive/negative split, moderate
// length and emphatic vocabulary all raise it; fragments and run-ons
// lower it.
func Confidence(s Score, sentence string) float64 {
	conf := 0.5
	conf += 0.3 * abs(s.Compound)

	switch {
	case (s.Positive > 0.3 && s.Negative < 0.1) || (s.Negative > 0.3 && s.Positive < 0.1):
		conf += 0.2
	case abs(s.Positive-s.Negative) > 0.3:
		conf += 0.1
	}

	words := len(strings.Fields(sentence))
	if words >= 5 && words <= 20 {
		conf += 0.1
	} else if words < 3 || words > 50 {
		conf -= 0.2
	}

	lower := strings.ToLower(sentence)
	for _, w := range strongSentimentWords {
		if indexWord(lower, w) >= 0 {
			conf += 0.15
			break
		}
	}

	return clamp(conf, 0, 1)
}
