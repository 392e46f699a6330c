package news

import "strings"

// Scorer assigns a sentiment score in [-1, 1] to a piece of text using a
// small financial-news lexicon. It stands in for a full NLP model: bounded,
// deterministic, and cheap enough to score hundreds of headlines per run.
type Scorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

var positiveWords = []string{
	"gain", "gains", "surge", "surges", "rally", "rallies", "record",
	"beat", "beats", "strong", "growth", "profit", "profits", "upgrade",
	"upgraded", "bullish", "soar", "soars", "jump", "jumps", "rise",
	"rises", "boost", "boosts", "outperform", "win", "wins", "success",
	"breakthrough", "optimistic", "positive", "high", "expand", "expands",
}

var negativeWords = []string{
	"loss", "losses", "fall", "falls", "drop", "drops", "plunge",
	"plunges", "crash", "crashes", "miss", "misses", "weak", "decline",
	"declines", "downgrade", "downgraded", "bearish", "slump", "slumps",
	"cut", "cuts", "layoff", "layoffs", "lawsuit", "fraud", "warning",
	"recall", "bankruptcy", "pessimistic", "negative", "low", "fear",
}

// NewScorer builds the default lexicon scorer.
func NewScorer() *Scorer {
	s := &Scorer{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
	}
	for _, w := range positiveWords {
		s.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		s.negative[w] = struct{}{}
	}
	return s
}

// Score returns the sentiment of text: (positive hits - negative hits) over
// total hits, or 0 when no lexicon word appears.
func (s *Scorer) Score(text string) float64 {
	if text == "" {
		return 0
	}

	var pos, neg int
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if _, ok := s.positive[tok]; ok {
			pos++
		}
		if _, ok := s.negative[tok]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}
