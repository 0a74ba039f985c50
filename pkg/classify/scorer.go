package classify

import "github.com/devnolife/go-fieldmap/pkg/detect"

// Scorer assigns a confidence in [0,1] to detected candidates. The exact
// numbers are tunable; the ordering is the contract:
//
//	double-brace > dictionary-recognized > single-brace > fallback
//
// Manual additions bypass the scorer entirely and carry
// field.ManualConfidence.
type Scorer struct {
	DoubleBrace float64
	Dictionary  float64
	SingleBrace float64
	Fallback    float64
}

// DefaultScorer returns the tuned defaults.
func DefaultScorer() Scorer {
	return Scorer{
		DoubleBrace: 0.9,
		Dictionary:  0.85,
		SingleBrace: 0.6,
		Fallback:    0.5,
	}
}

// Score computes the confidence for a candidate given its bracket kind and
// whether the curated dictionary recognized it. Dictionary recognition lifts
// weak matches but never lowers a double-brace score.
func (s Scorer) Score(bracket detect.Bracket, dictionaryMatch bool) float64 {
	score := s.Fallback
	switch bracket {
	case detect.BracketDouble:
		score = s.DoubleBrace
	case detect.BracketSingle:
		score = s.SingleBrace
	}
	if dictionaryMatch && s.Dictionary > score {
		score = s.Dictionary
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
