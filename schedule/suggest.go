package schedule

import (
	"sort"
	"time"
)

// DefaultTopSuggestions is how many ranked proposals a request returns unless
// the caller asks otherwise.
const DefaultTopSuggestions = 5

// SuggestRequest drives the single-participant path: generate candidates,
// drop the ones that collide, score and rank the rest.
type SuggestRequest struct {
	Constraint   Constraint
	HorizonStart time.Time
	HorizonDays  int
	Generator    GeneratorConfig
	Hints        *PatternHints
	TopK         int // defaults to DefaultTopSuggestions
}

// SuggestSlots returns the top-K scored suggestions for one participant's
// calendar. Fully booked horizons yield an empty list, not an error.
func SuggestSlots(req SuggestRequest, busy []BusyEvent) ([]Suggestion, error) {
	iter, err := GenerateSlots(req.Constraint, req.HorizonStart, req.HorizonDays, req.Generator)
	if err != nil {
		return nil, err
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopSuggestions
	}

	var suggestions []Suggestion
	for {
		slot, ok := iter.Next()
		if !ok {
			break
		}
		conflicts := DetectConflicts(slot, busy, DefaultConflictBuffer)
		if HasOverlap(conflicts) {
			continue
		}
		suggestions = append(suggestions, ScoreSlot(ScoreInput{
			Slot:       slot,
			Constraint: req.Constraint,
			Busy:       busy,
			Hints:      req.Hints,
		}))
	}

	RankSuggestions(suggestions)
	if len(suggestions) > topK {
		suggestions = suggestions[:topK]
	}
	return suggestions, nil
}

// RankSuggestions orders by score descending, earlier start winning ties, so
// ranking stays deterministic no matter how the scores were produced.
func RankSuggestions(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Slot.Start.Before(suggestions[j].Slot.Start)
	})
}
