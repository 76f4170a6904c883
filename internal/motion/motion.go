package motion

import (
	"time"

	uuid "github.com/gofrs/uuid/v5"
)

// Switch records a tick where the selected source changed.
type Switch struct {
	UUID      string        `json:"uuid"`
	Tick      int           `json:"tick"`
	From      SourceID      `json:"from"`
	To        SourceID      `json:"to"`
	Timestamp time.Duration `json:"timestamp"`
	ScoreA    float64       `json:"score_a"`
	ScoreB    float64       `json:"score_b"`
}

// Transitions remembers the previous selection to detect switches.
type Transitions struct {
	first    SourceID
	previous SourceID
	started  bool
}

// Observe records the selection for a tick. The first tick only sets the
// baseline; afterwards a Switch is returned whenever the selection changes.
func (tr *Transitions) Observe(tick int, chosen SourceID, timestamp time.Duration, scoreA, scoreB float64) (Switch, bool) {
	if !tr.started {
		tr.started = true
		tr.first = chosen
		tr.previous = chosen
		return Switch{}, false
	}
	if chosen == tr.previous {
		return Switch{}, false
	}

	sw := Switch{
		UUID:      uuid.Must(uuid.NewV4()).String(),
		Tick:      tick,
		From:      tr.previous,
		To:        chosen,
		Timestamp: timestamp,
		ScoreA:    scoreA,
		ScoreB:    scoreB,
	}
	tr.previous = chosen

	return sw, true
}

// Initial returns the selection of the first tick.
func (tr *Transitions) Initial() (SourceID, bool) {
	return tr.first, tr.started
}
