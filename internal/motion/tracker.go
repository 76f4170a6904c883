package motion

import (
	"errors"
	"fmt"
	"image"

	"motionmontage/internal/frame"
)

// Normalizer is anything that can be reduced to a luma plane for comparison.
type Normalizer interface {
	Normalize(size image.Point) (*frame.Plane, error)
}

// Tracker turns the frames of one source into a smoothed motion score.
//
// Each distance between consecutive planes is folded into a running average
// weighted by a fixed window: avg = (avg*window + distance) / (window + 1).
// The first distance seeds the average directly.
type Tracker struct {
	window      int
	size        image.Point
	previous    *frame.Plane
	average     float64
	initialized bool
}

func NewTracker(window int, size image.Point) (*Tracker, error) {
	if window < 1 {
		return nil, fmt.Errorf("window must be at least 1, got %d", window)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New("normalized size must be positive")
	}

	return &Tracker{window: window, size: size}, nil
}

// Observe feeds the next frame of the source and returns the current score.
// The first call returns 0 as there is nothing to compare against yet.
func (t *Tracker) Observe(n Normalizer) (float64, error) {
	plane, err := n.Normalize(t.size)
	if err != nil {
		return 0, fmt.Errorf("unable to normalize frame: %w", err)
	}

	if t.previous != nil {
		distance := Distance(t.previous, plane)
		if !t.initialized {
			t.average = distance
			t.initialized = true
		} else {
			w := float64(t.window)
			t.average = (t.average*w + distance) / (w + 1)
		}
	}
	t.previous = plane

	return t.average, nil
}
