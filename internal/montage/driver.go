// Package montage runs the per-frame loop that builds a single video out of
// two sources, keeping at each tick the frame of the source with more motion.
package montage

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"motionmontage/internal/frame"
	"motionmontage/internal/motion"
)

// Frame is what a source yields for a tick.
type Frame interface {
	motion.Normalizer
	Timestamp() time.Duration
	Close()
}

// Source yields frames until it returns false, after which it is not read again.
type Source[F Frame] interface {
	Read() (F, bool)
}

// Sink receives the selected frame of a tick with its label.
type Sink[F Frame] interface {
	Write(f F, label string) error
}

// Tick summarizes one iteration of the loop.
type Tick struct {
	Number  int
	Chosen  motion.SourceID
	Scores  [2]float64
	Live    [2]bool
	Emitted bool
}

type Options struct {
	// Window is the smoothing window of both trackers.
	Window int
	// Size is the comparison resolution. Defaults to frame.NormalizedSize.
	Size image.Point
	// Stop is polled after every tick; returning true ends the run.
	Stop func() bool
	// OnTick is called after every tick.
	OnTick func(Tick)
	Logger *logrus.Entry
}

type streamState struct {
	more     bool
	read     int
	position time.Duration
}

type input[F Frame] struct {
	id      motion.SourceID
	source  Source[F]
	tracker *motion.Tracker
	state   streamState
}

// read pulls the next frame while the source has more. The first failed read
// marks the source exhausted for the rest of the run.
func (in *input[F]) read() (F, bool) {
	var zero F
	if !in.state.more {
		return zero, false
	}
	f, ok := in.source.Read()
	if !ok {
		in.state.more = false
		return zero, false
	}
	in.state.read++
	in.state.position = f.Timestamp()
	return f, true
}

type Driver[F Frame] struct {
	inputs [2]*input[F]
	sink   Sink[F]
	opts   Options
	log    *logrus.Entry
}

func NewDriver[F Frame](a, b Source[F], sink Sink[F], opts Options) (*Driver[F], error) {
	if a == nil || b == nil || sink == nil {
		return nil, errors.New("montage needs two sources and a sink")
	}
	if opts.Size == (image.Point{}) {
		opts.Size = frame.NormalizedSize
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	d := &Driver[F]{sink: sink, opts: opts, log: opts.Logger}
	for i, src := range [2]Source[F]{a, b} {
		tracker, err := motion.NewTracker(opts.Window, opts.Size)
		if err != nil {
			return nil, err
		}
		d.inputs[i] = &input[F]{
			id:      motion.SourceID(i),
			source:  src,
			tracker: tracker,
			state:   streamState{more: true},
		}
	}
	return d, nil
}

// Label is the text drawn on an emitted frame.
func Label(score float64) string {
	return fmt.Sprintf("Distance: %f", score)
}

// Run loops until both sources are exhausted, ctx is done or Stop reports true.
func (d *Driver[F]) Run(ctx context.Context) (*Report, error) {
	report := NewReport(d.opts.Window)
	var transitions motion.Transitions

	defer func() {
		for i, in := range d.inputs {
			report.FramesRead[i] = in.state.read
		}
		if initial, ok := transitions.Initial(); ok {
			report.Initial = initial.String()
		}
		report.finish()
	}()

	for tick := 1; ; tick++ {
		if ctx.Err() != nil {
			d.log.WithField("tick", tick).Info("montage cancelled")
			report.Cancelled = true
			return report, nil
		}

		var frames [2]F
		var live [2]bool
		for i, in := range d.inputs {
			frames[i], live[i] = in.read()
		}
		if !live[0] && !live[1] {
			d.log.WithField("ticks", report.Ticks).Debug("both sources exhausted")
			return report, nil
		}

		t, err := d.step(tick, frames, live, &transitions, report)
		for i := range frames {
			if live[i] {
				frames[i].Close()
			}
		}
		if err != nil {
			return report, err
		}

		if d.opts.OnTick != nil {
			d.opts.OnTick(t)
		}
		if d.opts.Stop != nil && d.opts.Stop() {
			d.log.WithField("tick", tick).Info("montage stopped")
			report.Cancelled = true
			return report, nil
		}
	}
}

func (d *Driver[F]) step(tick int, frames [2]F, live [2]bool, transitions *motion.Transitions, report *Report) (Tick, error) {
	t := Tick{Number: tick, Live: live}

	for i, in := range d.inputs {
		if !live[i] {
			continue
		}
		score, err := in.tracker.Observe(frames[i])
		if err != nil {
			return t, fmt.Errorf("source %s tick %d: %w", in.id, tick, err)
		}
		t.Scores[i] = score
	}

	t.Chosen = motion.Select(t.Scores[motion.SourceA], t.Scores[motion.SourceB])
	report.Ticks++

	chosen := d.inputs[t.Chosen]
	if sw, ok := transitions.Observe(tick, t.Chosen, chosen.state.position, t.Scores[0], t.Scores[1]); ok {
		report.Switches = append(report.Switches, sw)
		d.log.WithFields(logrus.Fields{
			"tick":      tick,
			"from":      sw.From.String(),
			"to":        sw.To.String(),
			"timestamp": sw.Timestamp.String(),
		}).Info("source switch")
	}

	d.log.WithFields(logrus.Fields{
		"tick":    tick,
		"score_a": t.Scores[0],
		"score_b": t.Scores[1],
		"chosen":  t.Chosen.String(),
	}).Debug("tick")

	if !live[t.Chosen] {
		report.Skipped++
		return t, nil
	}

	if err := d.sink.Write(frames[t.Chosen], Label(t.Scores[t.Chosen])); err != nil {
		return t, err
	}
	t.Emitted = true
	report.Emitted++

	return t, nil
}
