// Package config builds the immutable settings of a montage run from the
// command line.
package config

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultWidth  = 400
	DefaultHeight = 200
	DefaultCodec  = "mp4v"
	DefaultWindow = 10
)

// Source is an input video and the offset at which reading starts.
type Source struct {
	Path  string
	Start float64
}

func (s Source) String() string {
	if s.Start == 0 {
		return s.Path
	}
	return fmt.Sprintf("%s:%g", s.Path, s.Start)
}

// Options holds the raw flag values before validation.
type Options struct {
	Verbose  bool
	Width    int
	Height   int
	Codec    string
	Window   int
	Preview  bool
	Progress bool
	Report   string
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Codec:  DefaultCodec,
		Window: DefaultWindow,
	}
}

type Config struct {
	Sources  [2]Source
	Output   string
	Size     image.Point
	Codec    string
	Window   int
	Verbose  bool
	Preview  bool
	Progress bool
	Report   string
}

// New validates the positional arguments and options. Errors wrap ErrInvalid.
func New(args []string, opts Options) (Config, error) {
	if len(args) < 3 {
		return Config{}, fmt.Errorf("%w: expected <source1> <source2> <output>, got %d argument(s)", ErrInvalid, len(args))
	}
	if len(args) > 3 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalid, args[3])
	}
	if len(opts.Codec) != 4 {
		return Config{}, fmt.Errorf("%w: codec %q must be exactly 4 characters", ErrInvalid, opts.Codec)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return Config{}, fmt.Errorf("%w: output size %dx%d must be positive", ErrInvalid, opts.Width, opts.Height)
	}
	if opts.Window < 1 {
		return Config{}, fmt.Errorf("%w: window %d must be at least 1", ErrInvalid, opts.Window)
	}

	var cfg Config
	for i := range cfg.Sources {
		src, err := ParseSource(args[i])
		if err != nil {
			return Config{}, err
		}
		cfg.Sources[i] = src
	}
	if args[2] == "" {
		return Config{}, fmt.Errorf("%w: empty output path", ErrInvalid)
	}

	cfg.Output = args[2]
	cfg.Size = image.Pt(opts.Width, opts.Height)
	cfg.Codec = opts.Codec
	cfg.Window = opts.Window
	cfg.Verbose = opts.Verbose
	cfg.Preview = opts.Preview
	cfg.Progress = opts.Progress
	cfg.Report = opts.Report

	return cfg, nil
}

// ParseSource splits "path[:seconds]". The suffix after the last colon is an
// offset only when it is a non-negative number, so paths such as
// "rtsp://host/cam" are left untouched.
func ParseSource(arg string) (Source, error) {
	if arg == "" {
		return Source{}, fmt.Errorf("%w: empty source path", ErrInvalid)
	}

	i := strings.LastIndex(arg, ":")
	if i <= 0 || i == len(arg)-1 {
		return Source{Path: arg}, nil
	}

	start, err := strconv.ParseFloat(arg[i+1:], 64)
	if err != nil || math.IsNaN(start) || math.IsInf(start, 0) {
		return Source{Path: arg}, nil
	}
	if start < 0 {
		return Source{}, fmt.Errorf("%w: negative start offset in %q", ErrInvalid, arg)
	}

	return Source{Path: arg[:i], Start: start}, nil
}
