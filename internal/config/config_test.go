package config

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		arg  string
		want Source
	}{
		{"game-left.mp4", Source{Path: "game-left.mp4"}},
		{"game-left.mp4:12", Source{Path: "game-left.mp4", Start: 12}},
		{"game-left.mp4:2.5", Source{Path: "game-left.mp4", Start: 2.5}},
		{"/videos/a:b/cam.avi", Source{Path: "/videos/a:b/cam.avi"}},
		{"/videos/a:b/cam.avi:3", Source{Path: "/videos/a:b/cam.avi", Start: 3}},
		{"rtsp://host:554/cam", Source{Path: "rtsp://host:554/cam"}},
		{"cam.mp4:", Source{Path: "cam.mp4:"}},
		{"cam.mp4:NaN", Source{Path: "cam.mp4:NaN"}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseSource(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSourceErrors(t *testing.T) {
	_, err := ParseSource("")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = ParseSource("cam.mp4:-4")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewDefaults(t *testing.T) {
	cfg, err := New([]string{"a.mp4", "b.mp4:30", "out.mp4"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, Source{Path: "a.mp4"}, cfg.Sources[0])
	assert.Equal(t, Source{Path: "b.mp4", Start: 30}, cfg.Sources[1])
	assert.Equal(t, "out.mp4", cfg.Output)
	assert.Equal(t, image.Pt(400, 200), cfg.Size)
	assert.Equal(t, "mp4v", cfg.Codec)
	assert.Equal(t, 10, cfg.Window)
	assert.False(t, cfg.Verbose)
}

func TestNewRejects(t *testing.T) {
	args := []string{"a.mp4", "b.mp4", "out.mp4"}

	tests := []struct {
		name string
		args []string
		opts func(*Options)
	}{
		{"too few arguments", args[:2], nil},
		{"too many arguments", append(args, "extra"), nil},
		{"short codec", args, func(o *Options) { o.Codec = "mp4" }},
		{"long codec", args, func(o *Options) { o.Codec = "mpeg4" }},
		{"empty codec", args, func(o *Options) { o.Codec = "" }},
		{"zero width", args, func(o *Options) { o.Width = 0 }},
		{"negative height", args, func(o *Options) { o.Height = -1 }},
		{"zero window", args, func(o *Options) { o.Window = 0 }},
		{"empty output", []string{"a.mp4", "b.mp4", ""}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			_, err := New(tt.args, opts)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "a.mp4", Source{Path: "a.mp4"}.String())
	assert.Equal(t, "a.mp4:1.5", Source{Path: "a.mp4", Start: 1.5}.String())
}
