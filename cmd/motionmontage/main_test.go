package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionmontage/internal/config"
	"motionmontage/internal/video"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelp(t *testing.T) {
	out, err := execute("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "<source1>[:start_seconds]")
	assert.Contains(t, out, "-h, --height")
}

func TestMalformedCodecFailsBeforeOpening(t *testing.T) {
	dir := t.TempDir()
	// the inputs do not exist: a source error here would mean they were opened
	out, err := execute("-c", "mp4", filepath.Join(dir, "a.mp4"), filepath.Join(dir, "b.mp4"), filepath.Join(dir, "out.mp4"))

	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.NotErrorIs(t, err, video.ErrSourceOpen)
	assert.Contains(t, out, "Usage:")
}

func TestTooFewArguments(t *testing.T) {
	_, err := execute("a.mp4", "b.mp4")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestUnknownFlag(t *testing.T) {
	_, err := execute("--frobnicate", "a.mp4", "b.mp4", "out.mp4")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := execute("-w", "320", "-h", "180", filepath.Join(dir, "a.mp4"), filepath.Join(dir, "b.mp4:4"), filepath.Join(dir, "out.mp4"))
	assert.ErrorIs(t, err, video.ErrSourceOpen)
}
