package montage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionmontage/internal/motion"
)

func TestReportWriteFile(t *testing.T) {
	r := NewReport(10)
	r.Ticks = 12
	r.Emitted = 11
	r.Skipped = 1
	r.FramesRead = [2]int{12, 9}
	r.Initial = "B"
	r.Switches = append(r.Switches, motion.Switch{
		UUID:      "switch-1",
		Tick:      5,
		From:      motion.SourceB,
		To:        motion.SourceA,
		Timestamp: 160 * time.Millisecond,
		ScoreA:    18.2,
		ScoreB:    2,
	})
	r.finish()

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, r.UUID, got["uuid"])
	assert.Equal(t, 12.0, got["ticks"])
	assert.Equal(t, []any{12.0, 9.0}, got["frames_read"])
	assert.Equal(t, "B", got["initial"])

	switches, ok := got["switches"].([]any)
	require.True(t, ok)
	require.Len(t, switches, 1)
	sw := switches[0].(map[string]any)
	assert.Equal(t, "B", sw["from"])
	assert.Equal(t, "A", sw["to"])
	assert.Equal(t, float64(160*time.Millisecond), sw["timestamp"])
}

func TestNewReportHasDistinctIDs(t *testing.T) {
	a, b := NewReport(10), NewReport(10)
	assert.NotEqual(t, a.UUID, b.UUID)
	assert.NotNil(t, a.Switches)
}

func TestReportWriteFileBadPath(t *testing.T) {
	r := NewReport(10)
	err := r.WriteFile(filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.Error(t, err)
}
