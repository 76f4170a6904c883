package montage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	uuid "github.com/gofrs/uuid/v5"

	"motionmontage/internal/motion"
)

// Report summarizes a run.
type Report struct {
	UUID       string          `json:"uuid"`
	StartedAt  time.Time       `json:"started_at"`
	Duration   string          `json:"duration"`
	Window     int             `json:"window"`
	Ticks      int             `json:"ticks"`
	Emitted    int             `json:"emitted"`
	Skipped    int             `json:"skipped"`
	FramesRead [2]int          `json:"frames_read"`
	Initial    string          `json:"initial,omitempty"`
	Switches   []motion.Switch `json:"switches"`
	Cancelled  bool            `json:"cancelled"`
}

func NewReport(window int) *Report {
	return &Report{
		UUID:      uuid.Must(uuid.NewV4()).String(),
		StartedAt: time.Now(),
		Window:    window,
		Switches:  []motion.Switch{},
	}
}

func (r *Report) finish() {
	r.Duration = fmt.Sprintf("%.2fs", time.Since(r.StartedAt).Seconds())
}

// WriteFile stores the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}
