package video

import (
	"image"

	"gocv.io/x/gocv"
)

// Preview is an on-screen window showing the output as it is produced.
type Preview struct {
	window *gocv.Window
}

func NewPreview(title string, size image.Point) *Preview {
	window := gocv.NewWindow(title)
	window.ResizeWindow(size.X, size.Y)

	return &Preview{window: window}
}

func (p *Preview) Show(img *gocv.Mat) {
	p.window.IMShow(*img)
}

// Stopped polls the window for a key press, waiting at most a millisecond.
func (p *Preview) Stopped() bool {
	return p.window.WaitKey(1) >= 0
}

func (p *Preview) Close() {
	p.window.Close()
}
