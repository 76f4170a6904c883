package video

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"motionmontage/internal/frame"

	"gocv.io/x/gocv"
)

var ErrSinkOpen = errors.New("unable to open video output")

var labelColor = color.RGBA{R: 250, G: 200, B: 200}

// Annotate draws label in the top-left corner of img.
func Annotate(img *gocv.Mat, label string) {
	gocv.PutText(img, label, image.Pt(30, 30), gocv.FontHersheyComplexSmall, 0.8, labelColor, 1)
}

// Writer encodes frames into an output file at a fixed size.
type Writer struct {
	writer  *gocv.VideoWriter
	size    image.Point
	preview *Preview
}

func OpenWriter(videoPath string, codec string, fps float64, size image.Point) (*Writer, error) {
	writer, err := gocv.VideoWriterFile(videoPath, codec, fps, size.X, size.Y, true)
	if err != nil {
		return nil, fmt.Errorf("%w [%s]: %v", ErrSinkOpen, videoPath, err)
	}
	if !writer.IsOpened() {
		writer.Close()
		return nil, fmt.Errorf("%w [%s]", ErrSinkOpen, videoPath)
	}
	return &Writer{writer: writer, size: size}, nil
}

// Mirror also shows every written frame in the preview window.
func (w *Writer) Mirror(p *Preview) {
	w.preview = p
}

// Write resizes f to the output size, draws label on it and encodes it.
func (w *Writer) Write(f *frame.Frame, label string) error {
	out, err := f.Resize(w.size)
	if err != nil {
		return err
	}
	defer out.Close()

	Annotate(out.Mat(), label)
	if err := w.writer.Write(*out.Mat()); err != nil {
		return fmt.Errorf("unable to write frame %d: %v", f.FrameIndex(), err)
	}

	if w.preview != nil {
		w.preview.Show(out.Mat())
	}
	return nil
}

func (w *Writer) Close() {
	w.writer.Close()
}
