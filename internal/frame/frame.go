package frame

import (
	"errors"
	"image"
	"time"

	"gocv.io/x/gocv"
)

// Frame is a decoded frame of a source, at its original resolution and colors.
type Frame struct {
	frameIndex int
	timestamp  time.Duration
	mat        *gocv.Mat
}

func NewFrame(frameIndex int, timestamp time.Duration, mat *gocv.Mat) (*Frame, error) {
	if mat.Empty() {
		return nil, errors.New("Frame is empty")
	}

	return &Frame{frameIndex: frameIndex, timestamp: timestamp, mat: mat}, nil
}

func (f *Frame) Mat() *gocv.Mat {
	return f.mat
}

func (f *Frame) FrameIndex() int {
	return f.frameIndex
}

// Timestamp is the playback position of the frame in its source.
func (f *Frame) Timestamp() time.Duration {
	return f.timestamp
}

func (f *Frame) Gray() (*Frame, error) {
	gray := gocv.NewMat()
	if f.mat.Channels() == 1 {
		f.mat.CopyTo(&gray)
	} else {
		gocv.CvtColor(*f.mat, &gray, gocv.ColorBGRToGray)
	}

	return NewFrame(f.frameIndex, f.timestamp, &gray)
}

// Resize returns a copy of the frame scaled to size.
func (f *Frame) Resize(size image.Point) (*Frame, error) {
	resized := gocv.NewMat()
	gocv.Resize(*f.mat, &resized, size, 0, 0, gocv.InterpolationLinear)

	return NewFrame(f.frameIndex, f.timestamp, &resized)
}

// Normalize reduces the frame to a luma plane of the given size.
func (f *Frame) Normalize(size image.Point) (*Plane, error) {
	gray, err := f.Gray()
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	small, err := gray.Resize(size)
	if err != nil {
		return nil, err
	}
	defer small.Close()

	return NewPlane(small.Width(), small.Height(), small.mat.ToBytes())
}

func (f *Frame) Height() int {
	return f.mat.Rows()
}

func (f *Frame) Width() int {
	return f.mat.Cols()
}

func (f *Frame) Close() {
	f.mat.Close()
}
