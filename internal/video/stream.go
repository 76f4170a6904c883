package video

import (
	"errors"
	"fmt"
	"time"

	"motionmontage/internal/frame"

	"gocv.io/x/gocv"
)

var ErrSourceOpen = errors.New("unable to open video source")

// Metadata describes an opened source as reported by the decoder.
type Metadata struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FourCC     string  `json:"fourcc"`
	FrameCount int     `json:"frame_count"`
	FPS        float64 `json:"fps"`
}

type Stream struct {
	Video      *gocv.VideoCapture
	frameIndex int
}

func OpenStream(videoPath string) (*Stream, error) {
	video, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, fmt.Errorf("%w [%s]: %v", ErrSourceOpen, videoPath, err)
	}
	if !video.IsOpened() {
		video.Close()
		return nil, fmt.Errorf("%w [%s]", ErrSourceOpen, videoPath)
	}
	return &Stream{Video: video}, nil
}

func (s *Stream) Close() {
	s.Video.Close()
}

// Seek moves the playback position to offset seconds from the start.
func (s *Stream) Seek(seconds float64) {
	if seconds <= 0 {
		return
	}
	s.Video.Set(gocv.VideoCapturePosMsec, seconds*1000)
}

// Read decodes the next frame. It returns false once the source is exhausted.
func (s *Stream) Read() (*frame.Frame, bool) {
	mat := gocv.NewMat()
	if ok := s.Video.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, false
	}

	f, err := frame.NewFrame(s.frameIndex, s.Position(), &mat)
	if err != nil {
		mat.Close()
		return nil, false
	}
	s.frameIndex++

	return f, true
}

// Position is the current playback timestamp.
func (s *Stream) Position() time.Duration {
	return time.Duration(s.Video.Get(gocv.VideoCapturePosMsec) * float64(time.Millisecond))
}

func (s *Stream) Fps() float64 {
	return s.Video.Get(gocv.VideoCaptureFPS)
}

func (s *Stream) Metadata() Metadata {
	return Metadata{
		Width:      int(s.Video.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(s.Video.Get(gocv.VideoCaptureFrameHeight)),
		FourCC:     s.Video.CodecString(),
		FrameCount: int(s.Video.Get(gocv.VideoCaptureFrameCount)),
		FPS:        s.Fps(),
	}
}

// Remaining estimates how many frames are left after the current position.
func (s *Stream) Remaining() int {
	total := int(s.Video.Get(gocv.VideoCaptureFrameCount))
	done := int(s.Video.Get(gocv.VideoCapturePosFrames))
	if done > total {
		return 0
	}
	return total - done
}
