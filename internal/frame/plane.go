package frame

import (
	"errors"
	"fmt"
	"image"
)

// NormalizedSize is the resolution frames are reduced to before being compared.
var NormalizedSize = image.Pt(400, 200)

// Plane is a single-channel intensity grid, row-major, one byte per pixel.
type Plane struct {
	width  int
	height int
	pix    []uint8
}

func NewPlane(width, height int, pix []uint8) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("Plane size must be positive")
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("Plane expects %d pixels, got %d", width*height, len(pix))
	}

	return &Plane{width: width, height: height, pix: pix}, nil
}

// UniformPlane returns a plane where every pixel has the value v.
func UniformPlane(width, height int, v uint8) *Plane {
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = v
	}

	return &Plane{width: width, height: height, pix: pix}
}

func (p *Plane) Width() int {
	return p.width
}

func (p *Plane) Height() int {
	return p.height
}

func (p *Plane) Size() image.Point {
	return image.Pt(p.width, p.height)
}

func (p *Plane) Pix() []uint8 {
	return p.pix
}

// Float64s returns the pixels widened to float64.
func (p *Plane) Float64s() []float64 {
	out := make([]float64, len(p.pix))
	for i, v := range p.pix {
		out[i] = float64(v)
	}

	return out
}
