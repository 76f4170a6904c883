package motion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"motionmontage/internal/frame"
)

// Distance returns the L2 norm of the pixel-wise difference between two planes.
// Both planes must exist and share the same dimensions.
func Distance(a, b *frame.Plane) float64 {
	if a == nil || b == nil {
		panic("motion: distance of a missing plane")
	}
	if a.Size() != b.Size() {
		panic(fmt.Sprintf("motion: distance between %v and %v planes", a.Size(), b.Size()))
	}

	return floats.Distance(a.Float64s(), b.Float64s(), 2)
}
