package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func unitSquare(z float64) []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0, Z: z},
		{X: 1, Y: 0, Z: z},
		{X: 1, Y: 1, Z: z},
		{X: 0, Y: 1, Z: z},
	}
}

func reversed(loop []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}

func TestClassifyWindingSquare(t *testing.T) {
	var (
		loop  = unitSquare(0)
		above = r3.Vec{X: 0.5, Y: 0.5, Z: 1}
		below = r3.Vec{X: 0.5, Y: 0.5, Z: -1}
	)

	w, err := ClassifyWinding(loop, above, 0)
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, w)

	w, err = ClassifyWinding(loop, below, 0)
	require.NoError(t, err)
	assert.Equal(t, Clockwise, w)

	// Reversing the loop flips the winding
	w, err = ClassifyWinding(reversed(loop), above, 0)
	require.NoError(t, err)
	assert.Equal(t, Clockwise, w)
}

func TestClassifyWindingTriangle(t *testing.T) {
	loop := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	w, err := ClassifyWinding(loop, r3.Vec{X: 0.3, Y: 0.3, Z: 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, w)
}

func TestClassifyWindingRotationInvariant(t *testing.T) {
	var (
		loop = unitSquare(0)
		ref  = r3.Vec{X: 0.5, Y: 0.5, Z: 1}
		rot  = r3.NewRotation(1.1, r3.Vec{X: 1, Y: -2, Z: 3})
	)

	rLoop := make([]r3.Vec, len(loop))
	for i, p := range loop {
		rLoop[i] = rot.Rotate(p)
	}
	rRef := rot.Rotate(ref)

	w, err := ClassifyWinding(rLoop, rRef, 0)
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, w)

	w, err = ClassifyWinding(reversed(rLoop), rRef, 0)
	require.NoError(t, err)
	assert.Equal(t, Clockwise, w)
}

func TestClassifyWindingConcaveLoop(t *testing.T) {
	// Self crossing loop in the x=0 plane
	loop := []r3.Vec{
		{X: 0, Y: 0.5, Z: 0.33},
		{X: 0, Y: 1.5, Z: 0.67},
		{X: 0, Y: 1.5, Z: 0.33},
		{X: 0, Y: 0.5, Z: 0.67},
	}

	_, err := ClassifyWinding(loop, r3.Vec{X: 1, Y: 1, Z: 1}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not convex")
}

func TestClassifyWindingConcavePolygon(t *testing.T) {
	// Arrowhead quadrilateral with one reflex corner
	loop := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}

	_, err := ClassifyWinding(loop, r3.Vec{X: 0.5, Y: 0.5, Z: 1}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not convex")
}

func TestClassifyWindingCollinearCorner(t *testing.T) {
	// A square with an extra point in the middle of the bottom edge is
	// still a valid convex loop
	loop := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}

	w, err := ClassifyWinding(loop, r3.Vec{X: 0.5, Y: 0.5, Z: 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, w)
}

func TestClassifyWindingDegenerateLoop(t *testing.T) {
	loop := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}

	_, err := ClassifyWinding(loop, r3.Vec{X: 1, Y: 1, Z: 1}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collinear")
}

func TestClassifyWindingTooFewPoints(t *testing.T) {
	loop := unitSquare(0)[:2]
	_, err := ClassifyWinding(loop, r3.Vec{Z: 1}, 0)
	assert.Error(t, err)
}

func TestWindingReverse(t *testing.T) {
	assert.Equal(t, Clockwise, CounterClockwise.Reverse())
	assert.Equal(t, CounterClockwise, Clockwise.Reverse())
}

func TestLoopNormal(t *testing.T) {
	n := LoopNormal(unitSquare(0))
	assert.InDelta(t, 0, n.X, 1.e-14)
	assert.InDelta(t, 0, n.Y, 1.e-14)
	assert.InDelta(t, 2, n.Z, 1.e-14) // twice the loop area
}

func TestCentroid(t *testing.T) {
	c := Centroid(unitSquare(0))
	assert.InDelta(t, 0.5, c.X, 1.e-14)
	assert.InDelta(t, 0.5, c.Y, 1.e-14)
	assert.InDelta(t, 0, c.Z, 1.e-14)
}
