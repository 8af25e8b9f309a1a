package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Winding is the traversal direction of a polygon loop as seen from a
// reference point off the polygon's plane.
type Winding int

const (
	CounterClockwise Winding = iota
	Clockwise
)

func (w Winding) String() string {
	return [...]string{"CounterClockwise", "Clockwise"}[w]
}

// Reverse returns the opposite winding.
func (w Winding) Reverse() Winding {
	if w == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

// DefaultTolerance is the relative cutoff below which a corner's cross
// product is treated as collinear rather than as a turn. Callers that need
// a different cutoff pass their own tolerance to ClassifyWinding.
const DefaultTolerance = 1.e-12

// Centroid returns the arithmetic mean of the points.
func Centroid(pts []r3.Vec) (c r3.Vec) {
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1./float64(len(pts)), c)
}

// LoopNormal returns the Newell summed normal of an ordered point loop.
// The result follows the right hand rule along the traversal and is not
// normalized.
func LoopNormal(loop []r3.Vec) (n r3.Vec) {
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return
}

// ClassifyWinding determines the winding of an ordered loop of 3 or more
// points as seen against the reference point ref. Each consecutive vertex
// triple must turn the same way around the loop normal; a triple turning
// against the rest makes the loop concave and classification fails with the
// offending points in the error. Triples whose cross product is below tol
// (relative to the incident edge lengths) are skipped as collinear; tol <= 0
// selects DefaultTolerance.
//
// Only in-plane cross products and the external reference point enter the
// decision, so the result is invariant under rigid rotation of the inputs.
func ClassifyWinding(loop []r3.Vec, ref r3.Vec, tol float64) (Winding, error) {
	if len(loop) < 3 {
		return 0, fmt.Errorf("winding needs at least 3 points, got %d", len(loop))
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	n := LoopNormal(loop)

	// Self crossing loops can sum to a zero Newell normal; borrow the
	// projection axis from the first turning corner so the convexity scan
	// still runs.
	axis := n
	if r3.Norm(axis) == 0 {
		for i := range loop {
			e1, e2 := cornerEdges(loop, i)
			c := r3.Cross(e1, e2)
			if r3.Norm(c) > tol*r3.Norm(e1)*r3.Norm(e2) {
				axis = c
				break
			}
		}
		if r3.Norm(axis) == 0 {
			return 0, fmt.Errorf("the points %v are collinear and do not form a polygon", loop)
		}
	}
	axis = r3.Unit(axis)

	// Every corner must turn the same way around the axis.
	sign := 0.
	for i := range loop {
		e1, e2 := cornerEdges(loop, i)
		turn := r3.Dot(r3.Cross(e1, e2), axis)
		if math.Abs(turn) <= tol*r3.Norm(e1)*r3.Norm(e2) {
			continue // collinear corner
		}
		if sign == 0 {
			sign = turn
		} else if sign*turn < 0 {
			p0, p1, p2 := loop[i], loop[(i+1)%len(loop)], loop[(i+2)%len(loop)]
			return 0, fmt.Errorf("the polygon %v is not convex: the points %v, %v, %v turn against the loop",
				loop, p0, p1, p2)
		}
	}
	if r3.Norm(n) == 0 {
		// Convex loops enclose area; only a degenerate loop gets here.
		return 0, fmt.Errorf("the points %v enclose no area and do not form a polygon", loop)
	}

	d := r3.Sub(ref, Centroid(loop))
	if r3.Dot(n, d) > 0 {
		return CounterClockwise, nil
	}
	return Clockwise, nil
}

func cornerEdges(loop []r3.Vec, i int) (e1, e2 r3.Vec) {
	var (
		p0 = loop[i]
		p1 = loop[(i+1)%len(loop)]
		p2 = loop[(i+2)%len(loop)]
	)
	return r3.Sub(p1, p0), r3.Sub(p2, p1)
}
