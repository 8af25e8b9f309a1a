package geometry

import "gonum.org/v1/gonum/spatial/r3"

// TetVolume returns the signed volume of the tetrahedron (a, b, c, d): the
// scalar triple product of the three edge vectors out of a, divided by 6.
// The sign alternates under any swap of two vertices; it is positive when
// d lies on the side of the plane (a, b, c) that the right hand rule
// normal of (a, b, c) points into.
func TetVolume(a, b, c, d r3.Vec) float64 {
	return r3.Dot(r3.Sub(b, a), r3.Cross(r3.Sub(c, a), r3.Sub(d, a))) / 6.
}

// WedgeVolume returns the signed volume of a stacked wedge: triangle
// (a0, a1, a2) joined to triangle (a3, a4, a5) with side edges a0-a3,
// a1-a4, a2-a5. Decomposed into three tetrahedra spanning the two ends.
func WedgeVolume(a0, a1, a2, a3, a4, a5 r3.Vec) float64 {
	return TetVolume(a0, a1, a2, a3) +
		TetVolume(a1, a2, a3, a4) +
		TetVolume(a2, a3, a4, a5)
}
