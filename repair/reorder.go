package repair

import (
	"fmt"

	"github.com/notargets/meshfix/geometry"
	"github.com/notargets/meshfix/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReorderCell computes the permutation that brings a cell's vertex list
// into canonical order, from the cell's current ordered coordinates alone.
// The identity permutation means the cell is already correctly ordered.
// A cell whose geometry cannot be fixed by any single uniform permutation
// fails with a diagnosis naming the offending faces.
//
// The permutation is applied as new[j] = old[perm[j]].
func ReorderCell(ct mesh.CellType, pts []r3.Vec, eps float64) ([]int, error) {
	if len(pts) != ct.NumVerts() {
		return nil, fmt.Errorf("%s cell needs %d vertices, got %d",
			ct, ct.NumVerts(), len(pts))
	}

	switch ct {
	case mesh.Tet:
		return reorderTet(pts), nil
	case mesh.Pyramid:
		return reorderPyramid(pts, eps)
	case mesh.Wedge, mesh.Hex, mesh.PentaPrism, mesh.HexaPrism:
		return reorderPrismatic(ct, pts, eps)
	default:
		return nil, fmt.Errorf("cell type %s cannot be reordered", ct)
	}
}

// reorderTet swaps the last two vertices when the signed volume is
// negative. The signed volume alternates under vertex swaps, so one swap
// is always enough.
func reorderTet(pts []r3.Vec) []int {
	if geometry.TetVolume(pts[0], pts[1], pts[2], pts[3]) < 0 {
		return []int{0, 1, 3, 2}
	}
	return identityPerm(4)
}

// reorderPyramid validates the first four points as the convex
// quadrilateral base and reverses its winding when it faces away from the
// apex. The apex stays in place.
func reorderPyramid(pts []r3.Vec, eps float64) ([]int, error) {
	centroid := geometry.Centroid(pts)

	w, err := geometry.ClassifyWinding(pts[:4], centroid, eps)
	if err != nil {
		return nil, fmt.Errorf("the first 4 points of your pyramid do not represent its base: %s", err)
	}
	if w == geometry.Clockwise {
		return []int{0, 3, 2, 1, 4}, nil
	}
	return identityPerm(5), nil
}

// reorderPrismatic handles the two opposing face family. The first half of
// the vertex list is one end face, the second half the other. Both must be
// convex; their windings against the cell centroid are compared to the
// cell type's convention. When both faces violate the convention a uniform
// flip of each half restores it; when the faces disagree with each other
// no uniform permutation can, and the cell is reported degenerate.
func reorderPrismatic(ct mesh.CellType, pts []r3.Vec, eps float64) ([]int, error) {
	k, aligned, _ := ct.EndFaces()
	var (
		centroid   = geometry.Centroid(pts)
		near, far  = pts[:k], pts[k:]
		wNear, err = geometry.ClassifyWinding(near, centroid, eps)
	)
	if err != nil {
		return nil, concaveFaces(ct, near, far)
	}
	wFar, err := geometry.ClassifyWinding(far, centroid, eps)
	if err != nil {
		return nil, concaveFaces(ct, near, far)
	}

	// Required pattern: near face counterclockwise; far face matching for
	// the aligned types, opposing for the wedge.
	wantNear := geometry.CounterClockwise
	wantFar := geometry.CounterClockwise
	if !aligned {
		wantFar = geometry.Clockwise
	}

	switch {
	case wNear == wantNear && wFar == wantFar:
		return identityPerm(2 * k), nil
	case wNear == wantNear.Reverse() && wFar == wantFar.Reverse():
		// Both faces inverted the same way: one uniform flip fixes both.
		return halfFlipPerm(k), nil
	default:
		return nil, degenerateFaces(ct, aligned, near, far)
	}
}

func concaveFaces(ct mesh.CellType, near, far []r3.Vec) error {
	return fmt.Errorf("the points %v and %v cannot represent the %s basis because they created %s faces that are concave",
		near, far, ct.FullName(), ct.PolygonName())
}

func degenerateFaces(ct mesh.CellType, aligned bool, near, far []r3.Vec) error {
	if aligned {
		return fmt.Errorf("the faces %v and %v are oriented in opposite directions but they should be oriented in the same direction: this is a degenerated %s that cannot be reordered",
			near, far, ct.FullName())
	}
	return fmt.Errorf("the faces %v and %v are both oriented in the same direction but they should be oriented in opposite directions: this is a degenerated %s that cannot be reordered",
		near, far, ct.FullName())
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// halfFlipPerm reverses each k sized half of a 2k vertex list about its
// first vertex, flipping both face windings at once. It is its own
// inverse.
func halfFlipPerm(k int) []int {
	perm := make([]int, 2*k)
	for s := 0; s < 2*k; s += k {
		perm[s] = s
		for i := 1; i < k; i++ {
			perm[s+i] = s + k - i
		}
	}
	return perm
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if i != p {
			return false
		}
	}
	return true
}
