package mesh

import (
	"fmt"

	"github.com/notargets/meshfix/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// SignedVolume computes the signed volume of a cell from its ordered
// coordinates. Canonically ordered cells yield positive volume; a cell
// wound against the convention yields the negated volume. Pure function
// of the coordinates and the cell type.
func SignedVolume(ct CellType, pts []r3.Vec) (float64, error) {
	if len(pts) != ct.NumVerts() {
		return 0, fmt.Errorf("%s cell needs %d vertices, got %d",
			ct, ct.NumVerts(), len(pts))
	}

	switch ct {
	case Tet:
		return geometry.TetVolume(pts[0], pts[1], pts[2], pts[3]), nil
	case Pyramid:
		// Quadrilateral base split into two triangles, each forming a
		// tetrahedron with the apex.
		apex := pts[4]
		return geometry.TetVolume(pts[0], pts[1], pts[2], apex) +
			geometry.TetVolume(pts[0], pts[2], pts[3], apex), nil
	case Wedge, Hex, PentaPrism, HexaPrism:
		return prismVolume(ct, pts), nil
	default:
		return 0, fmt.Errorf("no volume formula for cell type %s", ct)
	}
}

// prismVolume decomposes a prism-like cell into a fan of stacked wedges
// anchored at the first near face vertex, three tetrahedra per wedge.
func prismVolume(ct CellType, pts []r3.Vec) (vol float64) {
	p := endFaceProfiles[ct]

	top := make([]r3.Vec, p.size)
	for i, j := range p.topOrder {
		top[i] = pts[j]
	}

	for i := 1; i < p.size-1; i++ {
		vol += geometry.WedgeVolume(
			pts[0], pts[i], pts[i+1],
			top[0], top[i], top[i+1])
	}
	return
}
