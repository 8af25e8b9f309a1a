package mesh

import "gonum.org/v1/gonum/spatial/r3"

// TestCells provides a collection of reference cells, one per repairable
// cell type, that can be shared across packages' tests. Each cell is in
// canonical vertex order and carries its exact reference volume.
type TestCells struct {
	Cells map[CellType]TestCell
}

// TestCell is a single reference cell with canonical point ordering
type TestCell struct {
	Type   CellType
	Points []r3.Vec
	Volume float64 // signed volume of the canonical ordering
}

// GetStandardTestCells returns the standard reference cells:
// unit tetrahedron (1/6), unit square pyramid of height 1 (1/3), unit
// wedge (1/2), unit cube hexahedron (1), pentagonal prism (1.25) and
// hexagonal prism (1.5).
func GetStandardTestCells() *TestCells {
	tc := &TestCells{Cells: make(map[CellType]TestCell)}

	tc.Cells[Tet] = TestCell{
		Type: Tet,
		Points: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Volume: 1. / 6.,
	}

	tc.Cells[Pyramid] = TestCell{
		Type: Pyramid,
		Points: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0.5, Y: 0.5, Z: 1},
		},
		Volume: 1. / 3.,
	}

	tc.Cells[Wedge] = TestCell{
		Type: Wedge,
		Points: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 1, Y: 0, Z: 1},
			{X: 0, Y: 1, Z: 1},
		},
		Volume: 0.5,
	}

	// Unit cube: bottom square counterclockwise seen from the centroid,
	// top square likewise (listed against the stacking direction).
	tc.Cells[Hex] = TestCell{
		Type: Hex,
		Points: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: 0, Z: 1},
		},
		Volume: 1.0,
	}

	// Convex pentagon of area 1.25, extruded to height 1.
	tc.Cells[PentaPrism] = TestCell{
		Type: PentaPrism,
		Points: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0.5, Y: 1.5, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 1, Z: 1},
			{X: 0.5, Y: 1.5, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: 0, Z: 1},
		},
		Volume: 1.25,
	}

	// Convex hexagon of area 1.5, extruded to height 1.
	tc.Cells[HexaPrism] = TestCell{
		Type: HexaPrism,
		Points: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1.5, Y: 0.5, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: -0.5, Y: 0.5, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: -0.5, Y: 0.5, Z: 1},
			{X: 0, Y: 1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: 1.5, Y: 0.5, Z: 1},
			{X: 1, Y: 0, Z: 1},
		},
		Volume: 1.5,
	}

	return tc
}

// InvalidPermutation returns the documented wrong-ordering permutation for
// a cell type: swapping the last two vertices for the tetrahedron,
// reversing the base for the pyramid, and reversing both end faces about
// their first vertex for the prism family. Applying it to a canonical cell
// negates the signed volume; applying it twice restores the original order.
func InvalidPermutation(ct CellType) []int {
	switch ct {
	case Tet:
		return []int{0, 1, 3, 2}
	case Pyramid:
		return []int{0, 3, 2, 1, 4}
	case Wedge, Hex, PentaPrism, HexaPrism:
		p := endFaceProfiles[ct]
		perm := make([]int, 2*p.size)
		for s := 0; s < 2*p.size; s += p.size {
			perm[s] = s
			for i := 1; i < p.size; i++ {
				perm[s+i] = s + p.size - i
			}
		}
		return perm
	default:
		return nil
	}
}

// TwistedEndFaces returns, for the prism family, a permutation that
// reverses only the far end face about its first vertex. The result is a
// cell whose end faces disagree in winding; no uniform flip can repair it.
func TwistedEndFaces(ct CellType) []int {
	p, ok := endFaceProfiles[ct]
	if !ok {
		return nil
	}
	perm := make([]int, 2*p.size)
	for i := 0; i < p.size; i++ {
		perm[i] = i
	}
	perm[p.size] = p.size
	for i := 1; i < p.size; i++ {
		perm[p.size+i] = 2*p.size - i
	}
	return perm
}

// PermutePoints applies a permutation to a point list: position j of the
// result holds pts[perm[j]].
func PermutePoints(pts []r3.Vec, perm []int) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for j, p := range perm {
		out[j] = pts[p]
	}
	return out
}

// BuildSingleCellMesh wraps one cell of the given type into a mesh.
func BuildSingleCellMesh(ct CellType, pts []r3.Vec) *Mesh {
	m := NewMesh()
	conn := make([]int, len(pts))
	for i, p := range pts {
		conn[i] = m.AddPoint(p)
	}
	if err := m.AddCell(ct, conn); err != nil {
		panic(err)
	}
	return m
}

// AppendCell adds a cell with its own points to an existing mesh.
func AppendCell(m *Mesh, ct CellType, pts []r3.Vec) {
	conn := make([]int, len(pts))
	for i, p := range pts {
		conn[i] = m.AddPoint(p)
	}
	if err := m.AddCell(ct, conn); err != nil {
		panic(err)
	}
}
