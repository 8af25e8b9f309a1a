package mesh

import (
	"fmt"
	"strings"
)

// CellType represents the supported 3D cell types
type CellType int

const (
	Tet CellType = iota
	Pyramid
	Wedge
	Hex
	PentaPrism
	HexaPrism
	Voxel // recognized on input, not repairable
)

func (c CellType) String() string {
	return [...]string{"Tet", "Pyramid", "Wedge", "Hex", "PentaPrism", "HexaPrism", "Voxel"}[c]
}

// FullName returns the spelled out cell type name used in diagnostics.
func (c CellType) FullName() string {
	return [...]string{"tetrahedron", "pyramid", "wedge", "hexahedron",
		"pentagonal prism", "hexagonal prism", "voxel"}[c]
}

// NumVerts returns the canonical vertex count for the cell type.
func (c CellType) NumVerts() int {
	return [...]int{4, 5, 6, 8, 10, 12, 8}[c]
}

// Repairable reports whether the orientation engine supports the cell type.
func (c CellType) Repairable() bool {
	return c != Voxel
}

// RepairableCellTypes lists every cell type the engine can reorder.
func RepairableCellTypes() []CellType {
	return []CellType{Tet, Pyramid, Wedge, Hex, PentaPrism, HexaPrism}
}

// CellTypeFromName resolves a cell type from its short or spelled out name,
// ignoring case, spaces and underscores.
func CellTypeFromName(name string) (CellType, error) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	switch key {
	case "tet", "tetrahedron":
		return Tet, nil
	case "pyramid":
		return Pyramid, nil
	case "wedge":
		return Wedge, nil
	case "hex", "hexahedron":
		return Hex, nil
	case "pentaprism", "pentagonalprism":
		return PentaPrism, nil
	case "hexaprism", "hexagonalprism":
		return HexaPrism, nil
	case "voxel":
		return Voxel, nil
	default:
		return 0, fmt.Errorf("unknown cell type name: %s", name)
	}
}

// endFaceProfile describes the two opposing end faces of the prism-like
// cell types. The first size vertices of the cell form the near face, the
// last size the far face.
//
// Canonical ordering convention: for the aligned types (Hex, PentaPrism,
// HexaPrism) both end faces wind counterclockwise as seen from the cell
// centroid; the Wedge's faces wind oppositely, near face counterclockwise.
// topOrder gives the list positions of the far face vertices in stacked
// traversal order, i.e. topOrder[i] is the far end of the side edge out of
// near vertex i; the volume decomposition works on this stacked view.
type endFaceProfile struct {
	size     int
	aligned  bool
	topOrder []int
}

var endFaceProfiles = map[CellType]endFaceProfile{
	Wedge:      {size: 3, aligned: false, topOrder: []int{3, 4, 5}},
	Hex:        {size: 4, aligned: true, topOrder: []int{4, 7, 6, 5}},
	PentaPrism: {size: 5, aligned: true, topOrder: []int{5, 9, 8, 7, 6}},
	HexaPrism:  {size: 6, aligned: true, topOrder: []int{6, 11, 10, 9, 8, 7}},
}

// EndFaces returns the end face size and the required relative winding for
// the prism-like cell types; ok is false for the single-face family.
func (c CellType) EndFaces() (size int, aligned bool, ok bool) {
	p, ok := endFaceProfiles[c]
	return p.size, p.aligned, ok
}

// polygonName names the end face polygon of a prism-like cell type.
func polygonName(size int) string {
	switch size {
	case 3:
		return "triangle"
	case 4:
		return "quadrilateral"
	case 5:
		return "pentagon"
	default:
		return "hexagon"
	}
}

// PolygonName names the end face polygon of the prism-like cell types
// ("triangle", "quadrilateral", "pentagon", "hexagon").
func (c CellType) PolygonName() string {
	p, ok := endFaceProfiles[c]
	if !ok {
		return ""
	}
	return polygonName(p.size)
}
