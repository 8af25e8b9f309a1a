package mesh

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh represents an unstructured mesh: a point table plus cells that
// reference points by index. Repair operations permute the index order
// inside a cell's vertex list and never touch the point table.
type Mesh struct {
	// Geometry
	Points []r3.Vec // Point coordinates [npoints]

	// Cell data
	Cells     [][]int    // Cell to point connectivity [ncells][nverts_per_cell]
	CellTypes []CellType // Cell type for each cell

	// Mesh statistics
	NumCells  int
	NumPoints int
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{}
}

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".su2":
		return ReadSU2(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// AddPoint appends a point to the point table and returns its index.
func (m *Mesh) AddPoint(p r3.Vec) int {
	m.Points = append(m.Points, p)
	m.NumPoints = len(m.Points)
	return m.NumPoints - 1
}

// AddCell appends a cell. The vertex count must match the cell type's
// canonical count and every index must address the point table.
func (m *Mesh) AddCell(ct CellType, verts []int) error {
	if len(verts) != ct.NumVerts() {
		return fmt.Errorf("%s cell needs %d vertices, got %d",
			ct, ct.NumVerts(), len(verts))
	}
	for _, v := range verts {
		if v < 0 || v >= len(m.Points) {
			return fmt.Errorf("cell vertex index %d outside point table of size %d",
				v, len(m.Points))
		}
	}
	m.Cells = append(m.Cells, verts)
	m.CellTypes = append(m.CellTypes, ct)
	m.NumCells = len(m.Cells)
	return nil
}

// CellPoints gathers the ordered coordinates of cell i.
func (m *Mesh) CellPoints(i int) []r3.Vec {
	conn := m.Cells[i]
	pts := make([]r3.Vec, len(conn))
	for j, v := range conn {
		pts[j] = m.Points[v]
	}
	return pts
}

// PermuteCell rewrites the connectivity of cell i so that the new position
// j holds the old entry at perm[j].
func (m *Mesh) PermuteCell(i int, perm []int) {
	conn := m.Cells[i]
	old := make([]int, len(conn))
	copy(old, conn)
	for j, p := range perm {
		conn[j] = old[p]
	}
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Points: %d\n", m.NumPoints)
	fmt.Printf("  Cells: %d\n", m.NumCells)

	typeCounts := make(map[CellType]int)
	for _, t := range m.CellTypes {
		typeCounts[t]++
	}

	fmt.Printf("  Cell types:\n")
	for _, t := range []CellType{Tet, Pyramid, Wedge, Hex, PentaPrism, HexaPrism, Voxel} {
		if count := typeCounts[t]; count > 0 {
			fmt.Printf("    %s: %d\n", t, count)
		}
	}
}
