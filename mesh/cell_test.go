package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCellTypeVertexCounts(t *testing.T) {
	expected := map[CellType]int{
		Tet:        4,
		Pyramid:    5,
		Wedge:      6,
		Hex:        8,
		PentaPrism: 10,
		HexaPrism:  12,
		Voxel:      8,
	}
	for ct, n := range expected {
		assert.Equal(t, n, ct.NumVerts(), ct.String())
	}
}

func TestCellTypeFromName(t *testing.T) {
	testCases := []struct {
		name     string
		expected CellType
		wantErr  bool
	}{
		{name: "tet", expected: Tet},
		{name: "Tetrahedron", expected: Tet},
		{name: "pyramid", expected: Pyramid},
		{name: "wedge", expected: Wedge},
		{name: "HEX", expected: Hex},
		{name: "hexahedron", expected: Hex},
		{name: "pentagonal prism", expected: PentaPrism},
		{name: "pentaprism", expected: PentaPrism},
		{name: "hexagonal_prism", expected: HexaPrism},
		{name: "voxel", expected: Voxel},
		{name: "cuboid", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := CellTypeFromName(tc.name)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ct)
		})
	}
}

func TestEndFaces(t *testing.T) {
	size, aligned, ok := Hex.EndFaces()
	require.True(t, ok)
	assert.Equal(t, 4, size)
	assert.True(t, aligned)

	size, aligned, ok = Wedge.EndFaces()
	require.True(t, ok)
	assert.Equal(t, 3, size)
	assert.False(t, aligned)

	_, _, ok = Tet.EndFaces()
	assert.False(t, ok)
	_, _, ok = Pyramid.EndFaces()
	assert.False(t, ok)
}

func TestPolygonNames(t *testing.T) {
	assert.Equal(t, "triangle", Wedge.PolygonName())
	assert.Equal(t, "quadrilateral", Hex.PolygonName())
	assert.Equal(t, "pentagon", PentaPrism.PolygonName())
	assert.Equal(t, "hexagon", HexaPrism.PolygonName())
	assert.Equal(t, "", Tet.PolygonName())
}

func TestRepairable(t *testing.T) {
	for _, ct := range RepairableCellTypes() {
		assert.True(t, ct.Repairable())
	}
	assert.False(t, Voxel.Repairable())
}

func TestAddCellValidation(t *testing.T) {
	m := NewMesh()
	for i := 0; i < 4; i++ {
		m.AddPoint(r3.Vec{X: float64(i)})
	}

	require.Error(t, m.AddCell(Tet, []int{0, 1, 2}), "wrong vertex count")
	require.Error(t, m.AddCell(Tet, []int{0, 1, 2, 9}), "index out of range")
	require.NoError(t, m.AddCell(Tet, []int{0, 1, 2, 3}))
	assert.Equal(t, 1, m.NumCells)
}

func TestPermuteCell(t *testing.T) {
	m := NewMesh()
	for i := 0; i < 4; i++ {
		m.AddPoint(r3.Vec{X: float64(i)})
	}
	require.NoError(t, m.AddCell(Tet, []int{0, 1, 2, 3}))

	m.PermuteCell(0, []int{0, 1, 3, 2})
	assert.Equal(t, []int{0, 1, 3, 2}, m.Cells[0])

	// Applying the swap again restores the original order
	m.PermuteCell(0, []int{0, 1, 3, 2})
	assert.Equal(t, []int{0, 1, 2, 3}, m.Cells[0])
}
