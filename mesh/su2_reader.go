package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// SU2 element type identifiers (VTK numbering)
const (
	su2Tet        = 10
	su2Voxel      = 11
	su2Hex        = 12
	su2Wedge      = 13
	su2Pyramid    = 14
	su2PentaPrism = 15
	su2HexaPrism  = 16
)

// ReadSU2 reads an SU2 native format file
func ReadSU2(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mesh := NewMesh()
	scanner := bufio.NewScanner(file)

	var ndime int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}

		if strings.HasPrefix(line, "NDIME=") {
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			if ndime != 3 {
				return nil, fmt.Errorf("only 3D meshes are supported, got NDIME=%d", ndime)
			}

		} else if strings.HasPrefix(line, "NELEM=") {
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)

			mesh.Cells = make([][]int, 0, nelem)
			mesh.CellTypes = make([]CellType, 0, nelem)

			for i := 0; i < nelem; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())

				if len(fields) < 2 {
					continue
				}

				su2Type, _ := strconv.Atoi(fields[0])

				ctype, ok := cellTypeFromSU2(su2Type)
				if !ok {
					continue // skip 1D/2D and unknown elements
				}
				numNodes := ctype.NumVerts()

				if len(fields) >= numNodes+1 {
					verts := make([]int, numNodes)
					for j := 0; j < numNodes; j++ {
						verts[j], _ = strconv.Atoi(fields[1+j])
					}

					mesh.Cells = append(mesh.Cells, verts)
					mesh.CellTypes = append(mesh.CellTypes, ctype)
				}
			}

		} else if strings.HasPrefix(line, "NPOIN=") {
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)

			mesh.Points = make([]r3.Vec, npoin)

			for i := 0; i < npoin; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())

				if len(fields) >= ndime {
					var coords [3]float64
					for j := 0; j < ndime; j++ {
						coords[j], _ = strconv.ParseFloat(fields[j], 64)
					}

					ptID := i
					if len(fields) > ndime {
						// Point ID is last field when present
						ptID, _ = strconv.Atoi(fields[len(fields)-1])
					}
					if ptID >= 0 && ptID < npoin {
						mesh.Points[ptID] = r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}
					}
				}
			}
		}
	}

	mesh.NumCells = len(mesh.Cells)
	mesh.NumPoints = len(mesh.Points)

	return mesh, nil
}

// cellTypeFromSU2 maps an SU2 element type id to a cell type. Lower
// dimensional elements report ok false and are skipped by the reader.
func cellTypeFromSU2(su2Type int) (CellType, bool) {
	switch su2Type {
	case su2Tet:
		return Tet, true
	case su2Voxel:
		return Voxel, true
	case su2Hex:
		return Hex, true
	case su2Wedge:
		return Wedge, true
	case su2Pyramid:
		return Pyramid, true
	case su2PentaPrism:
		return PentaPrism, true
	case su2HexaPrism:
		return HexaPrism, true
	default:
		return 0, false
	}
}

// su2TypeFromCellType is the inverse mapping used by the writer.
func su2TypeFromCellType(ct CellType) int {
	switch ct {
	case Tet:
		return su2Tet
	case Voxel:
		return su2Voxel
	case Hex:
		return su2Hex
	case Wedge:
		return su2Wedge
	case Pyramid:
		return su2Pyramid
	case PentaPrism:
		return su2PentaPrism
	default:
		return su2HexaPrism
	}
}
