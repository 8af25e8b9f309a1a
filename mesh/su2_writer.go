package mesh

import (
	"bufio"
	"fmt"
	"os"
)

// WriteSU2 writes the mesh in SU2 native format
func (m *Mesh) WriteSU2(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	fmt.Fprintf(w, "NDIME= 3\n")

	fmt.Fprintf(w, "NELEM= %d\n", m.NumCells)
	for i, conn := range m.Cells {
		fmt.Fprintf(w, "%d", su2TypeFromCellType(m.CellTypes[i]))
		for _, v := range conn {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintf(w, " %d\n", i)
	}

	fmt.Fprintf(w, "NPOIN= %d\n", m.NumPoints)
	for i, p := range m.Points {
		fmt.Fprintf(w, "%.16g %.16g %.16g %d\n", p.X, p.Y, p.Z, i)
	}

	return nil
}
