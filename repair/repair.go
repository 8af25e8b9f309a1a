// Package repair classifies and corrects the vertex ordering of 3D mesh
// cells. A cell whose vertex list violates the canonical ordering
// convention has negative signed volume; the engine computes the
// permutation that restores canonical order and rewrites the cell's
// connectivity in place, leaving the point table untouched. Cells whose
// geometry rules out any single corrective permutation are reported as
// degenerate and left alone.
package repair

import (
	"github.com/notargets/meshfix/mesh"
)

// RepairMesh scans the mesh's cells, reorders those selected by the
// options, and returns the per cell type statistics. The mesh is mutated
// in place: only the index order inside repaired cells changes. Failures
// are local to a cell and never abort the scan.
func RepairMesh(m *mesh.Mesh, opts Options) (*Report, error) {
	selected, err := opts.selection()
	if err != nil {
		return nil, err
	}

	report := NewReport()

	for i := 0; i < m.NumCells; i++ {
		ct := m.CellTypes[i]

		if !ct.Repairable() {
			report.addUnsupported(ct)
			continue
		}
		if !selected[ct] {
			continue
		}

		pts := m.CellPoints(i)

		volume, err := mesh.SignedVolume(ct, pts)
		if err != nil {
			report.addFailure(ct, err.Error())
			continue
		}
		if !opts.needsRepair(volume) {
			continue
		}

		perm, err := ReorderCell(ct, pts, opts.Epsilon)
		if err != nil {
			report.addFailure(ct, err.Error())
			continue
		}
		if isIdentity(perm) {
			report.addUnchanged(ct)
			continue
		}

		m.PermuteCell(i, perm)
		report.addReordered(ct)
	}

	return report, nil
}
