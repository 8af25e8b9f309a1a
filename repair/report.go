package repair

import (
	"fmt"
	"sort"

	"github.com/notargets/meshfix/mesh"
)

// CellTypeReport accumulates per cell type repair outcomes
type CellTypeReport struct {
	Reordered int
	Unchanged int // already correctly ordered
	Failed    int
	// FailedMessages counts cells per distinct failure message
	FailedMessages map[string]int
}

// Report aggregates repair outcomes across a whole mesh. A fresh Report is
// produced per invocation; reports from repeated invocations can be merged.
type Report struct {
	Cells       map[mesh.CellType]*CellTypeReport
	Unsupported map[mesh.CellType]int
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{
		Cells:       make(map[mesh.CellType]*CellTypeReport),
		Unsupported: make(map[mesh.CellType]int),
	}
}

func (r *Report) cellReport(ct mesh.CellType) *CellTypeReport {
	cr, ok := r.Cells[ct]
	if !ok {
		cr = &CellTypeReport{FailedMessages: make(map[string]int)}
		r.Cells[ct] = cr
	}
	return cr
}

func (r *Report) addReordered(ct mesh.CellType) {
	r.cellReport(ct).Reordered++
}

func (r *Report) addUnchanged(ct mesh.CellType) {
	r.cellReport(ct).Unchanged++
}

func (r *Report) addFailure(ct mesh.CellType, msg string) {
	cr := r.cellReport(ct)
	cr.Failed++
	cr.FailedMessages[msg]++
}

func (r *Report) addUnsupported(ct mesh.CellType) {
	r.Unsupported[ct]++
}

// TotalReordered sums reordered cells over all cell types
func (r *Report) TotalReordered() (n int) {
	for _, cr := range r.Cells {
		n += cr.Reordered
	}
	return
}

// TotalFailed sums failed cells over all cell types
func (r *Report) TotalFailed() (n int) {
	for _, cr := range r.Cells {
		n += cr.Failed
	}
	return
}

// Merge folds another report into this one
func (r *Report) Merge(o *Report) {
	for ct, ocr := range o.Cells {
		cr := r.cellReport(ct)
		cr.Reordered += ocr.Reordered
		cr.Unchanged += ocr.Unchanged
		cr.Failed += ocr.Failed
		for msg, n := range ocr.FailedMessages {
			cr.FailedMessages[msg] += n
		}
	}
	for ct, n := range o.Unsupported {
		r.Unsupported[ct] += n
	}
}

// Print prints the repair statistics as a CellType / Number table
func (r *Report) Print() {
	fmt.Printf("Repair Statistics:\n")
	fmt.Printf("  %-12s %-10s %-10s %-10s\n", "CellType", "Reordered", "Unchanged", "Failed")

	for _, ct := range mesh.RepairableCellTypes() {
		cr, ok := r.Cells[ct]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s %-10d %-10d %-10d\n", ct, cr.Reordered, cr.Unchanged, cr.Failed)
	}

	for _, ct := range mesh.RepairableCellTypes() {
		cr, ok := r.Cells[ct]
		if !ok || cr.Failed == 0 {
			continue
		}
		msgs := make([]string, 0, len(cr.FailedMessages))
		for msg := range cr.FailedMessages {
			msgs = append(msgs, msg)
		}
		sort.Strings(msgs)
		fmt.Printf("  %s failures:\n", ct)
		for _, msg := range msgs {
			fmt.Printf("    [%d] %s\n", cr.FailedMessages[msg], msg)
		}
	}

	if len(r.Unsupported) > 0 {
		fmt.Printf("  Unsupported cell types:\n")
		for ct, n := range r.Unsupported {
			fmt.Printf("    %s: %d\n", ct, n)
		}
	}
}
