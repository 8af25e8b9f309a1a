package repair

import (
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/notargets/meshfix/mesh"
)

// Policy selects which signed volume cells are targeted for repair
type Policy string

const (
	// RepairNegative repairs only cells whose signed volume is negative
	RepairNegative Policy = "negative"
	// RepairAll runs every selected cell through its reorderer regardless
	// of volume sign, surfacing degenerate and already correct cells in
	// the report
	RepairAll Policy = "all"
)

// Options configures a repair invocation
type Options struct {
	CellTypes []string `yaml:"CellTypes"` // cell type names to consider; empty selects all repairable types
	Policy    Policy   `yaml:"Policy"`
	Epsilon   float64  `yaml:"Epsilon"` // collinearity cutoff for the convexity tests; 0 selects the package default
}

// DefaultOptions selects every repairable cell type under the negative
// volume policy.
func DefaultOptions() Options {
	return Options{Policy: RepairNegative}
}

// Parse fills the options from yaml data
func (o *Options) Parse(data []byte) error {
	return yaml.Unmarshal(data, o)
}

// Print echoes the effective options
func (o Options) Print() {
	types := o.CellTypes
	if len(types) == 0 {
		types = []string{"all"}
	}
	fmt.Printf("%v\t\t= CellTypes\n", types)
	fmt.Printf("[%s]\t= Policy\n", o.Policy)
	fmt.Printf("%8.3g\t= Epsilon\n", o.Epsilon)
}

// selection resolves the cell type name filter into a set.
func (o Options) selection() (map[mesh.CellType]bool, error) {
	sel := make(map[mesh.CellType]bool)
	if len(o.CellTypes) == 0 {
		for _, ct := range mesh.RepairableCellTypes() {
			sel[ct] = true
		}
		return sel, nil
	}
	for _, name := range o.CellTypes {
		ct, err := mesh.CellTypeFromName(name)
		if err != nil {
			return nil, err
		}
		if !ct.Repairable() {
			return nil, fmt.Errorf("cell type %s cannot be repaired", ct)
		}
		sel[ct] = true
	}
	return sel, nil
}

// needsRepair decides from a cell's signed volume whether the reorderer
// should run. Zero volume cells are already degenerate and are never
// repairable under either policy.
func (o Options) needsRepair(volume float64) bool {
	switch o.Policy {
	case RepairAll:
		return volume != 0
	default:
		return volume < 0
	}
}
