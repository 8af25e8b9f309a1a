/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/notargets/meshfix/mesh"
	"github.com/notargets/meshfix/repair"

	"github.com/spf13/cobra"
)

type RepairModel struct {
	MeshFile    string
	OptionsFile string
	OutFile     string
	Profile     bool
}

// RepairCmd represents the repair command
var RepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair the cell vertex ordering of a mesh file",
	Long:  `Repair the cell vertex ordering of a mesh file`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		rm := &RepairModel{}
		if rm.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if rm.OptionsFile, err = cmd.Flags().GetString("optionsFile"); err != nil {
			panic(err)
		}
		rm.OutFile, _ = cmd.Flags().GetString("outFile")
		rm.Profile, _ = cmd.Flags().GetBool("profile")
		opts := processInput(rm)
		if policy, _ := cmd.Flags().GetString("policy"); policy != "" {
			opts.Policy = repair.Policy(policy)
		}
		if types, _ := cmd.Flags().GetStringSlice("types"); len(types) != 0 {
			opts.CellTypes = types
		}
		if eps, _ := cmd.Flags().GetFloat64("epsilon"); eps != 0 {
			opts.Epsilon = eps
		}
		RunRepair(rm, opts)
	},
}

func init() {
	rootCmd.AddCommand(RepairCmd)
	RepairCmd.Flags().StringP("meshFile", "F", "", "mesh file to repair, in .su2 format")
	RepairCmd.Flags().StringP("optionsFile", "I", "", "repair options file in yaml format")
	RepairCmd.Flags().StringP("outFile", "o", "", "output file for the repaired mesh; the input mesh is left untouched on disk when omitted")
	RepairCmd.Flags().String("policy", "", "which cells to repair: negative | all")
	RepairCmd.Flags().StringSlice("types", nil, "cell types to consider, e.g. tet,hex,wedge")
	RepairCmd.Flags().Float64("epsilon", 0, "collinearity tolerance for the face convexity tests")
	RepairCmd.Flags().Bool("profile", false, "write a CPU profile of the repair run")
}

func processInput(rm *RepairModel) (opts repair.Options) {
	var (
		willExit bool
	)
	opts = repair.DefaultOptions()
	if len(rm.MeshFile) == 0 {
		err := fmt.Errorf("must supply a mesh file (-F, --meshFile) in .su2 format")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(rm.OptionsFile) != 0 {
		data, err := os.ReadFile(rm.OptionsFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
CellTypes: [tet, pyramid, wedge, hex, pentaprism, hexaprism]
Policy: negative
Epsilon: 1.e-12
########################################
`
			fmt.Printf("example options file:%s", exampleFile)
			willExit = true
		} else if err = opts.Parse(data); err != nil {
			fmt.Printf("error parsing options file: %s\n", err.Error())
			willExit = true
		}
	}
	if willExit {
		os.Exit(1)
	}
	return
}

func RunRepair(rm *RepairModel, opts repair.Options) {
	if rm.Profile {
		defer profile.Start().Stop()
	}

	m, err := mesh.ReadMeshFile(rm.MeshFile)
	if err != nil {
		fmt.Printf("error reading mesh file %s: %s\n", rm.MeshFile, err.Error())
		os.Exit(1)
	}
	m.PrintStatistics()
	opts.Print()

	report, err := repair.RepairMesh(m, opts)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	report.Print()

	if len(rm.OutFile) != 0 {
		if err = m.WriteSU2(rm.OutFile); err != nil {
			fmt.Printf("error writing mesh file %s: %s\n", rm.OutFile, err.Error())
			os.Exit(1)
		}
		fmt.Printf("repaired mesh written to %s\n", rm.OutFile)
	}
}
