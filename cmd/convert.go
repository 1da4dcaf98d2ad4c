/*
Copyright © 2026 the meshprep authors

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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oceanmesh/meshprep/meshio"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Triangle .node/.ele pair to an MPAS NetCDF mesh",
	Long: `
Reads the planar triangulation written by the Triangle mesh generator,
derives the dual mesh vertices at the triangle circumcenters and writes the
mesh in the MPAS NetCDF storage convention.`,
	Run: func(cmd *cobra.Command, args []string) {
		node, _ := cmd.Flags().GetString("node")
		ele, _ := cmd.Flags().GetString("ele")
		output, _ := cmd.Flags().GetString("output")
		if node == "" || ele == "" {
			log.Fatal("must supply a node file (-n, --node) and an element file (-e, --ele)")
		}
		log.Debugf("converting %s + %s", node, ele)
		if err := meshio.TriangleToNetCDF(node, ele, output); err != nil {
			log.Fatalf("conversion failed: %s", err)
		}
		log.Infof("wrote %s", output)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("node", "n", "", "input .node file generated by Triangle")
	convertCmd.Flags().StringP("ele", "e", "", "input .ele file generated by Triangle")
	convertCmd.Flags().StringP("output", "o", "grid.nc", "output NetCDF file name")
}
