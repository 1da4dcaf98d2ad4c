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
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/oceanmesh/meshprep/cellwidth"
	"github.com/oceanmesh/meshprep/meshio"
)

// BasinParams selects a Rossby radius profile for one ocean basin.
type BasinParams struct {
	CellWidthEq   float64 `yaml:"CellWidthEq"`
	CellWidthPole float64 `yaml:"CellWidthPole"`
}

// CellWidthParams is the YAML parameter set for the cellwidth command.
type CellWidthParams struct {
	Title              string             `yaml:"Title"`
	Profile            string             `yaml:"Profile"` // EC, RRS, Merged or AtlanticPacific
	DLat               float64            `yaml:"DLat"`
	DLon               float64            `yaml:"DLon"`
	CellWidthEq        float64            `yaml:"CellWidthEq"`
	CellWidthPole      float64            `yaml:"CellWidthPole"`
	EC                 cellwidth.ECParams `yaml:"EC"`
	LatTransition      float64            `yaml:"LatTransition"`
	LatWidthTransition float64            `yaml:"LatWidthTransition"`
	Atlantic           BasinParams        `yaml:"Atlantic"`
	Pacific            BasinParams        `yaml:"Pacific"`
}

// DefaultCellWidthParams returns the EC60to30 profile on a one degree
// grid, with RRS18to6 scaling for the profiles that need it.
func DefaultCellWidthParams() CellWidthParams {
	return CellWidthParams{
		Title:              "EC60to30",
		Profile:            "EC",
		DLat:               1.,
		DLon:               1.,
		CellWidthEq:        18.,
		CellWidthPole:      6.,
		EC:                 cellwidth.DefaultECParams(),
		LatTransition:      0.,
		LatWidthTransition: 5.,
		Atlantic:           BasinParams{CellWidthEq: 30., CellWidthPole: 20.},
		Pacific:            BasinParams{CellWidthEq: 60., CellWidthPole: 35.},
	}
}

func (p *CellWidthParams) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

func (p *CellWidthParams) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("[%s]\t\t\t= Profile\n", p.Profile)
	fmt.Printf("%8.5f\t\t= DLat\n", p.DLat)
	fmt.Printf("%8.5f\t\t= DLon\n", p.DLon)
}

// BuildField evaluates the selected profile on the parameter grid.
func (p *CellWidthParams) BuildField() (lat, lon []float64, grid *mat.Dense, err error) {
	lat, lon = cellwidth.LatLonGrid(p.DLat, p.DLon)
	switch p.Profile {
	case "EC":
		grid = expandVsLat(lat, lon, cellwidth.ECCellWidthVsLat(lat, p.EC))
	case "RRS":
		grid = expandVsLat(lat, lon, cellwidth.RRSCellWidthVsLat(lat, p.CellWidthEq, p.CellWidthPole))
	case "Merged":
		south := cellwidth.RRSCellWidthVsLat(lat, p.CellWidthEq, p.CellWidthPole)
		north := cellwidth.ECCellWidthVsLat(lat, p.EC)
		grid = expandVsLat(lat, lon, cellwidth.MergeCellWidthVsLat(
			lat, south, north, p.LatTransition, p.LatWidthTransition))
	case "AtlanticPacific":
		atlantic := cellwidth.RRSCellWidthVsLat(lat, p.Atlantic.CellWidthEq, p.Atlantic.CellWidthPole)
		pacific := cellwidth.RRSCellWidthVsLat(lat, p.Pacific.CellWidthEq, p.Pacific.CellWidthPole)
		grid = cellwidth.AtlanticPacificGrid(lat, lon, atlantic, pacific)
	default:
		return nil, nil, nil, fmt.Errorf("unknown profile %q: want EC, RRS, Merged or AtlanticPacific", p.Profile)
	}
	return lat, lon, grid, nil
}

// expandVsLat spreads a latitude-only profile across all longitudes.
func expandVsLat(lat, lon, widthVsLat []float64) (grid *mat.Dense) {
	grid = mat.NewDense(len(lat), len(lon), nil)
	for j := range lat {
		for i := range lon {
			grid.Set(j, i, widthVsLat[j])
		}
	}
	return
}

// cellWidthCmd represents the cellwidth command
var cellWidthCmd = &cobra.Command{
	Use:   "cellwidth",
	Short: "Build a cell width guidance field on a lat/lon grid",
	Long: `
Evaluates a mesh resolution profile on a regular latitude/longitude grid
and writes it as a cellWidthVsLatLon NetCDF file, the hand-off convention
for the external mesh generator.`,
	Run: func(cmd *cobra.Command, args []string) {
		paramsFile, _ := cmd.Flags().GetString("params")
		output, _ := cmd.Flags().GetString("output")
		p := DefaultCellWidthParams()
		if paramsFile != "" {
			data, err := os.ReadFile(paramsFile)
			if err != nil {
				log.Fatalf("reading parameters: %s", err)
			}
			if err = p.Parse(data); err != nil {
				log.Fatalf("parsing parameters: %s", err)
			}
		}
		p.Print()
		lat, lon, grid, err := p.BuildField()
		if err != nil {
			log.Fatal(err)
		}
		if err := meshio.WriteCellWidthField(output, lat, lon, grid); err != nil {
			log.Fatalf("writing cell width field: %s", err)
		}
		log.Infof("wrote %s (%d x %d)", output, len(lat), len(lon))
	},
}

func init() {
	rootCmd.AddCommand(cellWidthCmd)
	cellWidthCmd.Flags().StringP("params", "p", "", "YAML parameter file; defaults are used when omitted")
	cellWidthCmd.Flags().StringP("output", "o", "cellWidthVsLatLon.nc", "output NetCDF file name")
}
