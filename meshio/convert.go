package meshio

import (
	"github.com/oceanmesh/meshprep/readfiles"
)

// TriangleToNetCDF converts a Triangle .node/.ele file pair into an
// MPAS-convention NetCDF mesh file. On any failure no output file is left
// at outPath.
func TriangleToNetCDF(nodePath, elePath, outPath string) error {
	tri, err := readfiles.ReadTriangulation(nodePath, elePath)
	if err != nil {
		return err
	}
	d, err := FromTriangulation(tri)
	if err != nil {
		return err
	}
	return d.WriteFile(outPath)
}
