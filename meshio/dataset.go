/*
Package meshio assembles planar triangulations into the MPAS mesh storage
convention and writes them as NetCDF3 classic files. Triangulation nodes
become primal cell centers and triangle circumcenters become dual mesh
vertices.
*/
package meshio

import (
	"fmt"

	"github.com/oceanmesh/meshprep/geometry2D"
	"github.com/oceanmesh/meshprep/readfiles"
)

// VertexDegree is the number of primal cells meeting at each dual vertex.
const VertexDegree = readfiles.TriVertexDegree

// Dataset holds the MPAS-convention mesh arrays. It is built once from a
// triangulation and not modified afterwards. CellsOnVertex is stored row
// major, nVertices by VertexDegree, with 1-based cell indices matching the
// Triangle file convention.
type Dataset struct {
	XCell, YCell, ZCell       []float64
	XVertex, YVertex, ZVertex []float64
	CellsOnVertex             []int32
	MeshDensity               []float64
	OnASphere                 bool
	SphereRadius              float64
}

// NCells returns the primal cell count.
func (d *Dataset) NCells() int { return len(d.XCell) }

// NVertices returns the dual vertex count.
func (d *Dataset) NVertices() int { return len(d.XVertex) }

// FromTriangulation builds the primal/dual dataset from a planar
// triangulation. Each node becomes a cell center (z=0), each triangle
// contributes a dual vertex at its circumcenter, and the triangle's node
// references become the cellsOnVertex row for that vertex. meshDensity is
// uniform 1.0.
func FromTriangulation(tri *readfiles.Triangulation) (*Dataset, error) {
	var (
		nCells    = tri.NumNodes()
		nVertices = tri.NumTriangles()
	)
	d := &Dataset{
		XCell:         append([]float64(nil), tri.X...),
		YCell:         append([]float64(nil), tri.Y...),
		ZCell:         make([]float64, nCells),
		XVertex:       make([]float64, nVertices),
		YVertex:       make([]float64, nVertices),
		ZVertex:       make([]float64, nVertices),
		CellsOnVertex: make([]int32, nVertices*VertexDegree),
		MeshDensity:   make([]float64, nCells),
		OnASphere:     false,
		SphereRadius:  0.,
	}
	for i := range d.MeshDensity {
		d.MeshDensity[i] = 1.
	}
	for iVertex, tv := range tri.EToV {
		p1 := geometry2D.Point{X: tri.X[tv[0]], Y: tri.Y[tv[0]]}
		p2 := geometry2D.Point{X: tri.X[tv[1]], Y: tri.Y[tv[1]]}
		p3 := geometry2D.Point{X: tri.X[tv[2]], Y: tri.Y[tv[2]]}
		pv, err := geometry2D.Circumcenter(d.OnASphere, d.SphereRadius, p1, p2, p3)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", iVertex+1, err)
		}
		d.XVertex[iVertex] = pv.X
		d.YVertex[iVertex] = pv.Y
		d.ZVertex[iVertex] = pv.Z
		for j := 0; j < VertexDegree; j++ {
			d.CellsOnVertex[iVertex*VertexDegree+j] = readfiles.FileIndex(tv[j])
		}
	}
	return d, nil
}
