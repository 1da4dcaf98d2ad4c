package meshio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ctessum/cdf"
	"gonum.org/v1/gonum/mat"
)

// Write writes the dataset as a NetCDF3 classic file to w. An *os.File
// satisfies the writer interface.
func (d *Dataset) Write(w cdf.ReaderWriterAt) error {
	h := cdf.NewHeader(
		[]string{"nCells", "nVertices", "vertexDegree"},
		[]int{d.NCells(), d.NVertices(), VertexDegree})
	onSphere := "NO"
	if d.OnASphere {
		onSphere = "YES"
	}
	h.AddAttribute("", "on_a_sphere", onSphere)
	h.AddAttribute("", "sphere_radius", []float64{d.SphereRadius})

	h.AddVariable("meshDensity", []string{"nCells"}, []float64{0})
	h.AddVariable("xCell", []string{"nCells"}, []float64{0})
	h.AddVariable("yCell", []string{"nCells"}, []float64{0})
	h.AddVariable("zCell", []string{"nCells"}, []float64{0})
	h.AddVariable("xVertex", []string{"nVertices"}, []float64{0})
	h.AddVariable("yVertex", []string{"nVertices"}, []float64{0})
	h.AddVariable("zVertex", []string{"nVertices"}, []float64{0})
	h.AddVariable("cellsOnVertex", []string{"nVertices", "vertexDegree"}, []int32{0})
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("creating NetCDF file: %w", err)
	}
	vars := []struct {
		name string
		data interface{}
		n    int
	}{
		{"meshDensity", d.MeshDensity, d.NCells()},
		{"xCell", d.XCell, d.NCells()},
		{"yCell", d.YCell, d.NCells()},
		{"zCell", d.ZCell, d.NCells()},
		{"xVertex", d.XVertex, d.NVertices()},
		{"yVertex", d.YVertex, d.NVertices()},
		{"zVertex", d.ZVertex, d.NVertices()},
		{"cellsOnVertex", d.CellsOnVertex, d.NVertices() * VertexDegree},
	}
	// All variables are fixed size, so the file is complete once each one
	// is written in full.
	for _, v := range vars {
		if err := writeVar(f, v.name, v.data, v.n); err != nil {
			return err
		}
	}
	return nil
}

// writeVar writes one fixed-size variable in full. The cdf writer returns
// io.EOF once a non-record variable has been written to its end, so EOF
// together with a complete count is the success case.
func writeVar(f *cdf.File, name string, data interface{}, n int) error {
	nw, err := f.Writer(name, nil, nil).Write(data)
	if err != nil && err != io.EOF {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if nw < n {
		return fmt.Errorf("writing %s: short write: %d of %d values", name, nw, n)
	}
	return nil
}

// WriteFile writes the dataset to path. The data is staged in a temporary
// file in the same directory and renamed into place only after a
// successful write, so a failure never leaves a truncated output file
// behind.
func (d *Dataset) WriteFile(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = d.Write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// WriteCellWidthField writes a lat/lon cell width grid in the
// cellWidthVsLatLon convention consumed by the mesh generation workflow:
// dimensions lat and lon, coordinate variables lat and lon in degrees, and
// the cellWidth variable in km, row major by latitude. The same staged
// write discipline as WriteFile applies.
func WriteCellWidthField(path string, lat, lon []float64, cellWidth *mat.Dense) (err error) {
	nr, nc := cellWidth.Dims()
	if nr != len(lat) || nc != len(lon) {
		return fmt.Errorf("cell width grid is %dx%d, want %dx%d", nr, nc, len(lat), len(lon))
	}
	flat := make([]float64, nr*nc)
	for j := 0; j < nr; j++ {
		copy(flat[j*nc:(j+1)*nc], cellWidth.RawRowView(j))
	}

	h := cdf.NewHeader([]string{"lat", "lon"}, []int{len(lat), len(lon)})
	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddVariable("cellWidth", []string{"lat", "lon"}, []float64{0})
	h.AddAttribute("lat", "units", "degrees_north")
	h.AddAttribute("lon", "units", "degrees_east")
	h.AddAttribute("cellWidth", "units", "km")
	h.Define()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	f, err := cdf.Create(tmp, h)
	if err != nil {
		return fmt.Errorf("creating NetCDF file: %w", err)
	}
	vars := []struct {
		name string
		data []float64
	}{
		{"lat", lat},
		{"lon", lon},
		{"cellWidth", flat},
	}
	for _, v := range vars {
		if err = writeVar(f, v.name, v.data, len(v.data)); err != nil {
			return err
		}
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
