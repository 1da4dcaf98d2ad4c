package cellwidth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCellWidthVsLat(t *testing.T) {
	lat, _ := LatLonGrid(1., 10.)
	n := len(lat)
	south := constSlice(n, 10.)
	north := constSlice(n, 30.)
	{ // Hard cutover at latWidthTransition == 0
		out := MergeCellWidthVsLat(lat, south, north, 0., 0.)
		for j := range lat {
			if lat[j] < 0. {
				assert.Equal(t, 10., out[j])
			} else {
				assert.Equal(t, 30., out[j])
			}
		}
	}
	{ // Smooth transition is bounded by the two inputs and monotone
		out := MergeCellWidthVsLat(lat, south, north, 0., 10.)
		for j := range lat {
			assert.GreaterOrEqual(t, out[j], 10.)
			assert.LessOrEqual(t, out[j], 30.)
			if j > 0 {
				assert.GreaterOrEqual(t, out[j], out[j-1])
			}
		}
		// Far from the transition both limits are recovered
		assert.InDelta(t, 10., out[0], 1.e-6)
		assert.InDelta(t, 30., out[n-1], 1.e-6)
		// Equal weights at the transition latitude itself
		assert.InDelta(t, 20., out[90], 1.e-12)
	}
	{ // Narrow transitions converge to the hard cutover
		hard := MergeCellWidthVsLat(lat, south, north, 0.5, 0.)
		out := MergeCellWidthVsLat(lat, south, north, 0.5, 1.e-4)
		for j := range lat {
			assert.InDelta(t, hard[j], out[j], 1.e-8)
		}
	}
	{ // Very wide transitions approach the mean of the two profiles
		out := MergeCellWidthVsLat(lat, south, north, 0., 1.e9)
		for j := range lat {
			assert.InDelta(t, 20., out[j], 1.e-6)
		}
	}
	assert.Panics(t, func() {
		MergeCellWidthVsLat(lat, south[:n-1], north, 0., 1.)
	})
}

func TestECCellWidthVsLat(t *testing.T) {
	p := DefaultECParams()
	lat, _ := LatLonGrid(0.5, 10.)
	out := ECCellWidthVsLat(lat, p)
	require.Equal(t, len(lat), len(out))

	minWidth := math.Min(p.CellWidthEq, math.Min(p.CellWidthMidLat, p.CellWidthPole))
	for j := range out {
		assert.GreaterOrEqual(t, out[j], minWidth)
	}

	// Characteristic widths are recovered at the equator and poles
	ends := ECCellWidthVsLat([]float64{-90., 0., 90.}, p)
	assert.InDelta(t, p.CellWidthPole, ends[0], 0.2)
	assert.InDelta(t, p.CellWidthEq, ends[1], 0.1)
	assert.InDelta(t, p.CellWidthPole, ends[2], 0.2)

	// Symmetric in latitude
	for j := range lat {
		mirror := len(lat) - 1 - j
		assert.InDelta(t, out[j], out[mirror], 1.e-12)
	}

	// Mid latitudes sit near the coarse mid-latitude width
	mid := ECCellWidthVsLat([]float64{-35., 35.}, p)
	assert.InDelta(t, p.CellWidthMidLat, mid[0], 1.)
	assert.InDelta(t, p.CellWidthMidLat, mid[1], 1.)
}

func TestRRSCellWidthVsLat(t *testing.T) {
	out := RRSCellWidthVsLat([]float64{-90., 0., 90.}, 18., 6.)
	// Exact recovery at the boundaries: at lat=0 the density reduces to
	// gamma, at the poles it reduces to 1.
	assert.InDelta(t, 6., out[0], 1.e-12)
	assert.InDelta(t, 18., out[1], 1.e-12)
	assert.InDelta(t, 6., out[2], 1.e-12)

	// Monotone decreasing away from the equator for pole < eq
	lat, _ := LatLonGrid(1., 10.)
	full := RRSCellWidthVsLat(lat, 18., 6.)
	for j := 91; j < len(lat); j++ {
		assert.LessOrEqual(t, full[j], full[j-1]+1.e-12)
	}
}

func TestAtlanticPacificGrid(t *testing.T) {
	lat, lon := LatLonGrid(2., 2.)
	atlantic := make([]float64, len(lat))
	pacific := make([]float64, len(lat))
	for j := range lat {
		atlantic[j] = 1. + float64(j)
		pacific[j] = 1000. + float64(j)
	}
	grid := AtlanticPacificGrid(lat, lon, atlantic, pacific)
	nr, nc := grid.Dims()
	require.Equal(t, len(lat), nr)
	require.Equal(t, len(lon), nc)

	// The mask is binary and exhaustive: every entry is one of the two
	// input values for its latitude, never a mixture.
	for j := 0; j < nr; j++ {
		for i := 0; i < nc; i++ {
			v := grid.At(j, i)
			assert.True(t, v == atlantic[j] || v == pacific[j],
				"unexpected value %f at lat %f lon %f", v, lat[j], lon[i])
		}
	}

	assert.Panics(t, func() {
		AtlanticPacificGrid(lat, lon, atlantic[:len(lat)-1], pacific)
	})
}

func TestAtlanticBasinMask(t *testing.T) {
	cases := []struct {
		lat, lon float64
		inside   bool
	}{
		{70., 0., true},    // Arctic band spans most longitudes
		{70., -160., false},
		{70., 175., false},
		{40., 0., true},     // subtropical North Atlantic
		{40., -120., false}, // North Pacific
		{40., 50., false},   // Asia
		{10., -79., true},   // west bound at lat 10 is -80
		{10., -81., false},
		{1., -61., true}, // west bound near the equator approaches -62
		{1., -63., false},
		{-30., 0., true}, // South Atlantic
		{-30., 30., false},
		{-30., -70., false},
		{0., 10., true}, // lat 0 belongs to the southern band
		{0., 25., false},
	}
	for _, c := range cases {
		assert.Equal(t, c.inside, inAtlanticBasin(c.lat, c.lon),
			"lat %f lon %f", c.lat, c.lon)
	}
}

func TestLatLonGrid(t *testing.T) {
	lat, lon := LatLonGrid(1., 10.)
	require.Equal(t, 181, len(lat))
	require.Equal(t, 37, len(lon))
	assert.Equal(t, -90., lat[0])
	assert.Equal(t, 90., lat[180])
	assert.Equal(t, -180., lon[0])
	assert.Equal(t, 180., lon[36])
}

func constSlice(n int, val float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = val
	}
	return
}
