/*
Package cellwidth builds target mesh-resolution ("cell width") fields on
regular latitude/longitude grids. The resulting arrays, in kilometers, are
the guidance input handed to the external mesh generator.
*/
package cellwidth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MergeCellWidthVsLat combines two latitudinal cell width distributions
// with a tanh weighting centered on latTransition. A latWidthTransition of
// zero selects cellWidthInSouth below latTransition and cellWidthInNorth at
// or above it, with no blending.
func MergeCellWidthVsLat(lat, cellWidthInSouth, cellWidthInNorth []float64,
	latTransition, latWidthTransition float64) (cellWidthOut []float64) {
	checkProfileLengths(len(lat), len(cellWidthInSouth), len(cellWidthInNorth))
	cellWidthOut = make([]float64, len(lat))
	if latWidthTransition == 0 {
		for j := range lat {
			if lat[j] < latTransition {
				cellWidthOut[j] = cellWidthInSouth[j]
			} else {
				cellWidthOut[j] = cellWidthInNorth[j]
			}
		}
		return
	}
	for j := range lat {
		weightNorth := 0.5 * (math.Tanh((lat[j]-latTransition)/latWidthTransition) + 1.)
		weightSouth := 1. - weightNorth
		cellWidthOut[j] = weightSouth*cellWidthInSouth[j] + weightNorth*cellWidthInNorth[j]
	}
	return
}

// ECParams are the regime parameters for the eddy closure profile. Widths
// are in km, positions and widths of the transition regions in degrees
// latitude.
type ECParams struct {
	CellWidthEq     float64 `yaml:"CellWidthEq"`
	CellWidthMidLat float64 `yaml:"CellWidthMidLat"`
	CellWidthPole   float64 `yaml:"CellWidthPole"`
	LatPosEq        float64 `yaml:"LatPosEq"`
	LatPosPole      float64 `yaml:"LatPosPole"`
	LatTransition   float64 `yaml:"LatTransition"`
	LatWidthEq      float64 `yaml:"LatWidthEq"`
	LatWidthPole    float64 `yaml:"LatWidthPole"`
}

// DefaultECParams returns the EC60to30 parameter set.
func DefaultECParams() ECParams {
	return ECParams{
		CellWidthEq:     30.,
		CellWidthMidLat: 60.,
		CellWidthPole:   35.,
		LatPosEq:        15.,
		LatPosPole:      73.,
		LatTransition:   40.,
		LatWidthEq:      6.,
		LatWidthPole:    9.,
	}
}

// ECCellWidthVsLat creates eddy closure cell spacing as a function of lat.
// The three characteristic widths are blended in inverse-fourth-power
// density space, where tanh transitions behave better than in width space,
// then converted back to a width. The profile is symmetric about the
// equator.
func ECCellWidthVsLat(lat []float64, p ECParams) (cellWidthOut []float64) {
	minCellWidth := math.Min(p.CellWidthEq, math.Min(p.CellWidthMidLat, p.CellWidthPole))
	densityEq := pow4(minCellWidth / p.CellWidthEq)
	densityMidLat := pow4(minCellWidth / p.CellWidthMidLat)
	densityPole := pow4(minCellWidth / p.CellWidthPole)
	cellWidthOut = make([]float64, len(lat))
	for j := range lat {
		absLat := math.Abs(lat[j])
		var densityEC float64
		if absLat < p.LatTransition {
			densityEC = (densityEq-densityMidLat)*(1.+math.Tanh((p.LatPosEq-absLat)/p.LatWidthEq))/2. + densityMidLat
		} else {
			densityEC = (densityMidLat-densityPole)*(1.+math.Tanh((p.LatPosPole-absLat)/p.LatWidthPole))/2. + densityPole
		}
		cellWidthOut[j] = minCellWidth / math.Pow(densityEC, 0.25)
	}
	return
}

// RRSCellWidthVsLat creates Rossby radius scaling as a function of lat,
// ranging from cellWidthEq at the equator to cellWidthPole at the poles.
// At lat=0 the density reduces to gamma, so cellWidthEq is recovered
// exactly.
func RRSCellWidthVsLat(lat []float64, cellWidthEq, cellWidthPole float64) (cellWidthOut []float64) {
	// ratio between high and low resolution
	gamma := pow4(cellWidthPole / cellWidthEq)
	cellWidthOut = make([]float64, len(lat))
	for j := range lat {
		densityRRS := (1.-gamma)*pow4(math.Sin(deg2Rad(math.Abs(lat[j])))) + gamma
		cellWidthOut[j] = cellWidthPole / math.Pow(densityRRS, 0.25)
	}
	return
}

// AtlanticPacificGrid builds a 2D cell width grid (rows by lat, columns by
// lon) selecting cellWidthInAtlantic inside the Atlantic basin footprint
// and cellWidthInPacific elsewhere. The mask is a hard geographic cutover,
// not a blend.
func AtlanticPacificGrid(lat, lon, cellWidthInAtlantic, cellWidthInPacific []float64) (cellWidthOut *mat.Dense) {
	checkProfileLengths(len(lat), len(cellWidthInAtlantic), len(cellWidthInPacific))
	cellWidthOut = mat.NewDense(len(lat), len(lon), nil)
	for j := range lat {
		for i := range lon {
			if inAtlanticBasin(lat[j], lon[i]) {
				cellWidthOut.Set(j, i, cellWidthInAtlantic[j])
			} else {
				cellWidthOut.Set(j, i, cellWidthInPacific[j])
			}
		}
	}
	return
}

// latBand is one latitude band of the Atlantic footprint: the band applies
// where lat > minLat, and holds the exclusive longitude interval
// (west, east). The west bound may depend on latitude.
type latBand struct {
	minLat float64
	west   func(lat float64) float64
	east   float64
}

// Hand-tuned footprint of the Atlantic basin, from the polar band down.
// Bands are checked in order, so each row covers minLat up to the previous
// row's minLat. The tropical west bound follows the South American coast
// southwest as lat decreases.
var atlanticBands = []latBand{
	{minLat: 65., west: constLon(-150.), east: 170.},
	{minLat: 20., west: constLon(-100.), east: 35.},
	{minLat: 0., west: func(lat float64) float64 { return -2.*lat - 60. }, east: 35.},
	{minLat: math.Inf(-1), west: constLon(-60.), east: 20.},
}

func constLon(lon float64) func(float64) float64 {
	return func(float64) float64 { return lon }
}

func inAtlanticBasin(lat, lon float64) bool {
	for _, b := range atlanticBands {
		if lat > b.minLat {
			return lon > b.west(lat) && lon < b.east
		}
	}
	return false
}

// LatLonGrid returns uniformly spaced latitude and longitude sample
// vectors at dLat/dLon degree spacing, inclusive of both poles and both
// ends of the longitude range.
func LatLonGrid(dLat, dLon float64) (lat, lon []float64) {
	nLat := int(math.Round(180./dLat)) + 1
	nLon := int(math.Round(360./dLon)) + 1
	lat = floats.Span(make([]float64, nLat), -90., 90.)
	lon = floats.Span(make([]float64, nLon), -180., 180.)
	return
}

func checkProfileLengths(nLat, n1, n2 int) {
	if n1 != nLat || n2 != nLat {
		panic(fmt.Sprintf("cellwidth: profile lengths %d and %d must match lat length %d", n1, n2, nLat))
	}
}

func pow4(x float64) float64 {
	x2 := x * x
	return x2 * x2
}

func deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.
}
