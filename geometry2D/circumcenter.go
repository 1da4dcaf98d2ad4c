package geometry2D

import (
	"fmt"
	"math"
)

// Point is a position in mesh coordinates. Planar meshes carry Z == 0.
type Point struct {
	X, Y, Z float64
}

// degenerateTol bounds the doubled triangle area below which the
// perpendicular bisectors have no usable intersection.
const degenerateTol = 1.e-12

// Circumcenter returns the point equidistant from the three vertices of a
// triangle. In planar mode the Z coordinates are ignored and the result
// lies in the Z=0 plane; coordinates are centered on p1 before solving so
// nearly-degenerate triangles far from the origin do not lose precision.
// In spherical mode the vertices are assumed to lie on a sphere of radius
// r centered at the origin and the circumcenter is returned on that
// sphere. Collinear vertices are an error in either mode.
func Circumcenter(onSphere bool, r float64, p1, p2, p3 Point) (Point, error) {
	if onSphere {
		return sphericalCircumcenter(r, p1, p2, p3)
	}
	return planarCircumcenter(p1, p2, p3)
}

func planarCircumcenter(p1, p2, p3 Point) (Point, error) {
	bx := p2.X - p1.X
	by := p2.Y - p1.Y
	cx := p3.X - p1.X
	cy := p3.Y - p1.Y
	d := 2. * (bx*cy - by*cx)
	if math.Abs(d) < degenerateTol {
		return Point{}, fmt.Errorf("circumcenter undefined: vertices (%g,%g), (%g,%g), (%g,%g) are collinear",
			p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d
	return Point{X: p1.X + ux, Y: p1.Y + uy, Z: 0.}, nil
}

func sphericalCircumcenter(r float64, p1, p2, p3 Point) (Point, error) {
	ab := Point{X: p2.X - p1.X, Y: p2.Y - p1.Y, Z: p2.Z - p1.Z}
	ac := Point{X: p3.X - p1.X, Y: p3.Y - p1.Y, Z: p3.Z - p1.Z}
	cc := Point{
		X: ab.Y*ac.Z - ab.Z*ac.Y,
		Y: ab.Z*ac.X - ab.X*ac.Z,
		Z: ab.X*ac.Y - ab.Y*ac.X,
	}
	norm := math.Sqrt(cc.X*cc.X + cc.Y*cc.Y + cc.Z*cc.Z)
	if norm < degenerateTol {
		return Point{}, fmt.Errorf("circumcenter undefined: spherical triangle is degenerate")
	}
	scale := r / norm
	// The normal has two intersections with the sphere; keep the one on
	// the same side as the triangle.
	if cc.X*(p1.X+p2.X+p3.X)+cc.Y*(p1.Y+p2.Y+p3.Y)+cc.Z*(p1.Z+p2.Z+p3.Z) < 0. {
		scale = -scale
	}
	return Point{X: cc.X * scale, Y: cc.Y * scale, Z: cc.Z * scale}, nil
}
