package shape

import (
	"math"

	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/rendering"
)

// Region is one segment of the bar: a bounding rectangle with an end cap on
// each side.
//
// The footprint of a region is the union of a core rectangle, inset from
// both sides by half the cap width, and one cap zone at each end. The cap
// width is the bounds height, or the bounds width when the region is
// narrower than it is tall. A square cap zone covers its whole cap square;
// a round one covers the ellipse inscribed in it.
type Region struct {
	Bounds   rendering.Rect
	Leading  appearance.EndCap
	Trailing appearance.EndCap
}

// CapWidth returns the width of each cap zone.
func (r Region) CapWidth() float64 {
	return math.Min(r.Bounds.Width(), r.Bounds.Height())
}

// IsEmpty reports whether the region covers no area.
func (r Region) IsEmpty() bool {
	return r.Bounds.IsEmpty()
}

// fillsBounds reports whether the footprint is exactly the bounds.
func (r Region) fillsBounds() bool {
	if r.Leading == appearance.EndCapSquare && r.Trailing == appearance.EndCapSquare {
		return true
	}
	// A narrow region's cap squares each span the whole bounds.
	narrow := r.Bounds.Width() < r.Bounds.Height()
	return narrow && (r.Leading == appearance.EndCapSquare || r.Trailing == appearance.EndCapSquare)
}

func (r Region) leadingCap() rendering.Rect {
	b := r.Bounds
	return rendering.Rect{Left: b.Left, Top: b.Top, Right: b.Left + r.CapWidth(), Bottom: b.Bottom}
}

func (r Region) trailingCap() rendering.Rect {
	b := r.Bounds
	return rendering.Rect{Left: b.Right - r.CapWidth(), Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

func (r Region) core() rendering.Rect {
	b := r.Bounds
	half := r.CapWidth() / 2
	return rendering.Rect{Left: b.Left + half, Top: b.Top, Right: b.Right - half, Bottom: b.Bottom}
}

// primitives decomposes the footprint into rectangles and ellipses whose
// union is the region.
func (r Region) primitives() []primitive {
	if r.IsEmpty() {
		return nil
	}
	if r.fillsBounds() {
		return []primitive{{bounds: r.Bounds}}
	}
	out := make([]primitive, 0, 3)
	if c := r.core(); !c.IsEmpty() {
		out = append(out, primitive{bounds: c})
	}
	out = append(out, primitive{bounds: r.leadingCap(), oval: r.Leading == appearance.EndCapRound})
	out = append(out, primitive{bounds: r.trailingCap(), oval: r.Trailing == appearance.EndCapRound})
	return out
}

// Contains reports whether p lies inside the footprint.
func (r Region) Contains(p rendering.Offset) bool {
	if !r.Bounds.Contains(p) {
		return false
	}
	for _, prim := range r.primitives() {
		if prim.contains(p) {
			return true
		}
	}
	return false
}

// Intersects reports whether the footprints share an area. Regions that
// only touch do not intersect.
func (r Region) Intersects(other Region) bool {
	if !r.Bounds.Overlaps(other.Bounds) {
		return false
	}
	for _, a := range r.primitives() {
		for _, b := range other.primitives() {
			if a.intersects(b) {
				return true
			}
		}
	}
	return false
}

// Path returns the outline of the footprint as a single closed clockwise
// contour.
func (r Region) Path() *rendering.Path {
	p := rendering.NewPath()
	r.appendPath(p)
	return p
}

func (r Region) appendPath(p *rendering.Path) {
	b := r.Bounds
	if r.IsEmpty() {
		return
	}
	if r.fillsBounds() {
		p.AddRect(b)
		return
	}
	half := r.CapWidth() / 2
	ry := b.Height() / 2
	cy := b.Top + ry

	if r.Leading == appearance.EndCapSquare {
		p.MoveTo(b.Left, b.Top)
	} else {
		p.MoveTo(b.Left+half, b.Top)
	}

	if r.Trailing == appearance.EndCapSquare {
		p.LineTo(b.Right, b.Top)
		p.LineTo(b.Right, b.Bottom)
	} else {
		cx := b.Right - half
		p.LineTo(cx, b.Top)
		p.ArcTo(rendering.Offset{X: cx, Y: cy}, half, ry, -math.Pi/2, math.Pi)
	}

	if r.Leading == appearance.EndCapSquare {
		p.LineTo(b.Left, b.Bottom)
	} else {
		cx := b.Left + half
		p.LineTo(cx, b.Bottom)
		p.ArcTo(rendering.Offset{X: cx, Y: cy}, half, ry, math.Pi/2, math.Pi)
	}
	p.Close()
}

// ApproxEqual reports whether both regions have the same caps and bounds
// within a small tolerance.
func (r Region) ApproxEqual(other Region) bool {
	return r.Leading == other.Leading && r.Trailing == other.Trailing &&
		r.Bounds.ApproxEqual(other.Bounds)
}

// primitive is a rectangle, or the ellipse inscribed in it.
type primitive struct {
	bounds rendering.Rect
	oval   bool
}

func (p primitive) contains(pt rendering.Offset) bool {
	if !p.oval {
		return p.bounds.Contains(pt)
	}
	c := p.bounds.Center()
	rx, ry := p.bounds.Width()/2, p.bounds.Height()/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx, dy := (pt.X-c.X)/rx, (pt.Y-c.Y)/ry
	return dx*dx+dy*dy <= 1
}

// ovalSamples is the number of boundary points used when testing two
// ellipses of different proportions against each other.
const ovalSamples = 64

func (p primitive) intersects(q primitive) bool {
	if !p.bounds.Overlaps(q.bounds) {
		return false
	}
	switch {
	case !p.oval && !q.oval:
		return true
	case p.oval && !q.oval:
		return ovalOverlapsRect(p.bounds, q.bounds)
	case !p.oval && q.oval:
		return ovalOverlapsRect(q.bounds, p.bounds)
	}
	return ovalsOverlap(p.bounds, q.bounds)
}

// ovalOverlapsRect maps the oval to the unit circle and measures the
// distance from its center to the nearest point of the mapped rectangle.
func ovalOverlapsRect(oval, rect rendering.Rect) bool {
	c := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	left, right := (rect.Left-c.X)/rx, (rect.Right-c.X)/rx
	top, bottom := (rect.Top-c.Y)/ry, (rect.Bottom-c.Y)/ry
	nx := math.Max(left, math.Min(0, right))
	ny := math.Max(top, math.Min(0, bottom))
	return nx*nx+ny*ny < 1-epsilon
}

func ovalsOverlap(a, b rendering.Rect) bool {
	ca, cb := a.Center(), b.Center()
	arx, ary := a.Width()/2, a.Height()/2
	brx, bry := b.Width()/2, b.Height()/2
	if arx <= 0 || ary <= 0 || brx <= 0 || bry <= 0 {
		return false
	}
	// Ellipses with the same vertical radius and the same proportions scale
	// to two circles of the same space.
	if math.Abs(ary-bry) <= epsilon && math.Abs(arx/ary-brx/bry) <= epsilon {
		dx := (ca.X - cb.X) / (arx / ary)
		dy := ca.Y - cb.Y
		return math.Hypot(dx, dy) < ary+bry-epsilon
	}
	inside := func(c rendering.Offset, rx, ry float64, pt rendering.Offset) bool {
		dx, dy := (pt.X-c.X)/rx, (pt.Y-c.Y)/ry
		return dx*dx+dy*dy < 1-epsilon
	}
	if inside(ca, arx, ary, cb) || inside(cb, brx, bry, ca) {
		return true
	}
	for i := 0; i < ovalSamples; i++ {
		t := 2 * math.Pi * float64(i) / ovalSamples
		if inside(cb, brx, bry, rendering.Offset{X: ca.X + arx*math.Cos(t), Y: ca.Y + ary*math.Sin(t)}) {
			return true
		}
		if inside(ca, arx, ary, rendering.Offset{X: cb.X + brx*math.Cos(t), Y: cb.Y + bry*math.Sin(t)}) {
			return true
		}
	}
	return false
}

const epsilon = 1e-6
