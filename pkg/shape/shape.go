// Package shape builds the clip geometry of the overlay: which parts of the
// bar the skin covers.
package shape

import (
	"github.com/go-drift/barskin/pkg/rendering"
)

// Shape is the footprint of the overlay, made of one or more regions.
// Regions are kept separate rather than merged into one contour; a split
// shape is two disjoint regions.
//
// The zero Shape is empty. Shapes are immutable values.
type Shape struct {
	regions []Region
}

// FromRect returns a shape covering exactly rect.
func FromRect(rect rendering.Rect) Shape {
	return FromRegions(Region{Bounds: rect})
}

// FromRegions returns a shape made of the given regions.
func FromRegions(regions ...Region) Shape {
	return Shape{regions: append([]Region(nil), regions...)}
}

// Regions returns a copy of the shape's regions.
func (s Shape) Regions() []Region {
	return append([]Region(nil), s.regions...)
}

// Union returns a shape holding the regions of both shapes.
func (s Shape) Union(other Shape) Shape {
	out := make([]Region, 0, len(s.regions)+len(other.regions))
	out = append(out, s.regions...)
	out = append(out, other.regions...)
	return Shape{regions: out}
}

// IsEmpty reports whether the shape covers no area.
func (s Shape) IsEmpty() bool {
	for _, r := range s.regions {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle containing every region.
func (s Shape) Bounds() rendering.Rect {
	var b rendering.Rect
	for _, r := range s.regions {
		b = b.Union(r.Bounds)
	}
	return b
}

// Contains reports whether p lies inside any region.
func (s Shape) Contains(p rendering.Offset) bool {
	for _, r := range s.regions {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Translate returns the shape moved by (dx, dy).
func (s Shape) Translate(dx, dy float64) Shape {
	out := make([]Region, len(s.regions))
	for i, r := range s.regions {
		r.Bounds = r.Bounds.Translate(dx, dy)
		out[i] = r
	}
	return Shape{regions: out}
}

// Path returns the shape as a fill path with one closed subpath per region.
func (s Shape) Path() *rendering.Path {
	p := rendering.NewPath()
	for _, r := range s.regions {
		r.appendPath(p)
	}
	return p
}

// ApproxEqual reports whether both shapes have the same regions in the same
// order, within a small tolerance.
func (s Shape) ApproxEqual(other Shape) bool {
	if len(s.regions) != len(other.regions) {
		return false
	}
	for i := range s.regions {
		if !s.regions[i].ApproxEqual(other.regions[i]) {
			return false
		}
	}
	return true
}

// Clip intersects the canvas clip with the shape.
func (s Shape) Clip(canvas rendering.Canvas) {
	canvas.ClipPath(s.Path(), rendering.ClipOpIntersect)
}

// ClipInverse restricts the canvas to the parts of bounds the shape does not
// cover.
func (s Shape) ClipInverse(canvas rendering.Canvas, bounds rendering.Rect) {
	canvas.ClipRect(bounds)
	canvas.ClipPath(s.Path(), rendering.ClipOpDifference)
}
