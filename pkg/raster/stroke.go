package raster

import (
	"math"

	"github.com/go-drift/barskin/pkg/rendering"
)

// joinSegments is the number of edges used for the round join polygons.
const joinSegments = 24

// strokeOutline returns a fillable path covering a stroke of the given width
// centered on path. Every flattened segment becomes a quad and every vertex a
// disc, which gives round joins and round caps. All pieces share the same
// orientation so overlaps accumulate instead of cancelling.
func strokeOutline(path *rendering.Path, width float64) *rendering.Path {
	out := rendering.NewPath()
	if path == nil {
		return out
	}
	hw := width / 2
	polylines, _ := path.Flatten()
	for _, pts := range polylines {
		for i, pt := range pts {
			addDisc(out, pt, hw)
			if i == 0 {
				continue
			}
			addSegmentQuad(out, pts[i-1], pt, hw)
		}
	}
	return out
}

func addSegmentQuad(out *rendering.Path, a, b rendering.Offset, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	out.MoveTo(a.X-nx, a.Y-ny)
	out.LineTo(b.X-nx, b.Y-ny)
	out.LineTo(b.X+nx, b.Y+ny)
	out.LineTo(a.X+nx, a.Y+ny)
	out.Close()
}

func addDisc(out *rendering.Path, c rendering.Offset, r float64) {
	out.MoveTo(c.X+r, c.Y)
	for i := 1; i < joinSegments; i++ {
		t := 2 * math.Pi * float64(i) / joinSegments
		out.LineTo(c.X+r*math.Cos(t), c.Y+r*math.Sin(t))
	}
	out.Close()
}
