package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods, or
// the AddRect/AddOval helpers. Use with Canvas.DrawPath to stroke/fill, or
// Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// AddRect adds a closed clockwise subpath tracing rect.
func (p *Path) AddRect(rect Rect) {
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
}

// AddOval adds a closed clockwise subpath tracing the ellipse inscribed in rect.
func (p *Path) AddOval(rect Rect) {
	c := rect.Center()
	rx, ry := rect.Width()/2, rect.Height()/2
	p.MoveTo(c.X, rect.Top)
	p.ArcTo(c, rx, ry, -math.Pi/2, 2*math.Pi)
	p.Close()
}

// ArcTo appends an elliptical arc around center, starting at angle start and
// sweeping by sweep radians (positive is clockwise in y-down space). The
// current point is assumed to already be at the arc's start.
func (p *Path) ArcTo(center Offset, rx, ry, start, sweep float64) {
	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments == 0 {
		return
	}
	step := sweep / float64(segments)
	// Control point distance for a cubic approximating an arc of |step| radians.
	k := 4.0 / 3.0 * math.Tan(step/4)
	a := start
	for i := 0; i < segments; i++ {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		p.CubicTo(
			center.X+rx*(cosA-k*sinA), center.Y+ry*(sinA+k*cosA),
			center.X+rx*(cosB+k*sinB), center.Y+ry*(sinB-k*cosB),
			center.X+rx*cosB, center.Y+ry*sinB,
		)
		a = b
	}
}

// AddPath appends every command of other to p.
func (p *Path) AddPath(other *Path) {
	if other == nil {
		return
	}
	for _, cmd := range other.Commands {
		p.Commands = append(p.Commands, PathCommand{
			Op:   cmd.Op,
			Args: append([]float64(nil), cmd.Args...),
		})
	}
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	if p == nil {
		return NewPath()
	}
	out := &Path{FillRule: p.FillRule}
	out.AddPath(p)
	return out
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Bounds returns the bounding box of every point and control point in the
// path. Control points can make it slightly larger than the exact bounds.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	return b
}

// curveSteps is the number of line segments used per curve when flattening.
const curveSteps = 16

// Flatten converts the path into polylines, one per subpath. Curves are
// subdivided into fixed-size steps. closed reports, per polyline, whether
// the subpath ended with Close.
func (p *Path) Flatten() (polylines [][]Offset, closed []bool) {
	var cur []Offset
	var pen, start Offset
	flush := func(isClosed bool) {
		if len(cur) > 1 {
			polylines = append(polylines, cur)
			closed = append(closed, isClosed)
		}
		cur = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush(false)
			pen = Offset{cmd.Args[0], cmd.Args[1]}
			start = pen
			cur = []Offset{pen}
		case PathOpLineTo:
			if cur == nil {
				cur = []Offset{pen}
			}
			pen = Offset{cmd.Args[0], cmd.Args[1]}
			cur = append(cur, pen)
		case PathOpQuadTo:
			if cur == nil {
				cur = []Offset{pen}
			}
			c := Offset{cmd.Args[0], cmd.Args[1]}
			end := Offset{cmd.Args[2], cmd.Args[3]}
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, Offset{
					X: u*u*pen.X + 2*u*t*c.X + t*t*end.X,
					Y: u*u*pen.Y + 2*u*t*c.Y + t*t*end.Y,
				})
			}
			pen = end
		case PathOpCubicTo:
			if cur == nil {
				cur = []Offset{pen}
			}
			c1 := Offset{cmd.Args[0], cmd.Args[1]}
			c2 := Offset{cmd.Args[2], cmd.Args[3]}
			end := Offset{cmd.Args[4], cmd.Args[5]}
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, Offset{
					X: u*u*u*pen.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*pen.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			pen = end
		case PathOpClose:
			if cur != nil && (cur[len(cur)-1] != start) {
				cur = append(cur, start)
			}
			flush(true)
			pen = start
		}
	}
	flush(false)
	return polylines, closed
}
