package rendering

import (
	"math"
	"sort"
)

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition. Stops are
// copied and sorted by position.
func NewLinearGradient(start, end Offset, stops []GradientStop) *LinearGradient {
	return &LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// NewAngledGradient spans rect along a line through its center at the given
// angle in degrees. Zero degrees runs from the left edge to the right edge;
// angles increase counterclockwise.
func NewAngledGradient(rect Rect, degrees float64, stops []GradientStop) *LinearGradient {
	rad := degrees * math.Pi / 180
	dx, dy := math.Cos(rad), -math.Sin(rad)
	// Half the projection of the rect onto the gradient direction, so the
	// first and last stops land on opposite corners for diagonal angles.
	half := (math.Abs(dx)*rect.Width() + math.Abs(dy)*rect.Height()) / 2
	c := rect.Center()
	return NewLinearGradient(
		Offset{X: c.X - dx*half, Y: c.Y - dy*half},
		Offset{X: c.X + dx*half, Y: c.Y + dy*half},
		stops,
	)
}

// IsValid reports whether the gradient has usable stops.
func (g *LinearGradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// ColorAt returns the color of the gradient at point p. Points before the
// start or past the end take the first or last stop color.
func (g *LinearGradient) ColorAt(p Offset) Color {
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return g.Lerp(0)
	}
	t := ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lenSq
	return g.Lerp(t)
}

// Lerp returns the color at parameter t along the stop list.
func (g *LinearGradient) Lerp(t float64) Color {
	stops := g.Stops
	if len(stops) == 0 {
		return ColorTransparent
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Position) / span
		alpha := float64(a.Color.Alpha())*(1-f) + float64(b.Color.Alpha())*f
		return FromColorful(a.Color.Colorful().BlendRgb(b.Color.Colorful(), f), uint8(alpha+0.5))
	}
	return last.Color
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	sort.SliceStable(clone, func(i, j int) bool {
		return clone[i].Position < clone[j].Position
	})
	return clone
}
