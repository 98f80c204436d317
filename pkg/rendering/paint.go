package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// Strokes are centered on the path and use round joins.
type Paint struct {
	Color       Color
	Gradient    *LinearGradient // If set, overrides Color for the fill
	Style       PaintStyle      // Fill or stroke
	StrokeWidth float64         // Width of stroke in points
}

// FillPaint returns a solid fill paint.
func FillPaint(color Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}

// GradientPaint returns a fill paint using gradient.
func GradientPaint(gradient *LinearGradient) Paint {
	return Paint{Gradient: gradient, Style: PaintStyleFill}
}

// StrokePaint returns a solid stroke paint with the given width.
func StrokePaint(color Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}
