// Package compositor paints the overlay's layers onto a canvas.
//
// Composite applies the layers in this order:
//  1. Wallpaper, drawn into the bar outside the shape so the shape's cut-outs
//     show the desktop instead of the bar
//  2. Shadow of the shape, drawn outside the shape
//  3. Tint, clipped to the shape
//  4. Border stroke along the shape's outline, clipped to the shape
package compositor

import (
	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/rendering"
	"github.com/go-drift/barskin/pkg/shape"
)

// Layer constants.
const (
	// TintAlpha is the opacity applied to the tint color and to every stop
	// of the tint gradient.
	TintAlpha = 0.2
	// ShadowAlpha is the opacity of the black drop shadow.
	ShadowAlpha = 0.5
	// ShadowBlurRadius is the blur radius of the drop shadow in points.
	ShadowBlurRadius = 5.0
	// GradientAngle is the angle the tint gradient is drawn at, in degrees.
	GradientAngle = 0.0
)

// Composite paints one frame of the overlay.
//
// bounds is the whole surface, rect is the bar area inside it and s is the
// shape built over rect for kind. The canvas state is restored before
// Composite returns.
func Composite(canvas rendering.Canvas, bounds, rect rendering.Rect, s shape.Shape, kind appearance.ShapeKind, style appearance.Style) {
	canvas.Save()
	defer canvas.Restore()

	if kind != appearance.ShapeNone && style.Wallpaper != nil {
		drawWallpaper(canvas, rect, s, style)
	}
	if kind != appearance.ShapeNone && style.HasShadow {
		drawShadow(canvas, bounds, s)
	}

	// Decided before any clipping; the border follows the tint.
	drawBorder := kind != appearance.ShapeNone && style.HasBorder

	s.Clip(canvas)
	drawTint(canvas, rect, style)

	if drawBorder {
		strokeBorder(canvas, s, style)
	}
}

func drawWallpaper(canvas rendering.Canvas, rect rendering.Rect, s shape.Shape, style appearance.Style) {
	canvas.Save()
	defer canvas.Restore()
	s.ClipInverse(canvas, rect)
	canvas.DrawImageRect(style.Wallpaper, rect)
}

func drawShadow(canvas rendering.Canvas, bounds rendering.Rect, s shape.Shape) {
	canvas.Save()
	defer canvas.Restore()
	s.ClipInverse(canvas, bounds)
	shadow := rendering.NewBoxShadow(rendering.ColorBlack.WithAlphaF(ShadowAlpha), ShadowBlurRadius)
	canvas.DrawPathShadow(s.Path(), shadow)
}

func drawTint(canvas rendering.Canvas, rect rendering.Rect, style appearance.Style) {
	switch style.TintKind {
	case appearance.TintSolid:
		c, err := rendering.ParseHexColor(style.TintColor)
		if err != nil {
			return
		}
		canvas.DrawRect(rect, rendering.FillPaint(c.WithAlphaF(TintAlpha)))
	case appearance.TintGradient:
		g := style.TintGradient.WithAlphaComponent(TintAlpha).Linear(rect, GradientAngle)
		if g == nil {
			return
		}
		canvas.DrawRect(rect, rendering.GradientPaint(g))
	}
}

func strokeBorder(canvas rendering.Canvas, s shape.Shape, style appearance.Style) {
	c, err := rendering.ParseHexColor(style.BorderColor)
	if err != nil || style.BorderWidth <= 0 {
		return
	}
	// Half the stroke falls outside the clip, leaving BorderWidth visible.
	canvas.DrawPath(s.Path(), rendering.StrokePaint(c, 2*style.BorderWidth))
}
