package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-drift/barskin/pkg/rendering"
)

func newCanvas(w, h int) *Canvas {
	return New(image.NewRGBA(image.Rect(0, 0, w, h)), 1)
}

func TestDrawRectFillsInside(t *testing.T) {
	c := newCanvas(10, 10)
	c.DrawRect(rendering.RectFromLTWH(2, 2, 6, 6), rendering.FillPaint(rendering.ColorRed))

	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if got := c.Image().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestClipDifferenceExcludesPath(t *testing.T) {
	c := newCanvas(20, 10)
	hole := rendering.NewPath()
	hole.AddRect(rendering.RectFromLTWH(0, 0, 10, 10))

	c.Save()
	c.ClipPath(hole, rendering.ClipOpDifference)
	c.DrawRect(rendering.RectFromLTWH(0, 0, 20, 10), rendering.FillPaint(rendering.ColorBlue))
	c.Restore()

	if got := c.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel inside the hole = %v, want transparent", got)
	}
	if got := c.Image().RGBAAt(15, 5); got.B != 255 || got.A != 255 {
		t.Errorf("pixel outside the hole = %v, want opaque blue", got)
	}
}

func TestRestoreDropsClip(t *testing.T) {
	c := newCanvas(10, 10)
	c.Save()
	c.ClipRect(rendering.RectFromLTWH(0, 0, 5, 10))
	if c.CoverageAt(8, 5) != 0 {
		t.Fatal("expected pixel outside clip rect to be clipped")
	}
	c.Restore()
	if c.CoverageAt(8, 5) != 0xFF {
		t.Fatal("expected clip to be gone after Restore")
	}
	// Unbalanced restore is a no-op.
	c.Restore()
}

func TestStrokeInsideClipDrawsOnlyEdge(t *testing.T) {
	c := newCanvas(20, 10)
	rect := rendering.RectFromLTWH(0, 0, 20, 10)
	path := rendering.NewPath()
	path.AddRect(rect)

	c.ClipPath(path, rendering.ClipOpIntersect)
	c.DrawPath(path, rendering.StrokePaint(rendering.ColorGreen, 4))

	if got := c.Image().RGBAAt(10, 1); got.G != 255 {
		t.Errorf("edge pixel = %v, want green", got)
	}
	if got := c.Image().RGBAAt(10, 5); got.A != 0 {
		t.Errorf("center pixel = %v, want untouched", got)
	}
}

func TestZeroWidthStrokeDrawsNothing(t *testing.T) {
	c := newCanvas(10, 10)
	path := rendering.NewPath()
	path.AddRect(rendering.RectFromLTWH(2, 2, 6, 6))
	c.DrawPath(path, rendering.StrokePaint(rendering.ColorGreen, 0))
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("expected empty image")
		}
	}
}

func TestShadowBleedsOutsideShape(t *testing.T) {
	c := newCanvas(30, 30)
	path := rendering.NewPath()
	path.AddRect(rendering.RectFromLTWH(10, 10, 10, 10))

	c.ClipPath(path, rendering.ClipOpDifference)
	c.DrawPathShadow(path, rendering.NewBoxShadow(rendering.ColorBlack.WithAlphaF(0.5), 5))

	if got := c.Image().RGBAAt(21, 15); got.A == 0 {
		t.Error("expected shadow just outside the shape")
	}
	if got := c.Image().RGBAAt(15, 15); got.A != 0 {
		t.Errorf("shadow leaked into the clipped shape: %v", got)
	}
	if got := c.Image().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("shadow reached the far corner: %v", got)
	}
}

func TestDrawImageRectRespectsClip(t *testing.T) {
	c := newCanvas(10, 10)
	wallpaper := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(wallpaper.Pix); i += 4 {
		wallpaper.Pix[i+2] = 255
		wallpaper.Pix[i+3] = 255
	}
	c.ClipRect(rendering.RectFromLTWH(5, 0, 5, 10))
	c.DrawImageRect(wallpaper, rendering.RectFromLTWH(0, 0, 10, 10))

	if got := c.Image().RGBAAt(2, 5); got.A != 0 {
		t.Errorf("clipped pixel = %v, want transparent", got)
	}
	if got := c.Image().RGBAAt(7, 5); got.B < 250 {
		t.Errorf("visible pixel = %v, want blue", got)
	}
}

func TestDrawImageRectOffCanvas(t *testing.T) {
	c := newCanvas(10, 10)
	wallpaper := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(wallpaper.Pix); i++ {
		wallpaper.Pix[i] = 255
	}

	c.DrawImageRect(wallpaper, rendering.RectFromLTWH(20, 0, 10, 10))
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("image placed outside the canvas drew pixels")
		}
	}

	c.DrawImageRect(wallpaper, rendering.RectFromLTWH(-5, 0, 10, 10))
	if got := c.Image().RGBAAt(2, 5); got.A != 255 {
		t.Errorf("overlapping pixel = %v, want opaque", got)
	}
	if got := c.Image().RGBAAt(7, 5); got.A != 0 {
		t.Errorf("pixel past the image = %v, want transparent", got)
	}
}

func TestGradientFill(t *testing.T) {
	c := newCanvas(100, 4)
	rect := rendering.RectFromLTWH(0, 0, 100, 4)
	g := rendering.NewAngledGradient(rect, 0, []rendering.GradientStop{
		{Position: 0, Color: rendering.ColorRed},
		{Position: 1, Color: rendering.ColorBlue},
	})
	c.DrawRect(rect, rendering.GradientPaint(g))

	left := c.Image().RGBAAt(0, 2)
	right := c.Image().RGBAAt(99, 2)
	if left.R < 240 || left.B > 15 {
		t.Errorf("left pixel = %v, want red", left)
	}
	if right.B < 240 || right.R > 15 {
		t.Errorf("right pixel = %v, want blue", right)
	}
}

func TestScaleMapsPointsToPixels(t *testing.T) {
	c := NewImage(rendering.Size{Width: 10, Height: 5}, 2)
	if b := c.Image().Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("image bounds = %v, want 20x10", b)
	}
	if s := c.Size(); s.Width != 10 || s.Height != 5 {
		t.Fatalf("Size() = %+v", s)
	}
	c.DrawRect(rendering.RectFromLTWH(5, 0, 5, 5), rendering.FillPaint(rendering.ColorRed))
	if c.Image().RGBAAt(9, 5).A != 0 || c.Image().RGBAAt(11, 5).A != 255 {
		t.Error("rect was not scaled to device pixels")
	}
}
