package compositor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/raster"
	"github.com/go-drift/barskin/pkg/rendering"
	"github.com/go-drift/barskin/pkg/shape"
	skintest "github.com/go-drift/barskin/pkg/testing"
)

var (
	bounds = rendering.RectFromLTWH(0, 0, 60, 30)
	rect   = rendering.RectFromLTWH(0, 0, 60, 24)
	round  = appearance.FullShapeInfo{
		LeadingEndCap:  appearance.EndCapRound,
		TrailingEndCap: appearance.EndCapRound,
	}
)

func fullStyle() appearance.Style {
	style := appearance.DefaultStyle()
	style.ShapeKind = appearance.ShapeFull
	style.FullShapeInfo = round
	style.TintKind = appearance.TintSolid
	style.TintColor = "#ff0000"
	return style
}

func solidImage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func record(style appearance.Style) []skintest.DisplayOp {
	s := shape.Full(rect, style.FullShapeInfo)
	return skintest.Record(bounds.Size(), func(c rendering.Canvas) {
		Composite(c, bounds, rect, s, style.ShapeKind, style)
	})
}

func TestLayerOrder(t *testing.T) {
	style := fullStyle()
	style.Wallpaper = solidImage(color.RGBA{G: 255, A: 255})
	style.HasShadow = true
	style.HasBorder = true

	ops := record(style)

	assert.Equal(t, []string{
		"save",
		"save", "clipRect", "clipPath", "drawImageRect", "restore",
		"save", "clipRect", "clipPath", "drawPathShadow", "restore",
		"clipPath", "drawRect", "drawPath",
		"restore",
	}, skintest.OpNames(ops))

	assert.Equal(t, "difference", ops[3].Param("op"))
	assert.Equal(t, "difference", ops[8].Param("op"))
	assert.Equal(t, "intersect", ops[11].Param("op"))
}

func TestBorderDrawnLastWithSolidTint(t *testing.T) {
	style := fullStyle()
	style.HasBorder = true
	style.BorderColor = "#0000ff"
	style.BorderWidth = 1.5

	ops := record(style)
	require.GreaterOrEqual(t, len(ops), 2)

	border := ops[len(ops)-2]
	assert.Equal(t, "drawPath", border.Op)
	assert.Equal(t, "stroke", border.Param("style"))
	assert.Equal(t, 3.0, border.Param("strokeWidth"))
	assert.Equal(t, "0xFF0000FF", border.Param("color"))

	tint := ops[len(ops)-3]
	assert.Equal(t, "drawRect", tint.Op)
	assert.Equal(t, "0x33FF0000", tint.Param("color"))
}

func TestNoneSkipsWallpaperShadowAndBorder(t *testing.T) {
	style := fullStyle()
	style.ShapeKind = appearance.ShapeNone
	style.Wallpaper = solidImage(color.White)
	style.HasShadow = true
	style.HasBorder = true

	s := shape.FromRect(rect)
	ops := skintest.Record(bounds.Size(), func(c rendering.Canvas) {
		Composite(c, bounds, rect, s, appearance.ShapeNone, style)
	})

	assert.Equal(t, []string{"save", "clipPath", "drawRect", "restore"}, skintest.OpNames(ops))
}

func TestTintNoneDrawsNothingInside(t *testing.T) {
	style := fullStyle()
	style.TintKind = appearance.TintNone

	assert.Equal(t, []string{"save", "clipPath", "restore"}, skintest.OpNames(record(style)))
}

func TestUnrenderableLayersAreSkipped(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*appearance.Style)
		want   []string
	}{
		{
			name:   "bad tint color",
			modify: func(s *appearance.Style) { s.TintColor = "red" },
			want:   []string{"save", "clipPath", "restore"},
		},
		{
			name: "gradient with one stop",
			modify: func(s *appearance.Style) {
				s.TintKind = appearance.TintGradient
				s.TintGradient = appearance.Gradient{Stops: []appearance.GradientStop{{Location: 0, Color: "#ffffff"}}}
			},
			want: []string{"save", "clipPath", "restore"},
		},
		{
			name: "bad border color",
			modify: func(s *appearance.Style) {
				s.HasBorder = true
				s.BorderColor = "#zzzzzz"
			},
			want: []string{"save", "clipPath", "drawRect", "restore"},
		},
		{
			name: "zero border width",
			modify: func(s *appearance.Style) {
				s.HasBorder = true
				s.BorderWidth = 0
			},
			want: []string{"save", "clipPath", "drawRect", "restore"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := fullStyle()
			tt.modify(&style)
			assert.Equal(t, tt.want, skintest.OpNames(record(style)))
		})
	}
}

func TestGradientTintUsesReducedAlpha(t *testing.T) {
	style := fullStyle()
	style.TintKind = appearance.TintGradient
	style.TintGradient = appearance.Gradient{Stops: []appearance.GradientStop{
		{Location: 0, Color: "#ff0000"},
		{Location: 1, Color: "#0000ff"},
	}}

	ops := record(style)
	require.Len(t, ops, 4)
	g, ok := ops[2].Param("gradient").(map[string]any)
	require.True(t, ok, "gradient params: %v", ops[2])

	stops := g["stops"].([]any)
	require.Len(t, stops, 2)
	assert.Equal(t, "0x33FF0000", stops[0].(map[string]any)["color"])
	assert.Equal(t, "0x330000FF", stops[1].(map[string]any)["color"])
	assert.Equal(t, map[string]any{"x": 0.0, "y": 12.0}, g["start"])
	assert.Equal(t, map[string]any{"x": 60.0, "y": 12.0}, g["end"])
}

func TestGradientTintReplacesStopAlpha(t *testing.T) {
	style := fullStyle()
	style.TintKind = appearance.TintGradient
	style.TintGradient = appearance.Gradient{Stops: []appearance.GradientStop{
		{Location: 0, Color: "#ff000080"},
		{Location: 1, Color: "#00ff00"},
	}}

	ops := record(style)
	require.Len(t, ops, 4)
	stops := ops[2].Param("gradient").(map[string]any)["stops"].([]any)
	assert.Equal(t, "0x33FF0000", stops[0].(map[string]any)["color"])
	assert.Equal(t, "0x3300FF00", stops[1].(map[string]any)["color"])
}

func TestShadowParameters(t *testing.T) {
	style := fullStyle()
	style.HasShadow = true

	ops := record(style)
	require.Greater(t, len(ops), 4)
	shadow := ops[4]
	require.Equal(t, "drawPathShadow", shadow.Op)
	assert.Equal(t, "0x80000000", shadow.Param("color"))
	assert.Equal(t, 5.0, shadow.Param("blur"))
	assert.Equal(t, 0.0, shadow.Param("dx"))
	assert.Equal(t, 0.0, shadow.Param("dy"))
}

func TestSaveRestoreBalanced(t *testing.T) {
	style := fullStyle()
	style.Wallpaper = solidImage(color.Black)
	style.HasShadow = true
	style.HasBorder = true

	depth := 0
	for _, op := range record(style) {
		switch op.Op {
		case "save":
			depth++
		case "restore":
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}
	assert.Equal(t, 0, depth)
}

func paintRaster(style appearance.Style) *image.RGBA {
	c := raster.NewImage(bounds.Size(), 1)
	Composite(c, bounds, rect, shape.Full(rect, style.FullShapeInfo), style.ShapeKind, style)
	return c.Image()
}

func TestCompositeRasterWallpaperAndTint(t *testing.T) {
	style := fullStyle()
	style.Wallpaper = solidImage(color.RGBA{G: 255, A: 255})
	img := paintRaster(style)

	// The corner outside the round cap shows the wallpaper.
	corner := img.RGBAAt(0, 0)
	assert.Equal(t, uint8(255), corner.G)
	assert.Equal(t, uint8(255), corner.A)

	// The middle of the bar is tinted red at 20%.
	mid := img.RGBAAt(30, 12)
	assert.InDelta(t, 51, int(mid.A), 2)
	assert.InDelta(t, 51, int(mid.R), 2)
	assert.Equal(t, uint8(0), mid.G)

	// Nothing is drawn below the bar.
	assert.Equal(t, uint8(0), img.RGBAAt(30, 27).A)
}

func TestCompositeRasterShadow(t *testing.T) {
	style := fullStyle()
	style.HasShadow = true
	img := paintRaster(style)

	below := img.RGBAAt(30, 25)
	assert.Greater(t, below.A, uint8(0), "shadow spills below the bar")
	assert.Equal(t, uint8(0), below.R)

	// The shadow never darkens the shape itself.
	mid := img.RGBAAt(30, 12)
	assert.Equal(t, uint8(0), mid.G)
	assert.InDelta(t, 51, int(mid.R), 2)
}
