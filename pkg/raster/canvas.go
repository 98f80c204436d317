// Package raster implements rendering.Canvas on top of an *image.RGBA.
//
// Paths are turned into coverage masks with golang.org/x/image/vector, clips
// are kept as a stack of alpha masks, images are scaled with
// golang.org/x/image/draw and shadows are blurred with bild.
package raster

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/barskin/pkg/rendering"
)

// Canvas draws into an RGBA image. Coordinates are in points and are
// multiplied by the scale factor to get pixels.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dst   *image.RGBA
	scale float64
	size  rendering.Size

	// clip is the current clip mask; nil means nothing is clipped.
	// Masks are never mutated once installed, so Save only stores pointers.
	clip  *image.Alpha
	stack []*image.Alpha

	ras *vector.Rasterizer
}

// New returns a canvas drawing into dst. scale is the number of pixels per
// point; values <= 0 are treated as 1.
func New(dst *image.RGBA, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	b := dst.Bounds()
	return &Canvas{
		dst:   dst,
		scale: scale,
		size: rendering.Size{
			Width:  float64(b.Dx()) / scale,
			Height: float64(b.Dy()) / scale,
		},
		ras: vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// NewImage allocates a transparent image large enough for size at scale and
// returns a canvas drawing into it.
func NewImage(size rendering.Size, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	w := int(size.Width*scale + 0.5)
	h := int(size.Height*scale + 0.5)
	return New(image.NewRGBA(image.Rect(0, 0, w, h)), scale)
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Size returns the size of the canvas in points.
func (c *Canvas) Size() rendering.Size {
	return c.size
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.clip)
}

// Restore pops the clip saved by the matching Save. Unbalanced calls are
// ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) ClipRect(rect rendering.Rect) {
	p := rendering.NewPath()
	p.AddRect(rect)
	c.ClipPath(p, rendering.ClipOpIntersect)
}

func (c *Canvas) ClipPath(path *rendering.Path, op rendering.ClipOp) {
	cov := c.coverage(path)
	next := image.NewAlpha(cov.Rect)
	for i, a := range cov.Pix {
		if op == rendering.ClipOpDifference {
			a = 0xFF - a
		}
		if c.clip != nil {
			a = mul8(a, c.clip.Pix[i])
		}
		next.Pix[i] = a
	}
	c.clip = next
}

func (c *Canvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	p := rendering.NewPath()
	p.AddRect(rect)
	c.DrawPath(p, paint)
}

func (c *Canvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	if paint.Style == rendering.PaintStyleStroke {
		if paint.StrokeWidth <= 0 {
			return
		}
		path = strokeOutline(path, paint.StrokeWidth)
	}
	mask := c.clipped(c.coverage(path))
	draw.DrawMask(c.dst, c.dst.Bounds(), c.source(paint), image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *Canvas) DrawImageRect(img image.Image, dstRect rendering.Rect) {
	if img == nil {
		return
	}
	visible := dstRect.Intersect(rendering.RectFromLTWH(0, 0, c.size.Width, c.size.Height))
	if visible.IsEmpty() {
		return
	}
	r := c.pixelRect(dstRect)
	opts := &draw.Options{}
	if c.clip != nil {
		opts.DstMask = c.clip
	}
	draw.BiLinear.Scale(c.dst, r, img, img.Bounds(), draw.Over, opts)
}

func (c *Canvas) DrawPathShadow(path *rendering.Path, shadow rendering.BoxShadow) {
	cov := c.coverage(translated(path, shadow.Offset))
	var alpha []uint8
	if sigma := shadow.Sigma() * c.scale; sigma > 0 {
		blurred := blur.Gaussian(cov, sigma)
		alpha = make([]uint8, len(cov.Pix))
		for i := range alpha {
			alpha[i] = blurred.Pix[i*4+3]
		}
	} else {
		alpha = cov.Pix
	}
	mask := image.NewAlpha(cov.Rect)
	copy(mask.Pix, alpha)
	mask = c.clipped(mask)
	src := image.NewUniform(shadow.Color.NRGBA())
	draw.DrawMask(c.dst, c.dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// coverage rasterizes the filled path into a mask the size of the canvas.
func (c *Canvas) coverage(path *rendering.Path) *image.Alpha {
	b := c.dst.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	if path == nil || path.IsEmpty() {
		return mask
	}
	c.ras.Reset(b.Dx(), b.Dy())
	s := float32(c.scale)
	open := false
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case rendering.PathOpMoveTo:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(float32(a[0])*s, float32(a[1])*s)
			open = true
		case rendering.PathOpLineTo:
			c.ras.LineTo(float32(a[0])*s, float32(a[1])*s)
		case rendering.PathOpQuadTo:
			c.ras.QuadTo(float32(a[0])*s, float32(a[1])*s, float32(a[2])*s, float32(a[3])*s)
		case rendering.PathOpCubicTo:
			c.ras.CubeTo(
				float32(a[0])*s, float32(a[1])*s,
				float32(a[2])*s, float32(a[3])*s,
				float32(a[4])*s, float32(a[5])*s,
			)
		case rendering.PathOpClose:
			if open {
				c.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.ras.ClosePath()
	}
	c.ras.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	return mask
}

// clipped multiplies mask by the current clip in place and returns it.
func (c *Canvas) clipped(mask *image.Alpha) *image.Alpha {
	if c.clip == nil {
		return mask
	}
	for i, a := range mask.Pix {
		mask.Pix[i] = mul8(a, c.clip.Pix[i])
	}
	return mask
}

func (c *Canvas) source(paint rendering.Paint) image.Image {
	if paint.Gradient != nil {
		return &gradientImage{gradient: paint.Gradient, scale: c.scale, bounds: c.dst.Bounds()}
	}
	return image.NewUniform(paint.Color.NRGBA())
}

func (c *Canvas) pixelRect(r rendering.Rect) image.Rectangle {
	return image.Rect(
		int(r.Left*c.scale+0.5),
		int(r.Top*c.scale+0.5),
		int(r.Right*c.scale+0.5),
		int(r.Bottom*c.scale+0.5),
	)
}

// CoverageAt returns the current clip coverage at pixel (x, y); 255 when
// nothing is clipped.
func (c *Canvas) CoverageAt(x, y int) uint8 {
	if c.clip == nil {
		return 0xFF
	}
	return c.clip.AlphaAt(x, y).A
}

// mul8 multiplies two 8-bit coverage values.
func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// gradientImage evaluates a linear gradient per pixel.
type gradientImage struct {
	gradient *rendering.LinearGradient
	scale    float64
	bounds   image.Rectangle
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle { return g.bounds }

func (g *gradientImage) At(x, y int) color.Color {
	p := rendering.Offset{X: (float64(x) + 0.5) / g.scale, Y: (float64(y) + 0.5) / g.scale}
	return g.gradient.ColorAt(p).NRGBA()
}

func translated(path *rendering.Path, by rendering.Offset) *rendering.Path {
	if by == (rendering.Offset{}) {
		return path
	}
	out := path.Copy()
	for _, cmd := range out.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			cmd.Args[i] += by.X
			cmd.Args[i+1] += by.Y
		}
	}
	return out
}
