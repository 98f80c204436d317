package overlay

import (
	"image"

	"github.com/go-drift/barskin/pkg/raster"
	"github.com/go-drift/barskin/pkg/rendering"
)

// RasterRenderer paints frames into RGBA images.
type RasterRenderer struct {
	// Scale is the number of pixels per point; zero means 1.
	Scale float64
	// Present receives each finished frame.
	Present func(img *image.RGBA) error
}

// Render implements Renderer.
func (r *RasterRenderer) Render(size rendering.Size, paint func(canvas rendering.Canvas)) error {
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	canvas := raster.NewImage(size, scale)
	paint(canvas)
	if r.Present == nil {
		return nil
	}
	return r.Present(canvas.Image())
}

// RecordingRenderer keeps the display list of the most recent frame.
type RecordingRenderer struct {
	Last *rendering.DisplayList
	// Frames counts rendered frames.
	Frames int
}

// Render implements Renderer.
func (r *RecordingRenderer) Render(size rendering.Size, paint func(canvas rendering.Canvas)) error {
	recorder := &rendering.PictureRecorder{}
	paint(recorder.BeginRecording(size))
	r.Last = recorder.EndRecording()
	r.Frames++
	return nil
}
