package overlay

import (
	goerrors "errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/core"
	"github.com/go-drift/barskin/pkg/errors"
	"github.com/go-drift/barskin/pkg/rendering"
	"github.com/go-drift/barskin/pkg/sections"
	skintest "github.com/go-drift/barskin/pkg/testing"
)

var barFrame = rendering.RectFromLTWH(100, 0, 600, 24)

func newTestSurface(t *testing.T, opts Options) (*Surface, *RecordingRenderer) {
	t.Helper()
	if opts.Model == nil {
		opts.Model = appearance.NewModel()
	}
	if opts.Sections == nil {
		opts.Sections = sections.NewDefaultTracker()
	}
	r := &RecordingRenderer{}
	if opts.Renderer == nil {
		opts.Renderer = r
	}
	s, err := NewSurface(barFrame, opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, r
}

func TestSurfaceFrameGeometry(t *testing.T) {
	assert.Equal(t, rendering.RectFromLTWH(100, 0, 600, 29), SurfaceFrame(barFrame))
	assert.Equal(t, rendering.RectFromLTWH(0, 0, 600, 24), AdjustedBounds(rendering.RectFromLTWH(0, 0, 600, 29)))
	assert.Equal(t, rendering.RectFromLTWH(0, 0, 10, 0), AdjustedBounds(rendering.RectFromLTWH(0, 0, 10, 3)))
}

func TestNewSurfaceRequiresModel(t *testing.T) {
	_, err := NewSurface(barFrame, Options{})
	assert.Error(t, err)
}

func TestSurfacePaintsInitialFrame(t *testing.T) {
	s, r := newTestSurface(t, Options{})

	assert.True(t, s.Scheduler().NeedsFrame())
	s.Scheduler().Tick()
	assert.Equal(t, 1, r.Frames)
	require.NotNil(t, r.Last)
	assert.Equal(t, rendering.Size{Width: 600, Height: 29}, r.Last.Size())
}

func TestSurfaceCoalescesModelChanges(t *testing.T) {
	m := appearance.NewModel()
	s, r := newTestSurface(t, Options{Model: m})
	s.Scheduler().Tick()

	m.TintKind.Set(appearance.TintSolid)
	m.ShapeKind.Set(appearance.ShapeFull)
	m.HasBorder.Set(true)
	s.Scheduler().Tick()

	assert.Equal(t, 2, r.Frames)
	assert.False(t, s.Scheduler().NeedsFrame())
}

func TestSurfaceRepaintTriggers(t *testing.T) {
	tr := sections.NewDefaultTracker()
	app := core.NewObservable("Finder")
	s, r := newTestSurface(t, Options{Sections: tr, ActiveApplication: app})
	s.Scheduler().Tick()

	triggers := []struct {
		name string
		fire func()
	}{
		{"hidden state", func() { tr.SetHidden(sections.Hidden, true) }},
		{"hidden position", func() { tr.UpdatePosition(sections.Hidden, 400) }},
		{"always-hidden position", func() { tr.UpdatePosition(sections.AlwaysHidden, 300) }},
		{"active application", func() { app.Set("Safari") }},
		{"bar frame", func() { s.SetBarFrame(rendering.RectFromLTWH(0, 0, 800, 24)) }},
	}
	for i, tt := range triggers {
		tt.fire()
		assert.True(t, s.Scheduler().NeedsFrame(), tt.name)
		s.Scheduler().Tick()
		assert.Equal(t, i+2, r.Frames, tt.name)
	}

	tr.SetHidden(sections.Visible, true)
	assert.False(t, s.Scheduler().NeedsFrame(), "the visible section does not affect the shape")
}

func TestSurfaceShapeInSurfaceCoordinates(t *testing.T) {
	style := appearance.DefaultStyle()
	style.ShapeKind = appearance.ShapeSplit
	style.MainMenuMaxX = 300

	tr := sections.NewDefaultTracker()
	tr.SetScreen(rendering.RectFromLTWH(0, 0, 800, 600))
	tr.SetHidden(sections.Hidden, true)
	tr.UpdatePosition(sections.Hidden, 500)
	tr.UpdatePosition(sections.AlwaysHidden, 450)

	s, _ := newTestSurface(t, Options{Model: appearance.NewModelWithStyle(style), Sections: tr})

	regions := s.Shape().Regions()
	require.Len(t, regions, 2)
	assert.True(t, regions[0].Bounds.ApproxEqual(rendering.RectFromLTWH(0, 0, 210, 24)), "%+v", regions[0].Bounds)
	assert.True(t, regions[1].Bounds.ApproxEqual(rendering.RectFromLTWH(390, 0, 210, 24)), "%+v", regions[1].Bounds)
}

func TestSurfacePaintComposites(t *testing.T) {
	style := appearance.DefaultStyle()
	style.ShapeKind = appearance.ShapeFull
	style.TintKind = appearance.TintSolid
	style.HasBorder = true

	s, _ := newTestSurface(t, Options{Model: appearance.NewModelWithStyle(style)})
	ops := skintest.Record(s.Frame().Size(), s.Paint)

	assert.Equal(t, []string{"save", "clipPath", "drawRect", "drawPath", "restore"}, skintest.OpNames(ops))
	assert.Equal(t, map[string]any{"left": 0.0, "top": 0.0, "right": 600.0, "bottom": 24.0}, ops[2].Param("rect"))
}

func TestSurfaceWindowVisibility(t *testing.T) {
	m := appearance.NewModel()
	w := &fakeWindow{}
	s, _ := newTestSurface(t, Options{Model: m, Window: w})

	require.NotNil(t, s.Visibility())
	assert.False(t, w.visible)
	m.TintKind.Set(appearance.TintGradient)
	assert.True(t, w.visible)
}

func TestSurfaceClose(t *testing.T) {
	m := appearance.NewModel()
	s, r := newTestSurface(t, Options{Model: m})
	s.Scheduler().Tick()
	s.Close()

	m.TintKind.Set(appearance.TintSolid)
	assert.False(t, s.Scheduler().NeedsFrame())

	s.Scheduler().MarkNeedsDisplay()
	s.Scheduler().Tick()
	assert.Equal(t, 1, r.Frames)
}

type failingRenderer struct{}

func (failingRenderer) Render(rendering.Size, func(rendering.Canvas)) error {
	return goerrors.New("no drawable")
}

func TestSurfaceReportsRenderErrors(t *testing.T) {
	rec := &errors.Recorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	s, _ := newTestSurface(t, Options{Renderer: failingRenderer{}})
	s.Scheduler().Tick()

	require.Equal(t, 1, rec.ErrorCount())
	assert.Equal(t, "overlay.display", rec.Errors[0].Op)
	assert.Equal(t, errors.KindRender, rec.Errors[0].Kind)
}

func TestRasterRenderer(t *testing.T) {
	var got *image.RGBA
	r := &RasterRenderer{Scale: 2, Present: func(img *image.RGBA) error {
		got = img
		return nil
	}}

	style := appearance.DefaultStyle()
	style.TintKind = appearance.TintSolid
	style.TintColor = "#ffffff"
	s, _ := newTestSurface(t, Options{Model: appearance.NewModelWithStyle(style), Renderer: r})
	s.Scheduler().Tick()

	require.NotNil(t, got)
	assert.Equal(t, image.Rect(0, 0, 1200, 58), got.Bounds())
	assert.InDelta(t, 51, int(got.RGBAAt(600, 20).A), 2, "tinted bar")
	assert.Equal(t, uint8(0), got.RGBAAt(600, 54).A, "shadow margin stays clear")
}
