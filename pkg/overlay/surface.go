// Package overlay hosts the skin drawn over the menu bar: the surface that
// paints it, the controller that shows and hides its window, and the frame
// scheduler that drives painting.
package overlay

import (
	"fmt"

	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/compositor"
	"github.com/go-drift/barskin/pkg/core"
	"github.com/go-drift/barskin/pkg/errors"
	"github.com/go-drift/barskin/pkg/rendering"
	"github.com/go-drift/barskin/pkg/sections"
	"github.com/go-drift/barskin/pkg/shape"
)

// ShadowInset is how far the surface extends below the bar so the shadow
// has room to fall.
const ShadowInset = 5.0

// SurfaceFrame returns the surface frame for a bar frame: the bar extended
// ShadowInset points downward.
func SurfaceFrame(barFrame rendering.Rect) rendering.Rect {
	barFrame.Bottom += ShadowInset
	return barFrame
}

// AdjustedBounds returns the part of the surface bounds covering the bar.
func AdjustedBounds(bounds rendering.Rect) rendering.Rect {
	bounds.Bottom -= ShadowInset
	if bounds.Bottom < bounds.Top {
		bounds.Bottom = bounds.Top
	}
	return bounds
}

// Renderer presents frames painted by a Surface.
type Renderer interface {
	// Render calls paint with a canvas of the given size and presents the
	// result.
	Render(size rendering.Size, paint func(canvas rendering.Canvas)) error
}

// Options configures a Surface.
type Options struct {
	Model    *appearance.Model
	Sections *sections.Tracker
	Renderer Renderer

	// Window, if set, is shown and hidden by a VisibilityController.
	Window Window
	// ActiveApplication, if set, triggers a repaint whenever the frontmost
	// application changes.
	ActiveApplication *core.Observable[string]
}

// Surface paints the overlay for one bar.
//
// Bar frame, section positions and MainMenuMaxX are in screen coordinates.
// Painting happens in surface coordinates, with the origin at the surface's
// top left corner.
//
// A Surface must be created, used and closed on the UI thread.
type Surface struct {
	model    *appearance.Model
	sections *sections.Tracker
	renderer Renderer

	scheduler  *Scheduler
	visibility *VisibilityController
	subs       core.Subscriptions

	barFrame rendering.Rect
}

// NewSurface creates a surface and subscribes it to everything it draws
// from. The surface is marked as needing display.
func NewSurface(barFrame rendering.Rect, opts Options) (*Surface, error) {
	if opts.Model == nil {
		return nil, fmt.Errorf("overlay: surface needs a model")
	}
	s := &Surface{
		model:    opts.Model,
		sections: opts.Sections,
		renderer: opts.Renderer,
		barFrame: barFrame,
	}
	s.scheduler = NewScheduler(s.display)

	s.subs.Add(s.model.Changes().AddListener(s.scheduler.MarkNeedsDisplay))
	for _, name := range []sections.Name{sections.Hidden, sections.AlwaysHidden} {
		if sec, ok := s.sections.Section(name); ok {
			s.subs.Add(sec.Changes().AddListener(s.scheduler.MarkNeedsDisplay))
		}
	}
	if opts.ActiveApplication != nil {
		s.subs.Add(opts.ActiveApplication.AddListener(s.scheduler.MarkNeedsDisplay))
	}
	if opts.Window != nil {
		s.visibility = NewVisibilityController(s.model, opts.Window)
	}

	s.scheduler.MarkNeedsDisplay()
	return s, nil
}

// Scheduler returns the scheduler that drives this surface's frames.
func (s *Surface) Scheduler() *Scheduler {
	return s.scheduler
}

// Visibility returns the surface's visibility controller, or nil when the
// surface has no window.
func (s *Surface) Visibility() *VisibilityController {
	return s.visibility
}

// BarFrame returns the frame of the bar in screen coordinates.
func (s *Surface) BarFrame() rendering.Rect {
	return s.barFrame
}

// Frame returns the surface frame in screen coordinates.
func (s *Surface) Frame() rendering.Rect {
	return SurfaceFrame(s.barFrame)
}

// SetBarFrame moves the surface to a new bar frame.
func (s *Surface) SetBarFrame(frame rendering.Rect) {
	if frame == s.barFrame {
		return
	}
	s.barFrame = frame
	s.scheduler.MarkNeedsDisplay()
}

// Shape returns the shape the next paint would use, in surface coordinates.
func (s *Surface) Shape() shape.Shape {
	return s.shape(s.model.Style())
}

func (s *Surface) shape(style appearance.Style) shape.Shape {
	frame := s.Frame()
	rect := AdjustedBounds(frame)
	built := shape.Builder{Sections: s.sections}.Build(rect, style)
	return built.Translate(-frame.Left, -frame.Top)
}

// Paint draws one frame of the overlay onto canvas, which must cover the
// surface.
func (s *Surface) Paint(canvas rendering.Canvas) {
	style := s.model.Style()
	bounds := rendering.RectFromSize(s.Frame().Size())
	rect := AdjustedBounds(bounds)
	compositor.Composite(canvas, bounds, rect, s.shape(style), style.ShapeKind, style)
}

func (s *Surface) display() {
	if s.renderer == nil {
		return
	}
	if err := s.renderer.Render(s.Frame().Size(), s.Paint); err != nil {
		errors.Report(&errors.OverlayError{
			Op:   "overlay.display",
			Kind: errors.KindRender,
			Err:  err,
		})
	}
}

// Close releases the surface's subscriptions. Frames already queued on the
// scheduler still run but paint nothing new.
func (s *Surface) Close() {
	s.subs.Cancel()
	if s.visibility != nil {
		s.visibility.Stop()
	}
	s.renderer = nil
}
