package overlay

import (
	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/core"
)

// Window is the host window the overlay draws in.
type Window interface {
	Show()
	Hide()
}

// ShouldShow reports whether the overlay has anything to draw.
func ShouldShow(tint appearance.TintKind, kind appearance.ShapeKind) bool {
	return tint != appearance.TintNone || kind != appearance.ShapeNone
}

// VisibilityController shows the host window while the overlay has
// something to draw and hides it otherwise.
//
// It re-evaluates whenever the tint kind, the shape kind or the shadow
// setting changes. The shadow setting only triggers an evaluation; it does
// not take part in the decision, since a shadow is never drawn without a
// shape.
type VisibilityController struct {
	model  *appearance.Model
	window Window
	subs   core.Subscriptions

	visible bool
}

// NewVisibilityController subscribes to model and applies the current
// visibility to window right away.
func NewVisibilityController(model *appearance.Model, window Window) *VisibilityController {
	c := &VisibilityController{model: model, window: window}
	c.subs.Add(model.TintKind.AddListener(c.update))
	c.subs.Add(model.ShapeKind.AddListener(c.update))
	c.subs.Add(model.HasShadow.AddListener(c.update))
	c.update()
	return c
}

// Visible reports the most recent decision.
func (c *VisibilityController) Visible() bool {
	return c.visible
}

// Stop removes the controller's subscriptions. The window keeps its
// current visibility.
func (c *VisibilityController) Stop() {
	c.subs.Cancel()
}

func (c *VisibilityController) update() {
	c.visible = ShouldShow(c.model.TintKind.Value(), c.model.ShapeKind.Value())
	if c.visible {
		c.window.Show()
	} else {
		c.window.Hide()
	}
}
