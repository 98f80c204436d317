package shape

import (
	"math"

	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/errors"
	"github.com/go-drift/barskin/pkg/rendering"
	"github.com/go-drift/barskin/pkg/sections"
)

// SplitPad is the gap kept between a split boundary and the items on either
// side of it.
const SplitPad = 10.0

// Sections looks up bar sections by name.
type Sections interface {
	Section(name sections.Name) (*sections.Section, bool)
}

// Build returns the shape for rect in the given mode.
//
// Build never fails. When a split shape cannot be computed it logs a notice
// and returns the full rectangle; when the two halves of a split shape would
// overlap it returns the full shape over rect instead.
func Build(
	rect rendering.Rect,
	kind appearance.ShapeKind,
	full appearance.FullShapeInfo,
	split appearance.SplitShapeInfo,
	secs Sections,
	mainMenuMaxX float64,
) Shape {
	switch kind {
	case appearance.ShapeFull:
		return Full(rect, full)
	case appearance.ShapeSplit:
		return Split(rect, full, split, secs, mainMenuMaxX)
	default:
		return FromRect(rect)
	}
}

// Full returns a single region over rect with the given end caps.
func Full(rect rendering.Rect, info appearance.FullShapeInfo) Shape {
	return FromRegions(Region{
		Bounds:   rect,
		Leading:  info.LeadingEndCap,
		Trailing: info.TrailingEndCap,
	})
}

// Split returns two regions: one from the leading edge of rect to just past
// the main menu, and one from just before the active hidden section's
// control item to the trailing edge. full is used when the two overlap.
func Split(
	rect rendering.Rect,
	full appearance.FullShapeInfo,
	split appearance.SplitShapeInfo,
	secs Sections,
	mainMenuMaxX float64,
) Shape {
	if secs == nil {
		return splitUnavailable(rect, "sections unavailable")
	}
	hidden, ok := secs.Section(sections.Hidden)
	if !ok {
		return splitUnavailable(rect, "missing section", "section", string(sections.Hidden))
	}
	alwaysHidden, ok := secs.Section(sections.AlwaysHidden)
	if !ok {
		return splitUnavailable(rect, "missing section", "section", string(sections.AlwaysHidden))
	}

	active := alwaysHidden
	if hidden.Hidden() {
		active = hidden
	}
	position, ok := active.ControlPosition()
	if !ok {
		return splitUnavailable(rect, "section position unknown", "section", string(active.Name()))
	}

	leading := Region{
		Bounds:   spanX(rect, rect.Left, mainMenuMaxX+SplitPad),
		Leading:  split.Leading.LeadingEndCap,
		Trailing: split.Leading.TrailingEndCap,
	}
	trailing := Region{
		Bounds:   spanX(rect, position-SplitPad, rect.Right),
		Leading:  split.Trailing.LeadingEndCap,
		Trailing: split.Trailing.TrailingEndCap,
	}
	if leading.Intersects(trailing) {
		return Full(rect, full)
	}
	return FromRegions(leading, trailing)
}

// spanX returns the part of rect between x0 and x1, clamped to rect.
func spanX(rect rendering.Rect, x0, x1 float64) rendering.Rect {
	left := math.Min(math.Max(x0, rect.Left), rect.Right)
	right := math.Min(math.Max(x1, left), rect.Right)
	return rendering.Rect{Left: left, Top: rect.Top, Right: right, Bottom: rect.Bottom}
}

func splitUnavailable(rect rendering.Rect, reason string, attrs ...any) Shape {
	errors.ReportNotice("shape.Split", "unable to draw split shape",
		append([]any{"reason", reason}, attrs...)...)
	return FromRect(rect)
}

// Builder builds shapes from a style snapshot.
type Builder struct {
	Sections Sections
}

// Build returns the shape for rect described by style.
func (b Builder) Build(rect rendering.Rect, style appearance.Style) Shape {
	return Build(rect, style.ShapeKind, style.FullShapeInfo, style.SplitShapeInfo, b.Sections, style.MainMenuMaxX)
}
