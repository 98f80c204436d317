package testing

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/go-drift/barskin/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String formats the op on one line with its params in key order, for test
// failure messages.
func (op DisplayOp) String() string {
	if len(op.Params) == 0 {
		return op.Op
	}
	out := op.Op
	for _, k := range sortedKeys(op.Params) {
		out += fmt.Sprintf(" %s=%v", k, op.Params[k])
	}
	return out
}

// Param returns the named parameter, or nil when it is absent.
func (op DisplayOp) Param(key string) any {
	return op.Params[key]
}

// serializingCanvas implements rendering.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) ClipRect(rect rendering.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) ClipPath(path *rendering.Path, op rendering.ClipOp) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipPath",
		Params: sortedMap("op", op.String(), "bounds", serializePathBounds(path)),
	})
}

func (c *serializingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	params := serializePaint(paint)
	params["bounds"] = serializePathBounds(path)
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawImageRect(img image.Image, dstRect rendering.Rect) {
	params := sortedMap("dst", serializeRect(dstRect))
	if img != nil {
		b := img.Bounds()
		params["image"] = sortedMap("width", b.Dx(), "height", b.Dy())
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImageRect", Params: params})
}

func (c *serializingCanvas) DrawPathShadow(path *rendering.Path, shadow rendering.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawPathShadow",
		Params: sortedMap(
			"bounds", serializePathBounds(path),
			"color", serializeColor(shadow.Color),
			"blur", round2(shadow.BlurRadius),
			"dx", round2(shadow.Offset.X),
			"dy", round2(shadow.Offset.Y),
		),
	})
}

func (c *serializingCanvas) Size() rendering.Size {
	return c.size
}

// Record paints through a display list and returns the serialized ops.
func Record(size rendering.Size, paint func(canvas rendering.Canvas)) []DisplayOp {
	recorder := &rendering.PictureRecorder{}
	paint(recorder.BeginRecording(size))
	return serializeDisplayList(recorder.EndRecording())
}

// OpNames returns the op name of each display op, in order.
func OpNames(ops []DisplayOp) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializePathBounds(p *rendering.Path) map[string]any {
	if p == nil {
		return nil
	}
	return serializeRect(p.Bounds())
}

func serializePaint(p rendering.Paint) map[string]any {
	params := sortedMap("style", p.Style.String())
	if p.Gradient != nil {
		stops := make([]any, len(p.Gradient.Stops))
		for i, s := range p.Gradient.Stops {
			stops[i] = sortedMap("position", round2(s.Position), "color", serializeColor(s.Color))
		}
		params["gradient"] = sortedMap(
			"start", sortedMap("x", round2(p.Gradient.Start.X), "y", round2(p.Gradient.Start.Y)),
			"end", sortedMap("x", round2(p.Gradient.End.X), "y", round2(p.Gradient.End.Y)),
			"stops", stops,
		)
	} else {
		params["color"] = serializeColor(p.Color)
	}
	if p.Style == rendering.PaintStyleStroke {
		params["strokeWidth"] = round2(p.StrokeWidth)
	}
	return params
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// Keys are sorted alphabetically in the resulting map (Go maps iterate
// in random order, but JSON marshaling sorts keys via our snapshot encoder).
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
