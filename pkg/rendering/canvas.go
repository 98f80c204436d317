package rendering

import (
	"fmt"
	"image"
)

// ClipOp selects how a clip path combines with the current clip.
type ClipOp int

const (
	// ClipOpIntersect keeps only the area inside the path.
	ClipOpIntersect ClipOp = iota
	// ClipOpDifference keeps only the area outside the path.
	ClipOpDifference
)

// String returns a human-readable representation of the clip op.
func (o ClipOp) String() string {
	switch o {
	case ClipOpIntersect:
		return "intersect"
	case ClipOpDifference:
		return "difference"
	default:
		return fmt.Sprintf("ClipOp(%d)", int(o))
	}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current clip state.
	Save()

	// Restore pops the most recent clip state.
	Restore()

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipPath restricts future drawing by the given path. With
	// ClipOpDifference only the area outside the path stays drawable.
	ClipPath(path *Path, op ClipOp)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImageRect draws the whole image scaled into dstRect.
	DrawImageRect(img image.Image, dstRect Rect)

	// DrawPathShadow draws a blurred shadow of the filled path.
	DrawPathShadow(path *Path, shadow BoxShadow)

	// Size returns the size of the canvas in points.
	Size() Size
}
