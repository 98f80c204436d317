package rendering

// BoxShadow defines a shadow drawn around a shape.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
}

// Sigma returns the gaussian blur sigma for the shadow.
// Returns 0 if BlurRadius is not positive.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// NewBoxShadow creates a shadow directly beneath the shape with the given
// color and blur radius.
func NewBoxShadow(color Color, blurRadius float64) BoxShadow {
	return BoxShadow{
		Color:      color,
		BlurRadius: blurRadius,
	}
}
