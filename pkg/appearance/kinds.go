package appearance

import "fmt"

// EndCap is the shape of one end of a bar region.
type EndCap int

const (
	// EndCapSquare ends the region with a square corner.
	EndCapSquare EndCap = iota
	// EndCapRound ends the region with a half ellipse.
	EndCapRound
)

func (c EndCap) String() string {
	switch c {
	case EndCapSquare:
		return "square"
	case EndCapRound:
		return "round"
	default:
		return fmt.Sprintf("EndCap(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c EndCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *EndCap) UnmarshalText(text []byte) error {
	switch string(text) {
	case "square":
		*c = EndCapSquare
	case "round":
		*c = EndCapRound
	default:
		return fmt.Errorf("unknown end cap %q", text)
	}
	return nil
}

// ShapeKind selects how the overlay is shaped.
type ShapeKind int

const (
	// ShapeNone covers the whole bar.
	ShapeNone ShapeKind = iota
	// ShapeFull covers the whole bar with configurable end caps.
	ShapeFull
	// ShapeSplit covers the main menu and the visible status items as two
	// separate regions.
	ShapeSplit
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapeFull:
		return "full"
	case ShapeSplit:
		return "split"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*k = ShapeNone
	case "full":
		*k = ShapeFull
	case "split":
		*k = ShapeSplit
	default:
		return fmt.Errorf("unknown shape kind %q", text)
	}
	return nil
}

// TintKind selects how the overlay is tinted.
type TintKind int

const (
	// TintNone draws no tint.
	TintNone TintKind = iota
	// TintSolid fills the shape with a single color.
	TintSolid
	// TintGradient fills the shape with a horizontal gradient.
	TintGradient
)

func (k TintKind) String() string {
	switch k {
	case TintNone:
		return "none"
	case TintSolid:
		return "solid"
	case TintGradient:
		return "gradient"
	default:
		return fmt.Sprintf("TintKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k TintKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TintKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*k = TintNone
	case "solid":
		*k = TintSolid
	case "gradient":
		*k = TintGradient
	default:
		return fmt.Errorf("unknown tint kind %q", text)
	}
	return nil
}

// FullShapeInfo holds the end caps of a full shape.
type FullShapeInfo struct {
	LeadingEndCap  EndCap `yaml:"leading" toml:"leading"`
	TrailingEndCap EndCap `yaml:"trailing" toml:"trailing"`
}

// SplitShapeInfo holds the end caps of both halves of a split shape.
type SplitShapeInfo struct {
	Leading  FullShapeInfo `yaml:"leading" toml:"leading"`
	Trailing FullShapeInfo `yaml:"trailing" toml:"trailing"`
}
