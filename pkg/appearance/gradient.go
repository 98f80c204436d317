package appearance

import (
	"github.com/go-drift/barskin/pkg/rendering"
)

// GradientStop is one color stop of a tint gradient. Color is a hex string
// ("#rrggbb" or "#rrggbbaa").
type GradientStop struct {
	Location float64 `yaml:"location" toml:"location"`
	Color    string  `yaml:"color" toml:"color"`
}

// Gradient is an ordered list of color stops.
type Gradient struct {
	Stops []GradientStop `yaml:"stops" toml:"stops"`
}

// Equal reports whether both gradients have the same stops.
func (g Gradient) Equal(other Gradient) bool {
	if len(g.Stops) != len(other.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != other.Stops[i] {
			return false
		}
	}
	return true
}

// WithAlphaComponent returns a copy of the gradient with every stop's alpha
// replaced by a (0.0 to 1.0). Stops whose color cannot be parsed are kept
// unchanged.
func (g Gradient) WithAlphaComponent(a float64) Gradient {
	out := Gradient{Stops: make([]GradientStop, len(g.Stops))}
	for i, stop := range g.Stops {
		out.Stops[i] = stop
		if c, err := rendering.ParseHexColor(stop.Color); err == nil {
			out.Stops[i].Color = c.WithAlphaF(a).Hex()
		}
	}
	return out
}

// Resolve parses the stops into rendering stops, dropping any stop with an
// unparseable color or a location outside [0, 1]. ok is false when fewer
// than two stops survive.
func (g Gradient) Resolve() (stops []rendering.GradientStop, ok bool) {
	for _, stop := range g.Stops {
		if stop.Location < 0 || stop.Location > 1 {
			continue
		}
		c, err := rendering.ParseHexColor(stop.Color)
		if err != nil {
			continue
		}
		stops = append(stops, rendering.GradientStop{Position: stop.Location, Color: c})
	}
	return stops, len(stops) >= 2
}

// Linear returns the gradient drawn across rect at the given angle, or nil
// when it cannot be rendered.
func (g Gradient) Linear(rect rendering.Rect, degrees float64) *rendering.LinearGradient {
	stops, ok := g.Resolve()
	if !ok {
		return nil
	}
	lg := rendering.NewAngledGradient(rect, degrees, stops)
	if !lg.IsValid() {
		return nil
	}
	return lg
}
