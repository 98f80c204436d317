package rendering

import "testing"

func TestAngledGradientZeroDegreesRunsLeftToRight(t *testing.T) {
	rect := RectFromLTWH(10, 0, 100, 20)
	g := NewAngledGradient(rect, 0, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	})
	if !floatEqual(g.Start.X, 10) || !floatEqual(g.End.X, 110) {
		t.Fatalf("gradient spans %v..%v, want 10..110", g.Start.X, g.End.X)
	}
	if !floatEqual(g.Start.Y, 10) || !floatEqual(g.End.Y, 10) {
		t.Fatalf("gradient should be horizontal, got %+v -> %+v", g.Start, g.End)
	}
	if got := g.ColorAt(Offset{X: 10, Y: 3}); got != ColorBlack {
		t.Errorf("ColorAt(left) = %s", got.Hex())
	}
	if got := g.ColorAt(Offset{X: 200, Y: 3}); got != ColorWhite {
		t.Errorf("ColorAt(past end) = %s", got.Hex())
	}
	mid := g.ColorAt(Offset{X: 60, Y: 3})
	r, _, _, _ := mid.RGBAF()
	if r < 0.45 || r > 0.55 {
		t.Errorf("ColorAt(mid) red = %.3f, want about 0.5", r)
	}
}

func TestLinearGradientSortsStops(t *testing.T) {
	g := NewLinearGradient(Offset{}, Offset{X: 1}, []GradientStop{
		{Position: 1, Color: ColorWhite},
		{Position: 0, Color: ColorRed},
	})
	if g.Stops[0].Color != ColorRed {
		t.Fatal("stops should be sorted by position")
	}
}

func TestGradientIsValid(t *testing.T) {
	var nilGradient *LinearGradient
	if nilGradient.IsValid() {
		t.Error("nil gradient should be invalid")
	}
	one := NewLinearGradient(Offset{}, Offset{X: 1}, []GradientStop{{Position: 0, Color: ColorRed}})
	if one.IsValid() {
		t.Error("single stop gradient should be invalid")
	}
	bad := NewLinearGradient(Offset{}, Offset{X: 1}, []GradientStop{{Position: 0}, {Position: 2}})
	if bad.IsValid() {
		t.Error("out of range stop should be invalid")
	}
}
