// Package appearance holds the style state the overlay is drawn from, and
// loads it from YAML or TOML appearance files.
package appearance

import (
	"image"

	"github.com/anthonynsimon/bild/clone"

	"github.com/go-drift/barskin/pkg/core"
)

// Default style values.
const (
	DefaultTintColor   = "#000000"
	DefaultBorderColor = "#000000"
	DefaultBorderWidth = 1.0
)

// Style is a snapshot of every value the overlay reads while painting.
type Style struct {
	TintKind     TintKind
	TintColor    string
	TintGradient Gradient

	ShapeKind      ShapeKind
	FullShapeInfo  FullShapeInfo
	SplitShapeInfo SplitShapeInfo

	HasShadow   bool
	HasBorder   bool
	BorderColor string
	BorderWidth float64

	// Wallpaper is the desktop image behind the bar; nil when unknown.
	Wallpaper image.Image
	// MainMenuMaxX is the x coordinate where the application menu ends.
	MainMenuMaxX float64
}

// DefaultStyle returns the style of a freshly installed overlay: no tint,
// no shape, no shadow, no border.
func DefaultStyle() Style {
	return Style{
		TintColor:   DefaultTintColor,
		BorderColor: DefaultBorderColor,
		BorderWidth: DefaultBorderWidth,
	}
}

// Model publishes each style value as an observable.
//
// Model follows the threading rules of core.Observable: mutate it on the UI
// thread only.
type Model struct {
	TintKind     *core.Observable[TintKind]
	TintColor    *core.Observable[string]
	TintGradient *core.Observable[Gradient]

	ShapeKind      *core.Observable[ShapeKind]
	FullShapeInfo  *core.Observable[FullShapeInfo]
	SplitShapeInfo *core.Observable[SplitShapeInfo]

	HasShadow   *core.Observable[bool]
	HasBorder   *core.Observable[bool]
	BorderColor *core.Observable[string]
	BorderWidth *core.Observable[float64]

	Wallpaper    *core.Observable[image.Image]
	MainMenuMaxX *core.Observable[float64]

	// fileWallpaper is the wallpaper Apply last loaded from an appearance
	// file. A host or command line wallpaper replaces the published image
	// and so no longer matches it.
	fileWallpaper image.Image
}

// NewModel creates a model holding the default style.
func NewModel() *Model {
	return NewModelWithStyle(DefaultStyle())
}

// NewModelWithStyle creates a model holding s.
func NewModelWithStyle(s Style) *Model {
	return &Model{
		TintKind:       core.NewObservable(s.TintKind),
		TintColor:      core.NewObservable(s.TintColor),
		TintGradient:   core.NewObservableFunc(s.TintGradient, Gradient.Equal),
		ShapeKind:      core.NewObservable(s.ShapeKind),
		FullShapeInfo:  core.NewObservable(s.FullShapeInfo),
		SplitShapeInfo: core.NewObservable(s.SplitShapeInfo),
		HasShadow:      core.NewObservable(s.HasShadow),
		HasBorder:      core.NewObservable(s.HasBorder),
		BorderColor:    core.NewObservable(s.BorderColor),
		BorderWidth:    core.NewObservable(s.BorderWidth),
		Wallpaper:      core.NewObservableFunc[image.Image](snapshot(s.Wallpaper), nil),
		MainMenuMaxX:   core.NewObservable(s.MainMenuMaxX),
	}
}

// Style returns the current values.
func (m *Model) Style() Style {
	return Style{
		TintKind:       m.TintKind.Value(),
		TintColor:      m.TintColor.Value(),
		TintGradient:   m.TintGradient.Value(),
		ShapeKind:      m.ShapeKind.Value(),
		FullShapeInfo:  m.FullShapeInfo.Value(),
		SplitShapeInfo: m.SplitShapeInfo.Value(),
		HasShadow:      m.HasShadow.Value(),
		HasBorder:      m.HasBorder.Value(),
		BorderColor:    m.BorderColor.Value(),
		BorderWidth:    m.BorderWidth.Value(),
		Wallpaper:      m.Wallpaper.Value(),
		MainMenuMaxX:   m.MainMenuMaxX.Value(),
	}
}

// SetStyle publishes every value of s. Observables whose value is unchanged
// do not notify.
func (m *Model) SetStyle(s Style) {
	m.TintKind.Set(s.TintKind)
	m.TintColor.Set(s.TintColor)
	m.TintGradient.Set(s.TintGradient)
	m.ShapeKind.Set(s.ShapeKind)
	m.FullShapeInfo.Set(s.FullShapeInfo)
	m.SplitShapeInfo.Set(s.SplitShapeInfo)
	m.HasShadow.Set(s.HasShadow)
	m.HasBorder.Set(s.HasBorder)
	m.BorderColor.Set(s.BorderColor)
	m.BorderWidth.Set(s.BorderWidth)
	if s.Wallpaper != m.Wallpaper.Value() {
		m.SetWallpaper(s.Wallpaper)
	}
	m.MainMenuMaxX.Set(s.MainMenuMaxX)
}

// SetWallpaper publishes a private copy of img so later changes to the
// caller's image do not show up mid-frame. A nil img clears the wallpaper.
func (m *Model) SetWallpaper(img image.Image) {
	m.Wallpaper.Set(snapshot(img))
}

func (m *Model) wallpaperFromFile() bool {
	return m.fileWallpaper != nil && m.Wallpaper.Value() == m.fileWallpaper
}

// Changes fires whenever any style value changes.
func (m *Model) Changes() core.Listenable {
	return core.Merge(
		m.TintKind, m.TintColor, m.TintGradient,
		m.ShapeKind, m.FullShapeInfo, m.SplitShapeInfo,
		m.HasShadow, m.HasBorder, m.BorderColor, m.BorderWidth,
		m.Wallpaper, m.MainMenuMaxX,
	)
}

func snapshot(img image.Image) image.Image {
	if img == nil {
		return nil
	}
	return clone.AsRGBA(img)
}
