package appearance

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // wallpaper decoding
	_ "image/png"  // wallpaper decoding
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the appearance file format version written by this
// package. Files with the same major version are accepted.
const CurrentVersion = "v1.0.0"

// Format is the encoding of an appearance file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported appearance file extension %q", filepath.Ext(path))
	}
}

// Document is the on-disk form of an appearance file.
type Document struct {
	Version string       `yaml:"version,omitempty" toml:"version,omitempty"`
	Tint    TintConfig   `yaml:"tint" toml:"tint"`
	Shape   ShapeConfig  `yaml:"shape" toml:"shape"`
	Shadow  bool         `yaml:"shadow" toml:"shadow"`
	Border  BorderConfig `yaml:"border" toml:"border"`
	Bar     BarConfig    `yaml:"bar" toml:"bar"`
}

// TintConfig configures the tint layer.
type TintConfig struct {
	Kind     TintKind `yaml:"kind" toml:"kind"`
	Color    string   `yaml:"color,omitempty" toml:"color,omitempty"`
	Gradient Gradient `yaml:"gradient,omitempty" toml:"gradient,omitempty"`
}

// ShapeConfig configures the overlay shape.
type ShapeConfig struct {
	Kind  ShapeKind      `yaml:"kind" toml:"kind"`
	Full  FullShapeInfo  `yaml:"full" toml:"full"`
	Split SplitShapeInfo `yaml:"split" toml:"split"`
}

// BorderConfig configures the border layer.
type BorderConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Color   string  `yaml:"color,omitempty" toml:"color,omitempty"`
	Width   float64 `yaml:"width,omitempty" toml:"width,omitempty"`
}

// BarConfig describes host state that is normally measured rather than
// configured. It lets a file describe a complete bar for offline rendering.
type BarConfig struct {
	// Wallpaper is a PNG or JPEG path, relative to the appearance file.
	Wallpaper    string  `yaml:"wallpaper,omitempty" toml:"wallpaper,omitempty"`
	MainMenuMaxX float64 `yaml:"main_menu_max_x,omitempty" toml:"main_menu_max_x,omitempty"`
}

// DefaultDocument returns a document holding the default style.
func DefaultDocument() *Document {
	s := DefaultStyle()
	return &Document{
		Version: CurrentVersion,
		Tint:    TintConfig{Kind: s.TintKind, Color: s.TintColor},
		Shape:   ShapeConfig{Kind: s.ShapeKind},
		Border: BorderConfig{
			Color: s.BorderColor,
			Width: s.BorderWidth,
		},
	}
}

// Load reads and validates the appearance file at path. Fields missing from
// the file keep their default values.
func Load(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Parse decodes and validates an appearance document. Keys that do not
// belong to the document are an error at every level, in both formats.
func Parse(data []byte, format Format) (*Document, error) {
	doc := DefaultDocument()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty or comment-only file has no document and decodes to io.EOF.
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks the version and numeric ranges. Colors are not checked
// here: an unparseable color only disables its layer when drawing.
func (d *Document) Validate() error {
	if d.Version == "" {
		d.Version = CurrentVersion
	}
	if !semver.IsValid(d.Version) {
		return fmt.Errorf("invalid version %q: must be semantic, like %s", d.Version, CurrentVersion)
	}
	if semver.Major(d.Version) != semver.Major(CurrentVersion) {
		return fmt.Errorf("unsupported version %s: this build reads %s files", d.Version, semver.Major(CurrentVersion))
	}
	if d.Border.Width < 0 {
		return fmt.Errorf("border width must not be negative, got %g", d.Border.Width)
	}
	return nil
}

// Marshal encodes the document in the given format.
func (d *Document) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatTOML:
		return toml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Style converts the document into a style. The wallpaper is decoded from
// disk, relative to baseDir.
func (d *Document) Style(baseDir string) (Style, error) {
	s := Style{
		TintKind:       d.Tint.Kind,
		TintColor:      d.Tint.Color,
		TintGradient:   d.Tint.Gradient,
		ShapeKind:      d.Shape.Kind,
		FullShapeInfo:  d.Shape.Full,
		SplitShapeInfo: d.Shape.Split,
		HasShadow:      d.Shadow,
		HasBorder:      d.Border.Enabled,
		BorderColor:    d.Border.Color,
		BorderWidth:    d.Border.Width,
		MainMenuMaxX:   d.Bar.MainMenuMaxX,
	}
	if d.Bar.Wallpaper != "" {
		path := d.Bar.Wallpaper
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		img, err := LoadImage(path)
		if err != nil {
			return s, err
		}
		s.Wallpaper = img
	}
	return s, nil
}

// Apply publishes the document's values to m. Bar values the document leaves
// unset keep whatever the host last measured, except a wallpaper that an
// earlier Apply loaded from a file: it is cleared once the file stops naming
// one. When the wallpaper cannot be loaded the remaining values are still
// applied and the error is returned.
func Apply(d *Document, m *Model, baseDir string) error {
	s, err := d.Style(baseDir)
	loaded := s.Wallpaper != nil
	if !loaded {
		s.Wallpaper = m.Wallpaper.Value()
		if d.Bar.Wallpaper == "" && m.wallpaperFromFile() {
			s.Wallpaper = nil
		}
	}
	if d.Bar.MainMenuMaxX == 0 {
		s.MainMenuMaxX = m.MainMenuMaxX.Value()
	}
	m.SetStyle(s)
	switch {
	case loaded:
		m.fileWallpaper = m.Wallpaper.Value()
	case s.Wallpaper == nil:
		m.fileWallpaper = nil
	}
	return err
}

// LoadImage decodes a PNG or JPEG file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallpaper: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wallpaper %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
