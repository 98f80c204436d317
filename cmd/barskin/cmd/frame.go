package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/go-drift/barskin/pkg/appearance"
	"github.com/go-drift/barskin/pkg/overlay"
	"github.com/go-drift/barskin/pkg/rendering"
	"github.com/go-drift/barskin/pkg/sections"
)

const frameFlagsHelp = `Flags:
  --config FILE            Appearance file (.yaml, .yml or .toml)
  --out FILE               PNG file to write (default: barskin.png)
  --width W                Bar width in points (default: 1440)
  --height H               Bar height in points (default: 24)
  --scale S                Pixels per point (default: 1)
  --wallpaper FILE         Wallpaper image, overrides the appearance file
  --menu-max-x X           Right edge of the application menu
  --hidden-pos X           Position of the hidden section's control item
  --always-hidden-pos X    Position of the always-hidden section's control item
  --hidden                 Collapse the hidden section`

type frameOptions struct {
	config    string
	out       string
	width     float64
	height    float64
	scale     float64
	wallpaper string

	menuMaxX        *float64
	hiddenPos       *float64
	alwaysHiddenPos *float64
	hidden          bool
}

func defaultFrameOptions() frameOptions {
	return frameOptions{
		out:    "barskin.png",
		width:  1440,
		height: 24,
		scale:  1,
	}
}

func parseFrameArgs(args []string) (frameOptions, error) {
	opts := defaultFrameOptions()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}
		number := func() (float64, error) {
			v, err := next()
			if err != nil {
				return 0, err
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: invalid number %q", name, v)
			}
			return f, nil
		}

		var err error
		switch name {
		case "--config":
			opts.config, err = next()
		case "--out":
			opts.out, err = next()
		case "--wallpaper":
			opts.wallpaper, err = next()
		case "--width":
			opts.width, err = number()
		case "--height":
			opts.height, err = number()
		case "--scale":
			opts.scale, err = number()
		case "--menu-max-x":
			opts.menuMaxX, err = optionalNumber(number)
		case "--hidden-pos":
			opts.hiddenPos, err = optionalNumber(number)
		case "--always-hidden-pos":
			opts.alwaysHiddenPos, err = optionalNumber(number)
		case "--hidden":
			opts.hidden = true
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
		if err != nil {
			return opts, err
		}
	}

	if opts.width <= 0 || opts.height <= 0 {
		return opts, fmt.Errorf("bar size must be positive, got %gx%g", opts.width, opts.height)
	}
	if opts.scale <= 0 {
		return opts, fmt.Errorf("scale must be positive, got %g", opts.scale)
	}

	for _, p := range []*string{&opts.config, &opts.out, &opts.wallpaper} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return opts, err
		}
		*p = expanded
	}
	return opts, nil
}

func optionalNumber(number func() (float64, error)) (*float64, error) {
	f, err := number()
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (o frameOptions) barFrame() rendering.Rect {
	return rendering.RectFromLTWH(0, 0, o.width, o.height)
}

// scene is everything one bar needs to paint.
type scene struct {
	model     *appearance.Model
	sections  *sections.Tracker
	wallpaper image.Image
}

// newScene loads the appearance file and applies the command line
// overrides.
func newScene(opts frameOptions) (*scene, error) {
	sc := &scene{
		model:    appearance.NewModel(),
		sections: sections.NewDefaultTracker(),
	}
	sc.sections.SetScreen(opts.barFrame())

	if opts.wallpaper != "" {
		img, err := appearance.LoadImage(opts.wallpaper)
		if err != nil {
			return nil, err
		}
		sc.wallpaper = img
	}

	if opts.config != "" {
		doc, err := appearance.Load(opts.config)
		if err != nil {
			return nil, err
		}
		if err := appearance.Apply(doc, sc.model, filepath.Dir(opts.config)); err != nil {
			return nil, err
		}
	}
	sc.applyOverrides(opts)

	sc.sections.SetHidden(sections.Hidden, opts.hidden)
	for name, pos := range map[sections.Name]*float64{
		sections.Hidden:       opts.hiddenPos,
		sections.AlwaysHidden: opts.alwaysHiddenPos,
	} {
		if pos == nil {
			continue
		}
		if !sc.sections.UpdatePosition(name, *pos) {
			return nil, fmt.Errorf("%s position %g is outside the bar", name, *pos)
		}
	}
	return sc, nil
}

// applyOverrides publishes the values given on the command line, which take
// precedence over the appearance file.
func (sc *scene) applyOverrides(opts frameOptions) {
	if sc.wallpaper != nil {
		sc.model.SetWallpaper(sc.wallpaper)
	}
	if opts.menuMaxX != nil {
		sc.model.MainMenuMaxX.Set(*opts.menuMaxX)
	}
}

func (sc *scene) surface(opts frameOptions, present func(img *image.RGBA) error) (*overlay.Surface, error) {
	return overlay.NewSurface(opts.barFrame(), overlay.Options{
		Model:    sc.model,
		Sections: sc.sections,
		Renderer: &overlay.RasterRenderer{Scale: opts.scale, Present: present},
	})
}

// writePNG writes img to path atomically.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".barskin-*.png")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
