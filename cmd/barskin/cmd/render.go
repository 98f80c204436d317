package cmd

import (
	"fmt"
	"image"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render one frame to a PNG file",
		Long: `Render the overlay for a bar of the given size and write it as a PNG.

The image is the overlay surface: the bar plus 5 points below it where the
shadow falls. Transparent pixels are where the bar shows through.

` + frameFlagsHelp,
		Usage: "barskin render --config FILE [--out FILE] [flags]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseFrameArgs(args)
	if err != nil {
		return err
	}
	sc, err := newScene(opts)
	if err != nil {
		return err
	}

	var writeErr error
	surface, err := sc.surface(opts, func(img *image.RGBA) error {
		writeErr = writePNG(opts.out, img)
		return writeErr
	})
	if err != nil {
		return err
	}
	defer surface.Close()

	surface.Scheduler().Tick()
	if writeErr != nil {
		return writeErr
	}
	fmt.Fprintf(stdout, "Wrote %s\n", opts.out)
	return nil
}
