package cmd

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-drift/barskin/pkg/appearance"
)

// frameInterval caps how often the watch command re-renders.
const frameInterval = 100 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render whenever the appearance file changes",
		Long: `Render the overlay like "barskin render", then keep watching the
appearance file and write a new PNG every time it changes. Stop with Ctrl-C.

Command line overrides keep precedence over the file across reloads.

` + frameFlagsHelp,
		Usage: "barskin watch --config FILE [--out FILE] [flags]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, args)
}

func watch(ctx context.Context, args []string) error {
	opts, err := parseFrameArgs(args)
	if err != nil {
		return err
	}
	if opts.config == "" {
		return fmt.Errorf("watch requires --config")
	}
	sc, err := newScene(opts)
	if err != nil {
		return err
	}

	surface, err := sc.surface(opts, func(img *image.RGBA) error {
		if err := writePNG(opts.out, img); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", opts.out)
		return nil
	})
	if err != nil {
		return err
	}
	defer surface.Close()

	scheduler := surface.Scheduler()
	dispatch := func(fn func()) {
		scheduler.Dispatch(func() {
			fn()
			sc.applyOverrides(opts)
		})
	}
	w, err := appearance.Watch(opts.config, sc.model, dispatch)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.config, err)
	}
	defer w.Close()

	fmt.Fprintf(stdout, "Watching %s\n", w.Path())
	err = scheduler.Run(ctx, frameInterval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
