// Command spirograph draws hypotrochoid curves.
//
// Without -o it runs an interactive session that asks for the parameters,
// animates the curve and offers to save it. With -o it draws one curve
// from -R, -r and -d and writes it straight to the file.
//
// Usage:
//
//	spirograph [-config spirograph.toml] [-strict] [-size 800] [-delay 1ms]
//	           [-preview live.png] [-v] [-q]
//	spirograph -R 220 -r 65 -d 110 -o spiro.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/muesli/termenv"

	"github.com/dyed-eye/spirograph/curve"
	"github.com/dyed-eye/spirograph/internal/config"
	"github.com/dyed-eye/spirograph/internal/logx"
	"github.com/dyed-eye/spirograph/internal/session"
	"github.com/dyed-eye/spirograph/render"
)

func main() {
	configPath := flag.String("config", "", "TOML settings file")
	strict := flag.Bool("strict", false, "Require d > 0")
	size := flag.Int("size", 0, "Canvas size in pixels (square), overrides the config")
	delay := flag.Duration("delay", -1, "Pause between two drawn points, overrides the config")
	preview := flag.String("preview", "", "Image file rewritten while the curve is drawn")
	verbose := flag.Bool("v", false, "Log debug records")
	quiet := flag.Bool("q", false, "Log errors only")
	fixed := flag.Float64("R", 0, "Radius of the fixed circle (with -o)")
	rolling := flag.Float64("r", 0, "Radius of the rolling circle (with -o)")
	offset := flag.Float64("d", 0, "Distance of the pen from the rolling circle's center (with -o)")
	out := flag.String("o", "", "Draw R, r, d once and save to this file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
	}
	if *strict {
		cfg.Policy = curve.RequirePositiveOffset.String()
	}
	if *size > 0 {
		cfg.Render.Width, cfg.Render.Height = *size, *size
	}
	if *delay >= 0 {
		cfg.Animation.Delay.Duration = *delay
	}
	if *preview != "" {
		cfg.Animation.Preview = *preview
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	fallback, _ := cfg.Level()
	log := logx.New(os.Stderr, logx.LevelFromFlags(*verbose, *quiet, fallback))
	gen, _ := cfg.Generator()
	style, _ := cfg.Style()

	if *out != "" {
		p := curve.Parameters{Fixed: *fixed, Rolling: *rolling, Offset: *offset}
		if err := drawOnce(gen, style, p, *out, log); err != nil {
			log.Error("drawing failed", "params", p.String(), "err", err)
			os.Exit(1)
		}
		return
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	s := session.New(os.Stdin, os.Stdout, session.Config{
		Generator:  gen,
		Example:    cfg.Example(),
		Drawer:     newAnimatedDrawer(style, cfg.Animation, log),
		Interrupts: interrupts,
		Logger:     log,
	})
	defer s.Close()

	err := s.Run(context.Background())
	if err != nil && !errors.Is(err, session.ErrExit) {
		log.Error("session ended", "err", err)
		os.Exit(1)
	}
}

// drawOnce renders p without animation and saves it to name.
func drawOnce(gen curve.Generator, style render.Style, p curve.Parameters, name string, log *slog.Logger) error {
	c, err := gen.Generate(p)
	if err != nil {
		return err
	}
	img, err := render.NewRenderer(style).Render(c)
	if err != nil {
		return err
	}
	filename, err := render.ResolveFilename(name, "")
	if err != nil {
		return err
	}
	if err := render.Save(img, filename); err != nil {
		return err
	}
	log.Info("saved", "file", filename, "rotations", c.Rotations, "points", len(c.Points))
	fmt.Println(filename)
	return nil
}

// newAnimatedDrawer returns a session.Drawer that animates curves, shows
// progress on stderr and keeps the preview file, if any, up to date.
func newAnimatedDrawer(style render.Style, anim config.Animation, log *slog.Logger) session.Drawer {
	a := &render.Animator{Style: style, Delay: anim.Delay.Duration, FrameEvery: anim.FrameEvery}
	term := termenv.NewOutput(os.Stderr)
	return session.DrawerFunc(func(ctx context.Context, c *curve.Curve) (image.Image, error) {
		start := time.Now()
		img, err := a.Run(ctx, c, func(f render.Frame) error {
			progress := term.String(fmt.Sprintf("\rDrawing %s: %d/%d points", c.Params, f.Drawn, f.Total)).Faint()
			fmt.Fprint(term, progress)
			if anim.Preview == "" {
				return nil
			}
			return render.Save(f.Image, anim.Preview)
		})
		fmt.Fprintln(term)
		if err != nil {
			return nil, err
		}
		log.Debug("drawn", "params", c.Params.String(), "elapsed", time.Since(start))
		return img, nil
	})
}
