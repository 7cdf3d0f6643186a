// Package session runs the interactive spirograph dialogue: it asks for
// parameters, draws the curve through a Drawer and offers to save it.
//
// The session is the only place that talks to the user. The curve core
// never blocks on input; errors it reports are shown here and the
// question is asked again.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/muesli/termenv"

	"github.com/dyed-eye/spirograph/curve"
	"github.com/dyed-eye/spirograph/internal/logx"
	"github.com/dyed-eye/spirograph/render"
)

// ErrExit is returned by Run when the user confirmed leaving after an interrupt.
var ErrExit = errors.New("session: exit requested")

var (
	errNotNumeric = errors.New("session: not a number")
	// errSkipped marks a drawing that was abandoned but the session goes on.
	errSkipped = errors.New("session: drawing skipped")
)

var parameterPrompts = [3]string{
	"Enter the radius of the fixed circle (R): ",
	"Enter the radius of the rolling circle (r): ",
	"Enter the distance from the center of the rolling circle to the drawing point (d): ",
}

// Drawer turns a curve into an image, usually by animating it.
// It must return promptly once ctx is cancelled.
type Drawer interface {
	Draw(ctx context.Context, c *curve.Curve) (image.Image, error)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(ctx context.Context, c *curve.Curve) (image.Image, error)

// Draw calls f.
func (f DrawerFunc) Draw(ctx context.Context, c *curve.Curve) (image.Image, error) {
	return f(ctx, c)
}

// Config wires a Session to its collaborators.
type Config struct {
	Generator curve.Generator
	// Example is drawn when the user asks for an example first.
	// Zero means R=220, r=65, d=110.
	Example curve.Parameters
	Drawer  Drawer
	// Save writes an image to a file. Nil means render.Save.
	Save func(img image.Image, filename string) error
	// Interrupts delivers SIGINT. Nil disables interrupt handling.
	Interrupts <-chan os.Signal
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// Session is one interactive run.
type Session struct {
	cfg       Config
	out       *termenv.Output
	p         *prompter
	done      chan struct{}
	closeOnce sync.Once
}

// New returns a Session reading answers from in and writing to out.
// Call Close when done with it.
func New(in io.Reader, out io.Writer, cfg Config) *Session {
	done := make(chan struct{})
	s := newSession(scanLines(in, done), out, cfg)
	s.done = done
	return s
}

func newSession(lines <-chan string, out io.Writer, cfg Config) *Session {
	if cfg.Save == nil {
		cfg.Save = render.Save
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.Discard()
	}
	if cfg.Example == (curve.Parameters{}) {
		cfg.Example = curve.Parameters{Fixed: 220, Rolling: 65, Offset: 110}
	}
	o := termenv.NewOutput(out)
	return &Session{
		cfg: cfg,
		out: o,
		p:   &prompter{out: o, lines: lines, interrupts: cfg.Interrupts},
	}
}

// Close stops reading input.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.done != nil {
			close(s.done)
		}
	})
}

// Run holds the dialogue until the user is done. It returns nil when the
// user declines another drawing or input ends, and ErrExit when the user
// confirmed leaving after an interrupt.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	s.say("Welcome to the Spirograph Generator!")
	s.say("You can create beautiful hypotrochoid patterns by specifying the parameters.")

	example, err := s.p.askYesNo(ctx, "\nWould you like to see an example spirograph first? (y/n): ")
	if err != nil {
		return err
	}
	if example {
		s.say("\nLet's see an example spirograph first.")
		if _, err := s.generateAndDraw(ctx, s.cfg.Example); err != nil && !errors.Is(err, errSkipped) {
			return err
		}
	}

	for {
		p, err := s.readParameters(ctx)
		if err != nil {
			return err
		}
		img, err := s.generateAndDraw(ctx, p)
		switch {
		case errors.Is(err, errSkipped):
		case err != nil:
			return err
		default:
			if err := s.saveImage(ctx, img); err != nil {
				return err
			}
		}

		again, err := s.p.askYesNo(ctx, "Do you want to draw another spirograph? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			s.say("Thank you for using the Spirograph Generator. Goodbye!")
			return nil
		}
	}
}

// readParameters asks for R, r and d until they are numbers that the
// generator's policy accepts.
func (s *Session) readParameters(ctx context.Context) (curve.Parameters, error) {
	for {
		p, err := s.readNumbers(ctx)
		if errors.Is(err, errNotNumeric) {
			s.warn("Invalid input. Please enter numeric values.")
			continue
		}
		if err != nil {
			return curve.Parameters{}, err
		}
		if err := p.Validate(s.cfg.Generator.Policy); err != nil {
			s.cfg.Logger.Debug("rejected parameters", "params", p.String(), "err", err)
			if s.cfg.Generator.Policy == curve.RequirePositiveOffset {
				s.warn("Please enter only positive values for R and r, and d.")
			} else {
				s.warn("Please enter positive values for R and r, and non-negative value for d.")
			}
			continue
		}
		return p, nil
	}
}

func (s *Session) readNumbers(ctx context.Context) (curve.Parameters, error) {
	var v [3]float64
	for i, prompt := range parameterPrompts {
		line, err := s.p.ask(ctx, prompt)
		if err != nil {
			return curve.Parameters{}, err
		}
		if v[i], err = strconv.ParseFloat(line, 64); err != nil {
			return curve.Parameters{}, errNotNumeric
		}
	}
	return curve.Parameters{Fixed: v[0], Rolling: v[1], Offset: v[2]}, nil
}

// generateAndDraw runs the core and the drawer. An interrupt during the
// drawing cancels it and asks whether to exit.
func (s *Session) generateAndDraw(ctx context.Context, p curve.Parameters) (image.Image, error) {
	c, err := s.cfg.Generator.Generate(p)
	if err != nil {
		s.warn(fmt.Sprintf("Cannot draw %v: %v", p, err))
		return nil, errSkipped
	}
	s.cfg.Logger.Debug("generated curve",
		"params", p.String(),
		"scale", c.Scale,
		"rotations", c.Rotations,
		"points", len(c.Points),
		"length", c.Points.Length())

	dctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := make(chan struct{})
	interrupted := make(chan bool, 1)
	go func() {
		select {
		case <-s.cfg.Interrupts:
			cancel()
			interrupted <- true
		case <-stop:
			interrupted <- false
		}
	}()
	img, err := s.cfg.Drawer.Draw(dctx, c)
	close(stop)

	if <-interrupted {
		fmt.Fprintln(s.out)
		if err := s.p.confirmExit(ctx); err != nil {
			return nil, err
		}
		return nil, errSkipped
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.cfg.Logger.Error("drawing failed", "params", p.String(), "err", err)
		s.warn(fmt.Sprintf("Drawing failed: %v", err))
		return nil, errSkipped
	}
	return img, nil
}

// saveImage asks for a file name until the image is saved or the user
// skips saving with an empty answer.
func (s *Session) saveImage(ctx context.Context, img image.Image) error {
	for {
		name, err := s.p.ask(ctx, "Enter filename to save the spirograph (or press Enter to skip saving): ")
		if err != nil {
			return err
		}
		if name == "" {
			s.say("File not saved.")
			return nil
		}

		var choice string
		asked := filepath.Ext(name) == ""
		if asked {
			if choice, err = s.p.ask(ctx, "Please specify the format to save (.png/.jpg/.jpeg): "); err != nil {
				return err
			}
		}
		filename, err := render.ResolveFilename(name, choice)
		if errors.Is(err, render.ErrUnsupportedFormat) {
			s.warn("Unsupported file format. Please use .png, .jpg, or .jpeg.")
			continue
		}
		if err != nil {
			return err
		}
		if _, ferr := render.FormatForChoice(choice); asked && ferr != nil {
			s.warn("Invalid format specified. It will be saved as .png by default.")
			s.say(fmt.Sprintf("\nSpirograph will be saved as %s", filename))
		}

		if err := s.cfg.Save(img, filename); err != nil {
			s.cfg.Logger.Warn("save failed", "file", filename, "err", err)
			s.warn(fmt.Sprintf("Error saving file: %v. Please try again.", err))
			continue
		}
		s.success(fmt.Sprintf("\nSpirograph has been successfully saved as: %s", filename))
		return nil
	}
}

func (s *Session) say(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) warn(msg string) {
	fmt.Fprintln(s.out, s.out.String(msg).Foreground(s.out.Color("1")))
}

func (s *Session) success(msg string) {
	fmt.Fprintln(s.out, s.out.String(msg).Foreground(s.out.Color("2")).Bold())
}
