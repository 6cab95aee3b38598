package turtle

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/gosketch/sketch"
)

// Default screen configuration.
const (
	DefaultScreenName   = "default"
	DefaultScreenWidth  = 400
	DefaultScreenHeight = 400

	defaultDelay = 10 * time.Millisecond
)

// Screen composites the drawings of its turtles. Each turtle keeps its
// own pen layer; the screen paints the background color, blits every
// layer in creation order, and draws the cursor of each visible
// turtle on top.
type Screen struct {
	width  int
	height int

	compositor *sketch.Sketch
	bg         sketch.Color
	turtles    []*Turtle

	// delay is the pause inserted after every animated step when
	// tracing is 1. tracing 0 disables animation entirely.
	delay   time.Duration
	tracing int

	xscale float64
	yscale float64

	wait func(time.Duration)
}

func newScreen(width, height int, wait func(time.Duration)) *Screen {
	s := &Screen{
		width:      width,
		height:     height,
		compositor: sketch.NewSketch(width, height),
		bg:         sketch.White,
		delay:      defaultDelay,
		tracing:    1,
		xscale:     1,
		yscale:     1,
		wait:       wait,
	}
	_ = s.compositor.Background(s.bg)
	return s
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in pixels.
func (s *Screen) Height() int { return s.height }

// BgColor returns the background color.
func (s *Screen) BgColor() sketch.Color { return s.bg }

// Turtles returns the turtles drawing on this screen, oldest first.
func (s *Screen) Turtles() []*Turtle {
	out := make([]*Turtle, len(s.turtles))
	copy(out, s.turtles)
	return out
}

// Tracer turns animation on (1) or off (0). With tracing off, moves
// are instant and nothing is redrawn until tracing is turned back on
// or Snapshot is called.
func (s *Screen) Tracer(n int) {
	s.tracing = n
	if n == 1 {
		s.redraw()
	}
}

// Tracing reports the current tracer setting.
func (s *Screen) Tracing() int { return s.tracing }

// SetDelay sets the pause inserted after every animated step.
func (s *Screen) SetDelay(d time.Duration) {
	if d >= 0 {
		s.delay = d
	}
}

// Snapshot recomposites the screen and returns the resulting bitmap.
// The image is live; encode or copy it before drawing again.
func (s *Screen) Snapshot() image.Image {
	s.redraw()
	return s.compositor.Surface().Image()
}

// EncodePNG recomposites the screen and writes it as PNG.
func (s *Screen) EncodePNG(w io.Writer) error {
	s.redraw()
	return s.compositor.EncodePNG(w)
}

func (s *Screen) addTurtle(t *Turtle) {
	for _, existing := range s.turtles {
		if existing == t {
			return
		}
	}
	s.turtles = append(s.turtles, t)
}

// update redraws the screen unless tracing is off.
func (s *Screen) update() {
	if s.tracing == 1 {
		s.redraw()
	}
}

func (s *Screen) redraw() {
	_ = s.compositor.Surface().Batch(func() error {
		if err := s.compositor.Background(s.bg); err != nil {
			return err
		}
		w := float64(s.width)
		h := float64(s.height)
		for _, t := range s.turtles {
			s.compositor.Image(t.pen.Surface().Image(), 0, 0, w, h)
			if t.visible {
				s.drawCursor(t)
			}
		}
		return nil
	})
}

// drawCursor paints a turtle's shape polygon at its position, rotated
// to heading plus tilt and stretched by its shape size.
func (s *Screen) drawCursor(t *Turtle) {
	pts := t.cursorPolygon(t.Heading() + t.TiltAngle())
	surf := s.compositor.Surface()
	surf.Save()
	surf.SetFillStyle(t.fillColor)
	surf.SetStrokeStyle(t.penColor)
	surf.SetLineWidth(t.outlineWidth)
	surf.FillPolygon(pts)
	surf.StrokePolygon(pts)
	surf.Restore()
}

// Registry holds named screens and the current one. All turtle
// constructors take a Registry, so two programs in one process never
// share screens.
type Registry struct {
	screens map[string]*Screen
	current *Screen
	wait    func(time.Duration)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithSleep replaces the function used to pause between animation
// steps. Tests inject a no-op to run at full speed.
func WithSleep(fn func(time.Duration)) RegistryOption {
	return func(r *Registry) {
		if fn != nil {
			r.wait = fn
		}
	}
}

// NewRegistry creates a registry holding one default 400x400 screen,
// which starts out current.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		screens: make(map[string]*Screen),
		wait:    time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	def := newScreen(DefaultScreenWidth, DefaultScreenHeight, r.wait)
	r.screens[DefaultScreenName] = def
	r.current = def
	return r
}

// Current returns the current screen.
func (r *Registry) Current() *Screen { return r.current }

// Screen looks up a screen by name.
func (r *Registry) Screen(name string) (*Screen, bool) {
	s, ok := r.screens[name]
	return s, ok
}

// Setup sizes the named screen and makes it current. An existing
// screen of that name is replaced by a fresh one of the new size; its
// turtles carry over, each with a new pen layer, and are reset.
func (r *Registry) Setup(width, height int, name string) *Screen {
	if name == "" {
		name = DefaultScreenName
	}
	next := newScreen(width, height, r.wait)
	if old, ok := r.screens[name]; ok {
		next.turtles = old.turtles
		for _, t := range next.turtles {
			t.screen = next
			t.pen = sketch.NewSketch(width, height)
			t.Reset()
		}
	}
	r.screens[name] = next
	r.current = next
	return next
}

// ShowScreen makes the named screen current, recomposites it, and
// returns it. Turtles created afterward draw to this screen.
func (r *Registry) ShowScreen(name string) (*Screen, error) {
	s, ok := r.screens[name]
	if !ok {
		return nil, fmt.Errorf("%w: no screen named %q", sketch.ErrInvalidArgument, name)
	}
	r.current = s
	s.redraw()
	return s, nil
}

// Tracer sets the tracer of the current screen.
func (r *Registry) Tracer(n int) {
	r.current.Tracer(n)
}

// ClearScreen deletes all drawings from the named screen and restores
// its white background. Turtle state and positions are untouched.
func (r *Registry) ClearScreen(name string) error {
	s, ok := r.screens[name]
	if !ok {
		return fmt.Errorf("%w: no screen named %q", sketch.ErrInvalidArgument, name)
	}
	for _, t := range s.turtles {
		t.Clear()
	}
	s.bg = sketch.White
	s.redraw()
	return nil
}

// ResetScreen resets every turtle on the named screen to its initial
// state.
func (r *Registry) ResetScreen(name string) error {
	s, ok := r.screens[name]
	if !ok {
		return fmt.Errorf("%w: no screen named %q", sketch.ErrInvalidArgument, name)
	}
	for _, t := range s.turtles {
		t.Reset()
	}
	return nil
}
