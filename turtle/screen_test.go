package turtle

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/gosketch/sketch"
)

func nosleep(time.Duration) {}

func TestRegistryDefaultScreen(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	s := reg.Current()
	if s == nil {
		t.Fatal("no current screen")
	}
	if s.Width() != DefaultScreenWidth || s.Height() != DefaultScreenHeight {
		t.Errorf("default screen is %dx%d", s.Width(), s.Height())
	}
	if got, ok := reg.Screen(DefaultScreenName); !ok || got != s {
		t.Error("default screen not registered under its name")
	}
	if s.BgColor() != sketch.White {
		t.Errorf("BgColor() = %v, want white", s.BgColor())
	}
}

func TestSetupReplacesAndCarriesTurtles(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	tr := New(reg)
	tr.Goto(30, 30)
	old := reg.Current()

	next := reg.Setup(200, 100, "")

	if next == old {
		t.Fatal("Setup returned the old screen")
	}
	if reg.Current() != next {
		t.Error("Setup did not make the new screen current")
	}
	if next.Width() != 200 || next.Height() != 100 {
		t.Errorf("new screen is %dx%d, want 200x100", next.Width(), next.Height())
	}
	if tr.Screen() != next {
		t.Error("turtle not carried to the new screen")
	}
	if !pointsNear(tr.Position(), sketch.Point{}) {
		t.Errorf("carried turtle not reset, at %v", tr.Position())
	}
	if got := next.Turtles(); len(got) != 1 || got[0] != tr {
		t.Errorf("Turtles() = %v, want the carried turtle", got)
	}
}

func TestSetupNamedScreen(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	s := reg.Setup(120, 80, "side")

	if got, ok := reg.Screen("side"); !ok || got != s {
		t.Error("named screen not registered")
	}
	if reg.Current() != s {
		t.Error("named screen not current after Setup")
	}
	// The default screen is untouched.
	if def, ok := reg.Screen(DefaultScreenName); !ok || def.Width() != DefaultScreenWidth {
		t.Error("default screen disturbed by named Setup")
	}
}

func TestShowScreen(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	reg.Setup(120, 80, "side")

	def, err := reg.ShowScreen(DefaultScreenName)
	if err != nil {
		t.Fatalf("ShowScreen: %v", err)
	}
	if reg.Current() != def {
		t.Error("ShowScreen did not switch the current screen")
	}

	if _, err := reg.ShowScreen("nope"); !errors.Is(err, sketch.ErrInvalidArgument) {
		t.Errorf("ShowScreen(nope) = %v, want ErrInvalidArgument", err)
	}
}

func TestNewTurtleUsesCurrentScreen(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	side := reg.Setup(120, 80, "side")
	tr := New(reg)
	if tr.Screen() != side {
		t.Error("turtle created on a non-current screen")
	}
}

func TestClearScreen(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	tr := New(reg)
	tr.HideTurtle()
	tr.Forward(50)
	_ = tr.SetBgColor("black")

	if err := reg.ClearScreen(DefaultScreenName); err != nil {
		t.Fatal(err)
	}

	s := reg.Current()
	if s.BgColor() != sketch.White {
		t.Errorf("BgColor() = %v after ClearScreen, want white", s.BgColor())
	}
	img := s.Snapshot()
	if got := sketch.FromColor(img.At(225, 200)); got != sketch.White {
		t.Errorf("drawing survived ClearScreen: %v", got)
	}
	if want := sketch.Pt(50, 0); !pointsNear(tr.Position(), want) {
		t.Errorf("ClearScreen moved the turtle to %v", tr.Position())
	}

	if err := reg.ClearScreen("nope"); !errors.Is(err, sketch.ErrInvalidArgument) {
		t.Errorf("ClearScreen(nope) = %v, want ErrInvalidArgument", err)
	}
}

func TestResetScreen(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	tr := New(reg)
	tr.Goto(30, 30)
	tr.Left(45)

	if err := reg.ResetScreen(DefaultScreenName); err != nil {
		t.Fatal(err)
	}
	if !pointsNear(tr.Position(), sketch.Point{}) || tr.Heading() != 0 {
		t.Errorf("turtle at %v heading %v after ResetScreen", tr.Position(), tr.Heading())
	}

	if err := reg.ResetScreen("nope"); !errors.Is(err, sketch.ErrInvalidArgument) {
		t.Errorf("ResetScreen(nope) = %v, want ErrInvalidArgument", err)
	}
}

func TestTracerZeroSkipsAnimation(t *testing.T) {
	waits := 0
	reg := NewRegistry(WithSleep(func(time.Duration) { waits++ }))
	tr := New(reg)
	reg.Tracer(0)

	waits = 0
	tr.Forward(100)
	if waits != 0 {
		t.Errorf("waited %d times with tracing off", waits)
	}
	if reg.Current().Tracing() != 0 {
		t.Errorf("Tracing() = %d, want 0", reg.Current().Tracing())
	}

	reg.Tracer(1)
	tr.Forward(10)
	if waits == 0 {
		t.Error("never waited with tracing on")
	}
}

func TestTracerZeroStillDrawsInstantly(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	tr := New(reg)
	tr.HideTurtle()
	reg.Tracer(0)
	tr.Forward(50)

	img := reg.Current().Snapshot()
	if got := sketch.FromColor(img.At(225, 200)); got == sketch.White {
		t.Error("line missing with tracing off")
	}
}

func TestScreenDelay(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	s := reg.Current()
	s.SetDelay(25 * time.Millisecond)
	if s.delay != 25*time.Millisecond {
		t.Errorf("delay = %v, want 25ms", s.delay)
	}
	s.SetDelay(-time.Second) // ignored
	if s.delay != 25*time.Millisecond {
		t.Errorf("delay = %v after invalid set, want unchanged", s.delay)
	}
}

func TestScreenEncodePNG(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	var buf bytes.Buffer
	if err := reg.Current().EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != DefaultScreenWidth || b.Dy() != DefaultScreenHeight {
		t.Errorf("decoded size %dx%d", b.Dx(), b.Dy())
	}
}

func TestCursorDrawnOnSnapshot(t *testing.T) {
	reg := NewRegistry(WithSleep(nosleep))
	tr := New(reg)
	tr.PenUp()
	_ = tr.SetColor("red")

	img := reg.Current().Snapshot()
	marked := false
	for y := 190; y <= 210 && !marked; y++ {
		for x := 190; x <= 210; x++ {
			if sketch.FromColor(img.At(x, y)) != sketch.White {
				marked = true
				break
			}
		}
	}
	if !marked {
		t.Error("visible cursor missing from snapshot")
	}

	tr.HideTurtle()
	img = reg.Current().Snapshot()
	for y := 190; y <= 210; y++ {
		for x := 190; x <= 210; x++ {
			if sketch.FromColor(img.At(x, y)) != sketch.White {
				t.Fatalf("pixel (%d, %d) painted with the cursor hidden", x, y)
			}
		}
	}
}
