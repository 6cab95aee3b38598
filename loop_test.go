package sketch

import (
	"errors"
	"testing"
	"time"
)

func TestRunStopsAfterDuration(t *testing.T) {
	s, _ := newStubSketch(10, 10)
	frames := 0
	err := s.Run(func() error {
		frames++
		return nil
	}, Duration(time.Millisecond), FrameDelay(0))

	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if frames == 0 {
		t.Error("draw was never called")
	}
	if s.Looping() {
		t.Error("still looping after Run returned")
	}
	if s.FrameCount() < frames {
		t.Errorf("FrameCount() = %d, want at least %d", s.FrameCount(), frames)
	}
}

func TestRunNegativeDelay(t *testing.T) {
	s, _ := newStubSketch(10, 10)
	err := s.Run(func() error { return nil }, FrameDelay(-time.Millisecond))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Run with negative delay = %v, want ErrInvalidArgument", err)
	}
}

func TestRunStopFromDraw(t *testing.T) {
	s, _ := newStubSketch(10, 10)
	err := s.Run(func() error {
		if s.FrameCount() == 3 {
			s.Stop()
		}
		return nil
	}, FrameDelay(0))

	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if s.FrameCount() != 3 {
		t.Errorf("FrameCount() = %d, want 3", s.FrameCount())
	}
}

func TestRunErrorHalts(t *testing.T) {
	s, _ := newStubSketch(10, 10)
	boom := errors.New("boom")
	err := s.Run(func() error {
		if s.FrameCount() == 2 {
			return boom
		}
		return nil
	}, FrameDelay(0))

	if !errors.Is(err, boom) {
		t.Errorf("Run = %v, want draw error", err)
	}
	if s.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, want 2", s.FrameCount())
	}
	if s.Looping() {
		t.Error("still looping after error")
	}
}

func TestRunResetsFrameCount(t *testing.T) {
	s, _ := newStubSketch(10, 10)
	run := func() {
		_ = s.Run(func() error {
			if s.FrameCount() == 5 {
				s.Stop()
			}
			return nil
		}, FrameDelay(0))
	}
	run()
	run()
	if s.FrameCount() != 5 {
		t.Errorf("FrameCount() = %d after second Run, want 5", s.FrameCount())
	}
}

func TestRunClearsOpenShape(t *testing.T) {
	s, surf := newStubSketch(10, 10)
	_ = s.Run(func() error {
		s.BeginShape()
		s.Vertex(1, 1)
		s.Stop()
		return nil
	}, FrameDelay(0))

	s.EndShape()
	if surf.count("FillPolygon") != 0 {
		t.Errorf("leftover vertices survived the frame: %v", surf.calls)
	}
}
