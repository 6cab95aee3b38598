package sketch

import (
	"log/slog"
	"time"
)

// defaultFrameDelay is the pause between animation frames.
const defaultFrameDelay = 20 * time.Millisecond

// Run drives the animation loop: it resets the frame count, then
// repeatedly increments it, invokes draw inside a batched-redraw scope,
// clears any leftover open shape vertices, and sleeps for the frame
// delay. The loop ends when the optional Duration elapses (the
// in-flight frame still completes), when Stop is called, or when draw
// returns an error, which propagates unretried.
//
// Run executes on the caller's goroutine; the only suspension point is
// the delay between frames, so Stop called from inside draw takes
// effect before the next iteration, never mid-frame.
func (s *Sketch) Run(draw func() error, opts ...RunOption) error {
	options := runOptions{delay: defaultFrameDelay}
	for _, opt := range opts {
		opt(&options)
	}
	if options.delay < 0 {
		return errInvalidf("negative frame delay %v", options.delay)
	}

	s.frameCount = 0
	s.looping = true
	s.startTime = time.Now()
	Logger().Debug("animation loop started",
		slog.Duration("duration", options.duration),
		slog.Duration("delay", options.delay))

	for s.looping {
		s.frameCount++
		if options.duration > 0 && time.Since(s.startTime) > options.duration {
			break
		}
		err := s.surface.Batch(func() error {
			defer s.clearVertices()
			return draw()
		})
		if err != nil {
			s.looping = false
			return err
		}
		s.sleep(options.delay)
	}
	s.looping = false
	return nil
}

// Stop ends the animation loop at the next iteration boundary. All loop
// state is discarded; a subsequent Run starts over with frame count 0.
// Safe to call from inside the draw callback.
func (s *Sketch) Stop() {
	s.looping = false
}

// Looping reports whether the animation loop is running.
func (s *Sketch) Looping() bool { return s.looping }

// FrameCount returns the number of frames begun since Run started.
func (s *Sketch) FrameCount() int { return s.frameCount }
