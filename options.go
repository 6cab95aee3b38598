package sketch

import "time"

// Option configures a Sketch during creation.
//
// Example:
//
//	// Default software surface
//	s := sketch.NewSketch(400, 400)
//
//	// Custom surface (dependency injection)
//	s := sketch.NewSketch(400, 400, sketch.WithSurface(mySurface))
type Option func(*sketchOptions)

// sketchOptions holds optional configuration for Sketch creation.
type sketchOptions struct {
	surface Surface
	density int
}

// defaultOptions returns the default sketch options.
func defaultOptions() sketchOptions {
	return sketchOptions{
		surface: nil, // software surface created if nil
		density: 1,
	}
}

// WithSurface sets a custom drawing surface for the Sketch.
// Use this for dependency injection of host-specific renderers.
func WithSurface(s Surface) Option {
	return func(o *sketchOptions) {
		o.surface = s
	}
}

// WithPixelDensity sets the device pixel density. The backing bitmap is
// width*d x height*d pixels and an initial scale of d maps logical
// coordinates onto it. Values below 1 are ignored.
func WithPixelDensity(d int) Option {
	return func(o *sketchOptions) {
		if d >= 1 {
			o.density = d
		}
	}
}

// RunOption configures a Run animation loop.
type RunOption func(*runOptions)

type runOptions struct {
	duration time.Duration
	delay    time.Duration
}

// Duration bounds the loop to the given wall-clock time. The in-flight
// frame still completes when the bound is crossed. Zero means unbounded.
func Duration(d time.Duration) RunOption {
	return func(o *runOptions) {
		o.duration = d
	}
}

// FrameDelay sets the pause between frames. The default is 20ms.
func FrameDelay(d time.Duration) RunOption {
	return func(o *runOptions) {
		o.delay = d
	}
}
