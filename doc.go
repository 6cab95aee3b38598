// Package sketch provides a Processing-style imperative 2D drawing API
// over a retained bitmap surface.
//
// # Overview
//
// sketch keeps a persistent pixel surface and a 2D affine transform
// stack, and translates a small set of drawing primitives (arcs,
// ellipses, polygons, text, images) into calls against that surface.
// A cooperative frame loop re-invokes a per-frame callback for
// animation. The turtle subpackage layers a position/heading motion
// model on top of the same primitives.
//
// # Quick Start
//
//	import "github.com/gosketch/sketch"
//
//	s := sketch.NewSketch(400, 400)
//	s.Background("white")
//	s.Fill("orange")
//	s.Circle(200, 200, 120)
//	s.Text("hello", 20, 30)
//
//	// Encode the bitmap for display.
//	s.EncodePNG(w)
//
// # Coordinate System
//
//	Origin (0,0) at top-left
//	X increases right, Y increases down
//	Angles in radians, clockwise-positive on screen
//
// The turtle subpackage instead places its origin at the canvas center
// with Y up, matching classic turtle graphics.
//
// # Rendering
//
// Drawing goes through the Surface interface. NewSketch wires in a
// software surface backed by a pixmap; a custom Surface can be injected
// with WithSurface for embedding in other hosts.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
