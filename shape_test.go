package sketch

import "testing"

func TestEndShapeDrawsRecordedVertices(t *testing.T) {
	s, surf := newStubSketch(100, 100)
	s.BeginShape()
	s.Vertex(10, 10)
	s.Vertex(90, 10)
	s.Vertex(50, 90)
	s.EndShape()

	if surf.count("FillPolygon 3") != 1 || surf.count("StrokePolygon 3") != 1 {
		t.Errorf("EndShape calls %v, want one fill and one stroke of 3 vertices", surf.calls)
	}
}

func TestEndShapeClearsBuffer(t *testing.T) {
	s, surf := newStubSketch(100, 100)
	s.BeginShape()
	s.Vertex(10, 10)
	s.Vertex(20, 20)
	s.EndShape()

	before := len(surf.calls)
	s.EndShape() // stray second call draws nothing
	if len(surf.calls) != before {
		t.Errorf("second EndShape drew: %v", surf.calls[before:])
	}
}

func TestBeginShapeDropsPreviousVertices(t *testing.T) {
	s, surf := newStubSketch(100, 100)
	s.BeginShape()
	s.Vertex(1, 1)
	s.Vertex(2, 2)
	s.BeginShape()
	s.Vertex(3, 3)
	s.EndShape()

	if surf.count("FillPolygon 1") != 1 {
		t.Errorf("EndShape calls %v, want a single 1-vertex polygon", surf.calls)
	}
}

func TestWithShapeClosesOnPanic(t *testing.T) {
	s, surf := newStubSketch(100, 100)
	func() {
		defer func() { _ = recover() }()
		s.WithShape(func() {
			s.Vertex(1, 1)
			panic("boom")
		})
	}()

	if surf.count("FillPolygon 1") != 1 {
		t.Errorf("WithShape did not close the shape on panic: %v", surf.calls)
	}
}

func TestTriangleUsesShapeRecorder(t *testing.T) {
	s, surf := newStubSketch(100, 100)
	s.Triangle(0, 0, 10, 0, 5, 10)
	if surf.count("FillPolygon 3") != 1 {
		t.Errorf("Triangle calls %v, want one 3-vertex polygon", surf.calls)
	}
}
