// Package turtle implements classic turtle graphics on top of sketch.
//
// Turtles live on a Screen and draw onto their own pen layer as they
// move; the screen composites the background, every pen layer, and the
// visible turtle cursors into one image. Screens are held by a
// Registry, so independent programs never share global state:
//
//	reg := turtle.NewRegistry()
//	t := turtle.New(reg)
//	t.Forward(100)
//	t.Left(90)
//	img := reg.Current().Snapshot()
//
// The coordinate system is the classic one: origin at the center of
// the screen, y growing upward, heading 0 along the positive x axis
// with positive angles turning counterclockwise.
package turtle
