// Package surface holds the input handling shared by the render surfaces:
// telling clicks from drags, look-around camera control and inline name
// editing. It has no windowing dependencies.
package surface

import (
	"math"

	"github.com/philipparndt/constellation/pkg/viewer"
)

const (
	// ClickDistance is how far the pointer may travel between press and
	// release for the gesture to still count as a click
	ClickDistance = 5.0

	// moveThreshold is the per-frame delta that marks a press as a drag
	moveThreshold = 1.0

	// RotateSpeed is radians per pixel of drag
	RotateSpeed = 0.005

	// ZoomSpeed is the field of view change per wheel notch
	ZoomSpeed = 0.05
)

// ClickTracker tells clicks from drags for one pointer button
type ClickTracker struct {
	downX, downY float64
	pressed      bool
	moved        bool
}

// Press records the button going down
func (c *ClickTracker) Press(x, y float64) {
	c.downX, c.downY = x, y
	c.pressed = true
	c.moved = false
}

// Move records pointer motion while pressed
func (c *ClickTracker) Move(dx, dy float64) {
	if !c.pressed {
		return
	}
	if math.Abs(dx) > moveThreshold || math.Abs(dy) > moveThreshold {
		c.moved = true
	}
}

// Pressed reports whether the button is down
func (c *ClickTracker) Pressed() bool {
	return c.pressed
}

// Release records the button going up and reports whether the gesture was a
// click
func (c *ClickTracker) Release(x, y float64) bool {
	if !c.pressed {
		return false
	}
	c.pressed = false
	return !c.moved && math.Hypot(x-c.downX, y-c.downY) < ClickDistance
}

// Look turns the camera by a drag delta in pixels. Dragging right turns the
// view right, dragging down tilts it down.
func Look(cam *viewer.Camera, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	cam.Rotate(dy*RotateSpeed, dx*RotateSpeed)
}

// Wheel zooms the camera by a number of wheel notches; positive zooms in
func Wheel(cam *viewer.Camera, notches float64) {
	if notches == 0 {
		return
	}
	cam.Zoom(-notches * ZoomSpeed)
}

// NameEditor edits the constellation name in place
type NameEditor struct {
	buf     []rune
	editing bool
}

// MaxNameLength bounds the edited name
const MaxNameLength = 64

// Begin starts editing from the current name
func (e *NameEditor) Begin(current string) {
	e.buf = []rune(current)
	e.editing = true
}

// Editing reports whether an edit is in progress
func (e *NameEditor) Editing() bool {
	return e.editing
}

// Type appends a printable character
func (e *NameEditor) Type(r rune) {
	if !e.editing || r < ' ' || r == 0x7f || len(e.buf) >= MaxNameLength {
		return
	}
	e.buf = append(e.buf, r)
}

// Backspace removes the last character
func (e *NameEditor) Backspace() {
	if e.editing && len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

// Text returns the name as currently edited
func (e *NameEditor) Text() string {
	return string(e.buf)
}

// Commit ends editing and returns the new name
func (e *NameEditor) Commit() string {
	e.editing = false
	return string(e.buf)
}

// Cancel ends editing without a result
func (e *NameEditor) Cancel() {
	e.editing = false
	e.buf = e.buf[:0]
}
