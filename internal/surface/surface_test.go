package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/constellation/pkg/viewer"
)

func TestClickTracker(t *testing.T) {
	var c ClickTracker

	c.Press(100, 100)
	assert.True(t, c.Pressed())
	assert.True(t, c.Release(102, 101))
	assert.False(t, c.Pressed())

	// Travelled too far
	c.Press(100, 100)
	assert.False(t, c.Release(110, 100))

	// Moved and came back: still a drag
	c.Press(100, 100)
	c.Move(8, 0)
	c.Move(-8, 0)
	assert.False(t, c.Release(100, 100))

	// Sub-pixel jitter is ignored
	c.Press(50, 50)
	c.Move(0.5, -0.5)
	assert.True(t, c.Release(50, 50))

	// Release without press
	assert.False(t, c.Release(50, 50))
}

func TestLookAndWheel(t *testing.T) {
	cam := viewer.NewCamera(60, 0.1, 1000)

	Look(cam, 100, 0)
	assert.InDelta(t, 100*RotateSpeed, cam.RotationY, 1e-12)
	assert.InDelta(t, 0, cam.RotationX, 1e-12)

	Look(cam, 0, -40)
	assert.InDelta(t, -40*RotateSpeed, cam.RotationX, 1e-12)

	fov := cam.FOV
	Wheel(cam, 1)
	assert.Less(t, cam.FOV, fov)
	Wheel(cam, 0)
	assert.Less(t, cam.FOV, fov)
}

func TestNameEditor(t *testing.T) {
	var e NameEditor
	e.Type('x')
	assert.False(t, e.Editing())
	assert.Equal(t, "", e.Text())

	e.Begin("Ori")
	for _, r := range "on\n" {
		e.Type(r)
	}
	assert.Equal(t, "Orion", e.Text())

	e.Backspace()
	e.Type('n')
	e.Type('ß')
	e.Backspace()
	assert.Equal(t, "Orion", e.Commit())
	assert.False(t, e.Editing())

	e.Begin("")
	e.Backspace()
	for range MaxNameLength + 10 {
		e.Type('a')
	}
	assert.Len(t, e.Text(), MaxNameLength)
	e.Cancel()
	assert.False(t, e.Editing())
}
