package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/constellation/pkg/geometry"
)

const (
	minFOV = 10 * math.Pi / 180
	maxFOV = 120 * math.Pi / 180
)

// Camera is a perspective camera orbiting a target. For the star field the
// target is the sphere center and the orbit distance is tiny, so rotating
// the camera amounts to looking around from inside the shell.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Near      float64
	Far       float64
	Distance  float64
	RotationX float64 // Elevation
	RotationY float64 // Azimuth
}

// Ray is a half line in world space with a unit direction
type Ray struct {
	Origin    geometry.Vector3
	Direction geometry.Vector3
}

// NewCamera creates a camera looking at the origin from distance along +Z.
// sceneRadius sizes the far plane so the whole shell stays visible.
func NewCamera(fovDegrees, distance, sceneRadius float64) *Camera {
	far := math.Max(sceneRadius*4, 10)
	near := math.Min(0.1, distance/2)
	if near <= 0 {
		near = 0.01
	}

	c := &Camera{
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      fovDegrees * math.Pi / 180,
		Near:     near,
		Far:      far,
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp elevation to keep the up vector meaningful
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom narrows or widens the field of view by the given fraction
func (c *Camera) Zoom(delta float64) {
	c.FOV *= 1.0 + delta
	c.FOV = math.Max(minFOV, math.Min(maxFOV, c.FOV))
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// View returns the world to camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position.Vec3(), c.Target.Vec3(), c.Up.Vec3())
}

// Projection returns the perspective matrix for the given viewport
func (c *Camera) Projection(vp Viewport) mgl32.Mat4 {
	return mgl32.Perspective(float32(c.FOV), float32(vp.Aspect()), float32(c.Near), float32(c.Far))
}

// Project maps a world point to client coordinates. depth is the distance
// along the viewing direction; ok is false for points outside the view
// frustum depth range (behind the camera or past the far plane).
func (c *Camera) Project(point geometry.Vector3, vp Viewport) (x, y, depth float64, ok bool) {
	return c.Projector(vp).Project(point)
}

// Projector captures the current view-projection so many points can be
// projected without rebuilding the matrices
func (c *Camera) Projector(vp Viewport) Projector {
	return Projector{
		m:    c.Projection(vp).Mul4(c.View()),
		vp:   vp,
		near: c.Near,
	}
}

// Projector projects world points for a fixed camera and viewport
type Projector struct {
	m    mgl32.Mat4
	vp   Viewport
	near float64
}

// Project behaves like Camera.Project
func (p Projector) Project(point geometry.Vector3) (x, y, depth float64, ok bool) {
	return p.ProjectXYZ(float32(point.X), float32(point.Y), float32(point.Z))
}

// ProjectXYZ projects a point given as raw coordinates, as stored in the
// flat render buffers
func (p Projector) ProjectXYZ(px, py, pz float32) (x, y, depth float64, ok bool) {
	clip := p.m.Mul4x1(mgl32.Vec4{px, py, pz, 1})
	w := float64(clip.W())
	if w < p.near {
		return 0, 0, w, false
	}

	ndcX := float64(clip.X()) / w
	ndcY := float64(clip.Y()) / w
	ndcZ := float64(clip.Z()) / w
	x, y = p.vp.Client(ndcX, ndcY)
	return x, y, w, ndcZ <= 1
}

// Ray converts client coordinates into a world space ray through the pixel
func (c *Camera) Ray(clientX, clientY float64, vp Viewport) Ray {
	ndcX, ndcY := vp.NDC(clientX, clientY)

	// Built from the camera basis in double precision; inverting the single
	// precision view-projection loses too much with a far/near ratio this large.
	forward, right, up := c.basis()
	fovScale := math.Tan(c.FOV / 2)

	direction := forward.
		Add(right.Mul(ndcX * fovScale * vp.Aspect())).
		Add(up.Mul(ndcY * fovScale)).
		Normalize()
	return Ray{Origin: c.Position, Direction: direction}
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Forward()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// PixelsPerUnit returns how many pixels one world unit spans at the given
// view depth
func (c *Camera) PixelsPerUnit(depth float64, vp Viewport) float64 {
	if depth <= 0 {
		return math.Inf(1)
	}
	return vp.Height / (2 * depth * math.Tan(c.FOV/2))
}

// DistanceTo returns the perpendicular distance from point to the ray and
// the ray parameter of the closest approach (clamped at the origin)
func (r Ray) DistanceTo(point geometry.Vector3) (float64, float64) {
	toPoint := point.Sub(r.Origin)

	t := toPoint.Dot(r.Direction)
	if t < 0 {
		t = 0
	}

	closest := r.Origin.Add(r.Direction.Mul(t))
	return point.Distance(closest), t
}
