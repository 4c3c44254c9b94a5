// Package camera provides the free-look camera for inspecting the room.
package camera

import (
	gomath "math"

	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// FlyCamera is a first-person free camera. It starts outside the room
// looking in; culling hides the near walls so the interior stays visible.
type FlyCamera struct {
	Position vmath.Vec3

	// Orientation as yaw/pitch, radians. Yaw 0 looks down +Z.
	Yaw   float64
	Pitch float64

	MaxPitch float64

	// Blocked, when set, rejects candidate positions that collide with
	// scene geometry; a blocked movement leaves the camera where it is.
	Blocked func(vmath.Vec3) bool

	// Sensitivity
	LookSensitivity float64
	MoveSpeed       float64
}

// New creates a camera at the given position looking toward the room centre.
func New(pos vmath.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:        pos,
		MaxPitch:        1.5,
		LookSensitivity: 0.003,
		MoveSpeed:       1.2,
	}
	c.lookAtOrigin()
	return c
}

func (c *FlyCamera) lookAtOrigin() {
	dir := c.Position.Neg().Normalize()
	c.Yaw = gomath.Atan2(dir.X, dir.Z)
	c.Pitch = gomath.Asin(dir.Y)
}

// Front returns the camera's normalized view direction.
func (c *FlyCamera) Front() vmath.Vec3 {
	cosPitch := gomath.Cos(c.Pitch)
	return vmath.Vec3{
		X: gomath.Sin(c.Yaw) * cosPitch,
		Y: gomath.Sin(c.Pitch),
		Z: gomath.Cos(c.Yaw) * cosPitch,
	}
}

// Right returns the camera's right direction on the XZ plane.
func (c *FlyCamera) Right() vmath.Vec3 {
	return vmath.Vec3{X: -gomath.Cos(c.Yaw), Z: gomath.Sin(c.Yaw)}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() vmath.Mat4 {
	up := vmath.Vec3{Y: 1}
	return vmath.LookAt(c.Position, c.Position.Add(c.Front()), up)
}

// HandleLook updates orientation from a relative mouse motion.
func (c *FlyCamera) HandleLook(deltaX, deltaY float64) {
	c.Yaw -= deltaX * c.LookSensitivity
	c.Pitch -= deltaY * c.LookSensitivity

	// Clamp pitch
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}

// HandleMovement moves the camera along its view and strafe axes. A
// step that would collide with the scene is discarded whole.
func (c *FlyCamera) HandleMovement(forward, right, dt float64) {
	step := c.Front().Scale(forward).Add(c.Right().Scale(right))
	next := c.Position.Add(step.Scale(c.MoveSpeed * dt))
	if c.Blocked != nil && c.Blocked(next) {
		return
	}
	c.Position = next
}
