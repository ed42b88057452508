package viewer

import (
	stdmath "math"

	"scene-viewer/math"
	"scene-viewer/scene"
)

// Logical key ids the camera navigator reads.
const (
	KeyCamForward = "w"
	KeyCamBack    = "s"
	KeyCamLeft    = "a"
	KeyCamRight   = "d"
)

// CameraNavigator integrates held WASD keys into camera translation.
// Movement happens in the horizontal plane regardless of camera pitch,
// and the combined direction is normalized before scaling, so a diagonal
// is never faster than a single axis.
type CameraNavigator struct {
	Speed float32 // world units per second

	// Flattened forward from the last frame that had a usable horizontal
	// direction. Used when the camera looks straight up or down.
	lastForward math.Vec3
}

func NewCameraNavigator(speed float32) *CameraNavigator {
	return &CameraNavigator{
		Speed:       speed,
		lastForward: math.Vec3Back,
	}
}

// Advance applies one tick of keyboard movement to the camera. Position
// and look target shift together, so navigation never changes where the
// camera is aimed. A zero, negative or non-finite dt moves nothing.
func (cn *CameraNavigator) Advance(cam *scene.Camera, keys *KeyState, dt float32) {
	dt = sanitizeDelta(dt)
	if dt == 0 {
		return
	}

	forward := cam.Forward()
	forward.Y = 0
	if forward.LengthSqr() < 1e-8 {
		forward = cn.lastForward
	} else {
		forward = forward.Normalize()
		cn.lastForward = forward
	}
	right := forward.Cross(math.Vec3Up)

	move := math.Vec3Zero
	if keys.IsHeld(KeyCamForward) {
		move = move.Add(forward)
	}
	if keys.IsHeld(KeyCamBack) {
		move = move.Sub(forward)
	}
	if keys.IsHeld(KeyCamRight) {
		move = move.Add(right)
	}
	if keys.IsHeld(KeyCamLeft) {
		move = move.Sub(right)
	}

	// Opposing keys cancel to zero; don't normalize a zero vector.
	if move.LengthSqr() < 1e-12 {
		return
	}
	cam.Translate(move.Normalize().Mul(cn.Speed * dt))
}

// sanitizeDelta turns a negative or non-finite frame delta into zero so
// a clock discontinuity can never leak NaN into an integrator.
func sanitizeDelta(dt float32) float32 {
	d := float64(dt)
	if stdmath.IsNaN(d) || stdmath.IsInf(d, 0) || dt < 0 {
		return 0
	}
	return dt
}
