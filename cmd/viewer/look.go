package main

import (
	stdmath "math"

	"scene-viewer/core"
	"scene-viewer/math"
	"scene-viewer/scene"
)

// LookController orbits the camera's look target around its position
// while the right mouse button is dragged. It only rewrites the target,
// so its edits compose with the camera navigator's translation in the
// same frame instead of overwriting it.
type LookController struct {
	lookSpeed float32
	lastX     float64
	lastY     float64
	dragging  bool
}

func NewLookController() *LookController {
	return &LookController{lookSpeed: 0.003}
}

// maxPitch stops short of straight up/down so the flattened camera
// forward keeps a usable horizontal component.
const maxPitch = 1.53

func (lc *LookController) Update(window *core.Window, cam *scene.Camera) {
	if !window.IsMouseButtonPressed(core.MouseButtonRight) {
		lc.dragging = false
		return
	}

	x, y := window.GetCursorPos()
	if !lc.dragging {
		lc.lastX, lc.lastY = x, y
		lc.dragging = true
		return
	}
	dx := float32(x-lc.lastX) * lc.lookSpeed
	dy := float32(y-lc.lastY) * lc.lookSpeed
	lc.lastX, lc.lastY = x, y

	toTarget := cam.Target.Sub(cam.Position)
	dist := toTarget.Length()
	if dist <= 0 {
		return
	}
	dir := toTarget.Div(dist)

	yaw := float32(stdmath.Atan2(float64(dir.Z), float64(dir.X)))
	pitch := float32(stdmath.Asin(float64(dir.Y)))

	yaw += dx
	pitch -= dy
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}

	cp := float32(stdmath.Cos(float64(pitch)))
	newDir := math.Vec3{
		X: cp * float32(stdmath.Cos(float64(yaw))),
		Y: float32(stdmath.Sin(float64(pitch))),
		Z: cp * float32(stdmath.Sin(float64(yaw))),
	}
	cam.SetTarget(cam.Position.Add(newDir.Mul(dist)))
}
