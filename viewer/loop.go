package viewer

import (
	"fmt"
	stdmath "math"
	"time"

	"scene-viewer/scene"
)

// maxFrameDelta bounds a single frame's integration step. Without it a
// debugger stall or clock jump teleports the camera and lights.
const maxFrameDelta = 0.1

// FrameClock measures elapsed seconds between consecutive ticks.
type FrameClock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewFrameClockFunc creates a clock reading time from now. Tests inject
// a fake source here.
func NewFrameClockFunc(now func() time.Time) *FrameClock {
	return &FrameClock{now: now}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// [0, maxFrameDelta]. The first call returns 0.
func (fc *FrameClock) Tick() float32 {
	t := fc.now()
	if !fc.started {
		fc.started = true
		fc.last = t
		return 0
	}
	dt := float32(t.Sub(fc.last).Seconds())
	fc.last = t

	if stdmath.IsNaN(float64(dt)) || dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// Loop drives one frame of the viewer: apply queued input, run the
// pre-update hook, advance the camera, advance the active light, sync
// the light proxies, render. The hosting program calls Step after event
// polling until the window closes.
type Loop struct {
	Clock    *FrameClock
	Keys     *KeyState
	Camera   *scene.Camera
	CamNav   *CameraNavigator
	Rig      *LightRig
	LightNav *LightNavigator

	// PreUpdate runs after input is applied and before the navigators:
	// panel edits, picking, asset results, mouse look.
	PreUpdate func(dt float32)

	// Render draws the frame. A render error is logged and the loop
	// carries on with the prior state; nothing in Step is fatal.
	Render func() error

	running bool
}

// Step runs one frame tick.
func (lp *Loop) Step() {
	lp.running = true

	dt := lp.Clock.Tick()
	lp.Keys.Apply()

	if lp.PreUpdate != nil {
		lp.PreUpdate(dt)
	}

	lp.CamNav.Advance(lp.Camera, lp.Keys, dt)
	lp.LightNav.Advance(lp.Rig, lp.Keys, dt)
	lp.Rig.Sync()

	if lp.Render != nil {
		if err := lp.Render(); err != nil {
			fmt.Printf("[Render] %v\n", err)
		}
	}
}

// Running reports whether the loop has ticked at least once.
func (lp *Loop) Running() bool {
	return lp.running
}
