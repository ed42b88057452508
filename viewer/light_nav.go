package viewer

// Logical key ids the light navigator reads.
const (
	KeyLightZNeg = "up"
	KeyLightZPos = "down"
	KeyLightXNeg = "left"
	KeyLightXPos = "right"
	KeyLightYPos = "pageup"
	KeyLightYNeg = "pagedown"
)

// LightNavigator moves the rig's active light along the world axes.
// Each axis is an independent slider: simultaneous holds add per axis
// and are deliberately not normalized into a single direction, unlike
// camera movement.
type LightNavigator struct {
	Speed float32 // world units per second, distinct from camera speed
}

func NewLightNavigator(speed float32) *LightNavigator {
	return &LightNavigator{Speed: speed}
}

// Advance applies one tick of keyboard movement to the active light.
// Only the light's position is touched; intensity, range and color are
// left alone. An empty rig or out-of-range selection is a no-op.
func (ln *LightNavigator) Advance(rig *LightRig, keys *KeyState, dt float32) {
	dt = sanitizeDelta(dt)
	if dt == 0 || rig == nil {
		return
	}
	light := rig.ActiveLight()
	if light == nil {
		return
	}

	step := ln.Speed * dt
	if keys.IsHeld(KeyLightZNeg) {
		light.Position.Z -= step
	}
	if keys.IsHeld(KeyLightZPos) {
		light.Position.Z += step
	}
	if keys.IsHeld(KeyLightXNeg) {
		light.Position.X -= step
	}
	if keys.IsHeld(KeyLightXPos) {
		light.Position.X += step
	}
	if keys.IsHeld(KeyLightYPos) {
		light.Position.Y += step
	}
	if keys.IsHeld(KeyLightYNeg) {
		light.Position.Y -= step
	}
}
