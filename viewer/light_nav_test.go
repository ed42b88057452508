package viewer

import (
	stdmath "math"
	"testing"

	"scene-viewer/math"
	"scene-viewer/scene"
)

func newTestRig(count int) (*scene.Scene, *LightRig) {
	s := scene.NewScene()
	rig := NewLightRig(s, count)
	return s, rig
}

func TestLightNavMoveActiveLightScenario(t *testing.T) {
	// Five lights, select index 2, hold increase-X for 1 s at speed 4:
	// light 2's X grows by exactly 4, the others stay put, and every
	// marker matches its light after Sync.
	_, rig := newTestRig(5)
	rig.Active = 2
	before := make([]math.Vec3, 5)
	for i, l := range rig.Lights {
		before[i] = l.Position
	}

	nav := NewLightNavigator(4)
	nav.Advance(rig, heldKeys(KeyLightXPos), 1.0)

	want := before[2]
	want.X += 4
	if rig.Lights[2].Position != want {
		t.Errorf("light 2: expected %v, got %v", want, rig.Lights[2].Position)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if rig.Lights[i].Position != before[i] {
			t.Errorf("light %d moved: %v -> %v", i, before[i], rig.Lights[i].Position)
		}
	}

	rig.Sync()
	for i, l := range rig.Lights {
		if rig.Markers[i].Transform.Position != l.Position {
			t.Errorf("marker %d desynced: light %v, marker %v",
				i, l.Position, rig.Markers[i].Transform.Position)
		}
	}
}

func TestLightNavAxesComposeAdditively(t *testing.T) {
	// Unlike camera movement, simultaneous axis keys are NOT normalized:
	// each held axis moves its full speed*dt step.
	_, rig := newTestRig(1)
	start := rig.Lights[0].Position

	nav := NewLightNavigator(4)
	nav.Advance(rig, heldKeys(KeyLightXPos, KeyLightZNeg, KeyLightYPos), 0.5)

	pos := rig.Lights[0].Position
	if !approxEqual(pos.X-start.X, 2, 1e-5) {
		t.Errorf("X delta: expected 2, got %v", pos.X-start.X)
	}
	if !approxEqual(pos.Y-start.Y, 2, 1e-5) {
		t.Errorf("Y delta: expected 2, got %v", pos.Y-start.Y)
	}
	if !approxEqual(pos.Z-start.Z, -2, 1e-5) {
		t.Errorf("Z delta: expected -2, got %v", pos.Z-start.Z)
	}
}

func TestLightNavOutOfRangeSelectionIsNoOp(t *testing.T) {
	for _, active := range []int{-1, 5, 100} {
		_, rig := newTestRig(5)
		rig.Active = active
		before := make([]math.Vec3, 5)
		for i, l := range rig.Lights {
			before[i] = l.Position
		}

		nav := NewLightNavigator(4)
		nav.Advance(rig, heldKeys(KeyLightXPos, KeyLightYPos, KeyLightZPos), 1.0)

		for i, l := range rig.Lights {
			if l.Position != before[i] {
				t.Errorf("active=%d: light %d moved to %v", active, i, l.Position)
			}
		}
	}
}

func TestLightNavOnlyPositionMutated(t *testing.T) {
	_, rig := newTestRig(3)
	rig.Active = 1
	l := rig.Lights[1]
	intensity, rng, color := l.Intensity, l.Range, l.Color

	nav := NewLightNavigator(4)
	nav.Advance(rig, heldKeys(
		KeyLightXPos, KeyLightXNeg, KeyLightYPos,
		KeyLightYNeg, KeyLightZPos, KeyLightZNeg,
	), 1.0)

	if l.Intensity != intensity {
		t.Errorf("intensity mutated: %v -> %v", intensity, l.Intensity)
	}
	if l.Range != rng {
		t.Errorf("range mutated: %v -> %v", rng, l.Range)
	}
	if l.Color != color {
		t.Errorf("color mutated: %v -> %v", color, l.Color)
	}
}

func TestLightNavInvalidDeltaMovesNothing(t *testing.T) {
	for _, dt := range []float32{
		-0.5,
		float32(stdmath.NaN()),
		float32(stdmath.Inf(1)),
	} {
		_, rig := newTestRig(1)
		before := rig.Lights[0].Position

		nav := NewLightNavigator(4)
		nav.Advance(rig, heldKeys(KeyLightXPos), dt)

		if rig.Lights[0].Position != before {
			t.Errorf("dt=%v: light moved to %v", dt, rig.Lights[0].Position)
		}
	}
}

func TestLightNavNilRigIsNoOp(t *testing.T) {
	nav := NewLightNavigator(4)
	nav.Advance(nil, heldKeys(KeyLightXPos), 1.0) // must not panic
}
