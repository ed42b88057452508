package viewer

import (
	stdmath "math"
	"testing"

	"scene-viewer/math"
	"scene-viewer/scene"
)

func heldKeys(ids ...string) *KeyState {
	ks := NewKeyState(
		KeyCamForward, KeyCamBack, KeyCamLeft, KeyCamRight,
		KeyLightZNeg, KeyLightZPos, KeyLightXNeg, KeyLightXPos,
		KeyLightYPos, KeyLightYNeg,
	)
	for _, id := range ids {
		ks.SetKey(id, true)
	}
	ks.Apply()
	return ks
}

func newTestCamera() *scene.Camera {
	cam := scene.NewCamera(1.0472, 16.0/9.0, 0.1, 1000)
	cam.SetPosition(math.Vec3Zero)
	cam.SetTarget(math.Vec3Back) // facing world -Z
	return cam
}

func approxEqual(a, b, tol float32) bool {
	return float32(stdmath.Abs(float64(a-b))) <= tol
}

func TestCameraNavForwardScenario(t *testing.T) {
	// Facing -Z, hold forward for 2 s at speed 5: position and target
	// both shift by (0,0,-10), viewing direction unchanged.
	cam := newTestCamera()
	nav := NewCameraNavigator(5)

	nav.Advance(cam, heldKeys(KeyCamForward), 2.0)

	want := math.NewVec3(0, 0, -10)
	if !vecApprox(cam.Position, want, 1e-4) {
		t.Errorf("position: expected %v, got %v", want, cam.Position)
	}
	wantTarget := math.NewVec3(0, 0, -11)
	if !vecApprox(cam.Target, wantTarget, 1e-4) {
		t.Errorf("target: expected %v, got %v", wantTarget, cam.Target)
	}
	if !vecApprox(cam.Forward(), math.Vec3Back, 1e-5) {
		t.Errorf("orientation changed: forward is %v", cam.Forward())
	}
}

func TestCameraNavDisplacementBounded(t *testing.T) {
	combos := [][]string{
		{KeyCamForward},
		{KeyCamForward, KeyCamRight},
		{KeyCamForward, KeyCamBack},
		{KeyCamForward, KeyCamBack, KeyCamLeft, KeyCamRight},
		{KeyCamLeft, KeyCamBack},
		{},
	}
	const speed, dt = float32(5), float32(0.25)

	for _, combo := range combos {
		cam := newTestCamera()
		nav := NewCameraNavigator(speed)
		start := cam.Position

		nav.Advance(cam, heldKeys(combo...), dt)

		moved := cam.Position.Sub(start).Length()
		if moved > speed*dt+1e-4 {
			t.Errorf("keys %v: displacement %v exceeds speed*dt %v", combo, moved, speed*dt)
		}
	}
}

func TestCameraNavDiagonalNotFaster(t *testing.T) {
	const speed, dt = float32(5), float32(0.5)

	camAxis := newTestCamera()
	NewCameraNavigator(speed).Advance(camAxis, heldKeys(KeyCamForward), dt)
	axisDist := camAxis.Position.Length()

	camDiag := newTestCamera()
	NewCameraNavigator(speed).Advance(camDiag, heldKeys(KeyCamForward, KeyCamRight), dt)
	diagDist := camDiag.Position.Length()

	if !approxEqual(axisDist, diagDist, 1e-4) {
		t.Errorf("diagonal displacement %v != axis displacement %v", diagDist, axisDist)
	}
}

func TestCameraNavOpposingKeysCancel(t *testing.T) {
	cam := newTestCamera()
	nav := NewCameraNavigator(5)

	nav.Advance(cam, heldKeys(KeyCamForward, KeyCamBack), 1.0)

	if cam.Position != math.Vec3Zero {
		t.Errorf("expected no movement, got %v", cam.Position)
	}
}

func TestCameraNavNoKeysNoMovement(t *testing.T) {
	cam := newTestCamera()
	nav := NewCameraNavigator(5)

	nav.Advance(cam, heldKeys(), 1.0)

	if cam.Position != math.Vec3Zero || cam.Target != math.Vec3Back {
		t.Errorf("expected camera untouched, got pos %v target %v", cam.Position, cam.Target)
	}
}

func TestCameraNavInvalidDeltaMovesNothing(t *testing.T) {
	for _, dt := range []float32{
		-1,
		float32(stdmath.NaN()),
		float32(stdmath.Inf(1)),
		float32(stdmath.Inf(-1)),
	} {
		cam := newTestCamera()
		nav := NewCameraNavigator(5)

		nav.Advance(cam, heldKeys(KeyCamForward), dt)

		if cam.Position != math.Vec3Zero {
			t.Errorf("dt=%v: expected no movement, got %v", dt, cam.Position)
		}
		if stdmath.IsNaN(float64(cam.Position.X)) {
			t.Errorf("dt=%v: NaN leaked into position", dt)
		}
	}
}

func TestCameraNavDegenerateForwardFallsBack(t *testing.T) {
	// Looking straight down: the horizontal projection of forward is
	// zero, so movement follows the remembered flattened forward.
	cam := scene.NewCamera(1.0472, 1, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, 5, 0))
	cam.SetTarget(math.NewVec3(0, 0, 0))

	nav := NewCameraNavigator(4)
	nav.Advance(cam, heldKeys(KeyCamForward), 1.0)

	// Fallback seed is world -Z.
	want := math.NewVec3(0, 5, -4)
	if !vecApprox(cam.Position, want, 1e-4) {
		t.Errorf("expected fallback movement to %v, got %v", want, cam.Position)
	}
}

func TestCameraNavRemembersLastGoodForward(t *testing.T) {
	cam := scene.NewCamera(1.0472, 1, 0.1, 1000)
	cam.SetPosition(math.Vec3Zero)
	cam.SetTarget(math.NewVec3(1, 0, 0)) // facing +X

	nav := NewCameraNavigator(2)
	nav.Advance(cam, heldKeys(KeyCamForward), 1.0) // records +X as last forward

	// Pitch straight up, keep moving: motion continues along +X.
	pos := cam.Position
	cam.SetTarget(pos.Add(math.Vec3Up))
	nav.Advance(cam, heldKeys(KeyCamForward), 1.0)

	want := pos.Add(math.NewVec3(2, 0, 0))
	if !vecApprox(cam.Position, want, 1e-4) {
		t.Errorf("expected motion along remembered forward to %v, got %v", want, cam.Position)
	}
}

func vecApprox(a, b math.Vec3, tol float32) bool {
	return approxEqual(a.X, b.X, tol) && approxEqual(a.Y, b.Y, tol) && approxEqual(a.Z, b.Z, tol)
}
