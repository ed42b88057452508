package viewer

import "testing"

func TestKeyStateDefaultsToNotHeld(t *testing.T) {
	ks := NewKeyState("w", "a")

	if ks.IsHeld("w") {
		t.Error("expected w not held before any event")
	}
	if ks.IsHeld("never-set") {
		t.Error("expected unknown id not held")
	}
}

func TestKeyStateUnrecognizedIdsDropped(t *testing.T) {
	ks := NewKeyState("w")

	ks.SetKey("f13", true)
	ks.SetKey("capslock", true)
	ks.Apply()

	if ks.IsHeld("f13") || ks.IsHeld("capslock") {
		t.Error("unrecognized ids must never become held")
	}
}

func TestKeyStateEventsVisibleOnlyAfterApply(t *testing.T) {
	ks := NewKeyState("w")

	ks.SetKey("w", true)
	if ks.IsHeld("w") {
		t.Error("queued event must not be visible before Apply")
	}

	ks.Apply()
	if !ks.IsHeld("w") {
		t.Error("expected w held after Apply")
	}
}

func TestKeyStateLastEventWins(t *testing.T) {
	ks := NewKeyState("w")

	// Press and release within one frame: the release wins.
	ks.SetKey("w", true)
	ks.SetKey("w", false)
	ks.Apply()
	if ks.IsHeld("w") {
		t.Error("expected release to win over earlier press")
	}

	// Release and press within one frame: the press wins.
	ks.SetKey("w", false)
	ks.SetKey("w", true)
	ks.Apply()
	if !ks.IsHeld("w") {
		t.Error("expected press to win over earlier release")
	}
}

func TestKeyStateLevelTriggered(t *testing.T) {
	ks := NewKeyState("w")

	ks.SetKey("w", true)
	ks.Apply()

	// No further events: the key stays held across any number of frames.
	ks.Apply()
	ks.Apply()
	if !ks.IsHeld("w") {
		t.Error("held state must persist until a release event arrives")
	}
}
