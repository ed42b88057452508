package viewer

import (
	"testing"

	"scene-viewer/core"
	"scene-viewer/math"
)

func TestRigDefaultSelectionIsZero(t *testing.T) {
	_, rig := newTestRig(5)

	if rig.Active != 0 {
		t.Errorf("expected default active 0, got %d", rig.Active)
	}
	if rig.ActiveLight() != rig.Lights[0] {
		t.Error("ActiveLight should return light 0 by default")
	}
}

func TestRigActiveLightOutOfRange(t *testing.T) {
	_, rig := newTestRig(3)

	for _, i := range []int{-1, 3, 42} {
		rig.Active = i
		if rig.ActiveLight() != nil {
			t.Errorf("active=%d: expected nil active light", i)
		}
	}
}

func TestRigCountClamped(t *testing.T) {
	_, rig := newTestRig(100)
	if len(rig.Lights) != len(rigSpread) {
		t.Errorf("expected %d lights, got %d", len(rigSpread), len(rig.Lights))
	}

	_, rig = newTestRig(0)
	if len(rig.Lights) != 1 {
		t.Errorf("expected at least 1 light, got %d", len(rig.Lights))
	}
}

func TestRigSyncMirrorsExactly(t *testing.T) {
	_, rig := newTestRig(5)

	// Scatter the lights, including values with no exact float32
	// representation: Sync must still produce exact equality because it
	// copies rather than recomputes.
	for i, l := range rig.Lights {
		l.Position = math.NewVec3(float32(i)*1.1, 0.3+float32(i), -float32(i)*2.7)
		l.Range = 3.3 * float32(i+1)
		l.Color = core.Color{R: 0.1 * float32(i), G: 0.5, B: 1 - 0.1*float32(i), A: 1}
	}

	rig.Sync()

	for i, l := range rig.Lights {
		if rig.Markers[i].Transform.Position != l.Position {
			t.Errorf("marker %d position != light position", i)
		}
		if rig.Helpers[i].Transform.Position != l.Position {
			t.Errorf("helper %d position != light position", i)
		}
		if rig.Markers[i].Mesh.Material.Albedo != l.Color {
			t.Errorf("marker %d color != light color", i)
		}
		wantScale := math.NewVec3(l.Range, l.Range, l.Range)
		if rig.Helpers[i].Transform.Scale != wantScale {
			t.Errorf("helper %d scale: expected %v, got %v",
				i, wantScale, rig.Helpers[i].Transform.Scale)
		}
	}
}

func TestRigSyncIdempotent(t *testing.T) {
	_, rig := newTestRig(3)
	rig.Lights[1].Position = math.NewVec3(7, 8, 9)

	rig.Sync()
	first := rig.Markers[1].Transform.Position
	rig.Sync()
	rig.Sync()

	if rig.Markers[1].Transform.Position != first {
		t.Error("repeated Sync changed marker position")
	}
}

func TestRigNodesAttachedToScene(t *testing.T) {
	s, rig := newTestRig(4)

	if len(s.Lights) != 4 {
		t.Errorf("expected 4 scene lights, got %d", len(s.Lights))
	}
	for i := range rig.Lights {
		if rig.Markers[i].Parent == nil || rig.Helpers[i].Parent == nil {
			t.Errorf("proxy nodes for light %d not attached", i)
		}
	}
}

func TestRigSetHelpersVisible(t *testing.T) {
	_, rig := newTestRig(2)

	rig.SetHelpersVisible(false)
	for i, h := range rig.Helpers {
		if h.Visible {
			t.Errorf("helper %d still visible", i)
		}
	}
	rig.SetHelpersVisible(true)
	for i, h := range rig.Helpers {
		if !h.Visible {
			t.Errorf("helper %d still hidden", i)
		}
	}
}
