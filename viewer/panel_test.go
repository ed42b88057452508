package viewer

import (
	"testing"

	"scene-viewer/core"
	"scene-viewer/math"
	"scene-viewer/scene"
)

func newTestPanel(count int) (*scene.Scene, *LightRig, *Panel) {
	s, rig := newTestRig(count)
	sun := &scene.Light{
		Type:      scene.LightTypeDirectional,
		Direction: math.NewVec3(0.4, -0.8, -0.3).Normalize(),
		Color:     core.ColorWhite,
		Intensity: 1.5,
	}
	s.AddLight(sun)
	return s, rig, NewPanel(s, rig, sun)
}

func TestPanelClampsPositionBounds(t *testing.T) {
	_, rig, panel := newTestPanel(3)

	panel.SetPositionX(0, -100)
	panel.SetPositionY(0, -5)
	panel.SetPositionZ(0, 100)

	pos := rig.Lights[0].Position
	if pos.X != PanelPosXMin {
		t.Errorf("X: expected clamp to %v, got %v", PanelPosXMin, pos.X)
	}
	if pos.Y != PanelPosYMin {
		t.Errorf("Y: expected clamp to %v, got %v", PanelPosYMin, pos.Y)
	}
	if pos.Z != PanelPosZMax {
		t.Errorf("Z: expected clamp to %v, got %v", PanelPosZMax, pos.Z)
	}

	panel.SetPositionX(0, 7.5)
	if rig.Lights[0].Position.X != 7.5 {
		t.Errorf("in-range X rejected: got %v", rig.Lights[0].Position.X)
	}
}

func TestPanelClampsIntensityAndRange(t *testing.T) {
	_, rig, panel := newTestPanel(1)

	panel.SetIntensity(0, -1)
	if rig.Lights[0].Intensity != 0 {
		t.Errorf("intensity floor: got %v", rig.Lights[0].Intensity)
	}
	panel.SetIntensity(0, 99)
	if rig.Lights[0].Intensity != PanelIntensityMax {
		t.Errorf("intensity ceiling: got %v", rig.Lights[0].Intensity)
	}

	panel.SetRange(0, -3)
	if rig.Lights[0].Range != 0 {
		t.Errorf("range floor: got %v", rig.Lights[0].Range)
	}
	panel.SetRange(0, 500)
	if rig.Lights[0].Range != PanelRangeMax {
		t.Errorf("range ceiling: got %v", rig.Lights[0].Range)
	}
}

func TestPanelInvalidIndexIgnored(t *testing.T) {
	_, rig, panel := newTestPanel(2)
	before0 := *rig.Lights[0]
	before1 := *rig.Lights[1]

	panel.SetPositionX(-1, 5)
	panel.SetIntensity(2, 5)
	panel.SetRange(99, 5)
	panel.SetColor(-3, core.ColorRed)

	if *rig.Lights[0] != before0 || *rig.Lights[1] != before1 {
		t.Error("edit with invalid index mutated a light")
	}
}

func TestPanelSelectLight(t *testing.T) {
	_, rig, panel := newTestPanel(5)

	panel.SelectLight(3)
	if rig.Active != 3 {
		t.Errorf("expected active 3, got %d", rig.Active)
	}

	// Invalid selections keep the previous choice.
	panel.SelectLight(-1)
	panel.SelectLight(5)
	if rig.Active != 3 {
		t.Errorf("invalid selection changed active to %d", rig.Active)
	}
}

func TestPanelAmbientScale(t *testing.T) {
	s, _, panel := newTestPanel(1)
	base := s.Ambient

	panel.SetAmbient(2)
	if !approxEqual(s.Ambient.R, base.R*2, 1e-5) {
		t.Errorf("ambient scale 2: expected R %v, got %v", base.R*2, s.Ambient.R)
	}

	panel.SetAmbient(10) // clamps to 2
	if !approxEqual(s.Ambient.R, base.R*2, 1e-5) {
		t.Errorf("ambient over-scale not clamped: got %v", s.Ambient.R)
	}

	panel.SetAmbient(0)
	if s.Ambient.R != 0 {
		t.Errorf("ambient scale 0: got %v", s.Ambient.R)
	}
}

func TestPanelSunIntensityClamped(t *testing.T) {
	_, _, panel := newTestPanel(1)

	panel.SetSunIntensity(-2)
	if panel.Sun.Intensity != 0 {
		t.Errorf("sun floor: got %v", panel.Sun.Intensity)
	}
	panel.SetSunIntensity(50)
	if panel.Sun.Intensity != PanelSunMax {
		t.Errorf("sun ceiling: got %v", panel.Sun.Intensity)
	}
}

func TestPanelEditsVisibleToSync(t *testing.T) {
	_, rig, panel := newTestPanel(2)

	panel.SetPositionX(1, 9)
	panel.SetColor(1, core.ColorBlue)
	rig.Sync()

	if rig.Markers[1].Transform.Position.X != 9 {
		t.Errorf("marker missed panel position edit: %v", rig.Markers[1].Transform.Position)
	}
	if rig.Markers[1].Mesh.Material.Albedo != core.ColorBlue {
		t.Error("marker missed panel color edit")
	}
}
