package viewer

import (
	"fmt"

	"scene-viewer/core"
	"scene-viewer/scene"
)

// Panel control ranges.
const (
	PanelPosXMin, PanelPosXMax           = float32(-20), float32(20)
	PanelPosYMin, PanelPosYMax           = float32(0), float32(20)
	PanelPosZMin, PanelPosZMax           = float32(-20), float32(20)
	PanelIntensityMin, PanelIntensityMax = float32(0), float32(10)
	PanelRangeMin, PanelRangeMax         = float32(0), float32(100)
	PanelAmbientMin, PanelAmbientMax     = float32(0), float32(2)
	PanelSunMin, PanelSunMax             = float32(0), float32(5)
)

// Panel applies bounded edits straight onto the entities the rig and
// scene own. Every setter clamps to its control range; out-of-range
// light indices are ignored. Edits land on the same Light entities the
// navigators move, so Sync mirrors them the same frame.
type Panel struct {
	Scene *scene.Scene
	Rig   *LightRig
	Sun   *scene.Light

	baseAmbient core.Color // scene ambient at scale 1
}

func NewPanel(s *scene.Scene, rig *LightRig, sun *scene.Light) *Panel {
	return &Panel{
		Scene:       s,
		Rig:         rig,
		Sun:         sun,
		baseAmbient: s.Ambient,
	}
}

// SelectLight makes light i the navigation target. Invalid indices are
// ignored, keeping the previous selection.
func (p *Panel) SelectLight(i int) {
	if i < 0 || i >= len(p.Rig.Lights) {
		return
	}
	p.Rig.Active = i
	fmt.Printf("[Lights] active light %d\n", i)
}

func (p *Panel) SetPositionX(i int, v float32) {
	if l := p.light(i); l != nil {
		l.Position.X = clamp(v, PanelPosXMin, PanelPosXMax)
	}
}

func (p *Panel) SetPositionY(i int, v float32) {
	if l := p.light(i); l != nil {
		l.Position.Y = clamp(v, PanelPosYMin, PanelPosYMax)
	}
}

func (p *Panel) SetPositionZ(i int, v float32) {
	if l := p.light(i); l != nil {
		l.Position.Z = clamp(v, PanelPosZMin, PanelPosZMax)
	}
}

func (p *Panel) SetIntensity(i int, v float32) {
	if l := p.light(i); l != nil {
		l.Intensity = clamp(v, PanelIntensityMin, PanelIntensityMax)
	}
}

func (p *Panel) SetRange(i int, v float32) {
	if l := p.light(i); l != nil {
		l.Range = clamp(v, PanelRangeMin, PanelRangeMax)
	}
}

func (p *Panel) SetColor(i int, c core.Color) {
	if l := p.light(i); l != nil {
		l.Color = c
	}
}

// SetAmbient scales the scene's base ambient color.
func (p *Panel) SetAmbient(scale float32) {
	scale = clamp(scale, PanelAmbientMin, PanelAmbientMax)
	p.Scene.Ambient = core.Color{
		R: p.baseAmbient.R * scale,
		G: p.baseAmbient.G * scale,
		B: p.baseAmbient.B * scale,
		A: p.baseAmbient.A,
	}
}

// Ambient returns the current ambient scale relative to the base color.
func (p *Panel) Ambient() float32 {
	if p.baseAmbient.R == 0 {
		return 0
	}
	return p.Scene.Ambient.R / p.baseAmbient.R
}

func (p *Panel) SetSunIntensity(v float32) {
	if p.Sun != nil {
		p.Sun.Intensity = clamp(v, PanelSunMin, PanelSunMax)
	}
}

func (p *Panel) light(i int) *scene.Light {
	if i < 0 || i >= len(p.Rig.Lights) {
		return nil
	}
	return p.Rig.Lights[i]
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
