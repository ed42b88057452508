package viewer

import (
	"scene-viewer/core"
	"scene-viewer/math"
	"scene-viewer/scene"
)

const (
	markerRadius      = 0.18
	defaultIntensity  = 2.0
	defaultLightRange = 12.0
)

// rigPalette gives each light a distinct starting color.
var rigPalette = []core.Color{
	{R: 1.0, G: 0.95, B: 0.8, A: 1},
	{R: 1.0, G: 0.4, B: 0.3, A: 1},
	{R: 0.3, G: 0.9, B: 0.4, A: 1},
	{R: 0.35, G: 0.55, B: 1.0, A: 1},
	{R: 1.0, G: 0.45, B: 0.9, A: 1},
	{R: 0.4, G: 0.95, B: 0.95, A: 1},
	{R: 1.0, G: 0.75, B: 0.3, A: 1},
	{R: 0.8, G: 0.8, B: 0.85, A: 1},
}

// rigSpread holds the fixed starting positions for up to eight lights.
var rigSpread = []math.Vec3{
	{X: 0, Y: 5, Z: 0},
	{X: 6, Y: 4, Z: 6},
	{X: -6, Y: 4, Z: 6},
	{X: 6, Y: 4, Z: -6},
	{X: -6, Y: 4, Z: -6},
	{X: 0, Y: 8, Z: 8},
	{X: 0, Y: 8, Z: -8},
	{X: 9, Y: 6, Z: 0},
}

// LightRig owns an ordered set of movable point lights and, per light,
// two visual proxies: a small unlit marker sphere mirroring position and
// color, and a wire-sphere helper mirroring position and scaled to the
// light's range. Sync re-establishes the mirror every frame.
type LightRig struct {
	Lights  []*scene.Light
	Markers []*scene.Node
	Helpers []*scene.Node

	// Active is the light the light navigator moves. Out-of-range values
	// are storable and simply disable navigation.
	Active int
}

// NewLightRig builds count point lights at fixed spread positions and
// attaches their markers and range helpers to the scene. count is capped
// at the rig's eight fixed slots.
func NewLightRig(s *scene.Scene, count int) *LightRig {
	if count < 1 {
		count = 1
	}
	if count > len(rigSpread) {
		count = len(rigSpread)
	}

	rig := &LightRig{
		Lights:  make([]*scene.Light, 0, count),
		Markers: make([]*scene.Node, 0, count),
		Helpers: make([]*scene.Node, 0, count),
	}

	for i := 0; i < count; i++ {
		light := &scene.Light{
			Type:      scene.LightTypePoint,
			Position:  rigSpread[i],
			Color:     rigPalette[i],
			Intensity: defaultIntensity,
			Range:     defaultLightRange,
		}
		s.AddLight(light)
		rig.Lights = append(rig.Lights, light)

		markerMesh := scene.CreateSphere(markerRadius, 12, 8)
		markerMesh.Material = scene.NewUnlitMaterial("LightMarker", light.Color)
		marker := scene.NewNode("LightMarker")
		marker.Mesh = markerMesh
		marker.SetPosition(light.Position)
		s.AddNode(marker)
		rig.Markers = append(rig.Markers, marker)

		helperMesh := scene.CreateWireSphere(1, 24)
		helperMesh.Material = scene.NewUnlitMaterial("LightHelper", dimColor(light.Color))
		helper := scene.NewNode("LightHelper")
		helper.Mesh = helperMesh
		helper.SetPosition(light.Position)
		helper.SetScale(math.NewVec3(light.Range, light.Range, light.Range))
		s.AddNode(helper)
		rig.Helpers = append(rig.Helpers, helper)
	}

	return rig
}

// ActiveLight returns the selected light, or nil when the selection is
// out of range.
func (r *LightRig) ActiveLight() *scene.Light {
	if r.Active < 0 || r.Active >= len(r.Lights) {
		return nil
	}
	return r.Lights[r.Active]
}

// Sync copies each light's position into its marker and helper nodes,
// mirrors the light color into the proxy materials, and scales the
// helper to the light's range. Idempotent; runs once per tick after the
// navigators and before the render.
func (r *LightRig) Sync() {
	for i, light := range r.Lights {
		marker := r.Markers[i]
		marker.SetPosition(light.Position)
		marker.Mesh.Material.Albedo = light.Color

		helper := r.Helpers[i]
		helper.SetPosition(light.Position)
		helper.SetScale(math.NewVec3(light.Range, light.Range, light.Range))
		helper.Mesh.Material.Albedo = dimColor(light.Color)
	}
}

// SetHelpersVisible shows or hides the range helper wires.
func (r *LightRig) SetHelpersVisible(visible bool) {
	for _, h := range r.Helpers {
		h.Visible = visible
	}
}

func dimColor(c core.Color) core.Color {
	return core.Color{R: c.R * 0.4, G: c.G * 0.4, B: c.B * 0.4, A: c.A}
}
