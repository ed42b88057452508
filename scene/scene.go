package scene

import (
	"scene-viewer/core"
	"scene-viewer/math"
)

// Scene manages a collection of nodes, the light list and the active camera
type Scene struct {
	Root     *Node
	Camera   *Camera
	Lights   []*Light
	Ambient  core.Color
	SkyColor core.Color
}

// Light types
const (
	LightTypeDirectional = iota
	LightTypePoint
)

// Light represents a light source. Point lights use Position, Range and
// Intensity; directional lights use Direction and Intensity.
type Light struct {
	Type      int
	Position  math.Vec3
	Direction math.Vec3
	Color     core.Color
	Intensity float32
	Range     float32
}

func NewScene() *Scene {
	return &Scene{
		Root:     NewNode("Root"),
		Lights:   make([]*Light, 0),
		Ambient:  core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0},
		SkyColor: core.Color{R: 0.5, G: 0.7, B: 1.0, A: 1.0},
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

func (s *Scene) RemoveLight(light *Light) {
	for i, l := range s.Lights {
		if l == light {
			s.Lights = append(s.Lights[:i], s.Lights[i+1:]...)
			return
		}
	}
}

// GetVisibleNodes returns all nodes with meshes that are visible
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node

	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})

	return visible
}
