package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds viewer settings loaded from an optional YAML file.
// Fields absent from the file keep their defaults.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Lights LightsConfig `yaml:"lights"`
	Model  ModelConfig  `yaml:"model"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Speed float32 `yaml:"speed"` // movement speed in world units per second
	FOV   float32 `yaml:"fov"`   // vertical field of view in degrees
	Near  float32 `yaml:"near"`
	Far   float32 `yaml:"far"`
}

type LightsConfig struct {
	Count int     `yaml:"count"` // number of movable point lights (1-8)
	Speed float32 `yaml:"speed"` // light movement speed in world units per second
}

type ModelConfig struct {
	Path  string `yaml:"path"`  // .gltf/.glb/.obj to load at startup (empty = placeholder scene)
	Watch bool   `yaml:"watch"` // reload the model when the file changes on disk
}

// Default returns the viewer's built-in settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Scene Viewer", VSync: true},
		Camera: CameraConfig{Speed: 5, FOV: 60, Near: 0.1, Far: 1000},
		Lights: LightsConfig{Count: 5, Speed: 4},
		Model:  ModelConfig{Watch: true},
	}
}

// Load reads the YAML file at path on top of Default().  A missing file is
// not an error: the defaults are returned as-is.  A file that exists but
// does not parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// clamp pulls out-of-range values back to something the viewer can run with.
func (c *Config) clamp() {
	def := Default()

	if c.Window.Width < 1 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height < 1 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}

	if c.Camera.Speed <= 0 {
		c.Camera.Speed = def.Camera.Speed
	}
	if c.Camera.FOV < 10 {
		c.Camera.FOV = 10
	}
	if c.Camera.FOV > 170 {
		c.Camera.FOV = 170
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = def.Camera.Near
	}
	if c.Camera.Far <= c.Camera.Near {
		c.Camera.Far = def.Camera.Far
	}

	// The shader supports at most 8 point lights
	if c.Lights.Count < 1 {
		c.Lights.Count = 1
	}
	if c.Lights.Count > 8 {
		fmt.Printf("[Lights] configured count %d exceeds the 8-light ceiling, clamping\n", c.Lights.Count)
		c.Lights.Count = 8
	}
	if c.Lights.Speed <= 0 {
		c.Lights.Speed = def.Lights.Speed
	}
}
