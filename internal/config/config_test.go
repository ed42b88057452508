package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load on a missing file should not error, got %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	path := writeConfig(t, `window:
  width: 1920
camera:
  speed: 12
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("Expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("Height should keep its default 720, got %d", cfg.Window.Height)
	}
	if cfg.Camera.Speed != 12 {
		t.Errorf("Expected camera speed 12, got %f", cfg.Camera.Speed)
	}
	if cfg.Lights.Count != 5 {
		t.Errorf("Lights count should keep its default 5, got %d", cfg.Lights.Count)
	}
}

func TestLoadExplicitFalseOverridesDefault(t *testing.T) {
	path := writeConfig(t, `window:
  vsync: false
model:
  watch: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.VSync {
		t.Error("vsync: false in the file should override the default")
	}
	if cfg.Model.Watch {
		t.Error("watch: false in the file should override the default")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfig(t, "window: [not, a, mapping\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error for malformed YAML")
	}
}

func TestLightCountClamped(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{in: 20, want: 8},
		{in: 0, want: 1},
		{in: -3, want: 1},
		{in: 3, want: 3},
	}
	for _, tc := range cases {
		cfg := Default()
		cfg.Lights.Count = tc.in
		cfg.clamp()
		if cfg.Lights.Count != tc.want {
			t.Errorf("Light count %d: expected clamp to %d, got %d", tc.in, tc.want, cfg.Lights.Count)
		}
	}
}

func TestClampRestoresBrokenCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.Speed = -1
	cfg.Camera.Near = 0
	cfg.Camera.Far = 0.05
	cfg.clamp()

	if cfg.Camera.Speed != Default().Camera.Speed {
		t.Errorf("Negative speed should reset to default, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.Near <= 0 {
		t.Errorf("Near plane must be positive, got %f", cfg.Camera.Near)
	}
	if cfg.Camera.Far <= cfg.Camera.Near {
		t.Errorf("Far plane must exceed near, got near=%f far=%f", cfg.Camera.Near, cfg.Camera.Far)
	}
}
