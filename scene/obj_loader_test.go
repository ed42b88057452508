package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAssetFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOBJQuad(t *testing.T) {
	dir := t.TempDir()
	path := writeAssetFile(t, dir, "quad.obj", `# unit quad in the XY plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`)

	result, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(result.Roots) != 1 {
		t.Fatalf("Expected 1 root node, got %d", len(result.Roots))
	}
	mesh := result.Roots[0].Mesh
	if mesh == nil {
		t.Fatal("Root node has no mesh")
	}
	// The quad fan-triangulates into two triangles over four shared vertices
	if len(mesh.Indices) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(mesh.Indices))
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("Expected 4 deduplicated vertices, got %d", len(mesh.Vertices))
	}

	// The file carries no normals, so they are generated: the quad faces +Z
	tolerance := float32(0.0001)
	for i, v := range mesh.Vertices {
		n := v.Normal
		if absf(n.X) > tolerance || absf(n.Y) > tolerance || absf(n.Z-1) > tolerance {
			t.Errorf("Vertex %d: expected generated normal (0,0,1), got (%f,%f,%f)", i, n.X, n.Y, n.Z)
		}
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	dir := t.TempDir()
	path := writeAssetFile(t, dir, "tri.obj", `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)

	result, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	mesh := result.Roots[0].Mesh
	if len(mesh.Vertices) != 3 {
		t.Fatalf("Expected 3 vertices, got %d", len(mesh.Vertices))
	}
	if mesh.Vertices[1].Position.X != 1 {
		t.Errorf("Negative index -2 should resolve to the second vertex, got position %v", mesh.Vertices[1].Position)
	}
}

func TestLoadOBJMaterials(t *testing.T) {
	dir := t.TempDir()
	writeAssetFile(t, dir, "box.mtl", `newmtl red
Kd 1 0 0
Ks 0.5 0.5 0.5
Ns 32
`)
	path := writeAssetFile(t, dir, "box.obj", `mtllib box.mtl
v 0 0 0
v 1 0 0
v 0 1 0
usemtl red
f 1 2 3
`)

	result, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	mat := result.Roots[0].Mesh.Material
	if mat == nil {
		t.Fatal("Mesh has no material")
	}
	if mat.Name != "red" {
		t.Errorf("Expected material name 'red', got %q", mat.Name)
	}
	if mat.Albedo.R != 1 || mat.Albedo.G != 0 || mat.Albedo.B != 0 {
		t.Errorf("Expected red albedo, got %v", mat.Albedo)
	}
	if mat.Shininess != 32 {
		t.Errorf("Expected shininess 32, got %f", mat.Shininess)
	}
}

func TestLoadOBJGroupsSplitIntoNodes(t *testing.T) {
	dir := t.TempDir()
	path := writeAssetFile(t, dir, "two.obj", `o first
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o second
v 2 0 0
v 3 0 0
v 2 1 0
f 4 5 6
`)

	result, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(result.Roots) != 2 {
		t.Fatalf("Expected 2 root nodes, got %d", len(result.Roots))
	}
	if result.Roots[0].Name != "first" || result.Roots[1].Name != "second" {
		t.Errorf("Unexpected node names: %q, %q", result.Roots[0].Name, result.Roots[1].Name)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
