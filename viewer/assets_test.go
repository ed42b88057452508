package viewer

import (
	"strings"
	"testing"

	"scene-viewer/core"
	"scene-viewer/math"
	"scene-viewer/scene"
)

func TestLoadModelUnsupportedExtension(t *testing.T) {
	for _, path := range []string{"model.fbx", "model", "model.png"} {
		_, err := LoadModel(path)
		if err == nil {
			t.Errorf("%q: expected unsupported-format error", path)
			continue
		}
		if !strings.Contains(err.Error(), "unsupported model format") {
			t.Errorf("%q: unexpected error %v", path, err)
		}
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel("does-not-exist.obj"); err == nil {
		t.Error("expected error for missing .obj")
	}
	if _, err := LoadModel("does-not-exist.glb"); err == nil {
		t.Error("expected error for missing .glb")
	}
}

func TestLoadModelAsyncDeliversExactlyOneResult(t *testing.T) {
	ch := LoadModelAsync("nope.xyz")

	res := <-ch
	if res.Err == nil {
		t.Fatal("expected error result for unsupported format")
	}
	if res.Path != "nope.xyz" {
		t.Errorf("result path: got %q", res.Path)
	}

	// The channel carries exactly one result; a second receive would
	// block forever, so only check that nothing else is buffered.
	select {
	case extra := <-ch:
		t.Errorf("unexpected second result: %+v", extra)
	default:
	}
}

func TestAttachModelReplacesPreviousGroup(t *testing.T) {
	s := scene.NewScene()
	s.SetCamera(scene.NewCamera(1.0472, 1, 0.1, 1000))

	first := AttachModel(s, LoadResult{Path: "a", Roots: []*scene.Node{scene.NewNode("A")}}, nil)
	if first.Parent == nil {
		t.Fatal("first group not attached")
	}

	second := AttachModel(s, LoadResult{Path: "b", Roots: []*scene.Node{scene.NewNode("B")}}, first)
	if first.Parent != nil {
		t.Error("previous group still attached after replacement")
	}
	if second.Parent == nil {
		t.Error("second group not attached")
	}
	if second.Find("B") == nil {
		t.Error("loaded root missing from new group")
	}
}

func TestModelResourcesCollectsEachOnce(t *testing.T) {
	group := scene.NewNode("Model")

	tex := scene.NewSolidTexture("Shared", 255, 255, 255, 255)

	// Two nodes sharing one mesh, whose material carries the texture.
	shared := scene.CreateCube(1)
	shared.Material = scene.NewMaterial("Shared", core.ColorWhite)
	shared.Material.AlbedoTexture = tex
	for _, name := range []string{"A", "B"} {
		n := scene.NewNode(name)
		n.Mesh = shared
		group.AddChild(n)
	}

	// A second mesh whose own material references the same texture, a
	// third with no texture, and a child node with no mesh at all.
	textured := scene.CreateSphere(1, 8, 4)
	textured.Material = scene.NewMaterial("Textured", core.ColorWhite)
	textured.Material.AlbedoTexture = tex
	tn := scene.NewNode("C")
	tn.Mesh = textured
	group.AddChild(tn)

	plain := scene.CreateCube(2)
	pn := scene.NewNode("D")
	pn.Mesh = plain
	group.AddChild(pn)
	group.AddChild(scene.NewNode("Empty"))

	meshes, textures := ModelResources(group)

	if len(meshes) != 3 {
		t.Errorf("expected 3 distinct meshes, got %d", len(meshes))
	}
	seen := make(map[*scene.Mesh]bool)
	for _, m := range meshes {
		if seen[m] {
			t.Error("mesh reported more than once")
		}
		seen[m] = true
	}
	if len(textures) != 1 {
		t.Errorf("expected the shared texture once, got %d", len(textures))
	}
	if len(textures) == 1 && textures[0] != tex {
		t.Error("wrong texture collected")
	}
}

func TestModelResourcesNilGroup(t *testing.T) {
	meshes, textures := ModelResources(nil)
	if meshes != nil || textures != nil {
		t.Error("expected nothing to release for a nil group")
	}
}

func TestAttachModelFramesCamera(t *testing.T) {
	s := scene.NewScene()
	cam := scene.NewCamera(1.0472, 1, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, 0, 1))
	cam.SetTarget(math.Vec3Zero)
	s.SetCamera(cam)

	node := scene.NewNode("Box")
	node.Mesh = scene.CreateCube(2)
	node.SetPosition(math.NewVec3(50, 0, 0))

	AttachModel(s, LoadResult{Path: "box", Roots: []*scene.Node{node}}, nil)

	if !vecApprox(cam.Target, math.NewVec3(50, 0, 0), 1e-3) {
		t.Errorf("camera not re-targeted at model center, target %v", cam.Target)
	}
	if cam.Position.Distance(cam.Target) <= 1 {
		t.Error("camera not backed off from the framed model")
	}
}
