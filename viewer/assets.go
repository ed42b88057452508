package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"scene-viewer/scene"
)

// LoadResult is delivered exactly once per LoadModelAsync call.
type LoadResult struct {
	Path     string
	Roots    []*scene.Node
	Textures []*scene.Texture
	Err      error
}

// LoadModel loads a model file, dispatching on its extension.
// Supported: .gltf, .glb, .obj.
func LoadModel(path string) (*scene.ModelResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return scene.LoadGLTF(path)
	case ".obj":
		return scene.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q (want .gltf, .glb or .obj)", filepath.Ext(path))
	}
}

// LoadModelAsync loads a model in the background and delivers one
// LoadResult on the returned channel. The channel is buffered, so the
// loader goroutine never blocks on a slow consumer; the frame tick
// consumes the result with a non-blocking receive.
func LoadModelAsync(path string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		res, err := LoadModel(path)
		if err != nil {
			ch <- LoadResult{Path: path, Err: err}
			return
		}
		ch <- LoadResult{Path: path, Roots: res.Roots, Textures: res.Textures}
	}()
	return ch
}

// AttachModel replaces the previous model group (if any) with the loaded
// roots under a fresh "Model" group node, then frames the scene camera
// on the group's world-space bounding box. Returns the new group so the
// caller can pass it back in on the next reload.
func AttachModel(s *scene.Scene, res LoadResult, prev *scene.Node) *scene.Node {
	if prev != nil {
		s.RemoveNode(prev)
	}

	group := scene.NewNode("Model")
	for _, n := range res.Roots {
		group.AddChild(n)
	}
	s.AddNode(group)

	if box, ok := scene.ComputeWorldAABB(group); ok && s.Camera != nil {
		s.Camera.FrameBox(box)
	}

	fmt.Printf("[Assets] attached %q (%d root nodes)\n", res.Path, len(res.Roots))
	return group
}

// ModelResources walks a model group and returns every mesh and albedo
// texture it references, each exactly once. When a reloaded model
// replaces the group, the caller hands these to the renderer's
// ReleaseMesh/DeleteTexture so the old model's GPU buffers are freed.
func ModelResources(group *scene.Node) ([]*scene.Mesh, []*scene.Texture) {
	if group == nil {
		return nil, nil
	}

	var meshes []*scene.Mesh
	var textures []*scene.Texture
	seenMesh := make(map[*scene.Mesh]bool)
	seenTex := make(map[*scene.Texture]bool)

	group.Traverse(func(n *scene.Node) {
		m := n.Mesh
		if m == nil || seenMesh[m] {
			return
		}
		seenMesh[m] = true
		meshes = append(meshes, m)

		if m.Material != nil && m.Material.AlbedoTexture != nil && !seenTex[m.Material.AlbedoTexture] {
			seenTex[m.Material.AlbedoTexture] = true
			textures = append(textures, m.Material.AlbedoTexture)
		}
	})
	return meshes, textures
}
