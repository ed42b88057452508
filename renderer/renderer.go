package renderer

import (
	"fmt"

	"scene-viewer/core"
	"scene-viewer/internal/opengl"
	"scene-viewer/math"
	"scene-viewer/scene"
)

// textCmd is a queued DrawText call, flushed in Present().
type textCmd struct {
	text  string
	x, y  float32
	scale float32
	color core.Color
}

// SceneRenderer is the high-level renderer that drives the OpenGL backend.
type SceneRenderer struct {
	gl     *opengl.Renderer
	window *core.Window
	Scene  *scene.Scene

	FrustumCulling bool // skip draws whose world-space AABB is outside the camera frustum
	DrawAABBs      bool // draw debug wireframe boxes around every visible node's AABB

	aabbMesh *scene.Mesh // unit-cube wireframe, created on first AABB draw

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
	lastCulled    int

	// Queued text commands, flushed in Present() on top of the 3D scene
	textQueue []textCmd
}

func NewSceneRenderer(window *core.Window) (*SceneRenderer, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	glRenderer.SetViewport(window.Width, window.Height)

	fmt.Println("Renderer initialized (OpenGL)")
	return &SceneRenderer{
		gl:             glRenderer,
		window:         window,
		FrustumCulling: true,
	}, nil
}

func (sr *SceneRenderer) SetScene(s *scene.Scene) {
	sr.Scene = s
}

// Render draws every visible node of the scene from the scene camera's view.
func (sr *SceneRenderer) Render() error {
	if sr.Scene == nil || sr.Scene.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	sr.gl.BeginFrame(
		sr.Scene.SkyColor,
		sr.Scene.Lights,
		sr.Scene.Ambient,
		sr.Scene.Camera.Position,
	)

	view := sr.Scene.Camera.GetViewMatrix()
	proj := sr.Scene.Camera.GetProjectionMatrix()

	// Build view-projection matrix for frustum culling
	vp := view.Mul(proj)
	frustum := scene.FrustumFromVP(vp)

	objects, vertices, triangles, culled := 0, 0, 0, 0

	for _, node := range sr.Scene.GetVisibleNodes() {
		if node.Mesh == nil {
			continue
		}

		model := node.GetWorldMatrix()

		// Frustum culling: skip draw if AABB is completely outside the frustum
		if sr.FrustumCulling {
			aabb := scene.ComputeAABB(node.Mesh, model)
			if !aabb.IntersectsFrustum(&frustum) {
				culled++
				continue
			}
		}

		mvp := model.Mul(view).Mul(proj)
		sr.gl.DrawMesh(node.Mesh, mvp, model)

		objects++
		vertices += len(node.Mesh.Vertices)
		triangles += len(node.Mesh.Indices) / 3
	}

	sr.lastObjects = objects
	sr.lastVertices = vertices
	sr.lastTriangles = triangles
	sr.lastCulled = culled

	// ── AABB debug visualization ───────────────────────────────────────────
	if sr.DrawAABBs {
		sr.drawAABBs(view, proj)
	}

	return nil
}

// Present flushes queued text on top of the 3D scene and swaps buffers.
// Call after Render() each frame.
func (sr *SceneRenderer) Present() {
	if len(sr.textQueue) > 0 {
		sw := float32(sr.window.Width)
		sh := float32(sr.window.Height)
		for _, cmd := range sr.textQueue {
			sr.gl.DrawText(cmd.text, cmd.x, cmd.y, cmd.scale, cmd.color, sw, sh)
		}
		sr.textQueue = sr.textQueue[:0]
	}
	sr.window.SwapBuffers()
}

// DrawText queues a text string to be drawn at screen position (x, y) in the
// next Present() call. scale=1 → 7×13 px glyphs, scale=2 doubles that, etc.
// Embedded newlines start new lines at the original x.
func (sr *SceneRenderer) DrawText(text string, x, y int, scale float32, color core.Color) {
	sr.textQueue = append(sr.textQueue, textCmd{
		text:  text,
		x:     float32(x),
		y:     float32(y),
		scale: scale,
		color: color,
	})
}

// Resize updates the GL viewport and the scene camera's aspect ratio.
// Nothing else changes: world transforms and light state are left alone.
func (sr *SceneRenderer) Resize(width, height int) {
	sr.gl.SetViewport(width, height)
	if sr.Scene != nil && sr.Scene.Camera != nil {
		sr.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

// SetWireframe toggles wireframe rendering mode on/off.
func (sr *SceneRenderer) SetWireframe(enabled bool) {
	sr.gl.SetWireframe(enabled)
}

// IsWireframe returns whether wireframe mode is currently active.
func (sr *SceneRenderer) IsWireframe() bool {
	return sr.gl.IsWireframe()
}

// UploadTexture uploads a texture to the GPU. Must be called from the main thread.
func (sr *SceneRenderer) UploadTexture(tex *scene.Texture) error {
	return opengl.UploadTexture(tex)
}

// DeleteTexture frees a previously uploaded GPU texture.
func (sr *SceneRenderer) DeleteTexture(tex *scene.Texture) {
	opengl.DeleteTexture(tex)
}

// ReleaseMesh frees the GPU buffers backing mesh. Call when a mesh leaves the
// scene for good, e.g. when a reloaded model replaces the previous one.
func (sr *SceneRenderer) ReleaseMesh(mesh *scene.Mesh) {
	sr.gl.ReleaseMesh(mesh)
}

func (sr *SceneRenderer) Destroy() {
	sr.gl.Destroy()
}

// DrawStats returns stats from the most recent Render call.
func (sr *SceneRenderer) DrawStats() (objects, vertices, triangles, culled int) {
	return sr.lastObjects, sr.lastVertices, sr.lastTriangles, sr.lastCulled
}

// drawAABBs draws a wireframe unit-cube scaled/translated to each visible node's
// world-space AABB.  The unit-box mesh is created lazily on first call.
func (sr *SceneRenderer) drawAABBs(view, proj math.Mat4) {
	if sr.aabbMesh == nil {
		sr.aabbMesh = scene.CreateUnitBoxWireframe()
	}

	identity := math.Mat4Identity()

	for _, node := range sr.Scene.GetVisibleNodes() {
		if node.Mesh == nil {
			continue
		}
		worldMat := node.GetWorldMatrix()
		aabb := scene.ComputeAABB(node.Mesh, worldMat)

		// Build a scale+translate matrix that maps the unit cube (±1) to the AABB.
		cx := (aabb.Min.X + aabb.Max.X) * 0.5
		cy := (aabb.Min.Y + aabb.Max.Y) * 0.5
		cz := (aabb.Min.Z + aabb.Max.Z) * 0.5
		hx := (aabb.Max.X - aabb.Min.X) * 0.5
		hy := (aabb.Max.Y - aabb.Min.Y) * 0.5
		hz := (aabb.Max.Z - aabb.Min.Z) * 0.5

		aabbModel := math.Mat4Identity()
		aabbModel[0][0] = hx
		aabbModel[1][1] = hy
		aabbModel[2][2] = hz
		aabbModel[3][0] = cx
		aabbModel[3][1] = cy
		aabbModel[3][2] = cz

		mvp := aabbModel.Mul(view).Mul(proj)
		sr.gl.DrawMesh(sr.aabbMesh, mvp, identity)
	}
}
