package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-viewer/core"
	"scene-viewer/math"
	"scene-viewer/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	program uint32

	// Vertex transform uniforms
	mvpLoc   int32
	modelLoc int32

	// Lighting uniforms — directional
	lightDirLoc       int32
	lightColorLoc     int32
	lightIntensityLoc int32
	ambientColorLoc   int32

	// Lighting uniforms — point lights (up to 8)
	pointLightCountLoc     int32
	pointLightPosLoc       [8]int32
	pointLightColorLoc     [8]int32
	pointLightIntensityLoc [8]int32
	pointLightRangeLoc     [8]int32

	// Camera uniform (for specular)
	cameraPosLoc int32

	// Material uniforms
	matAlbedoLoc    int32
	matSpecularLoc  int32
	matShininessLoc int32

	// Texture uniforms
	albedoTexLoc  int32
	hasTextureLoc int32

	// Unlit mode
	unlitLoc int32

	// Text renderer (nil until first DrawText call)
	textRenderer *TextRenderer

	// Render state
	wireframe bool
	viewportW int32
	viewportH int32

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// ── Shaders ───────────────────────────────────────────────────────────────────

// vertex shader: MVP transform plus world-space position and normal for lighting.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec4 fragColor;
out vec3 fragNormal;
out vec2 fragUV;
out vec3 fragWorldPos;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    gl_Position  = mvp * vec4(inPosition, 1.0);
    fragColor    = inColor;
    fragNormal   = mat3(model) * inNormal;
    fragUV       = inUV;
    fragWorldPos = worldPos.xyz;
}
` + "\x00"

// fragment shader: Blinn-Phong with one directional light plus up to 8 point lights.
const fragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;
in vec2 fragUV;
in vec3 fragWorldPos;

out vec4 outColor;

// Directional light
uniform vec3  lightDir;
uniform vec3  lightColor;
uniform float lightIntensity;
uniform vec3  ambientColor;

// Point lights (up to 8)
#define MAX_POINT_LIGHTS 8
uniform int   pointLightCount;
uniform vec3  pointLightPos[MAX_POINT_LIGHTS];
uniform vec3  pointLightColor[MAX_POINT_LIGHTS];
uniform float pointLightIntensity[MAX_POINT_LIGHTS];
uniform float pointLightRange[MAX_POINT_LIGHTS];

// Camera
uniform vec3 cameraPos;

// Phong material
uniform vec3  matAlbedo;
uniform vec3  matSpecular;
uniform float matShininess;

// Albedo texture (unit 0)
uniform sampler2D albedoTex;
uniform bool      hasTexture;

// When true, skip all lighting and output raw base color
uniform bool unlit;

vec3 calcSpecular(vec3 N, vec3 L, vec3 V) {
    vec3 H = normalize(L + V);
    return matSpecular * pow(max(dot(N, H), 0.0), matShininess);
}

void main() {
    vec3 N = normalize(fragNormal);
    vec3 V = normalize(cameraPos - fragWorldPos);

    // Base color: vertex color * material albedo (* texture if present)
    vec4 baseColor = fragColor * vec4(matAlbedo, 1.0);
    if (hasTexture) {
        baseColor *= texture(albedoTex, fragUV);
    }

    // Unlit: skip all lighting
    if (unlit) {
        outColor = baseColor;
        return;
    }

    vec3 color = ambientColor * baseColor.rgb;

    // Directional light
    vec3 L_dir = normalize(-lightDir);
    float NdL  = max(dot(N, L_dir), 0.0);
    color += lightColor * lightIntensity * NdL * baseColor.rgb;
    if (NdL > 0.0) {
        color += lightColor * lightIntensity * calcSpecular(N, L_dir, V);
    }

    // Point lights
    for (int i = 0; i < pointLightCount && i < MAX_POINT_LIGHTS; i++) {
        vec3  toLight = pointLightPos[i] - fragWorldPos;
        float dist    = length(toLight);
        float range   = max(pointLightRange[i], 0.001);
        float atten   = clamp(1.0 - (dist * dist) / (range * range), 0.0, 1.0);
        atten *= atten;
        vec3  L_pt = normalize(toLight);
        float NdL2 = max(dot(N, L_pt), 0.0);
        color += pointLightColor[i] * pointLightIntensity[i] * atten * NdL2 * baseColor.rgb;
        if (NdL2 > 0.0) {
            color += pointLightColor[i] * pointLightIntensity[i] * atten * calcSpecular(N, L_pt, V);
        }
    }

    outColor = vec4(color, baseColor.a);
}
` + "\x00"

// ── NewRenderer ───────────────────────────────────────────────────────────────

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("main shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Backface culling stays off: viewer models frequently arrive with
	// inconsistent winding and must render fully regardless.

	r := &Renderer{
		program: prog,

		mvpLoc:   gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc: gl.GetUniformLocation(prog, gl.Str("model\x00")),

		lightDirLoc:       gl.GetUniformLocation(prog, gl.Str("lightDir\x00")),
		lightColorLoc:     gl.GetUniformLocation(prog, gl.Str("lightColor\x00")),
		lightIntensityLoc: gl.GetUniformLocation(prog, gl.Str("lightIntensity\x00")),
		ambientColorLoc:   gl.GetUniformLocation(prog, gl.Str("ambientColor\x00")),

		pointLightCountLoc: gl.GetUniformLocation(prog, gl.Str("pointLightCount\x00")),
		cameraPosLoc:       gl.GetUniformLocation(prog, gl.Str("cameraPos\x00")),

		matAlbedoLoc:    gl.GetUniformLocation(prog, gl.Str("matAlbedo\x00")),
		matSpecularLoc:  gl.GetUniformLocation(prog, gl.Str("matSpecular\x00")),
		matShininessLoc: gl.GetUniformLocation(prog, gl.Str("matShininess\x00")),

		albedoTexLoc:  gl.GetUniformLocation(prog, gl.Str("albedoTex\x00")),
		hasTextureLoc: gl.GetUniformLocation(prog, gl.Str("hasTexture\x00")),

		unlitLoc: gl.GetUniformLocation(prog, gl.Str("unlit\x00")),

		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}

	// Resolve per-element point light uniform locations
	for i := 0; i < 8; i++ {
		r.pointLightPosLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("pointLightPos[%d]\x00", i)))
		r.pointLightColorLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("pointLightColor[%d]\x00", i)))
		r.pointLightIntensityLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("pointLightIntensity[%d]\x00", i)))
		r.pointLightRangeLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("pointLightRange[%d]\x00", i)))
	}

	// Albedo texture samples from unit 0
	gl.UseProgram(prog)
	gl.Uniform1i(r.albedoTexLoc, 0)

	return r, nil
}

// ── Viewport ──────────────────────────────────────────────────────────────────

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ── Wireframe ─────────────────────────────────────────────────────────────────

// SetWireframe toggles wireframe rendering mode.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// IsWireframe returns whether wireframe mode is active.
func (r *Renderer) IsWireframe() bool {
	return r.wireframe
}

// ── BeginFrame ────────────────────────────────────────────────────────────────

// BeginFrame clears the framebuffer and sets per-frame lighting and camera
// uniforms.  The first directional light in lights drives the sun uniforms;
// the first eight point lights fill the point light slots.
func (r *Renderer) BeginFrame(sky core.Color, lights []*scene.Light, ambient core.Color, camPos math.Vec3) {
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	// Ambient + camera
	gl.Uniform3f(r.ambientColorLoc, ambient.R, ambient.G, ambient.B)
	gl.Uniform3f(r.cameraPosLoc, camPos.X, camPos.Y, camPos.Z)

	// Defaults for directional light
	dirLight := math.Vec3{X: 0.5, Y: -1, Z: -0.5}.Normalize()
	dirColor := core.ColorWhite
	dirIntensity := float32(0.8)

	sunSeen := false
	pointIdx := 0
	for _, l := range lights {
		if l == nil {
			continue
		}
		switch l.Type {
		case scene.LightTypeDirectional:
			if !sunSeen {
				dirLight = l.Direction.Normalize()
				dirColor = l.Color
				dirIntensity = l.Intensity
				sunSeen = true
			}
		case scene.LightTypePoint:
			if pointIdx < 8 {
				gl.Uniform3f(r.pointLightPosLoc[pointIdx], l.Position.X, l.Position.Y, l.Position.Z)
				gl.Uniform3f(r.pointLightColorLoc[pointIdx], l.Color.R, l.Color.G, l.Color.B)
				gl.Uniform1f(r.pointLightIntensityLoc[pointIdx], l.Intensity)
				gl.Uniform1f(r.pointLightRangeLoc[pointIdx], l.Range)
				pointIdx++
			}
		}
	}

	gl.Uniform3f(r.lightDirLoc, dirLight.X, dirLight.Y, dirLight.Z)
	gl.Uniform3f(r.lightColorLoc, dirColor.R, dirColor.G, dirColor.B)
	gl.Uniform1f(r.lightIntensityLoc, dirIntensity)
	gl.Uniform1i(r.pointLightCountLoc, int32(pointIdx))
}

// ── DrawMesh ──────────────────────────────────────────────────────────────────

// DrawMesh draws a mesh with the given MVP and model matrices.
// Material properties (albedo, specular, shininess, texture) are read from mesh.Material.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp, model math.Mat4) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))

	// Material
	mat := mesh.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}
	r.applyMaterial(mat)

	// Resolve draw primitive from mesh.DrawMode
	primitive := uint32(gl.TRIANGLES)
	switch mesh.DrawMode {
	case scene.DrawLines:
		primitive = gl.LINES
	case scene.DrawPoints:
		primitive = gl.POINTS
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(primitive, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive, 0, int32(len(mesh.Vertices)))
	}
	gl.BindVertexArray(0)
}

// applyMaterial sets all material-related shader uniforms and binds textures.
// Must be called while r.program is active.
func (r *Renderer) applyMaterial(mat *scene.Material) {
	gl.Uniform3f(r.matAlbedoLoc, mat.Albedo.R, mat.Albedo.G, mat.Albedo.B)
	gl.Uniform3f(r.matSpecularLoc, mat.Specular.R, mat.Specular.G, mat.Specular.B)
	gl.Uniform1f(r.matShininessLoc, mat.Shininess)

	if mat.Unlit {
		gl.Uniform1i(r.unlitLoc, 1)
	} else {
		gl.Uniform1i(r.unlitLoc, 0)
	}

	// Albedo texture (unit 0)
	if tex := mat.AlbedoTexture; tex != nil && tex.GLID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
		gl.Uniform1i(r.hasTextureLoc, 1)
	} else {
		gl.Uniform1i(r.hasTextureLoc, 0)
	}
}

// ── Text ──────────────────────────────────────────────────────────────────────

// DrawText renders a string at screen-space position (x, y) with pixel scale.
// Call after the 3D scene so text lands on top.
// Lazily creates the TextRenderer on first call.
func (r *Renderer) DrawText(text string, x, y, scale float32, color core.Color, screenW, screenH float32) {
	if r.textRenderer == nil {
		tr, err := newTextRenderer()
		if err != nil {
			fmt.Printf("text renderer init: %v\n", err)
			return
		}
		r.textRenderer = tr
	}
	// Text is always solid; wireframe would show triangle outlines instead of glyphs.
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	r.textRenderer.draw(text, x, y, scale, color, screenW, screenH)
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
}

// ── Resource management ───────────────────────────────────────────────────────

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	if r.textRenderer != nil {
		r.textRenderer.destroy()
	}
	gl.DeleteProgram(r.program)
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
