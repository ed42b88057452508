package opengl

import (
	"fmt"
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"scene-viewer/core"
)

// ── Text shaders ─────────────────────────────────────────────────────────────

// Screen-space vertex shader: pixel coordinates (origin top-left) to NDC.
const textVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPos;
layout(location = 1) in vec2 inUV;

uniform vec2 screenSize;

out vec2 fragUV;

void main() {
    float x = inPos.x / screenSize.x * 2.0 - 1.0;
    float y = 1.0 - inPos.y / screenSize.y * 2.0;
    gl_Position = vec4(x, y, 0.0, 1.0);
    fragUV = inUV;
}
` + "\x00"

// Glyph coverage lives in the atlas alpha channel; colour comes from a uniform.
const textFragSrc = `
#version 410 core
in vec2 fragUV;

out vec4 outColor;

uniform sampler2D fontTex;
uniform vec4      textColor;

void main() {
    float a = texture(fontTex, fragUV).a;
    if (a <= 0.01) {
        discard;
    }
    outColor = vec4(textColor.rgb, textColor.a * a);
}
` + "\x00"

// ── Font atlas ───────────────────────────────────────────────────────────────

// Glyph metrics of basicfont.Face7x13: 7px advance, 13px tall, baseline at 11.
const (
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
	lineHeight  = 15 // glyph height + leading

	firstGlyph = ' '
	lastGlyph  = '~'
	glyphCount = int(lastGlyph-firstGlyph) + 1

	atlasWidth  = glyphCount * glyphWidth
	atlasHeight = glyphHeight
)

// buildFontAtlas rasterises the printable ASCII range of basicfont.Face7x13
// into a single-row RGBA image (white glyphs on transparent background).
func buildFontAtlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, atlasWidth, atlasHeight))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for i := 0; i < glyphCount; i++ {
		d.Dot = fixed.P(i*glyphWidth, glyphAscent)
		d.DrawString(string(rune(firstGlyph) + rune(i)))
	}
	return img
}

// ── TextRenderer ─────────────────────────────────────────────────────────────

// TextRenderer owns the GPU resources for screen-space text rendering.
// It is created lazily by Renderer.DrawText on first use.
type TextRenderer struct {
	prog         uint32
	vao          uint32
	vbo          uint32
	tex          uint32
	screenLoc    int32
	textColorLoc int32
	fontTexLoc   int32
	vboCap       int // current VBO capacity in vertices
}

// newTextRenderer compiles the text shader, rasterises the font atlas, and
// creates the dynamic VAO/VBO.
func newTextRenderer() (*TextRenderer, error) {
	prog, err := newProgram(textVertSrc, textFragSrc)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}

	atlas := buildFontAtlas()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(atlasWidth),
		int32(atlasHeight),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&atlas.Pix[0]),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	const stride = int32(4 * 4) // pos(2) + uv(2) = 4 float32 × 4 bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0)) // pos
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(8)) // uv
	gl.BindVertexArray(0)

	tr := &TextRenderer{
		prog:         prog,
		vao:          vao,
		vbo:          vbo,
		tex:          tex,
		screenLoc:    gl.GetUniformLocation(prog, gl.Str("screenSize\x00")),
		textColorLoc: gl.GetUniformLocation(prog, gl.Str("textColor\x00")),
		fontTexLoc:   gl.GetUniformLocation(prog, gl.Str("fontTex\x00")),
	}
	gl.UseProgram(prog)
	gl.Uniform1i(tr.fontTexLoc, 0)
	return tr, nil
}

// draw renders text as one quad per printable glyph.  (x, y) is the top-left
// corner in pixels; '\n' starts a new line at the original x.
func (tr *TextRenderer) draw(text string, x, y, scale float32, color core.Color, screenW, screenH float32) {
	if text == "" || screenW <= 0 || screenH <= 0 {
		return
	}

	const floatsPerVert = 4
	verts := make([]float32, 0, len(text)*6*floatsPerVert)

	penX, penY := x, y
	for _, ch := range text {
		if ch == '\n' {
			penX = x
			penY += lineHeight * scale
			continue
		}
		if ch < firstGlyph || ch > lastGlyph {
			penX += glyphWidth * scale
			continue
		}
		if ch != ' ' {
			gi := int(ch - firstGlyph)
			u0 := float32(gi*glyphWidth) / float32(atlasWidth)
			u1 := float32((gi+1)*glyphWidth) / float32(atlasWidth)

			x0, y0 := penX, penY
			x1, y1 := penX+glyphWidth*scale, penY+glyphHeight*scale
			verts = append(verts,
				x0, y0, u0, 0,
				x1, y0, u1, 0,
				x1, y1, u1, 1,
				x0, y0, u0, 0,
				x1, y1, u1, 1,
				x0, y1, u0, 1,
			)
		}
		penX += glyphWidth * scale
	}
	if len(verts) == 0 {
		return
	}

	// Upload to GPU (grow VBO only when needed)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	byteSize := len(verts) * 4
	vertCount := len(verts) / floatsPerVert
	if vertCount > tr.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, byteSize, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		tr.vboCap = vertCount
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, byteSize, gl.Ptr(verts))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// Text overlays everything: alpha blend on, depth test off
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(tr.prog)
	gl.Uniform2f(tr.screenLoc, screenW, screenH)
	gl.Uniform4f(tr.textColorLoc, color.R, color.G, color.B, color.A)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.tex)

	gl.BindVertexArray(tr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(vertCount))
	gl.BindVertexArray(0)

	// Restore render state
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
}

func (tr *TextRenderer) destroy() {
	gl.DeleteVertexArrays(1, &tr.vao)
	gl.DeleteBuffers(1, &tr.vbo)
	gl.DeleteTextures(1, &tr.tex)
	gl.DeleteProgram(tr.prog)
}
