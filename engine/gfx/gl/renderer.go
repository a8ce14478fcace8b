// Package glbackend draws faces with OpenGL 3.3.
package glbackend

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kdchambers/music-player-sub001/engine/assets"
	"github.com/kdchambers/music-player-sub001/engine/colors"
	"github.com/kdchambers/music-player-sub001/engine/core"
	"github.com/kdchambers/music-player-sub001/engine/geometry"
	"github.com/kdchambers/music-player-sub001/engine/gfx/renderer2d"
	"github.com/kdchambers/music-player-sub001/engine/limits"
	"github.com/pkg/errors"
)

const faceBytes = int(unsafe.Sizeof(geometry.Face{}))

type RendererGL struct {
	win      core.Window
	capacity int
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	tex      uint32
	uTex     int32
}

// NewRendererGL allocates buffers for capacity faces.
func NewRendererGL(win core.Window, capacity int) (*RendererGL, error) {
	r := &RendererGL{win: win, capacity: capacity}
	if err := r.init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) init() error {
	vs, err := assets.LoadShader("faces.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("faces.frag")
	if err != nil {
		return err
	}
	if r.program, err = makeProgram(vs, fs); err != nil {
		return err
	}
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.capacity*faceBytes, nil, gl.DYNAMIC_DRAW)

	indices := renderer2d.QuadIndices(r.capacity)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	const stride = int32(unsafe.Sizeof(geometry.Vertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)

	gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UploadTexture replaces the single texture every textured face samples.
func (r *RendererGL) UploadTexture(w, h int, rgba []byte) error {
	if len(rgba) != w*h*4 {
		return errors.Wrapf(limits.ErrInvalidArgument, "texture %dx%d with %d bytes", w, h, len(rgba))
	}
	if r.tex == 0 {
		gl.GenTextures(1, &r.tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (r *RendererGL) UploadFaces(faces []geometry.Face) error {
	if len(faces) > r.capacity {
		return limits.Exhausted("gpu faces", r.capacity, len(faces))
	}
	if len(faces) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(faces)*faceBytes, gl.Ptr(faces))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (r *RendererGL) DrawFaces(count int) {
	count = min(count, r.capacity)
	gl.UseProgram(r.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.Uniform1i(r.uTex, 0)
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(count*6), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, errors.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, errors.Errorf("program link error: %s", log)
	}
	return prog, nil
}
