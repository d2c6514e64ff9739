// Package opengl provides a GLFW + OpenGL 4.1 backend for the sigui package.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/TheBadkraft/sigui"
)

// ErrNotInitialized is returned by Draw before a successful Init.
var ErrNotInitialized = errors.New("opengl: renderer not initialized")

// Renderer implements sigui.Renderer with a GLFW window and a solid-color
// quad per module window.
type Renderer struct {
	window  *glfw.Window
	glfwUp  bool
	title   string
	fill    uint32
	clear   uint32
	shader  uint32
	vao     uint32
	vbo     uint32
	projLoc int32
	colLoc  int32
	width   int
	height  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// WithFillColor sets the color module windows are painted with.
func WithFillColor(color uint32) Option {
	return func(r *Renderer) { r.fill = color }
}

// WithClearColor sets the background color.
func WithClearColor(color uint32) Option {
	return func(r *Renderer) { r.clear = color }
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec4 fillColor;

void main() {
    FragColor = fillColor;
}
` + "\x00"

// NewRenderer creates a renderer. Nothing native is created until Init.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		title: "sigui",
		fill:  sigui.ColorWhite,
		clear: sigui.ColorBlack,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init creates the window, the GL context and the quad pipeline.
// GLFW must be used from the main thread: lock it with runtime.LockOSThread
// before calling Init.
func (r *Renderer) Init(width, height int) error {
	r.width = width
	r.height = height

	if err := glfw.Init(); err != nil {
		return r.Dispose(fmt.Errorf("glfw init: %w", err))
	}
	r.glfwUp = true

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, r.title, nil, nil)
	if err != nil {
		return r.Dispose(fmt.Errorf("create window: %w", err))
	}
	r.window = window
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return r.Dispose(fmt.Errorf("gl init: %w", err))
	}

	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return r.Dispose(fmt.Errorf("create shader: %w", err))
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.colLoc = gl.GetUniformLocation(r.shader, gl.Str("fillColor\x00"))

	// Quad: 4 vertices of 2 floats, rewritten on every draw
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 8*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return nil
}

// Window returns the native window, or nil before Init.
func (r *Renderer) Window() *glfw.Window {
	return r.window
}

// ShouldClose reports whether the user asked to close the window.
func (r *Renderer) ShouldClose() bool {
	return r.window == nil || r.window.ShouldClose()
}

// Draw clears the frame, fills the module's window rectangle and swaps buffers.
func (r *Renderer) Draw(m *sigui.Module) error {
	if r.window == nil {
		return ErrNotInitialized
	}
	if m == nil || m.Window().Empty() {
		return nil
	}
	win := m.Window()

	fbw, fbh := r.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	cr, cg, cb, ca := sigui.UnpackRGBAf(r.clear)
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shader)

	// Top-left origin, window coordinates
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	fr, fg, fb, fa := sigui.UnpackRGBAf(r.fill)
	gl.Uniform4f(r.colLoc, fr, fg, fb, fa)

	x0, y0 := float32(win.X), float32(win.Y)
	x1, y1 := float32(win.X+win.Width), float32(win.Y+win.Height)
	quad := [8]float32{x0, y0, x1, y0, x1, y1, x0, y1}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, int(unsafe.Sizeof(quad)), gl.Ptr(&quad[0]))
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw module %q: gl error 0x%x", m.Name(), code)
	}

	r.window.SwapBuffers()
	return nil
}

// Dispose releases GL objects, the window and GLFW. It returns cause
// wrapped, or nil for a clean shutdown. Safe to call more than once.
func (r *Renderer) Dispose(cause error) error {
	if r.window != nil {
		if r.vbo != 0 {
			gl.DeleteBuffers(1, &r.vbo)
			r.vbo = 0
		}
		if r.vao != 0 {
			gl.DeleteVertexArrays(1, &r.vao)
			r.vao = 0
		}
		if r.shader != 0 {
			gl.DeleteProgram(r.shader)
			r.shader = 0
		}
		r.window.Destroy()
		r.window = nil
	}
	if r.glfwUp {
		glfw.Terminate()
		r.glfwUp = false
	}

	if cause != nil {
		return fmt.Errorf("opengl renderer: %w", cause)
	}
	return nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Shaders are linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %s", string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
