package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cubes/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	vertCount int32

	uProj  int32
	uView  int32
	uModel int32
	uColor int32
	uTime  int32

	rotAxis mgl32.Vec3
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(cubeVertSrc, cubeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cube program: %w", err)
	}

	r := &Renderer{
		prog:    prog,
		rotAxis: mgl32.Vec3{0.5, 1, 0.25}.Normalize(),
	}
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uTime = gl.GetUniformLocation(prog, gl.Str("uTime\x00"))

	verts := cubeMesh(CubeScale)
	r.vertCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 24, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 24, glOffset(12))
	gl.BindVertexArray(0)

	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
}

func (r *Renderer) BeginFrame(fbW, fbH int, now float64) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj, view := cameraMatrices(fbW, fbH)
	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.Uniform1f(r.uTime, float32(now))
}

// DrawCubes renders one snapshot. Cubes share a single mesh; position,
// rotation and color come in as per-draw uniforms.
func (r *Renderer) DrawCubes(snap []sim.RenderEntity) {
	gl.BindVertexArray(r.vao)
	for i := range snap {
		e := &snap[i]
		model := mgl32.Translate3D(e.Pos[0], e.Pos[1], e.Pos[2]).
			Mul4(mgl32.HomogRotate3D(e.Angle, r.rotAxis))
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.Uniform4f(r.uColor, e.Color[0], e.Color[1], e.Color[2], e.Color[3])
		gl.DrawArrays(gl.TRIANGLES, 0, r.vertCount)
	}
	gl.BindVertexArray(0)
}

// cubeMesh builds an interleaved pos+normal triangle list for a cube with
// half-extent h, two triangles per face.
func cubeMesh(h float32) []float32 {
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}

	verts := make([]float32, 0, 6*6*6)
	push := func(p, n mgl32.Vec3) {
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, f := range faces {
		c := f.n.Mul(h)
		u := f.u.Mul(h)
		v := f.v.Mul(h)
		c00 := c.Sub(u).Sub(v)
		c10 := c.Add(u).Sub(v)
		c11 := c.Add(u).Add(v)
		c01 := c.Sub(u).Add(v)
		push(c00, f.n)
		push(c10, f.n)
		push(c11, f.n)
		push(c00, f.n)
		push(c11, f.n)
		push(c01, f.n)
	}
	return verts
}
