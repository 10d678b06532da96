package render

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Vertex defines the per-vertex attribute record. Its memory layout must
// match VertexLayout.
type Vertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

// Mesh holds geometry and the GL buffers it is uploaded to.
type Mesh struct {
	vertices    []Vertex
	indices     []uint32
	vao         uint32
	vbo         uint32
	ebo         uint32
	ivbo        uint32
	instanceCap int
	label       string
	allocated   bool
}

// NewMesh creates a mesh from the given geometry. Alloc must be called
// with a current GL context before the mesh can be drawn.
func NewMesh(vertices []Vertex, indices []uint32, label string) *Mesh {
	return &Mesh{
		vertices: vertices,
		indices:  indices,
		label:    label,
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int { return len(m.indices) }

// Alloc uploads the geometry to GL buffers and wires the vertex and
// instance layouts into a vertex array object.
func (m *Mesh) Alloc() error {
	if m.allocated {
		return errors.Errorf("mesh %q is already allocated", m.label)
	}
	if len(m.vertices) == 0 || len(m.indices) == 0 {
		return errors.Errorf("mesh %q has no geometry", m.label)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.vertices)*int(VertexLayout.Stride), gl.Ptr(m.vertices), gl.STATIC_DRAW)
	VertexLayout.enable()

	gl.GenBuffers(1, &m.ivbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.ivbo)
	InstanceLayout.enable()

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.indices)*4, gl.Ptr(m.indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.allocated = true
	return nil
}

// SetInstances uploads the model matrices of the given instances to the
// per-instance buffer. The buffer grows as needed and is reused otherwise.
// An empty batch leaves the buffer untouched; Draw skips it anyway.
func (m *Mesh) SetInstances(instances []Instance) {
	if len(instances) == 0 {
		return
	}

	models := make([]mgl32.Mat4, len(instances))
	for i, inst := range instances {
		models[i] = inst.Model()
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.ivbo)
	if len(models) > m.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(models)*int(InstanceLayout.Stride), gl.Ptr(models), gl.DYNAMIC_DRAW)
		m.instanceCap = len(models)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(models)*int(InstanceLayout.Stride), gl.Ptr(models))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders count instances of the mesh with the currently bound
// program, uniform block and textures.
func (m *Mesh) Draw(count int) {
	if !m.allocated || count <= 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, nil, int32(count))
	gl.BindVertexArray(0)
}

// Release frees the mesh's GL resources.
func (m *Mesh) Release() {
	if !m.allocated {
		return
	}
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.ivbo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.allocated = false
	m.instanceCap = 0
}
