package render

import (
	"github.com/go-gl/gl/v4.2-core/gl"
)

// Attribute slots and binding points. These match the locations declared in
// the GLSL sources and form the wire contract with anything driving the
// program; they must not be renumbered independently.
const (
	SlotModelCol0 = 0 // Instance model matrix, first column.
	SlotModelCol1 = 1
	SlotModelCol2 = 2
	SlotModelCol3 = 3
	SlotPosition  = 4 // Per-vertex object-space position.
	SlotTexCoord  = 5 // Per-vertex texture coordinate.

	BindingCamera = 0 // Uniform block binding for the camera matrix.
	UnitDiffuse   = 0 // Texture unit for the diffuse texture and its sampler.
)

// Attribute describes a single vertex attribute within a buffer.
type Attribute struct {
	Slot   uint32 // Shader location.
	Size   int32  // Number of float components.
	Offset int    // Byte offset from the start of an element.
}

// BufferLayout describes how a vertex buffer's bytes map onto attribute
// slots. A divisor of 0 advances the buffer once per vertex, 1 once per
// instance.
type BufferLayout struct {
	Stride     int32
	Divisor    uint32
	Attributes []Attribute
}

// VertexLayout is the layout of the per-vertex buffer: a vec3 position at
// slot 4 followed by a vec2 texture coordinate at slot 5.
var VertexLayout = BufferLayout{
	Stride: 5 * 4,
	Attributes: []Attribute{
		{Slot: SlotPosition, Size: 3, Offset: 0},
		{Slot: SlotTexCoord, Size: 2, Offset: 3 * 4},
	},
}

// InstanceLayout is the layout of the per-instance buffer: a mat4 split
// into four vec4 columns across slots 0 through 3.
var InstanceLayout = BufferLayout{
	Stride:  16 * 4,
	Divisor: 1,
	Attributes: []Attribute{
		{Slot: SlotModelCol0, Size: 4, Offset: 0},
		{Slot: SlotModelCol1, Size: 4, Offset: 4 * 4},
		{Slot: SlotModelCol2, Size: 4, Offset: 8 * 4},
		{Slot: SlotModelCol3, Size: 4, Offset: 12 * 4},
	},
}

// enable wires the layout's attributes into the currently bound VAO,
// reading from the currently bound array buffer.
func (l BufferLayout) enable() {
	for _, a := range l.Attributes {
		gl.EnableVertexAttribArray(a.Slot)
		gl.VertexAttribPointer(a.Slot, a.Size, gl.FLOAT, false, l.Stride, gl.PtrOffset(a.Offset))
		gl.VertexAttribDivisor(a.Slot, l.Divisor)
	}
}
