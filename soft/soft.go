// Package soft evaluates the render pipeline's vertex and fragment stages
// on the CPU. It mirrors the GLSL program in the render package and exists
// so stage behaviour can be verified without a GL context.
package soft

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraUniform is the uniform block shared by all invocations in a draw.
type CameraUniform struct {
	ViewProj mgl32.Mat4
}

// VertexInput holds the per-vertex attributes at slots 4 and 5.
type VertexInput struct {
	Position  mgl32.Vec3
	TexCoords mgl32.Vec2
}

// InstanceInput holds the four model matrix columns at slots 0 through 3.
type InstanceInput struct {
	Model [4]mgl32.Vec4
}

// InstanceFromMat4 decomposes m into its four columns, in slot order.
func InstanceFromMat4(m mgl32.Mat4) InstanceInput {
	return InstanceInput{
		Model: [4]mgl32.Vec4{m.Col(0), m.Col(1), m.Col(2), m.Col(3)},
	}
}

// VertexOutput is what the vertex stage hands to the rasterizer.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	TexCoords    mgl32.Vec2
}

// VertexStage transforms a single vertex of a single instance.
//
// The model matrix is reassembled by stacking the instance columns in slot
// order. The clip position is viewProj * model * vec4(position, 1). Texture
// coordinates pass through untouched; out-of-range values are not clamped
// and non-finite inputs propagate through the arithmetic.
func VertexStage(cam CameraUniform, inst InstanceInput, in VertexInput) VertexOutput {
	model := mgl32.Mat4FromCols(inst.Model[0], inst.Model[1], inst.Model[2], inst.Model[3])
	return VertexOutput{
		ClipPosition: cam.ViewProj.Mul4(model).Mul4x1(in.Position.Vec4(1)),
		TexCoords:    in.TexCoords,
	}
}

// FragmentStage samples tex at the interpolated texture coordinates.
func FragmentStage(tex *Texture, s Sampler, uv mgl32.Vec2) mgl32.Vec4 {
	return s.Sample(tex, uv)
}

// TransformInstanced runs the vertex stage for every instance/vertex pair,
// the way an instanced draw call would. The result holds one slice of
// outputs per instance.
func TransformInstanced(cam CameraUniform, instances []InstanceInput, vertices []VertexInput) [][]VertexOutput {
	out := make([][]VertexOutput, len(instances))
	for i, inst := range instances {
		out[i] = make([]VertexOutput, len(vertices))
		for j, v := range vertices {
			out[i][j] = VertexStage(cam, inst, v)
		}
	}
	return out
}
