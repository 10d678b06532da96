package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance defines one draw repetition of a mesh with its own transform.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Model returns the instance's model matrix: translation composed with
// rotation. mgl32 matrices are column-major, so the result can be uploaded
// to the instance buffer as-is and lands in slots 0-3 one column per slot.
func (i Instance) Model() mgl32.Mat4 {
	return mgl32.Translate3D(i.Position.X(), i.Position.Y(), i.Position.Z()).
		Mul4(i.Rotation.Mat4())
}

// InstanceGrid returns rows*rows instances laid out on the XZ plane around
// the origin with the given spacing. Each instance away from the origin is
// tilted a quarter pi around its own position axis so the repetition is
// visible from every angle.
func InstanceGrid(rows int, spacing float32) []Instance {
	const tilt = math.Pi / 4

	instances := make([]Instance, 0, rows*rows)
	for z := 0; z < rows; z++ {
		for x := 0; x < rows; x++ {
			position := mgl32.Vec3{
				spacing * (float32(x) - float32(rows)/2),
				0,
				spacing * (float32(z) - float32(rows)/2),
			}

			rotation := mgl32.QuatIdent()
			if position.Len() > 0 {
				rotation = mgl32.QuatRotate(tilt, position.Normalize())
			}

			instances = append(instances, Instance{Position: position, Rotation: rotation})
		}
	}
	return instances
}
