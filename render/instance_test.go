package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInstanceModel(t *testing.T) {
	// Pure translation.
	inst := Instance{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}
	want := mgl32.Translate3D(1, 2, 3)
	if have := inst.Model(); !want.ApproxEqualThreshold(have, 1e-6) {
		t.Fatalf("translation:\nwant: %v\nhave: %v", want, have)
	}

	// Translation composed with rotation, in that order.
	rot := mgl32.QuatRotate(math.Pi/3, mgl32.Vec3{0, 1, 0})
	inst = Instance{Position: mgl32.Vec3{4, 0, -4}, Rotation: rot}
	want = mgl32.Translate3D(4, 0, -4).Mul4(rot.Mat4())
	if have := inst.Model(); !want.ApproxEqualThreshold(have, 1e-6) {
		t.Fatalf("translate*rotate:\nwant: %v\nhave: %v", want, have)
	}
}

// mgl32 matrices are column-major, so the translation must land in the
// final column. The instance buffer is uploaded as raw matrix bytes and
// read back one column per attribute slot; this is the layout that makes
// the shader's column reassembly correct.
func TestInstanceModelColumnMajor(t *testing.T) {
	m := Instance{Position: mgl32.Vec3{7, 8, 9}, Rotation: mgl32.QuatIdent()}.Model()

	if want := (mgl32.Vec4{7, 8, 9, 1}); m.Col(3) != want {
		t.Fatalf("column 3:\nwant: %v\nhave: %v", want, m.Col(3))
	}
	if m[12] != 7 || m[13] != 8 || m[14] != 9 {
		t.Fatalf("translation not in final column: %v", m)
	}
}

func TestInstanceGrid(t *testing.T) {
	const rows = 4
	const spacing = 3.0

	instances := InstanceGrid(rows, spacing)
	if len(instances) != rows*rows {
		t.Fatalf("count:\nwant: %d\nhave: %d", rows*rows, len(instances))
	}

	seen := map[mgl32.Vec3]bool{}
	for i, inst := range instances {
		if seen[inst.Position] {
			t.Fatalf("instance %d repeats position %v", i, inst.Position)
		}
		seen[inst.Position] = true

		// The origin instance keeps the identity rotation, everything
		// else is tilted.
		if inst.Position.Len() == 0 {
			if inst.Rotation != mgl32.QuatIdent() {
				t.Fatalf("instance %d at origin is rotated: %v", i, inst.Rotation)
			}
		} else if inst.Rotation == mgl32.QuatIdent() {
			t.Fatalf("instance %d at %v is not rotated", i, inst.Position)
		}
	}
}
