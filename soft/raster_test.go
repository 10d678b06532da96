package soft

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInterpolateCorners(t *testing.T) {
	v0 := VertexOutput{ClipPosition: mgl32.Vec4{0, 0, 0, 1}, TexCoords: mgl32.Vec2{0, 0}}
	v1 := VertexOutput{ClipPosition: mgl32.Vec4{1, 0, 0, 2}, TexCoords: mgl32.Vec2{1, 0}}
	v2 := VertexOutput{ClipPosition: mgl32.Vec4{0, 1, 0, 3}, TexCoords: mgl32.Vec2{0, 1}}

	// At a corner the other two weights vanish, so the vertex attribute
	// must be recovered exactly regardless of the w values.
	for i, tt := range []struct {
		bary mgl32.Vec3
		want mgl32.Vec2
	}{
		{mgl32.Vec3{1, 0, 0}, v0.TexCoords},
		{mgl32.Vec3{0, 1, 0}, v1.TexCoords},
		{mgl32.Vec3{0, 0, 1}, v2.TexCoords},
	} {
		have := InterpolateTexCoords(v0, v1, v2, tt.bary)
		if !tt.want.ApproxEqualThreshold(have, 1e-6) {
			t.Fatalf("test %d:\nwant: %v\nhave: %v", i+1, tt.want, have)
		}
	}
}

func TestInterpolateAffine(t *testing.T) {
	// With all clip w equal to one, interpolation is plain affine.
	v0 := VertexOutput{ClipPosition: mgl32.Vec4{0, 0, 0, 1}, TexCoords: mgl32.Vec2{0, 0}}
	v1 := VertexOutput{ClipPosition: mgl32.Vec4{1, 0, 0, 1}, TexCoords: mgl32.Vec2{1, 0}}
	v2 := VertexOutput{ClipPosition: mgl32.Vec4{0, 1, 0, 1}, TexCoords: mgl32.Vec2{0, 1}}

	have := InterpolateTexCoords(v0, v1, v2, mgl32.Vec3{1.0 / 3, 1.0 / 3, 1.0 / 3})
	want := mgl32.Vec2{1.0 / 3, 1.0 / 3}
	if !want.ApproxEqualThreshold(have, 1e-6) {
		t.Fatalf("want: %v\nhave: %v", want, have)
	}
}

func TestInterpolatePerspective(t *testing.T) {
	// Halfway along an edge between w=1 and w=2 the nearer vertex
	// dominates: 1/w interpolates to 0.75, uv/w to 0.25, giving 1/3.
	v0 := VertexOutput{ClipPosition: mgl32.Vec4{0, 0, 0, 1}, TexCoords: mgl32.Vec2{0, 0}}
	v1 := VertexOutput{ClipPosition: mgl32.Vec4{1, 0, 0, 2}, TexCoords: mgl32.Vec2{1, 0}}
	v2 := VertexOutput{ClipPosition: mgl32.Vec4{0, 1, 0, 1}, TexCoords: mgl32.Vec2{0, 1}}

	have := InterpolateTexCoords(v0, v1, v2, mgl32.Vec3{0.5, 0.5, 0})
	want := mgl32.Vec2{1.0 / 3, 0}
	if !want.ApproxEqualThreshold(have, 1e-6) {
		t.Fatalf("want: %v\nhave: %v", want, have)
	}
}
