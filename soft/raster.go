package soft

import (
	"github.com/go-gl/mathgl/mgl32"
)

// InterpolateTexCoords performs perspective-correct interpolation of the
// texture coordinates of a triangle's three vertex outputs. The weights in
// bary are the barycentric coordinates of the fragment in screen space and
// are expected to sum to one.
//
// The rasterizer this stands in for divides each varying by its vertex's
// clip w, interpolates linearly, then divides by the interpolated 1/w.
// With all w equal to one this reduces to plain affine interpolation.
func InterpolateTexCoords(v0, v1, v2 VertexOutput, bary mgl32.Vec3) mgl32.Vec2 {
	w0 := v0.ClipPosition.W()
	w1 := v1.ClipPosition.W()
	w2 := v2.ClipPosition.W()

	iw := bary.X()/w0 + bary.Y()/w1 + bary.Z()/w2

	uv := v0.TexCoords.Mul(bary.X() / w0).
		Add(v1.TexCoords.Mul(bary.Y() / w1)).
		Add(v2.TexCoords.Mul(bary.Z() / w2))

	return uv.Mul(1 / iw)
}
