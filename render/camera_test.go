package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: 16.0 / 9,
		Fovy:   45,
		Znear:  0.1,
		Zfar:   100,
	}
}

func TestViewProjection(t *testing.T) {
	c := testCamera()

	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9, 0.1, 100).
		Mul4(mgl32.LookAtV(c.Eye, c.Target, c.Up))

	have := c.ViewProjection()
	if !want.ApproxEqualThreshold(have, 1e-6) {
		t.Fatalf("want: %v\nhave: %v", want, have)
	}
}

// A point at the camera target must project to the screen center.
func TestViewProjectionCentersTarget(t *testing.T) {
	c := testCamera()

	clip := c.ViewProjection().Mul4x1(c.Target.Vec4(1))
	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()

	if mgl32.Abs(x) > 1e-6 || mgl32.Abs(y) > 1e-6 {
		t.Fatalf("want: 0,0\nhave: %v,%v", x, y)
	}
}

func TestControllerOrbitKeepsDistance(t *testing.T) {
	c := testCamera()
	ctl := Controller{Speed: 0.2, Right: true}

	before := c.Target.Sub(c.Eye).Len()
	for i := 0; i < 50; i++ {
		ctl.Apply(&c)
	}
	after := c.Target.Sub(c.Eye).Len()

	if mgl32.Abs(after-before) > 1e-3 {
		t.Fatalf("distance drifted:\nwant: %v\nhave: %v", before, after)
	}
}

func TestControllerForward(t *testing.T) {
	c := testCamera()
	ctl := Controller{Speed: 0.2, Forward: true}

	before := c.Target.Sub(c.Eye).Len()
	ctl.Apply(&c)
	after := c.Target.Sub(c.Eye).Len()

	if after >= before {
		t.Fatalf("camera did not move toward target: %v -> %v", before, after)
	}

	// Movement stops short of the target rather than overshooting it.
	for i := 0; i < 100; i++ {
		ctl.Apply(&c)
	}
	if d := c.Target.Sub(c.Eye).Len(); d <= 0 || d > before {
		t.Fatalf("unexpected distance after long approach: %v", d)
	}
}

// With the eye placed on the target there is no view direction; movement
// must stay put rather than degenerate into NaN coordinates.
func TestControllerEyeOnTarget(t *testing.T) {
	c := testCamera()
	c.Eye = c.Target

	ctl := Controller{Speed: 0.2, Forward: true, Backward: true, Left: true, Right: true}
	ctl.Apply(&c)

	if c.Eye != c.Target {
		t.Fatalf("camera moved from degenerate position:\nwant: %v\nhave: %v", c.Target, c.Eye)
	}
	for i := 0; i < 3; i++ {
		if v := c.Eye[i]; v != v {
			t.Fatalf("eye component %d is NaN", i)
		}
	}
}

func TestControllerIdle(t *testing.T) {
	c := testCamera()
	ctl := Controller{Speed: 0.2}

	eye := c.Eye
	ctl.Apply(&c)

	if c.Eye != eye {
		t.Fatalf("camera moved without input:\nwant: %v\nhave: %v", eye, c.Eye)
	}
}
