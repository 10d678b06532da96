package render

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defines a perspective camera orbiting a target point.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Aspect float32
	Fovy   float32 // Vertical field of view in degrees.
	Znear  float32
	Zfar   float32
}

// ViewProjection returns the combined view-projection matrix: the
// perspective projection multiplied by the look-at view transform.
func (c Camera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Znear, c.Zfar)
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	return proj.Mul4(view)
}

// Controller accumulates camera movement intent between frames. The
// frontend sets the direction flags from its input events and Apply folds
// them into the camera once per update.
type Controller struct {
	Speed    float32
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Apply moves the camera according to the active direction flags.
// Forward/backward travel along the view direction; left/right orbit the
// target at a constant distance.
func (ctl *Controller) Apply(c *Camera) {
	forward := c.Target.Sub(c.Eye)
	dist := forward.Len()

	// With the eye on the target there is no view direction to move
	// along or orbit around.
	if dist == 0 {
		return
	}

	dir := forward.Mul(1 / dist)

	if ctl.Forward && dist > ctl.Speed {
		c.Eye = c.Eye.Add(dir.Mul(ctl.Speed))
	}
	if ctl.Backward {
		c.Eye = c.Eye.Sub(dir.Mul(ctl.Speed))
	}

	right := dir.Cross(c.Up)
	forward = c.Target.Sub(c.Eye)
	dist = forward.Len()

	if ctl.Right {
		c.Eye = c.Target.Sub(forward.Add(right.Mul(ctl.Speed)).Normalize().Mul(dist))
	}
	if ctl.Left {
		c.Eye = c.Target.Sub(forward.Sub(right.Mul(ctl.Speed)).Normalize().Mul(dist))
	}
}

// CameraRig couples a camera with its uniform buffer and controller.
type CameraRig struct {
	Camera     Camera
	Controller Controller
	ubo        uint32
	allocated  bool
}

// NewCameraRig creates a rig around the given camera.
func NewCameraRig(c Camera, speed float32) *CameraRig {
	return &CameraRig{
		Camera:     c,
		Controller: Controller{Speed: speed},
	}
}

// Alloc creates the uniform buffer and binds it to the camera uniform
// block binding point.
func (r *CameraRig) Alloc() {
	gl.GenBuffers(1, &r.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, 16*4, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, BindingCamera, r.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	r.allocated = true
	r.Update()
}

// Update applies pending controller movement and uploads the current
// view-projection matrix to the uniform buffer.
func (r *CameraRig) Update() {
	r.Controller.Apply(&r.Camera)

	if !r.allocated {
		return
	}

	vp := r.Camera.ViewProjection()
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, 16*4, gl.Ptr(&vp[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Release frees the uniform buffer.
func (r *CameraRig) Release() {
	if !r.allocated {
		return
	}
	gl.DeleteBuffers(1, &r.ubo)
	r.allocated = false
}
