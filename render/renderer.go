// Package render draws instanced, textured meshes with OpenGL. Instances
// carry their model matrix in attribute slots 0-3, vertices their position
// and texture coordinates in slots 4 and 5, and the camera matrix lives in
// uniform block binding 0.
package render

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"
)

// Renderer owns the shader program and camera rig and issues instanced
// draws. All methods must be called with a current GL context, from the
// thread that owns it.
type Renderer struct {
	program uint32
	rig     *CameraRig
}

// NewRenderer compiles the shader program and allocates the camera uniform
// buffer for the given camera.
func NewRenderer(c Camera, speed float32) (*Renderer, error) {
	program, err := compileProgram(vertex, fragment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile shaders")
	}

	rig := NewCameraRig(c, speed)
	rig.Alloc()

	return &Renderer{program: program, rig: rig}, nil
}

// Camera returns the renderer's camera for direct adjustment.
func (r *Renderer) Camera() *Camera {
	return &r.rig.Camera
}

// Controller returns the camera movement controller.
func (r *Renderer) Controller() *Controller {
	return &r.rig.Controller
}

// Update folds pending camera movement into the uniform buffer. Call once
// per frame before drawing.
func (r *Renderer) Update() {
	r.rig.Update()
}

// Draw renders count instances of the mesh with the given texture and
// sampler. The mesh's instance buffer must have been populated with
// SetInstances beforehand.
func (r *Renderer) Draw(m *Mesh, t *Texture, s *Sampler, count int) {
	gl.UseProgram(r.program)
	t.Bind(UnitDiffuse)
	s.Bind(UnitDiffuse)
	m.Draw(count)
}

// Release frees the program and camera resources.
func (r *Renderer) Release() {
	r.rig.Release()
	gl.DeleteProgram(r.program)
	r.program = 0
}
