package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hexaflex/gfx/obj"
	"github.com/hexaflex/gfx/render"
)

// App defines application context.
type App struct {
	config       *Config          // Application configuration.
	window       *glfw.Window     // OpenGL/GLFW context.
	renderer     *render.Renderer // Shader program and camera.
	mesh         *render.Mesh     // Geometry being drawn.
	texture      *render.Texture  // Diffuse texture.
	sampler      *render.Sampler  // Sampling configuration for the texture.
	instances    []render.Instance
	titleUpdated time.Time // Value used to periodically update window title.
	lastRendered time.Time // Last time a frame was rendered.
	frames       int       // Frames rendered since the last title update.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.instances = render.InstanceGrid(config.Rows, float32(config.Spacing))
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	if err := a.loadResources(); err != nil {
		return err
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	// Periodically render display contents.
	if time.Since(a.lastRendered) >= time.Second/60 {
		a.lastRendered = time.Now()
		a.frames++

		a.renderer.Update()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.renderer.Draw(a.mesh, a.texture, a.sampler, len(a.instances))
		a.window.SwapBuffers()
	}

	// Periodically update the window title to show the frame rate.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		fps := float64(a.frames) / time.Since(a.titleUpdated).Seconds()
		a.titleUpdated = time.Now()
		a.frames = 0
		a.window.SetTitle(fmt.Sprintf("%s %s - %d instances - %.1f fps",
			AppName, AppVersion, len(a.instances), fps))
	}

	glfw.PollEvents()
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if a.sampler != nil {
		a.sampler.Release()
	}
	if a.texture != nil {
		a.texture.Release()
	}
	if a.mesh != nil {
		a.mesh.Release()
	}
	if a.renderer != nil {
		a.renderer.Release()
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press || action == glfw.Release {
		pressed := action == glfw.Press
		ctl := a.renderer.Controller()

		switch key {
		case glfw.KeyW, glfw.KeyUp:
			ctl.Forward = pressed
		case glfw.KeyS, glfw.KeyDown:
			ctl.Backward = pressed
		case glfw.KeyA, glfw.KeyLeft:
			ctl.Left = pressed
		case glfw.KeyD, glfw.KeyRight:
			ctl.Right = pressed
		}
	}

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := a.config.Width
	height := a.config.Height

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, "", monitor, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(1)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.1, 0.2, 0.3, 1.0)
	return nil
}

// loadResources compiles the shader program and uploads the mesh, texture
// and instance transforms.
func (a *App) loadResources() error {
	aspect := float32(a.config.Width) / float32(a.config.Height)
	if a.config.Fullscreen {
		w, h := a.window.GetSize()
		aspect = float32(w) / float32(h)
	}

	span := float32(a.config.Spacing) * float32(a.config.Rows)
	camera := render.Camera{
		Eye:    mgl32.Vec3{0, span / 2, span},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: aspect,
		Fovy:   45,
		Znear:  0.1,
		Zfar:   100,
	}

	renderer, err := render.NewRenderer(camera, 0.2)
	if err != nil {
		return err
	}
	a.renderer = renderer

	a.mesh = cubeMesh()
	if a.config.Mesh != "" {
		log.Println("loading", a.config.Mesh)

		model, err := obj.Load(a.config.Mesh)
		if err != nil {
			return err
		}
		a.mesh = meshFromModel(model, a.config.Mesh)
	}

	if err := a.mesh.Alloc(); err != nil {
		return err
	}
	a.mesh.SetInstances(a.instances)

	if a.config.Texture != "" {
		log.Println("loading", a.config.Texture)

		a.texture, err = render.LoadTexture(a.config.Texture)
		if err != nil {
			return err
		}
	} else {
		a.texture = render.NewTexture(render.CheckerImage(256, 256, 32), "checkerboard")
	}
	a.texture.Alloc()

	a.sampler = render.NewSampler(a.config.Filter, a.config.Wrap, a.config.Wrap)
	a.sampler.Alloc()
	return nil
}

// meshFromModel converts decoded OBJ geometry to a render mesh.
func meshFromModel(m *obj.Model, label string) *render.Mesh {
	vertices := make([]render.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = render.Vertex{Position: v.Position, TexCoords: v.TexCoords}
	}
	return render.NewMesh(vertices, m.Indices, label)
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" W/Up     Move the camera toward the scene.\n")
	sb.WriteString(" S/Down   Move the camera away from the scene.\n")
	sb.WriteString(" A/Left   Orbit the camera left.\n")
	sb.WriteString(" D/Right  Orbit the camera right.")
	log.Println(sb.String())
}
