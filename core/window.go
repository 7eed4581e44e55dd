package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	resizeCallbacks []func(width, height int)
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     800,
		Height:    800,
		Title:     "Playground",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow creates a GLFW window with an OpenGL 4.1 core context and makes
// it current. Callers treat an error here as fatal.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		for _, cb := range window.resizeCallbacks {
			cb(width, height)
		}
	})

	return window, nil
}

// OnResize registers a callback fired whenever the window size changes.
func (w *Window) OnResize(cb func(width, height int)) {
	w.resizeCallbacks = append(w.resizeCallbacks, cb)
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the frame; blocks until the display accepts it
// when vsync is on.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Time returns the GLFW timer value in seconds.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) CursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeySpace       = int(glfw.KeySpace)
	KeyComma       = int(glfw.KeyComma)
	KeyMinus       = int(glfw.KeyMinus)
	KeyPeriod      = int(glfw.KeyPeriod)
	Key0           = int(glfw.Key0)
	Key1           = int(glfw.Key1)
	Key2           = int(glfw.Key2)
	Key3           = int(glfw.Key3)
	Key4           = int(glfw.Key4)
	Key5           = int(glfw.Key5)
	KeyA           = int(glfw.KeyA)
	KeyD           = int(glfw.KeyD)
	KeyE           = int(glfw.KeyE)
	KeyQ           = int(glfw.KeyQ)
	KeyS           = int(glfw.KeyS)
	KeyT           = int(glfw.KeyT)
	KeyW           = int(glfw.KeyW)
	KeyY           = int(glfw.KeyY)
	KeyEscape      = int(glfw.KeyEscape)
	KeyF1          = int(glfw.KeyF1)
	KeyRight       = int(glfw.KeyRight)
	KeyLeft        = int(glfw.KeyLeft)
	KeyDown        = int(glfw.KeyDown)
	KeyUp          = int(glfw.KeyUp)
	KeyKPAdd       = int(glfw.KeyKPAdd)
	KeyKPSubtract  = int(glfw.KeyKPSubtract)
	KeyLeftShift   = int(glfw.KeyLeftShift)
	KeyLeftControl = int(glfw.KeyLeftControl)

	MouseButtonLeft  = int(glfw.MouseButtonLeft)
	MouseButtonRight = int(glfw.MouseButtonRight)
)
