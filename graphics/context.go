package graphics

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"playground/core"
)

// Init loads the OpenGL function pointers and sets the baseline render
// state. Must be called after the window context is made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	fmt.Printf("OpenGL version: %s\n", version)
	fmt.Printf("OpenGL renderer: %s\n", renderer)

	gl.Enable(gl.DEPTH_TEST)
	// LEQUAL rather than LESS so the sky sphere passes at depth == 1.0
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)

	return nil
}

// SetViewport resizes the GL viewport.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear wipes the color and depth buffers to the given color.
func Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
