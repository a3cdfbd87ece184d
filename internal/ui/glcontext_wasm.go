//go:build js && wasm

package ui

import (
	"errors"
	"syscall/js"

	"github.com/nhatvu148/solar-portfolio/internal/render"
)

const (
	defaultCreationError  = "Error creating WebGL context."
	contextLostError      = "CONTEXT_LOST_WEBGL: WebGL context was lost"
	unmaskedRendererWebGL = 0x9246
)

// webGLContext is a trial context created with the tier's attributes. It is
// kept until the surface is destroyed so only one context exists at a time.
type webGLContext struct {
	canvas   js.Value
	gl       js.Value
	onLost   js.Func
	released bool
}

func openGLContext(cfg render.Configuration, onLost func(error)) (glContext, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, errors.New("document is not available")
	}
	canvas := doc.Call("createElement", "canvas")

	var status string
	creationErr := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			if msg := args[0].Get("statusMessage"); msg.Type() == js.TypeString {
				status = msg.String()
			}
		}
		return nil
	})
	canvas.Call("addEventListener", "webglcontextcreationerror", creationErr)

	attrs := map[string]any{
		"antialias":                    cfg.Antialias,
		"alpha":                        cfg.Alpha,
		"depth":                        cfg.Depth,
		"stencil":                      cfg.Stencil,
		"preserveDrawingBuffer":        cfg.PreserveDrawingBuffer,
		"failIfMajorPerformanceCaveat": cfg.FailIfMajorPerformanceCaveat,
		"powerPreference":              string(cfg.PowerPreference),
	}
	gl := canvas.Call("getContext", "webgl", attrs)
	if !gl.Truthy() {
		gl = canvas.Call("getContext", "experimental-webgl", attrs)
	}
	canvas.Call("removeEventListener", "webglcontextcreationerror", creationErr)
	creationErr.Release()

	if !gl.Truthy() {
		if status == "" {
			status = defaultCreationError
		}
		return nil, errors.New(status)
	}
	if cfg.Precision == render.PrecisionHigh && !supportsHighPrecision(gl) {
		loseContext(gl)
		return nil, errors.New("highp float precision is not supported in fragment shaders")
	}

	c := &webGLContext{canvas: canvas, gl: gl}
	c.onLost = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		if onLost != nil {
			// leave the event handler before the manager tears the surface down
			go onLost(errors.New(contextLostError))
		}
		return nil
	})
	canvas.Call("addEventListener", "webglcontextlost", c.onLost)
	return c, nil
}

func supportsHighPrecision(gl js.Value) bool {
	format := gl.Call("getShaderPrecisionFormat", gl.Get("FRAGMENT_SHADER"), gl.Get("HIGH_FLOAT"))
	return format.Truthy() && format.Get("precision").Int() > 0
}

func loseContext(gl js.Value) {
	if ext := gl.Call("getExtension", "WEBGL_lose_context"); ext.Truthy() {
		ext.Call("loseContext")
	}
}

// Renderer returns the unmasked renderer name when the browser exposes it
func (c *webGLContext) Renderer() string {
	ext := c.gl.Call("getExtension", "WEBGL_debug_renderer_info")
	if !ext.Truthy() {
		return c.gl.Call("getParameter", c.gl.Get("RENDERER")).String()
	}
	return c.gl.Call("getParameter", unmaskedRendererWebGL).String()
}

func (c *webGLContext) Release() {
	if c.released {
		return
	}
	c.released = true
	c.canvas.Call("removeEventListener", "webglcontextlost", c.onLost)
	c.onLost.Release()
	loseContext(c.gl)
}
