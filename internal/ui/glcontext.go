package ui

import "github.com/nhatvu148/solar-portfolio/internal/render"

// glContext is the graphics context held for the lifetime of one surface
type glContext interface {
	Renderer() string
	Release()
}

// glOpener creates a context for cfg. onLost is called at most once if the
// context is lost after creation.
type glOpener func(cfg render.Configuration, onLost func(error)) (glContext, error)
