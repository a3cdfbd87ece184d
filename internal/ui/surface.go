package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// SurfaceIDPrefix prefixes generated surface handle IDs
const SurfaceIDPrefix = "surface-"

// SceneHandle is the live surface: the scene widget plus everything created for it
type SceneHandle struct {
	id        string
	cfg       render.Configuration
	scene     *SolarSystem
	resources *render.Resources
	gl        glContext
	release   sync.Once
}

// ID implements render.Handle
func (h *SceneHandle) ID() string { return h.id }

// Configuration implements render.Handle
func (h *SceneHandle) Configuration() render.Configuration { return h.cfg }

// Scene returns the widget to mount
func (h *SceneHandle) Scene() *SolarSystem { return h.scene }

// Renderer names the graphics backend the surface runs on
func (h *SceneHandle) Renderer() string { return h.gl.Renderer() }

func (h *SceneHandle) destroy() {
	h.release.Do(func() {
		h.scene.dispose()
		h.resources.Release()
		h.gl.Release()
	})
}

// CanvasSurface creates solar system scenes. Only one scene may be live.
type CanvasSurface struct {
	mu      sync.Mutex
	planets func() []model.Planet
	options func() SceneOptions
	openGL  glOpener
	logger  *zap.Logger
	live    *SceneHandle
}

var _ render.Surface = (*CanvasSurface)(nil)

// NewCanvasSurface creates a surface reading planets and scene options at creation time
func NewCanvasSurface(planets func() []model.Planet, options func() SceneOptions, logger *zap.Logger) *CanvasSurface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CanvasSurface{
		planets: planets,
		options: options,
		openGL:  openGLContext,
		logger:  logger,
	}
}

// Create opens a graphics context for cfg and builds a scene on it. Ready fires
// after the scene draws its first frame.
func (s *CanvasSurface) Create(ctx context.Context, cfg render.Configuration, events render.Events) (render.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live != nil {
		return nil, render.ErrSurfaceBusy
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lost := func(err error) {
		if events.Lost != nil {
			events.Lost(err)
		}
	}
	gl, err := s.openGL(cfg, lost)
	if err != nil {
		return nil, err
	}

	var planets []model.Planet
	if s.planets != nil {
		planets = s.planets()
	}
	var opts SceneOptions
	if s.options != nil {
		opts = s.options()
	}

	res := render.NewResources()
	scene := NewSolarSystem(planets, cfg, res, opts)
	if events.Ready != nil {
		scene.OnFirstFrame(func() { go events.Ready() })
	}

	h := &SceneHandle{
		id:        generateSurfaceID(),
		cfg:       cfg,
		scene:     scene,
		resources: res,
		gl:        gl,
	}
	s.live = h

	s.logger.Debug("Surface created",
		zap.String("surface", h.id),
		zap.String("config", cfg.Name),
		zap.String("renderer", gl.Renderer()),
		zap.Int("planets", len(planets)))
	return h, nil
}

// Destroy stops the scene and releases its context and caches
func (s *CanvasSurface) Destroy(h render.Handle) {
	sh, ok := h.(*SceneHandle)
	if !ok || sh == nil {
		return
	}

	s.mu.Lock()
	if s.live == sh {
		s.live = nil
	}
	s.mu.Unlock()

	sh.destroy()
	s.logger.Debug("Surface destroyed", zap.String("surface", sh.id))
}

// Live returns the live handle, or nil
func (s *CanvasSurface) Live() *SceneHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// generateSurfaceID generates a unique, time-ordered surface ID
func generateSurfaceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(SurfaceIDPrefix+"%d", time.Now().UnixNano())
	}
	return SurfaceIDPrefix + id.String()
}
