package ui

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"github.com/nhatvu148/solar-portfolio/internal/fallback"
	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// mountable is a handle that carries a scene widget
type mountable interface {
	Scene() *SolarSystem
}

// SceneView presents the attempt manager: the live scene, the loading screen
// or the failure guidance.
type SceneView struct {
	manager *render.Manager
	loc     *Localization
	logger  *zap.Logger
	actions FailureActions
	chrome  bool

	sceneLayer   *fyne.Container
	overlayLayer *fyne.Container
	root         *fyne.Container

	mu          sync.Mutex
	closed      bool
	lastVersion uint64
	phase       model.AttemptPhase
	mounted     *SolarSystem
	failure     *FailureView
}

// NewSceneView creates the view; rendering starts with Start. chromeNotice
// switches the loading text to the compatibility check message.
func NewSceneView(surface render.Surface, loc *Localization, logger *zap.Logger, chromeNotice bool, actions FailureActions, opts ...render.Option) *SceneView {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &SceneView{
		loc:          loc,
		logger:       logger,
		actions:      actions,
		chrome:       chromeNotice,
		sceneLayer:   container.NewStack(),
		overlayLayer: container.NewStack(),
		phase:        model.PhaseInitializing,
	}
	v.root = container.NewStack(v.sceneLayer, v.overlayLayer)

	opts = append([]render.Option{render.WithLogger(logger)}, opts...)
	v.manager = render.NewManager(surface, opts...)
	v.manager.OnChange(func(state render.AttemptState) {
		fyne.Do(func() { v.apply(state) })
	})

	v.overlayLayer.Objects = []fyne.CanvasObject{newLoadingView(loc, chromeNotice)}
	return v
}

// Start mounts the first attempt in the background
func (v *SceneView) Start() {
	go func() {
		if err := v.manager.Start(); err != nil && !errors.Is(err, render.ErrManagerClosed) {
			v.logger.Warn("Failed to start rendering", zap.Error(err))
		}
	}()
}

// Retry advances to the next configuration
func (v *SceneView) Retry() {
	go func() {
		if err := v.manager.Retry(); err != nil {
			v.logger.Debug("Retry ignored", zap.Error(err))
		}
	}()
}

// Close unmounts the manager and tears down the scene
func (v *SceneView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.manager.Close()
}

// State returns the manager snapshot
func (v *SceneView) State() render.AttemptState {
	return v.manager.State()
}

// Phase returns the phase currently presented
func (v *SceneView) Phase() model.AttemptPhase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

// Scene returns the mounted scene, or nil
func (v *SceneView) Scene() *SolarSystem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

// FailureView returns the failure guidance on screen, or nil
func (v *SceneView) FailureView() *FailureView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failure
}

// Container returns the root object
func (v *SceneView) Container() fyne.CanvasObject {
	return v.root
}

// apply presents state. Snapshots can arrive out of order from the timer
// goroutine, so anything older than the last one shown is dropped.
func (v *SceneView) apply(state render.AttemptState) {
	v.mu.Lock()
	if v.closed || state.Version <= v.lastVersion {
		v.mu.Unlock()
		return
	}
	v.lastVersion = state.Version
	v.phase = state.Phase

	var scene *SolarSystem
	if m, ok := state.Handle.(mountable); ok {
		scene = m.Scene()
	}
	startScene := false
	if scene != v.mounted {
		v.sceneLayer.Objects = nil
		if scene != nil {
			v.sceneLayer.Objects = []fyne.CanvasObject{scene}
			startScene = true
		}
		v.mounted = scene
		v.sceneLayer.Refresh()
	}

	v.failure = nil
	var overlay fyne.CanvasObject
	switch state.Phase {
	case model.PhaseInitializing:
		overlay = newLoadingView(v.loc, v.chrome)
	case model.PhaseAttempting:
		if scene == nil {
			overlay = newLoadingView(v.loc, v.chrome)
		}
	case model.PhaseFailed:
		actions := v.actions
		actions.OnRetry = v.Retry
		v.failure = NewFailureView(fallback.Guide(state.LastError, state.ConfigIndex, render.ConfigurationCount), v.loc, actions)
		overlay = v.failure.Container()
	}

	v.overlayLayer.Objects = nil
	if overlay != nil {
		v.overlayLayer.Objects = []fyne.CanvasObject{overlay}
	}
	v.overlayLayer.Refresh()
	v.mu.Unlock()

	// last, so callbacks fired by the first frame see a consistent view
	if startScene {
		scene.Start()
	}
}
