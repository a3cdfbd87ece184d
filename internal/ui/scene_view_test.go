package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nhatvu148/solar-portfolio/internal/model"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

const waitFor = 2 * time.Second

func waitPhase(t *testing.T, v *SceneView, phase model.AttemptPhase) {
	t.Helper()
	require.Eventually(t, func() bool { return v.Phase() == phase }, waitFor, 5*time.Millisecond,
		"expected phase %s, state %+v", phase, v.State())
}

func TestSceneView_MountsScene(t *testing.T) {
	test.NewApp()
	surface, _ := newTestSurface(t)
	v := NewSceneView(surface, NewLocalization(), zaptest.NewLogger(t), false, FailureActions{})
	defer v.Close()

	assert.Equal(t, model.PhaseInitializing, v.Phase())
	v.Start()

	require.Eventually(t, func() bool { return v.Scene() != nil }, waitFor, 5*time.Millisecond)
	// draw a frame in case the driver has not ticked the animation
	v.Scene().step(time.Now())

	waitPhase(t, v, model.PhaseSucceeded)
	assert.Nil(t, v.FailureView())
	assert.True(t, v.Scene().Running())
	assert.Empty(t, v.overlayLayer.Objects, "no overlay over a ready scene")
	assert.Same(t, v.Scene(), surface.Live().Scene())
}

func TestSceneView_FailureAndRetry(t *testing.T) {
	test.NewApp()
	surface, _ := newTestSurface(t, 0)
	reloaded := 0
	v := NewSceneView(surface, NewLocalization(), zaptest.NewLogger(t), true, FailureActions{
		OnReload: func() { reloaded++ },
	})
	defer v.Close()

	v.Start()
	waitPhase(t, v, model.PhaseFailed)

	fv := v.FailureView()
	require.NotNil(t, fv)
	assert.Equal(t, "Error creating WebGL context", fv.Guidance().ErrorDetail)
	assert.Nil(t, v.Scene())
	assert.Nil(t, surface.Live())

	test.Tap(fv.buttons[1])
	assert.Equal(t, 1, reloaded)

	// the retry button advances to the next configuration
	test.Tap(fv.buttons[0])
	require.Eventually(t, func() bool { return v.Scene() != nil }, waitFor, 5*time.Millisecond)
	v.Scene().step(time.Now())
	waitPhase(t, v, model.PhaseSucceeded)

	state := v.State()
	assert.Equal(t, 1, state.ConfigIndex)
	assert.Equal(t, 1, state.Retries)
	assert.Equal(t, render.ConfigurationAt(1), v.Scene().Configuration())
}

func TestSceneView_AttemptingKeepsMountedScene(t *testing.T) {
	test.NewApp()
	surface, _ := newTestSurface(t)
	v := NewSceneView(surface, NewLocalization(), zaptest.NewLogger(t), false, FailureActions{})
	defer v.Close()

	h := &SceneHandle{
		id:        "surface-test",
		cfg:       render.ConfigurationAt(0),
		scene:     NewSolarSystem(testPlanets(), render.ConfigurationAt(0), nil, SceneOptions{}),
		resources: render.NewResources(),
		gl:        &stubGL{},
	}
	defer h.destroy()

	v.apply(render.AttemptState{Phase: model.PhaseAttempting, Handle: h, Version: 1})
	assert.Same(t, h.Scene(), v.Scene())
	assert.True(t, h.Scene().Running())
	assert.Empty(t, v.overlayLayer.Objects, "the mounted scene stays visible")

	v.apply(render.AttemptState{Phase: model.PhaseAttempting, Version: 2})
	assert.Nil(t, v.Scene())
	assert.Empty(t, v.sceneLayer.Objects)
	assert.Len(t, v.overlayLayer.Objects, 1, "loading screen without a scene")
}

func TestSceneView_DropsStaleSnapshots(t *testing.T) {
	test.NewApp()
	surface, _ := newTestSurface(t)
	v := NewSceneView(surface, NewLocalization(), zaptest.NewLogger(t), false, FailureActions{})
	defer v.Close()

	v.apply(render.AttemptState{Phase: model.PhaseFailed, Version: 5})
	require.NotNil(t, v.FailureView())

	v.apply(render.AttemptState{Phase: model.PhaseInitializing, Version: 4})
	assert.Equal(t, model.PhaseFailed, v.Phase())
	assert.NotNil(t, v.FailureView())
}

func TestSceneView_CloseTearsDown(t *testing.T) {
	test.NewApp()
	surface, _ := newTestSurface(t)
	v := NewSceneView(surface, NewLocalization(), zaptest.NewLogger(t), false, FailureActions{})

	v.Start()
	require.Eventually(t, func() bool { return surface.Live() != nil }, waitFor, 5*time.Millisecond)
	require.Eventually(t, func() bool { return v.Scene() != nil }, waitFor, 5*time.Millisecond)
	scene := v.Scene()

	v.Close()
	assert.Nil(t, surface.Live())
	assert.False(t, scene.Running())

	// late snapshots are ignored once closed
	v.apply(render.AttemptState{Phase: model.PhaseFailed, Version: 1 << 20})
	assert.Nil(t, v.FailureView())
}
