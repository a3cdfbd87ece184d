package render

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nhatvu148/solar-portfolio/internal/model"
)

const swiftShaderMessage = "Could not create a WebGL context, VENDOR = 0xffff, DEVICE = 0xffff, GL_VENDOR = Google Inc., GL_RENDERER = Google SwiftShader"

func newTestManager(t *testing.T, surface Surface, clock *fakeClock) *Manager {
	t.Helper()
	m := NewManager(surface,
		WithAfterFunc(clock.AfterFunc),
		WithLogger(zaptest.NewLogger(t)),
	)
	t.Cleanup(m.Close)
	return m
}

func failAll(surface *fakeSurface, msg string) {
	for i := 0; i < ConfigurationCount; i++ {
		surface.fail[i] = errors.New(msg)
	}
}

func TestManager_StartSucceeds(t *testing.T) {
	surface := newFakeSurface()
	surface.autoReady = true
	clock := &fakeClock{}
	m := newTestManager(t, surface, clock)

	require.NoError(t, m.Start())

	state := m.State()
	assert.Equal(t, model.PhaseSucceeded, state.Phase)
	assert.Equal(t, 0, state.ConfigIndex)
	assert.NotNil(t, state.Handle)
	assert.Nil(t, state.LastError)
	assert.Equal(t, 0, clock.pending(), "safety timer must be stopped after success")
}

func TestManager_StartIsIdempotent(t *testing.T) {
	surface := newFakeSurface()
	surface.autoReady = true
	m := newTestManager(t, surface, &fakeClock{})

	require.NoError(t, m.Start())
	require.NoError(t, m.Start())
	assert.Len(t, surface.created, 1)
}

func TestManager_SafetyTimeoutLeavesInitializing(t *testing.T) {
	surface := newFakeSurface()
	clock := &fakeClock{}
	m := newTestManager(t, surface, clock)

	require.NoError(t, m.Start())
	assert.Equal(t, model.PhaseInitializing, m.State().Phase)
	require.Len(t, clock.timers, 1)
	assert.Equal(t, SafetyTimeout, clock.timers[0].d)

	clock.fire()
	assert.Equal(t, model.PhaseAttempting, m.State().Phase)

	// the surface may still report afterwards
	surface.lastEvents().Ready()
	assert.Equal(t, model.PhaseSucceeded, m.State().Phase)
}

func TestManager_SafetyTimeoutAfterSuccessIsIgnored(t *testing.T) {
	surface := newFakeSurface()
	clock := &fakeClock{}
	m := newTestManager(t, surface, clock)

	require.NoError(t, m.Start())
	surface.lastEvents().Ready()

	// simulate a timer that could not be stopped in time
	m.onSafetyTimeout(m.generation)
	assert.Equal(t, model.PhaseSucceeded, m.State().Phase)
}

func TestManager_CreationFailureThenRetryCycles(t *testing.T) {
	surface := newFakeSurface()
	failAll(surface, swiftShaderMessage)
	clock := &fakeClock{}
	m := newTestManager(t, surface, clock)

	require.NoError(t, m.Start())
	state := m.State()
	require.Equal(t, model.PhaseFailed, state.Phase)
	require.NotNil(t, state.LastError)
	assert.Equal(t, swiftShaderMessage, state.LastError.Message)
	assert.Equal(t, StageCreation, state.LastError.Stage)
	assert.Equal(t, 0, clock.pending())

	expected := []int{1, 2, 0, 1}
	for _, want := range expected {
		require.NoError(t, m.Retry())
		state = m.State()
		assert.Equal(t, want, state.ConfigIndex)
		assert.Equal(t, want, state.Config.Index)
		assert.Equal(t, model.PhaseFailed, state.Phase)
	}

	var indexes []int
	for _, cfg := range surface.created {
		indexes = append(indexes, cfg.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1}, indexes)
}

func TestManager_RetryCountWrapsModuloConfigurations(t *testing.T) {
	for k := 0; k <= 7; k++ {
		surface := newFakeSurface()
		failAll(surface, "context could not be created")
		m := newTestManager(t, surface, &fakeClock{})
		require.NoError(t, m.Start())

		for i := 0; i < k; i++ {
			require.NoError(t, m.Retry())
		}
		assert.Equal(t, k%ConfigurationCount, m.State().ConfigIndex, "after %d retries", k)
		assert.Equal(t, k, m.State().Retries)
	}
}

func TestManager_RetryClearsErrorAndSucceeds(t *testing.T) {
	surface := newFakeSurface()
	surface.fail[0] = errors.New("WebGL context could not be created")
	surface.autoReady = true
	m := newTestManager(t, surface, &fakeClock{})

	require.NoError(t, m.Start())
	require.Equal(t, model.PhaseFailed, m.State().Phase)

	var seen []model.AttemptPhase
	m.OnChange(func(s AttemptState) { seen = append(seen, s.Phase) })

	require.NoError(t, m.Retry())
	state := m.State()
	assert.Equal(t, model.PhaseSucceeded, state.Phase)
	assert.Nil(t, state.LastError)
	assert.Equal(t, 1, state.ConfigIndex)
	assert.Equal(t, model.PhaseAttempting, seen[0])
}

func TestManager_RetryOnlyFromFailed(t *testing.T) {
	surface := newFakeSurface()
	m := newTestManager(t, surface, &fakeClock{})

	err := m.Retry()
	assert.ErrorIs(t, err, ErrRetryNotAllowed)

	require.NoError(t, m.Start())
	assert.ErrorIs(t, m.Retry(), ErrRetryNotAllowed)

	surface.lastEvents().Ready()
	assert.ErrorIs(t, m.Retry(), ErrRetryNotAllowed)
	assert.Equal(t, 0, m.State().ConfigIndex)
}

func TestManager_RuntimeLossAfterSuccess(t *testing.T) {
	surface := newFakeSurface()
	surface.autoReady = true
	m := newTestManager(t, surface, &fakeClock{})

	require.NoError(t, m.Start())
	handle := m.State().Handle
	require.NotNil(t, handle)

	surface.lastEvents().Lost(errors.New("CONTEXT_LOST_WEBGL"))

	state := m.State()
	assert.Equal(t, model.PhaseFailed, state.Phase)
	assert.Equal(t, StageRuntime, state.LastError.Stage)
	assert.Nil(t, state.Handle)
	assert.Contains(t, surface.destroyed, handle.ID())
	assert.Equal(t, 0, surface.liveCount())

	require.NoError(t, m.Retry())
	assert.Equal(t, model.PhaseSucceeded, m.State().Phase)
	assert.Equal(t, 1, surface.maxLive, "two surfaces must never coexist")
}

func TestManager_LostDuringCreate(t *testing.T) {
	surface := &lossySurface{fakeSurface: newFakeSurface()}
	m := newTestManager(t, surface, &fakeClock{})

	require.NoError(t, m.Start())
	state := m.State()
	assert.Equal(t, model.PhaseFailed, state.Phase)
	assert.Nil(t, state.Handle)
	assert.Equal(t, 0, surface.liveCount())
}

type lossySurface struct {
	*fakeSurface
}

func (s *lossySurface) Create(ctx context.Context, cfg Configuration, events Events) (Handle, error) {
	h, err := s.fakeSurface.Create(ctx, cfg, events)
	events.Lost(errors.New("lost immediately"))
	return h, err
}

// stallingSurface loses the first surface during Create and keeps that Create
// running until release is closed
type stallingSurface struct {
	*fakeSurface
	release chan struct{}
	entered chan struct{}

	mu      sync.Mutex
	calls   int
	running int
	peak    int
}

func newStallingSurface() *stallingSurface {
	return &stallingSurface{
		fakeSurface: newFakeSurface(),
		release:     make(chan struct{}),
		entered:     make(chan struct{}),
	}
}

func (s *stallingSurface) Create(ctx context.Context, cfg Configuration, events Events) (Handle, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.running++
	if s.running > s.peak {
		s.peak = s.running
	}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running--
		s.mu.Unlock()
	}()

	h, err := s.fakeSurface.Create(ctx, cfg, events)
	if first {
		events.Lost(errors.New("context lost while linking shaders"))
		close(s.entered)
		<-s.release
	}
	return h, err
}

func (s *stallingSurface) stats() (calls, peak int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls, s.peak
}

func TestManager_RetryWaitsForRunningCreate(t *testing.T) {
	surface := newStallingSurface()
	m := newTestManager(t, surface, &fakeClock{})

	started := make(chan error, 1)
	go func() { started <- m.Start() }()
	<-surface.entered
	require.Equal(t, model.PhaseFailed, m.State().Phase)

	retried := make(chan error, 1)
	go func() { retried <- m.Retry() }()

	select {
	case err := <-retried:
		t.Fatalf("Retry returned while the first Create was running: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	calls, _ := surface.stats()
	assert.Equal(t, 1, calls)

	close(surface.release)
	require.NoError(t, <-started)
	require.NoError(t, <-retried)

	calls, peak := surface.stats()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, peak)
	state := m.State()
	assert.Equal(t, model.PhaseAttempting, state.Phase)
	assert.Equal(t, 1, state.ConfigIndex)
	assert.NotNil(t, state.Handle)
	assert.Equal(t, 1, surface.liveCount())
}

func TestManager_CloseWaitsForRunningCreate(t *testing.T) {
	surface := newStallingSurface()
	m := newTestManager(t, surface, &fakeClock{})

	started := make(chan error, 1)
	go func() { started <- m.Start() }()
	<-surface.entered

	closed := make(chan struct{})
	go func() {
		m.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while Create was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(surface.release)
	<-closed
	require.NoError(t, <-started)
	assert.Equal(t, 0, surface.liveCount())
	assert.ErrorIs(t, m.Retry(), ErrManagerClosed)
}

func TestManager_StaleCallbacksIgnored(t *testing.T) {
	surface := newFakeSurface()
	m := newTestManager(t, surface, &fakeClock{})

	require.NoError(t, m.Start())
	first := surface.lastEvents()
	first.Lost(errors.New("gpu reset"))
	require.Equal(t, model.PhaseFailed, m.State().Phase)

	require.NoError(t, m.Retry())
	require.Equal(t, model.PhaseAttempting, m.State().Phase)

	first.Ready()
	assert.Equal(t, model.PhaseAttempting, m.State().Phase)
	first.Lost(errors.New("late"))
	assert.Equal(t, model.PhaseAttempting, m.State().Phase)
}

func TestManager_PanickingSurfaceIsContained(t *testing.T) {
	surface := newFakeSurface()
	surface.panicOn[0] = true
	m := newTestManager(t, surface, &fakeClock{})

	require.NotPanics(t, func() { _ = m.Start() })
	assert.Equal(t, model.PhaseFailed, m.State().Phase)
	assert.Contains(t, m.State().LastError.Message, "driver exploded")
}

func TestManager_CloseReleasesEverything(t *testing.T) {
	surface := newFakeSurface()
	clock := &fakeClock{}
	m := newTestManager(t, surface, clock)

	require.NoError(t, m.Start())
	events := surface.lastEvents()
	require.Equal(t, 1, surface.liveCount())
	require.Equal(t, 1, clock.pending())

	m.Close()
	assert.Equal(t, 0, surface.liveCount())
	assert.Equal(t, 0, clock.pending())

	events.Ready()
	assert.Equal(t, model.PhaseInitializing, m.State().Phase)

	assert.ErrorIs(t, m.Start(), ErrManagerClosed)
	assert.ErrorIs(t, m.Retry(), ErrManagerClosed)
	m.Close()
}

func TestManager_ListenerVersionsIncrease(t *testing.T) {
	surface := newFakeSurface()
	failAll(surface, "nope")
	m := newTestManager(t, surface, &fakeClock{})

	var mu sync.Mutex
	var versions []uint64
	m.OnChange(func(s AttemptState) {
		mu.Lock()
		versions = append(versions, s.Version)
		mu.Unlock()
	})

	require.NoError(t, m.Start())
	require.NoError(t, m.Retry())

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, versions)
	for i := 1; i < len(versions); i++ {
		assert.Greater(t, versions[i], versions[i-1])
	}
}

func TestManager_RealTimerFires(t *testing.T) {
	surface := newFakeSurface()
	m := NewManager(surface, WithTimeout(20*time.Millisecond), WithLogger(zaptest.NewLogger(t)))
	defer m.Close()

	require.NoError(t, m.Start())
	assert.Eventually(t, func() bool {
		return m.State().Phase == model.PhaseAttempting
	}, time.Second, 5*time.Millisecond)
}

func TestManager_StartIndex(t *testing.T) {
	surface := newFakeSurface()
	m := NewManager(surface, WithStartIndex(5), WithAfterFunc((&fakeClock{}).AfterFunc))
	defer m.Close()

	assert.Equal(t, 2, m.State().ConfigIndex)
	assert.True(t, m.State().Config.Shadows)
}
