package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhatvu148/solar-portfolio/internal/model"
)

// SafetyTimeout forces the manager out of Initializing when the surface
// reports neither success nor failure.
const SafetyTimeout = 3000 * time.Millisecond

// AttemptIDPrefix prefixes generated attempt IDs
const AttemptIDPrefix = "attempt-"

var (
	// ErrRetryNotAllowed is returned by Retry outside the Failed phase
	ErrRetryNotAllowed = errors.New("retry is only allowed after a failed attempt")

	// ErrManagerClosed is returned after Close
	ErrManagerClosed = errors.New("attempt manager is closed")
)

// AttemptState is an immutable snapshot of the manager
type AttemptState struct {
	AttemptID   string
	ConfigIndex int
	Config      Configuration
	Phase       model.AttemptPhase
	LastError   *Failure
	Handle      Handle
	Retries     int
	Version     uint64 // increases with every change
}

// Timer is the subset of *time.Timer the manager needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Manager
type Option func(*Manager)

// WithTimeout overrides the safety timeout
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithAfterFunc replaces the timer source (tests)
func WithAfterFunc(fn AfterFunc) Option {
	return func(m *Manager) {
		if fn != nil {
			m.afterFunc = fn
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStartIndex starts from a configuration other than the first
func WithStartIndex(index int) Option {
	return func(m *Manager) {
		m.state.ConfigIndex = WrapIndex(index, ConfigurationCount)
	}
}

// Manager attempts to create a rendering surface, one configuration at a time
type Manager struct {
	mu        sync.Mutex
	surface   Surface
	timeout   time.Duration
	afterFunc AfterFunc
	logger    *zap.Logger

	state      AttemptState
	generation uint64
	timer      Timer
	listeners  []func(AttemptState)
	started    bool
	closed     bool

	// closed when the running Attempt has returned and its outcome is recorded
	inFlight chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager creates a manager for surface; nothing happens until Start
func NewManager(surface Surface, opts ...Option) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		surface:   surface,
		timeout:   SafetyTimeout,
		afterFunc: realAfterFunc,
		logger:    zap.NewNop(),
		ctx:       ctx,
		cancel:    cancel,
	}
	m.state.Phase = model.PhaseInitializing
	for _, opt := range opts {
		opt(m)
	}
	m.state.Config = ConfigurationAt(m.state.ConfigIndex)
	return m
}

// OnChange registers a listener for state snapshots. Listeners are called
// outside the manager lock, possibly from the timer goroutine.
func (m *Manager) OnChange(fn func(AttemptState)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// State returns the current snapshot
func (m *Manager) State() AttemptState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start mounts the manager: enters Initializing, arms the safety timeout and
// attempts the current configuration.
func (m *Manager) Start() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	gen, done := m.beginAttemptLocked(model.PhaseInitializing)
	m.timer = m.afterFunc(m.timeout, func() { m.onSafetyTimeout(gen) })
	snapshot := m.state
	m.mu.Unlock()

	m.logger.Info("Rendering attempt started",
		zap.String("attempt", snapshot.AttemptID),
		zap.Int("config_index", snapshot.ConfigIndex),
		zap.String("config", snapshot.Config.Name))
	m.notify(snapshot)
	m.run(gen, done)
	return nil
}

// Retry advances to the next configuration after a failure. The previous
// surface is destroyed before the next one is created, and a Create that is
// still running (a surface lost during creation) is waited for first.
func (m *Manager) Retry() error {
	m.mu.Lock()
	for m.inFlight != nil && !m.closed {
		pending := m.inFlight
		m.mu.Unlock()
		<-pending
		m.mu.Lock()
	}
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	if m.state.Phase != model.PhaseFailed {
		phase := m.state.Phase
		m.mu.Unlock()
		return fmt.Errorf("%w: phase is %s", ErrRetryNotAllowed, phase)
	}
	old := m.state.Handle
	m.state.Handle = nil
	m.state.ConfigIndex = WrapIndex(m.state.ConfigIndex+1, ConfigurationCount)
	m.state.LastError = nil
	m.state.Retries++
	gen, done := m.beginAttemptLocked(model.PhaseAttempting)
	snapshot := m.state
	m.mu.Unlock()

	if old != nil {
		m.surface.Destroy(old)
	}

	m.logger.Info("Retrying rendering with next configuration",
		zap.String("attempt", snapshot.AttemptID),
		zap.Int("config_index", snapshot.ConfigIndex),
		zap.String("config", snapshot.Config.Name),
		zap.Int("retries", snapshot.Retries))
	m.notify(snapshot)
	m.run(gen, done)
	return nil
}

// Close unmounts the manager: cancels the safety timer, ignores any late
// surface callbacks, waits for a running Create and destroys the live
// surface. Safe to call twice; must not be called from a listener.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.generation++
	m.stopTimerLocked()
	m.cancel()
	handle := m.state.Handle
	m.state.Handle = nil
	pending := m.inFlight
	m.mu.Unlock()

	if pending != nil {
		<-pending
	}
	if handle != nil {
		m.surface.Destroy(handle)
	}
	m.logger.Debug("Attempt manager closed")
}

// beginAttemptLocked starts a new generation so callbacks of older surfaces
// are ignored, and marks an attempt as in flight. Caller holds m.mu.
func (m *Manager) beginAttemptLocked(phase model.AttemptPhase) (uint64, chan struct{}) {
	m.generation++
	m.state.AttemptID = generateAttemptID()
	m.state.Config = ConfigurationAt(m.state.ConfigIndex)
	m.state.Phase = phase
	m.state.Version++
	m.inFlight = make(chan struct{})
	return m.generation, m.inFlight
}

// finish releases waiters on done once the attempt's surface is settled
func (m *Manager) finish(done chan struct{}) {
	m.mu.Lock()
	if m.inFlight == done {
		m.inFlight = nil
	}
	m.mu.Unlock()
	close(done)
}

// run performs the attempt for generation gen and records its outcome.
// done is closed before listeners hear about the outcome.
func (m *Manager) run(gen uint64, done chan struct{}) {
	m.mu.Lock()
	cfg := m.state.Config
	m.mu.Unlock()

	events := Events{
		Ready: func() { m.onReady(gen) },
		Lost:  func(err error) { m.onLost(gen, err) },
	}
	result := Attempt(m.ctx, m.surface, cfg, events)

	m.mu.Lock()
	if gen != m.generation || m.closed {
		m.mu.Unlock()
		if result.Handle != nil {
			m.surface.Destroy(result.Handle)
		}
		m.finish(done)
		return
	}

	if !result.OK() {
		m.failLocked(result.Failure)
		snapshot := m.state
		m.mu.Unlock()
		m.finish(done)
		m.logger.Warn("Rendering surface creation failed",
			zap.Int("config_index", cfg.Index),
			zap.String("config", cfg.Name),
			zap.String("error", result.Failure.Message))
		m.notify(snapshot)
		return
	}

	if m.state.Phase == model.PhaseFailed {
		// Lost fired during Create
		m.mu.Unlock()
		m.surface.Destroy(result.Handle)
		m.finish(done)
		return
	}

	m.state.Handle = result.Handle
	m.state.Version++
	snapshot := m.state
	m.mu.Unlock()
	m.finish(done)

	m.logger.Debug("Rendering surface created",
		zap.String("surface", result.Handle.ID()),
		zap.String("phase", snapshot.Phase.String()))
	m.notify(snapshot)
}

func (m *Manager) onReady(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.closed || !m.state.Phase.IsActive() {
		m.mu.Unlock()
		return
	}
	m.stopTimerLocked()
	m.state.Phase = model.PhaseSucceeded
	m.state.Version++
	snapshot := m.state
	m.mu.Unlock()

	m.logger.Info("Rendering surface ready",
		zap.Int("config_index", snapshot.ConfigIndex),
		zap.String("config", snapshot.Config.Name))
	m.notify(snapshot)
}

func (m *Manager) onLost(gen uint64, err error) {
	m.mu.Lock()
	if gen != m.generation || m.closed || m.state.Phase == model.PhaseFailed {
		m.mu.Unlock()
		return
	}
	failure := NewFailure(StageRuntime, m.state.ConfigIndex, err)
	handle := m.state.Handle
	m.state.Handle = nil
	m.failLocked(failure)
	snapshot := m.state
	m.mu.Unlock()

	if handle != nil {
		m.surface.Destroy(handle)
	}
	m.logger.Warn("Rendering surface lost",
		zap.Int("config_index", snapshot.ConfigIndex),
		zap.String("error", failure.Message))
	m.notify(snapshot)
}

func (m *Manager) onSafetyTimeout(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.closed || m.state.Phase != model.PhaseInitializing {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	m.state.Phase = model.PhaseAttempting
	m.state.Version++
	snapshot := m.state
	m.mu.Unlock()

	m.logger.Warn("Rendering surface did not report within safety timeout",
		zap.Duration("timeout", m.timeout),
		zap.Int("config_index", snapshot.ConfigIndex))
	m.notify(snapshot)
}

// failLocked records failure and stops the timer. Caller holds m.mu.
func (m *Manager) failLocked(failure *Failure) {
	m.stopTimerLocked()
	m.state.Phase = model.PhaseFailed
	m.state.LastError = failure
	m.state.Version++
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) notify(snapshot AttemptState) {
	m.mu.Lock()
	listeners := make([]func(AttemptState), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// generateAttemptID generates a unique, time-ordered attempt ID
func generateAttemptID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(AttemptIDPrefix+"%d", time.Now().UnixNano())
	}
	return AttemptIDPrefix + id.String()
}
