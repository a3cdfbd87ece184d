package render

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Stage tells where a failure was detected
type Stage string

const (
	// StageCreation means Create returned an error or panicked
	StageCreation Stage = "creation"
	// StageRuntime means a created surface reported itself lost
	StageRuntime Stage = "runtime"
)

const unknownFailureMessage = "unknown rendering failure"

// Failure is a captured rendering failure; it is never mutated after creation
type Failure struct {
	Message     string
	Cause       error
	Stage       Stage
	ConfigIndex int
	At          time.Time
}

// NewFailure captures cause for the given configuration index
func NewFailure(stage Stage, configIndex int, cause error) *Failure {
	msg := unknownFailureMessage
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Failure{
		Message:     msg,
		Cause:       cause,
		Stage:       stage,
		ConfigIndex: configIndex,
		At:          time.Now(),
	}
}

// Error implements error
func (f *Failure) Error() string {
	if f == nil {
		return unknownFailureMessage
	}
	return fmt.Sprintf("rendering %s failure (config %d): %s", f.Stage, f.ConfigIndex, f.Message)
}

// Unwrap returns the raw cause
func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Cause
}

// Result is the tagged outcome of one attempt: exactly one of Handle and
// Failure is set.
type Result struct {
	Handle  Handle
	Failure *Failure
}

// OK reports whether the attempt produced a surface
func (r Result) OK() bool {
	return r.Failure == nil && r.Handle != nil
}

// Attempt creates a surface for cfg and converts every error or panic into a
// Failure. It never panics.
func Attempt(ctx context.Context, surface Surface, cfg Configuration, events Events) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			var err error
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = fmt.Errorf("%v", v)
			}
			result = Result{Failure: NewFailure(StageCreation, cfg.Index, err)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result{Failure: NewFailure(StageCreation, cfg.Index, err)}
	}

	handle, err := surface.Create(ctx, cfg, events)
	if err != nil {
		return Result{Failure: NewFailure(StageCreation, cfg.Index, err)}
	}
	if handle == nil {
		return Result{Failure: NewFailure(StageCreation, cfg.Index, errors.New("surface returned no handle"))}
	}
	return Result{Handle: handle}
}
