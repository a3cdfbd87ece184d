package model

// AttemptPhase represents the lifecycle phase of a rendering attempt
type AttemptPhase string

const (
	// PhaseInitializing means the manager is mounted and the first surface has not reported yet
	PhaseInitializing AttemptPhase = "Initializing"

	// PhaseAttempting means a surface is being created or is waiting for its first frame
	PhaseAttempting AttemptPhase = "Attempting"

	// PhaseSucceeded means the surface reported ready and is showing the scene
	PhaseSucceeded AttemptPhase = "Succeeded"

	// PhaseFailed means the attempt failed and remediation is shown
	PhaseFailed AttemptPhase = "Failed"
)

// String returns the string representation of AttemptPhase
func (p AttemptPhase) String() string {
	return string(p)
}

// IsActive returns true if an attempt is in flight
func (p AttemptPhase) IsActive() bool {
	return p == PhaseInitializing || p == PhaseAttempting
}

// IsFinished returns true if the attempt resolved (succeeded or failed)
func (p AttemptPhase) IsFinished() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}
