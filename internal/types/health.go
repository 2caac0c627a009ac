package types

import (
	"time"
)

// HealthState classifies the reachability of the graph server as seen by a
// client.
type HealthState string

const (
	// HealthStateHealthy: the client is connected and the root resource
	// answers within the success range.
	HealthStateHealthy HealthState = "healthy"

	// HealthStateDegraded: the server is reachable but the root resource
	// answers outside the success range.
	HealthStateDegraded HealthState = "degraded"

	// HealthStateUnhealthy: the client has not connected, or the server
	// is unreachable.
	HealthStateUnhealthy HealthState = "unhealthy"
)

// String returns the string representation of HealthState
func (s HealthState) String() string {
	return string(s)
}

// HealthStatus is the outcome of one connection health check: the state,
// an optional human-readable reason, and when the check ran.
type HealthStatus struct {
	State     HealthState `json:"state"`
	Message   string      `json:"message,omitempty"`
	CheckedAt time.Time   `json:"checked_at"`
}

func newHealthStatus(state HealthState, message string) HealthStatus {
	return HealthStatus{
		State:     state,
		Message:   message,
		CheckedAt: time.Now(),
	}
}

// Healthy reports a server that answered the health check successfully.
func Healthy(message string) HealthStatus {
	return newHealthStatus(HealthStateHealthy, message)
}

// Degraded reports a reachable server that answered outside the success
// range.
func Degraded(message string) HealthStatus {
	return newHealthStatus(HealthStateDegraded, message)
}

// Unhealthy reports an unreachable server or a client that never connected.
func Unhealthy(message string) HealthStatus {
	return newHealthStatus(HealthStateUnhealthy, message)
}

// IsHealthy returns true if the health state is healthy.
func (h HealthStatus) IsHealthy() bool {
	return h.State == HealthStateHealthy
}

// IsDegraded returns true if the health state is degraded.
func (h HealthStatus) IsDegraded() bool {
	return h.State == HealthStateDegraded
}

// IsUnhealthy returns true if the health state is unhealthy.
func (h HealthStatus) IsUnhealthy() bool {
	return h.State == HealthStateUnhealthy
}
