package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthStatus_Constructors(t *testing.T) {
	before := time.Now()

	tests := []struct {
		name     string
		status   HealthStatus
		expected HealthState
	}{
		{name: "healthy", status: Healthy("connected"), expected: HealthStateHealthy},
		{name: "degraded", status: Degraded("root answered 503"), expected: HealthStateDegraded},
		{name: "unhealthy", status: Unhealthy("not connected"), expected: HealthStateUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.State)
			assert.Equal(t, tt.expected.String(), tt.status.State.String())
			assert.False(t, tt.status.CheckedAt.Before(before))
		})
	}
}

func TestHealthStatus_Predicates(t *testing.T) {
	assert.True(t, Healthy("").IsHealthy())
	assert.False(t, Healthy("").IsDegraded())
	assert.False(t, Healthy("").IsUnhealthy())

	assert.True(t, Degraded("").IsDegraded())
	assert.False(t, Degraded("").IsHealthy())

	assert.True(t, Unhealthy("").IsUnhealthy())
	assert.False(t, Unhealthy("").IsHealthy())
}

func TestHealthStatus_JSON(t *testing.T) {
	status := Degraded("root answered 503")

	data, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded HealthStatus
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, HealthStateDegraded, decoded.State)
	assert.Equal(t, "root answered 503", decoded.Message)
}
