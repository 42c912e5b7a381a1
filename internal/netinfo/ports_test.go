package netinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceForPort(t *testing.T) {
	s, ok := ServiceForPort(22)
	require.True(t, ok)
	assert.Equal(t, "SSH", s.Name)
	assert.Equal(t, "tcp", s.Protocol)

	s, ok = ServiceForPort(53)
	require.True(t, ok)
	assert.Equal(t, "DNS", s.Name)
	assert.Equal(t, "udp", s.Protocol)

	_, ok = ServiceForPort(49152)
	assert.False(t, ok)
}

func TestWellKnownPortCoverage(t *testing.T) {
	// Minimum set the dashboard's port ranking is expected to resolve.
	for _, port := range []int{
		21, 22, 23, 25, 53, 80, 110, 123, 143, 161,
		443, 465, 587, 993, 995, 1194, 1723, 3389, 5060, 8080, 8443,
	} {
		_, ok := ServiceForPort(port)
		assert.True(t, ok, "port %d missing from registry", port)
	}
}
