package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routerdash/internal/models"
)

func TestSystemStatsService(t *testing.T) {
	session := &fakeSession{records: map[string][]models.RawRecord{
		resourceQuery: {{
			"uptime":            "2w3d4h5m",
			"version":           "7.14.3 (stable)",
			"board-name":        "hEX S",
			"architecture-name": "mmips",
			"cpu-load":          "12",
			"free-memory":       "134217728",
			"total-memory":      "268435456",
			"free-hdd-space":    "10485760",
		}},
	}}
	provider := &fakeProvider{session: session}
	svc := NewSystemStatsService(provider, time.Minute, testLogger())

	res, ok := svc.Stats(1)
	require.True(t, ok)
	assert.Equal(t, "7.14.3 (stable)", res.Version)
	assert.Equal(t, "hEX S", res.BoardName)
	assert.Equal(t, 12, res.CPULoad)
	assert.Equal(t, int64(134217728), res.FreeMemory)
}

func TestSystemStatsServiceEmptyReply(t *testing.T) {
	session := &fakeSession{records: map[string][]models.RawRecord{}}
	provider := &fakeProvider{session: session}
	svc := NewSystemStatsService(provider, time.Minute, testLogger())

	_, ok := svc.Stats(1)
	assert.False(t, ok, "a resource print with no records is unavailable")
}
