package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routerdash/internal/models"
)

func TestAggregateBandwidth(t *testing.T) {
	records := []models.RawRecord{
		{
			"name":      "ether1",
			"running":   "true",
			"tx-byte":   "1000",
			"rx-byte":   "2000",
			"tx-packet": "10",
			"rx-packet": "20",
		},
		{
			"name":    "wlan1",
			"running": "false",
			"tx-byte": "500",
			"rx-byte": "700",
		},
		// No name, skipped entirely.
		{"tx-byte": "999"},
	}

	summary := AggregateBandwidth(records, aggNow)

	require.Len(t, summary.Interfaces, 2)
	assert.Equal(t, 1, summary.RunningInterfaces)
	assert.Equal(t, int64(1500), summary.TotalTxBytes)
	assert.Equal(t, int64(2700), summary.TotalRxBytes)

	ether := summary.Interfaces[0]
	assert.Equal(t, "ether1", ether.Name)
	assert.True(t, ether.Running)
	assert.Equal(t, int64(10), ether.TxPackets)
	assert.Equal(t, aggNow, summary.LastUpdated)
}

func TestAggregateBandwidthEmpty(t *testing.T) {
	summary := AggregateBandwidth(nil, aggNow)

	assert.Empty(t, summary.Interfaces)
	assert.Equal(t, int64(0), summary.TotalTxBytes)
}
