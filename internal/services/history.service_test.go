package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routerdash/internal/models"
	"routerdash/internal/storage"
)

func TestHistoryCollectorPersistsSamples(t *testing.T) {
	session := &fakeSession{records: map[string][]models.RawRecord{
		connectionQuery: {
			{
				"protocol":    "tcp",
				"src-address": "192.168.1.5:40000",
				"dst-address": "8.8.8.8:443",
				"dst-port":    "443",
				"orig-bytes":  "1000",
				"repl-bytes":  "5000",
			},
		},
		interfaceQuery: {
			{
				"name":      "ether1",
				"running":   "true",
				"tx-byte":   "111",
				"rx-byte":   "222",
				"tx-packet": "3",
				"rx-packet": "4",
			},
		},
	}}
	provider := &fakeProvider{session: session}

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	connections := NewConnectionStatsService(provider, time.Minute, testLogger())
	traffic := NewTrafficStatsService(provider, time.Minute, 10, testLogger())
	bandwidth := NewBandwidthStatsService(provider, time.Minute, testLogger())

	hc := NewHistoryCollector([]int{1}, connections, traffic, bandwidth, store, time.Minute, testLogger())
	hc.collectOnce()

	samples, err := store.ConnectionHistory(1, time.Hour)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 1, samples[0].DeviceID)
	assert.Equal(t, 1, samples[0].Total)
	assert.Equal(t, 1, samples[0].TCP)
	assert.Equal(t, 0, samples[0].UDP)

	talkers, err := store.TopTalkers(10, time.Hour)
	require.NoError(t, err)
	assert.Len(t, talkers, 2)

	rows, err := store.BandwidthHistory("", time.Hour)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ether1", rows[0].Interface)
	assert.Equal(t, int64(111), rows[0].TxBytes)
}

func TestHistoryCollectorSkipsUnreachableDevices(t *testing.T) {
	provider := &fakeProvider{connectErr: assert.AnError}

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	connections := NewConnectionStatsService(provider, time.Minute, testLogger())
	traffic := NewTrafficStatsService(provider, time.Minute, 10, testLogger())
	bandwidth := NewBandwidthStatsService(provider, time.Minute, testLogger())

	hc := NewHistoryCollector([]int{1}, connections, traffic, bandwidth, store, time.Minute, testLogger())
	hc.collectOnce()

	samples, err := store.ConnectionHistory(0, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, samples)

	rows, err := store.BandwidthHistory("", time.Hour)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHistoryCollectorStartStopIdempotent(t *testing.T) {
	hc := NewHistoryCollector(nil, nil, nil, nil, nil, time.Hour, testLogger())

	hc.Start()
	hc.Start()
	hc.Stop()
	hc.Stop()
}
