package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routerdash/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreTrafficAndTopTalkers(t *testing.T) {
	store := testStore(t)
	now := time.Now()

	err := store.StoreTraffic(1, []models.IPTraffic{
		{Address: "192.168.1.5", TxBytes: 100, RxBytes: 900, TotalBytes: 1000, Connections: 3},
		{Address: "192.168.1.6", TxBytes: 50, RxBytes: 50, TotalBytes: 100, Connections: 1},
	}, now)
	require.NoError(t, err)

	err = store.StoreTraffic(1, []models.IPTraffic{
		{Address: "192.168.1.6", TxBytes: 400, RxBytes: 600, TotalBytes: 1000, Connections: 2},
	}, now.Add(time.Minute))
	require.NoError(t, err)

	rows, err := store.TopTalkers(10, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 192.168.1.6 accumulated 1100 bytes across both samples.
	assert.Equal(t, "192.168.1.6", rows[0].Address)
	assert.Equal(t, int64(1100), rows[0].TotalBytes)
	assert.Equal(t, "192.168.1.5", rows[1].Address)
}

func TestTopTalkersWindow(t *testing.T) {
	store := testStore(t)

	err := store.StoreTraffic(1, []models.IPTraffic{
		{Address: "10.0.0.1", TotalBytes: 500},
	}, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	rows, err := store.TopTalkers(10, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, rows, "samples outside the window are excluded")
}

func TestStoreBandwidthHistory(t *testing.T) {
	store := testStore(t)
	now := time.Now()

	err := store.StoreBandwidth(2, []models.InterfaceBandwidth{
		{Name: "ether1", TxBytes: 10, RxBytes: 20, TxPackets: 1, RxPackets: 2},
		{Name: "wlan1", TxBytes: 5, RxBytes: 6},
	}, now)
	require.NoError(t, err)

	rows, err := store.BandwidthHistory("", 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = store.BandwidthHistory("ether1", 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].DeviceID)
	assert.Equal(t, int64(10), rows[0].TxBytes)
}

func TestStoreConnectionHistory(t *testing.T) {
	store := testStore(t)
	now := time.Now()

	err := store.StoreConnections(1, models.ConnectionSummary{
		TotalConnections: 10, TCPConnections: 6, UDPConnections: 3, ICMPConnections: 1,
	}, now)
	require.NoError(t, err)

	err = store.StoreConnections(2, models.ConnectionSummary{
		TotalConnections: 4, TCPConnections: 2, UDPConnections: 1, OtherConnections: 1,
	}, now.Add(time.Minute))
	require.NoError(t, err)

	rows, err := store.ConnectionHistory(0, 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = store.ConnectionHistory(1, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Total)
	assert.Equal(t, 6, rows[0].TCP)
	assert.Equal(t, 1, rows[0].ICMP)
}

func TestConnectionHistoryWindow(t *testing.T) {
	store := testStore(t)

	err := store.StoreConnections(1, models.ConnectionSummary{TotalConnections: 7},
		time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	rows, err := store.ConnectionHistory(1, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, rows, "samples outside the window are excluded")
}

func TestStoreEmptyBatchIsNoop(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.StoreTraffic(1, nil, time.Now()))
	require.NoError(t, store.StoreBandwidth(1, nil, time.Now()))
}
