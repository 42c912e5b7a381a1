package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/storage"
)

// HistoryCollector periodically snapshots connection counts, traffic and
// bandwidth for every configured device and flushes the samples to the
// history store. It reads through the stats services, so a tick inside the
// freshness window reuses the cached summaries instead of hitting the device
// again.
type HistoryCollector struct {
	devices     []int
	connections *ConnectionStatsService
	traffic     *TrafficStatsService
	bandwidth   *BandwidthStatsService
	store       *storage.Store
	interval    time.Duration
	log         zerolog.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewHistoryCollector wires a collector for the given device IDs.
func NewHistoryCollector(devices []int, connections *ConnectionStatsService, traffic *TrafficStatsService, bandwidth *BandwidthStatsService, store *storage.Store, interval time.Duration, log zerolog.Logger) *HistoryCollector {
	return &HistoryCollector{
		devices:     devices,
		connections: connections,
		traffic:     traffic,
		bandwidth:   bandwidth,
		store:       store,
		interval:    interval,
		log:         log.With().Str("component", "history-collector").Logger(),
	}
}

// Start launches the collection loop. Calling Start on a running collector
// is a no-op.
func (hc *HistoryCollector) Start() {
	hc.mu.Lock()
	if hc.running {
		hc.mu.Unlock()
		return
	}
	hc.running = true
	hc.stop = make(chan struct{})
	stop := hc.stop
	hc.mu.Unlock()

	go func() {
		ticker := time.NewTicker(hc.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				hc.collectOnce()
			}
		}
	}()

	hc.log.Info().Dur("interval", hc.interval).Msg("history collector started")
}

// Stop halts the collection loop.
func (hc *HistoryCollector) Stop() {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if !hc.running {
		return
	}
	hc.running = false
	close(hc.stop)
	hc.log.Info().Msg("history collector stopped")
}

func (hc *HistoryCollector) collectOnce() {
	now := time.Now()

	for _, deviceID := range hc.devices {
		if conns, ok := hc.connections.Stats(deviceID); ok {
			if err := hc.store.StoreConnections(deviceID, conns, now); err != nil {
				hc.log.Warn().Err(err).Int("device_id", deviceID).Msg("persist connection sample failed")
			}
		}

		if traffic, ok := hc.traffic.Stats(deviceID); ok {
			if err := hc.store.StoreTraffic(deviceID, traffic.TopTalkers, now); err != nil {
				hc.log.Warn().Err(err).Int("device_id", deviceID).Msg("persist traffic sample failed")
			}
		}

		if bandwidth, ok := hc.bandwidth.Stats(deviceID); ok {
			if err := hc.store.StoreBandwidth(deviceID, bandwidth.Interfaces, now); err != nil {
				hc.log.Warn().Err(err).Int("device_id", deviceID).Msg("persist bandwidth sample failed")
			}
		}
	}
}
