package services

import (
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/models"
)

// AggregateBandwidth reduces the interface list into per-interface transfer
// counters plus totals. Interfaces without a name are skipped.
func AggregateBandwidth(records []models.RawRecord, now time.Time) models.BandwidthSummary {
	summary := models.BandwidthSummary{
		Interfaces:  make([]models.InterfaceBandwidth, 0, len(records)),
		LastUpdated: now,
	}

	for _, rec := range records {
		name := rec.Field("name")
		if name == "" {
			continue
		}

		iface := models.InterfaceBandwidth{
			Name:      name,
			Running:   rec.Field("running") == "true",
			TxBytes:   rec.Int64("tx-byte"),
			RxBytes:   rec.Int64("rx-byte"),
			TxPackets: rec.Int64("tx-packet"),
			RxPackets: rec.Int64("rx-packet"),
		}
		summary.Interfaces = append(summary.Interfaces, iface)
		summary.TotalTxBytes += iface.TxBytes
		summary.TotalRxBytes += iface.RxBytes
		if iface.Running {
			summary.RunningInterfaces++
		}
	}
	return summary
}

// BandwidthStatsService serves interface counter summaries per device.
type BandwidthStatsService struct {
	sessions SessionProvider
	cache    *TTLCache[models.BandwidthSummary]
	now      func() time.Time
	log      zerolog.Logger
}

// NewBandwidthStatsService wires the service to a transport manager.
func NewBandwidthStatsService(sessions SessionProvider, ttl time.Duration, log zerolog.Logger) *BandwidthStatsService {
	return &BandwidthStatsService{
		sessions: sessions,
		cache:    NewTTLCache[models.BandwidthSummary](ttl),
		now:      time.Now,
		log:      log.With().Str("component", "bandwidth-stats").Logger(),
	}
}

// Stats returns the device's bandwidth summary.
func (s *BandwidthStatsService) Stats(deviceID int) (models.BandwidthSummary, bool) {
	if summary, ok := s.cache.Get(deviceID); ok {
		return summary, true
	}

	records, ok := fetch(s.sessions, s.log, deviceID, interfaceQuery)
	if !ok {
		return models.BandwidthSummary{}, false
	}

	summary := AggregateBandwidth(records, s.now())
	s.cache.Put(deviceID, summary)
	return summary, true
}

// ClearCache forces recomputation on the device's next request.
func (s *BandwidthStatsService) ClearCache(deviceID int) {
	s.cache.Invalidate(deviceID)
}

// ClearAllCache forces recomputation for every device.
func (s *BandwidthStatsService) ClearAllCache() {
	s.cache.InvalidateAll()
}
