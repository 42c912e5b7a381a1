package services

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/models"
	"routerdash/internal/netinfo"
)

// AggregateTraffic derives a per-address traffic ranking from the connection
// snapshot: the source side of a connection accumulates its originated
// bytes as tx, the destination side accumulates the replied bytes as rx.
// Addresses rank descending by total bytes, ties in first-seen order.
func AggregateTraffic(records []models.RawRecord, limit int, now time.Time) models.TrafficSummary {
	byAddr := make(map[string]*models.IPTraffic)
	var order []string

	account := func(addr string) *models.IPTraffic {
		t, ok := byAddr[addr]
		if !ok {
			t = &models.IPTraffic{Address: addr}
			byAddr[addr] = t
			order = append(order, addr)
		}
		return t
	}

	for _, rec := range records {
		src := netinfo.StripPort(rec.Field("src-address"))
		dst := netinfo.StripPort(rec.Field("dst-address"))

		if src != "" {
			t := account(src)
			t.TxBytes += rec.Int64("orig-bytes")
			t.Connections++
		}
		if dst != "" {
			t := account(dst)
			t.RxBytes += rec.Int64("repl-bytes")
			t.Connections++
		}
	}

	for _, t := range byAddr {
		t.TotalBytes = t.TxBytes + t.RxBytes
	}

	sort.SliceStable(order, func(i, j int) bool {
		return byAddr[order[i]].TotalBytes > byAddr[order[j]].TotalBytes
	})
	if len(order) > limit {
		order = order[:limit]
	}

	summary := models.TrafficSummary{
		TopTalkers:  make([]models.IPTraffic, 0, len(order)),
		Addresses:   len(byAddr),
		LastUpdated: now,
	}
	for _, addr := range order {
		summary.TopTalkers = append(summary.TopTalkers, *byAddr[addr])
	}
	return summary
}

// TrafficStatsService serves traffic-by-IP rankings per device.
type TrafficStatsService struct {
	sessions SessionProvider
	cache    *TTLCache[models.TrafficSummary]
	limit    int
	now      func() time.Time
	log      zerolog.Logger
}

// NewTrafficStatsService wires the service to a transport manager. limit is
// the ranking depth.
func NewTrafficStatsService(sessions SessionProvider, ttl time.Duration, limit int, log zerolog.Logger) *TrafficStatsService {
	return &TrafficStatsService{
		sessions: sessions,
		cache:    NewTTLCache[models.TrafficSummary](ttl),
		limit:    limit,
		now:      time.Now,
		log:      log.With().Str("component", "traffic-stats").Logger(),
	}
}

// Stats returns the device's traffic ranking.
func (s *TrafficStatsService) Stats(deviceID int) (models.TrafficSummary, bool) {
	if summary, ok := s.cache.Get(deviceID); ok {
		return summary, true
	}

	records, ok := fetch(s.sessions, s.log, deviceID, connectionQuery)
	if !ok {
		return models.TrafficSummary{}, false
	}

	summary := AggregateTraffic(records, s.limit, s.now())
	s.cache.Put(deviceID, summary)
	return summary, true
}

// ClearCache forces recomputation on the device's next request.
func (s *TrafficStatsService) ClearCache(deviceID int) {
	s.cache.Invalidate(deviceID)
}

// ClearAllCache forces recomputation for every device.
func (s *TrafficStatsService) ClearAllCache() {
	s.cache.InvalidateAll()
}
