package services

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/models"
	"routerdash/internal/netinfo"
)

// topN is the ranking depth for sources, destinations and ports.
const topN = 10

// percent is zero-guarded: an empty snapshot yields 0 everywhere instead of
// a division fault. Results are rounded to two decimals.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*10000) / 100
}

// freqCounter counts occurrences per key while preserving first-seen order,
// so equal counts rank in input order.
type freqCounter struct {
	counts map[string]int
	order  []string
}

func newFreqCounter() *freqCounter {
	return &freqCounter{counts: make(map[string]int)}
}

func (f *freqCounter) Add(key string) {
	if _, seen := f.counts[key]; !seen {
		f.order = append(f.order, key)
	}
	f.counts[key]++
}

// Top ranks keys descending by count, ties in first-seen order, and returns
// the first n as address rows with percentages of total.
func (f *freqCounter) Top(n, total int) []models.AddressCount {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return f.counts[keys[i]] > f.counts[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}

	rows := make([]models.AddressCount, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, models.AddressCount{
			Address:    key,
			Count:      f.counts[key],
			Percentage: percent(f.counts[key], total),
		})
	}
	return rows
}

type portProto struct {
	port     int
	protocol string
}

// AggregateConnections reduces a connection-tracking snapshot into a bounded
// summary. Records missing a field are skipped for that field only; the
// internal/external split only counts records where both addresses resolved.
// The tracking table lists only live flows, so active equals total.
func AggregateConnections(records []models.RawRecord, now time.Time) models.ConnectionSummary {
	total := len(records)
	summary := models.ConnectionSummary{
		TotalConnections:  total,
		ActiveConnections: total,
		LastUpdated:       now,
	}

	sources := newFreqCounter()
	destinations := newFreqCounter()
	portCounts := make(map[portProto]int)
	var portOrder []portProto

	for _, rec := range records {
		protocol := rec.Field("protocol")
		switch protocol {
		case "tcp":
			summary.TCPConnections++
		case "udp":
			summary.UDPConnections++
		case "icmp":
			summary.ICMPConnections++
		}

		src := netinfo.StripPort(rec.Field("src-address"))
		dst := netinfo.StripPort(rec.Field("dst-address"))
		if src != "" {
			sources.Add(src)
		}
		if dst != "" {
			destinations.Add(dst)
		}

		if port := rec.Int("dst-port"); port > 0 {
			key := portProto{port: port, protocol: protocol}
			if _, seen := portCounts[key]; !seen {
				portOrder = append(portOrder, key)
			}
			portCounts[key]++
		}

		if src != "" && dst != "" {
			if netinfo.IsPrivate(src) && netinfo.IsPrivate(dst) {
				summary.InternalConnections++
			} else {
				summary.ExternalConnections++
			}
		}
	}

	// Unexpected or missing protocol values land in the other bucket.
	summary.OtherConnections = total - summary.TCPConnections - summary.UDPConnections - summary.ICMPConnections

	summary.TopSources = sources.Top(topN, total)
	summary.TopDestinations = destinations.Top(topN, total)
	summary.TopPorts = topPorts(portOrder, portCounts, total)

	return summary
}

// topPorts ranks (port, protocol) pairs and resolves a service name when the
// registry entry matches the record's protocol. The displayed protocol is
// always the record's, not the registry's.
func topPorts(order []portProto, counts map[portProto]int, total int) []models.PortCount {
	ranked := make([]portProto, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	rows := make([]models.PortCount, 0, len(ranked))
	for _, key := range ranked {
		row := models.PortCount{
			Port:       key.port,
			Protocol:   key.protocol,
			Count:      counts[key],
			Percentage: percent(counts[key], total),
		}
		if svc, ok := netinfo.ServiceForPort(key.port); ok && svc.Protocol == key.protocol {
			row.Service = svc.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// ConnectionStatsService serves connection summaries per device, recomputing
// only when the cached copy has gone stale.
type ConnectionStatsService struct {
	sessions SessionProvider
	cache    *TTLCache[models.ConnectionSummary]
	now      func() time.Time
	log      zerolog.Logger
}

// NewConnectionStatsService wires the service to a transport manager.
func NewConnectionStatsService(sessions SessionProvider, ttl time.Duration, log zerolog.Logger) *ConnectionStatsService {
	return &ConnectionStatsService{
		sessions: sessions,
		cache:    NewTTLCache[models.ConnectionSummary](ttl),
		now:      time.Now,
		log:      log.With().Str("component", "connection-stats").Logger(),
	}
}

// Stats returns the device's connection summary. The second return is false
// when the device could not be queried, which is not the same as a valid
// summary of an empty connection table.
func (s *ConnectionStatsService) Stats(deviceID int) (models.ConnectionSummary, bool) {
	if summary, ok := s.cache.Get(deviceID); ok {
		return summary, true
	}

	records, ok := fetch(s.sessions, s.log, deviceID, connectionQuery)
	if !ok {
		return models.ConnectionSummary{}, false
	}

	summary := AggregateConnections(records, s.now())
	s.cache.Put(deviceID, summary)
	return summary, true
}

// ClearCache forces recomputation on the device's next request.
func (s *ConnectionStatsService) ClearCache(deviceID int) {
	s.cache.Invalidate(deviceID)
}

// ClearAllCache forces recomputation for every device.
func (s *ConnectionStatsService) ClearAllCache() {
	s.cache.InvalidateAll()
}
