package services

import (
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/models"
)

type addrRange struct {
	start, end uint32
}

// PoolDefinition is a parsed /ip/pool record: a named set of contiguous
// IPv4 ranges leases are allocated from.
type PoolDefinition struct {
	Name   string
	Ranges string
	ranges []addrRange
}

// Size is the number of addresses across the pool's ranges.
func (p PoolDefinition) Size() int {
	size := 0
	for _, r := range p.ranges {
		size += int(r.end-r.start) + 1
	}
	return size
}

func (p PoolDefinition) contains(ip uint32) bool {
	for _, r := range p.ranges {
		if ip >= r.start && ip <= r.end {
			return true
		}
	}
	return false
}

// ParsePools converts raw pool records into definitions. The ranges field is
// a comma separated list of "A.B.C.D-A.B.C.D" spans; a bare address is a
// span of one. Pools without a single parsable range are dropped.
func ParsePools(records []models.RawRecord) []PoolDefinition {
	var pools []PoolDefinition
	for _, rec := range records {
		name := rec.Field("name")
		rawRanges := rec.Field("ranges")
		if name == "" || rawRanges == "" {
			continue
		}

		pool := PoolDefinition{Name: name, Ranges: rawRanges}
		for _, span := range strings.Split(rawRanges, ",") {
			if r, ok := parseRange(strings.TrimSpace(span)); ok {
				pool.ranges = append(pool.ranges, r)
			}
		}
		if len(pool.ranges) > 0 {
			pools = append(pools, pool)
		}
	}
	return pools
}

func parseRange(span string) (addrRange, bool) {
	startStr, endStr, found := strings.Cut(span, "-")
	if !found {
		endStr = startStr
	}

	start, ok := ipv4ToUint(startStr)
	if !ok {
		return addrRange{}, false
	}
	end, ok := ipv4ToUint(endStr)
	if !ok || end < start {
		return addrRange{}, false
	}
	return addrRange{start: start, end: end}, true
}

func ipv4ToUint(addr string) (uint32, bool) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return 0, false
	}
	v4 := ip.To4()
	if v4 == nil {
		return 0, false
	}
	return uint32(v4[0])<<24 | uint32(v4[1])<<16 | uint32(v4[2])<<8 | uint32(v4[3]), true
}

// AggregateLeases reduces a lease table into per-pool usage figures. A lease
// matching no configured pool counts in the totals but is not attributed to
// any pool row. Active means the device reports the lease as bound.
func AggregateLeases(leases []models.RawRecord, pools []PoolDefinition, now time.Time) models.LeaseSummary {
	summary := models.LeaseSummary{
		TotalLeases: len(leases),
		Pools:       make([]models.PoolStats, 0, len(pools)),
		LastUpdated: now,
	}

	used := make([]int, len(pools))
	for _, lease := range leases {
		if lease.Field("status") == "bound" {
			summary.ActiveLeases++
		}

		ip, ok := ipv4ToUint(lease.Field("address"))
		if !ok {
			continue
		}
		for i, pool := range pools {
			if pool.contains(ip) {
				used[i]++
				break
			}
		}
	}

	totalSize := 0
	for i, pool := range pools {
		size := pool.Size()
		totalSize += size

		available := size - used[i]
		if available < 0 {
			available = 0
		}
		summary.Pools = append(summary.Pools, models.PoolStats{
			Name:         pool.Name,
			Ranges:       pool.Ranges,
			Size:         size,
			Used:         used[i],
			Available:    available,
			UsagePercent: percent(used[i], size),
		})
	}

	summary.PoolSize = totalSize
	summary.AvailableIPs = totalSize - summary.ActiveLeases
	if summary.AvailableIPs < 0 {
		summary.AvailableIPs = 0
	}
	summary.UsagePercent = percent(summary.ActiveLeases, totalSize)

	return summary
}

// DHCPStatsService serves lease summaries per device.
type DHCPStatsService struct {
	sessions SessionProvider
	cache    *TTLCache[models.LeaseSummary]
	now      func() time.Time
	log      zerolog.Logger
}

// NewDHCPStatsService wires the service to a transport manager.
func NewDHCPStatsService(sessions SessionProvider, ttl time.Duration, log zerolog.Logger) *DHCPStatsService {
	return &DHCPStatsService{
		sessions: sessions,
		cache:    NewTTLCache[models.LeaseSummary](ttl),
		now:      time.Now,
		log:      log.With().Str("component", "dhcp-stats").Logger(),
	}
}

// Stats returns the device's lease summary, combining the lease table with
// the device's configured pools.
func (s *DHCPStatsService) Stats(deviceID int) (models.LeaseSummary, bool) {
	if summary, ok := s.cache.Get(deviceID); ok {
		return summary, true
	}

	leases, ok := fetch(s.sessions, s.log, deviceID, leaseQuery)
	if !ok {
		return models.LeaseSummary{}, false
	}
	poolRecords, ok := fetch(s.sessions, s.log, deviceID, poolQuery)
	if !ok {
		return models.LeaseSummary{}, false
	}

	summary := AggregateLeases(leases, ParsePools(poolRecords), s.now())
	s.cache.Put(deviceID, summary)
	return summary, true
}

// ClearCache forces recomputation on the device's next request.
func (s *DHCPStatsService) ClearCache(deviceID int) {
	s.cache.Invalidate(deviceID)
}

// ClearAllCache forces recomputation for every device.
func (s *DHCPStatsService) ClearAllCache() {
	s.cache.InvalidateAll()
}
