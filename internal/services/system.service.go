package services

import (
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/models"
)

// SystemStatsService serves the device's resource record (uptime, version,
// load) through the same TTL cache as the other families.
type SystemStatsService struct {
	sessions SessionProvider
	cache    *TTLCache[models.RouterResources]
	now      func() time.Time
	log      zerolog.Logger
}

// NewSystemStatsService wires the service to a transport manager.
func NewSystemStatsService(sessions SessionProvider, ttl time.Duration, log zerolog.Logger) *SystemStatsService {
	return &SystemStatsService{
		sessions: sessions,
		cache:    NewTTLCache[models.RouterResources](ttl),
		now:      time.Now,
		log:      log.With().Str("component", "system-stats").Logger(),
	}
}

// Stats returns the device's resource figures. The resource path prints a
// single record; an empty reply is treated as unavailable.
func (s *SystemStatsService) Stats(deviceID int) (models.RouterResources, bool) {
	if res, ok := s.cache.Get(deviceID); ok {
		return res, true
	}

	records, ok := fetch(s.sessions, s.log, deviceID, resourceQuery)
	if !ok || len(records) == 0 {
		return models.RouterResources{}, false
	}

	rec := records[0]
	res := models.RouterResources{
		Uptime:       rec.Field("uptime"),
		Version:      rec.Field("version"),
		BoardName:    rec.Field("board-name"),
		Architecture: rec.Field("architecture-name"),
		CPULoad:      rec.Int("cpu-load"),
		FreeMemory:   rec.Int64("free-memory"),
		TotalMemory:  rec.Int64("total-memory"),
		FreeHDDSpace: rec.Int64("free-hdd-space"),
		LastUpdated:  s.now(),
	}

	s.cache.Put(deviceID, res)
	return res, true
}

// ClearCache forces recomputation on the device's next request.
func (s *SystemStatsService) ClearCache(deviceID int) {
	s.cache.Invalidate(deviceID)
}

// ClearAllCache forces recomputation for every device.
func (s *SystemStatsService) ClearAllCache() {
	s.cache.InvalidateAll()
}
