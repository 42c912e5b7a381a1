package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"routerdash/internal/config"
	"routerdash/internal/services"
	"routerdash/internal/storage"
)

// Wiring shared by every handler, set once from main.
var (
	cfg             *config.Config
	connectionStats *services.ConnectionStatsService
	dhcpStats       *services.DHCPStatsService
	bandwidthStats  *services.BandwidthStatsService
	trafficStats    *services.TrafficStatsService
	systemStats     *services.SystemStatsService
	historyStore    *storage.Store
)

// Init wires the handlers to their services.
func Init(c *config.Config, conns *services.ConnectionStatsService, dhcp *services.DHCPStatsService, bandwidth *services.BandwidthStatsService, traffic *services.TrafficStatsService, system *services.SystemStatsService, store *storage.Store) {
	cfg = c
	connectionStats = conns
	dhcpStats = dhcp
	bandwidthStats = bandwidth
	trafficStats = traffic
	systemStats = system
	historyStore = store
}

// deviceID parses and validates the :id route parameter. It answers the
// request itself when the device is unknown.
func deviceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid device id"})
		return 0, false
	}
	if _, ok := cfg.Device(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown device"})
		return 0, false
	}
	return id, true
}

// unavailable answers when a device could not be queried, as opposed to a
// valid summary of an empty table.
func unavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics unavailable for this device"})
}
