package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDevices lists the configured routers without credentials.
func GetDevices(c *gin.Context) {
	c.JSON(http.StatusOK, cfg.DeviceInfos())
}

// GetConnectionStats returns the device's aggregated connection summary.
func GetConnectionStats(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	summary, ok := connectionStats.Stats(id)
	if !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDHCPStats returns the device's lease summary.
func GetDHCPStats(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	summary, ok := dhcpStats.Stats(id)
	if !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetBandwidthStats returns the device's interface counters.
func GetBandwidthStats(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	summary, ok := bandwidthStats.Stats(id)
	if !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTrafficStats returns the device's traffic-by-IP ranking.
func GetTrafficStats(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	summary, ok := trafficStats.Stats(id)
	if !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSystemStats returns the device's resource record.
func GetSystemStats(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	res, ok := systemStats.Stats(id)
	if !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ClearDeviceCache drops every cached summary for one device, forcing
// recomputation on the next request.
func ClearDeviceCache(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	connectionStats.ClearCache(id)
	dhcpStats.ClearCache(id)
	bandwidthStats.ClearCache(id)
	trafficStats.ClearCache(id)
	systemStats.ClearCache(id)
	c.JSON(http.StatusOK, gin.H{"status": "cache cleared", "device_id": id})
}

// ClearAllCaches drops every cached summary for every device.
func ClearAllCaches(c *gin.Context) {
	connectionStats.ClearAllCache()
	dhcpStats.ClearAllCache()
	bandwidthStats.ClearAllCache()
	trafficStats.ClearAllCache()
	systemStats.ClearAllCache()
	c.JSON(http.StatusOK, gin.H{"status": "cache cleared"})
}
