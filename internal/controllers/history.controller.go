package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetTrafficHistory returns the top addresses by persisted traffic.
// Query params: limit (default 10), window=1h|24h|168h (default 24h).
func GetTrafficHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	window, err := time.ParseDuration(c.DefaultQuery("window", "24h"))
	if err != nil || window <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window format"})
		return
	}

	rows, err := historyStore.TopTalkers(limit, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window": window.String(),
		"data":   rows,
	})
}

// GetConnectionHistory returns persisted connection-count samples for
// protocol-breakdown charts. Query params: device (optional), window
// (default 24h).
func GetConnectionHistory(c *gin.Context) {
	window, err := time.ParseDuration(c.DefaultQuery("window", "24h"))
	if err != nil || window <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window format"})
		return
	}

	device := 0
	if raw := c.Query("device"); raw != "" {
		device, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid device id"})
			return
		}
		if _, ok := cfg.Device(device); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown device"})
			return
		}
	}

	rows, err := historyStore.ConnectionHistory(device, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window": window.String(),
		"data":   rows,
	})
}

// GetBandwidthHistory returns persisted interface samples.
// Query params: interface (optional), window (default 24h).
func GetBandwidthHistory(c *gin.Context) {
	window, err := time.ParseDuration(c.DefaultQuery("window", "24h"))
	if err != nil || window <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window format"})
		return
	}

	rows, err := historyStore.BandwidthHistory(c.Query("interface"), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window": window.String(),
		"data":   rows,
	})
}
