package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerdash/internal/services"
)

// GetHealth reports the monitor host's own load.
func GetHealth(c *gin.Context) {
	health, err := services.HostHealth()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, health)
}
