package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerdash/internal/services"
)

// IssueToken generates a JWT for a dashboard client.
func IssueToken(c *gin.Context) {
	var body struct {
		ClientName string `json:"client_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ClientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_name required"})
		return
	}

	token, err := services.GenerateToken(body.ClientName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"expires": services.TokenExpiry(),
		"client":  body.ClientName,
	})
}
