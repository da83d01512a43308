package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nevilhulspas/caltrack/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultWindowDays = 7

type DashboardController struct {
	store  services.EntryStore
	logger *zap.Logger
}

func NewDashboardController(store services.EntryStore, logger *zap.Logger) *DashboardController {
	return &DashboardController{store: store, logger: logger}
}

// GET /dashboard-api?user=nevil&days=7
func (dc *DashboardController) ListLogs(c *gin.Context) {
	user := c.Query("user")

	days := defaultWindowDays
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)

	logs, err := dc.store.ListSince(user, since)
	if err != nil {
		dc.logger.Error("Failed to list food logs", zap.String("user", user), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /dashboard-api?id=<uuid>
func (dc *DashboardController) DeleteLog(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'id' parameter"})
		return
	}

	if err := dc.store.SoftDelete(id); err != nil {
		dc.logger.Error("Failed to delete food log", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
