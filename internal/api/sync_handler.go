package api

import (
	"net/http"

	"NHLSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SyncHandler exposes manual sync triggers.
type SyncHandler struct {
	rosterService *service.RosterSyncService
	logger        *logrus.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(rosterService *service.RosterSyncService, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		rosterService: rosterService,
		logger:        logger,
	}
}

// SyncRoster triggers a full team/roster refresh.
// POST /sync/roster
func (h *SyncHandler) SyncRoster(c *gin.Context) {
	if err := h.rosterService.Run(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("roster sync failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "roster sync completed"})
}
