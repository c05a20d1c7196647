package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetBiodataCounts(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	counts, err := h.Stats.Counts(ctx)
	if err != nil {
		storeFailed(c, "Failed to compute biodata counts", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) GetRevenues(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	revenues, err := h.Stats.Revenues(ctx)
	if err != nil {
		storeFailed(c, "Failed to compute revenues", err)
		return
	}
	c.JSON(http.StatusOK, revenues)
}
