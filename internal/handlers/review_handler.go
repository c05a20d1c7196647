package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetReviews lists the success stories with the earliest marriage dates.
func (h *Handler) GetReviews(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	reviews, err := h.Store.ListReviewsByMarriageDate(ctx, reviewsLimit)
	if err != nil {
		storeFailed(c, "Failed to retrieve reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
