package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/models"
)

func (h *Handler) GetPremiumRequests(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	requests, err := h.Store.ListPremiumRequests(ctx)
	if err != nil {
		storeFailed(c, "Failed to retrieve premium requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) CreatePremiumRequest(c *gin.Context) {
	var req models.PremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Status = ""

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.InsertPremiumRequest(ctx, &req)
	if err != nil {
		storeFailed(c, "Failed to create premium request", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ApprovePremiumRequest only marks the request; granting the role is a
// separate PATCH /usersPremium call.
func (h *Handler) ApprovePremiumRequest(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.ApprovePremiumRequest(ctx, req.Email)
	if err != nil {
		storeFailed(c, "Failed to approve premium request", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
