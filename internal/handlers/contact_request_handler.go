package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/models"
)

// GetContactRequests lists the requests one member has made.
func (h *Handler) GetContactRequests(c *gin.Context) {
	email, ok := requiredQuery(c, "email")
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	requests, err := h.Store.ListContactRequestsByEmail(ctx, email)
	if err != nil {
		storeFailed(c, "Failed to retrieve contact requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetAllContactRequests backs the admin approval page.
func (h *Handler) GetAllContactRequests(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	requests, err := h.Store.ListContactRequests(ctx)
	if err != nil {
		storeFailed(c, "Failed to retrieve contact requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) CreateContactRequest(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// New requests always start pending.
	req.Status = ""

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.InsertContactRequest(ctx, &req)
	if err != nil {
		storeFailed(c, "Failed to create contact request", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) ApproveContactRequest(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.ApproveContactRequest(ctx, req.Email)
	if err != nil {
		storeFailed(c, "Failed to approve contact request", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteContactRequest removes one request for the biodata. The id is kept
// as a string because that is how contact requests store it.
func (h *Handler) DeleteContactRequest(c *gin.Context) {
	biodataID := strings.TrimSpace(c.Param("biodataId"))
	if biodataID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "biodataId is required"})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.DeleteContactRequest(ctx, biodataID, c.Query("email"))
	if err != nil {
		storeFailed(c, "Failed to delete contact request", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
