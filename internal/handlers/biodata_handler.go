package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/harentsoaR/fair-marriage-api/internal/utils"
)

// GetFeaturedBiodatas lists the youngest profiles owned by premium members.
func (h *Handler) GetFeaturedBiodatas(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	premium, err := h.Store.ListUsersByRole(ctx, models.RolePremium)
	if err != nil {
		storeFailed(c, "Failed to retrieve premium members", err)
		return
	}
	emails := make([]string, 0, len(premium))
	for _, u := range premium {
		emails = append(emails, u.Email)
	}

	biodatas, err := h.Store.ListBiodatasByEmails(ctx, emails, featuredLimit)
	if err != nil {
		storeFailed(c, "Failed to retrieve featured biodatas", err)
		return
	}
	c.JSON(http.StatusOK, biodatas)
}

func (h *Handler) GetBiodatas(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	biodatas, err := h.Store.ListBiodatas(ctx)
	if err != nil {
		storeFailed(c, "Failed to retrieve biodatas", err)
		return
	}
	c.JSON(http.StatusOK, biodatas)
}

// GetBiodata answers null when no profile has the id.
func (h *Handler) GetBiodata(c *gin.Context) {
	bioID, err := utils.ParseID(c.Param("bioId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	biodata, err := h.Store.GetBiodata(ctx, bioID)
	if err != nil {
		storeFailed(c, "Failed to retrieve biodata", err)
		return
	}
	c.JSON(http.StatusOK, biodata)
}

func (h *Handler) GetUserBiodata(c *gin.Context) {
	email, ok := requiredQuery(c, "email")
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	biodata, err := h.Store.GetBiodataByEmail(ctx, email)
	if err != nil {
		storeFailed(c, "Failed to retrieve biodata", err)
		return
	}
	c.JSON(http.StatusOK, biodata)
}

// GetSimilarBiodatas lists the youngest profiles of the given bioType.
func (h *Handler) GetSimilarBiodatas(c *gin.Context) {
	gender, ok := requiredQuery(c, "gender")
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	biodatas, err := h.Store.ListBiodatasByType(ctx, gender, similarLimit)
	if err != nil {
		storeFailed(c, "Failed to retrieve similar biodatas", err)
		return
	}
	c.JSON(http.StatusOK, biodatas)
}

func (h *Handler) CreateBiodata(c *gin.Context) {
	var req models.CreateBiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	biodata := req.Biodata()
	result, err := h.Biodatas.Create(ctx, &biodata)
	if err != nil {
		storeFailed(c, "Failed to create biodata", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// UpdateBiodata sets the provided fields and echoes them back with the bioId.
// A bioId that matches nothing is not an error.
func (h *Handler) UpdateBiodata(c *gin.Context) {
	bioID, err := utils.ParseID(c.Param("bioId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.UpdateBiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := req.Fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	if _, err := h.Store.UpdateBiodata(ctx, bioID, fields); err != nil {
		storeFailed(c, "Failed to update biodata", err)
		return
	}

	echo := gin.H{"bioId": bioID}
	for k, v := range fields {
		echo[k] = v
	}
	c.JSON(http.StatusOK, echo)
}
