package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"github.com/harentsoaR/fair-marriage-api/internal/utils"
)

func (h *Handler) GetFavourites(c *gin.Context) {
	email, ok := requiredQuery(c, "email")
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	favourites, err := h.Store.ListFavouritesByEmail(ctx, email)
	if err != nil {
		storeFailed(c, "Failed to retrieve favourites", err)
		return
	}
	c.JSON(http.StatusOK, favourites)
}

func (h *Handler) CreateFavourite(c *gin.Context) {
	var fav models.Favourite
	if err := c.ShouldBindJSON(&fav); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.InsertFavourite(ctx, &fav)
	if err != nil {
		storeFailed(c, "Failed to add favourite", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteFavourite removes one favourite of the biodata, optionally only the
// one saved by ?email=.
func (h *Handler) DeleteFavourite(c *gin.Context) {
	biodataID, err := utils.ParseID(c.Param("biodataId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.DeleteFavourite(ctx, biodataID, c.Query("email"))
	if err != nil {
		storeFailed(c, "Failed to remove favourite", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
