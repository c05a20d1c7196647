package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/services"
	"github.com/harentsoaR/fair-marriage-api/internal/store"
)

// dbTimeout bounds every store call made on behalf of one request.
const dbTimeout = 10 * time.Second

const (
	featuredLimit = 6
	similarLimit  = 3
	reviewsLimit  = 6
)

type Handler struct {
	Store    store.Store
	Biodatas *services.BiodataService
	Stats    *services.StatsService
}

func NewHandler(s store.Store, biodatas *services.BiodataService, stats *services.StatsService) *Handler {
	return &Handler{
		Store:    s,
		Biodatas: biodatas,
		Stats:    stats,
	}
}

func dbContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), dbTimeout)
}

// storeFailed answers a failed store call: 409 for unique-key conflicts,
// 500 for everything else. The driver error is only logged.
func storeFailed(c *gin.Context, msg string, err error) {
	log.Printf("%s %s: %s: %v", c.Request.Method, c.FullPath(), msg, err)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "Document already exists"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// requiredQuery reads a mandatory query parameter, answering 400 when missing.
func requiredQuery(c *gin.Context, key string) (string, bool) {
	v := c.Query(key)
	if v == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": key + " query parameter is required"})
		return "", false
	}
	return v, true
}

func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "fair marriage is on action")
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		log.Printf("Health: store ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
}
