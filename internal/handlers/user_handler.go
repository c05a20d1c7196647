package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/models"
)

func (h *Handler) GetUsers(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		storeFailed(c, "Failed to retrieve users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserRole returns the whole user document (or null); clients read its role.
func (h *Handler) GetUserRole(c *gin.Context) {
	email, ok := requiredQuery(c, "email")
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	user, err := h.Store.GetUserByEmail(ctx, email)
	if err != nil {
		storeFailed(c, "Failed to retrieve user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser registers an email once. A repeated sign-up gets the stored
// user back with 200 instead of an insert result with 201.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Roles are only granted through the admin endpoints.
	user.Role = ""

	ctx, cancel := dbContext(c)
	defer cancel()

	existing, result, err := h.Store.CreateUserIfAbsent(ctx, &user)
	if err != nil {
		storeFailed(c, "Failed to create user", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, existing)
		return
	}
	log.Printf("CreateUser: registered %s", user.Email)
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

func (h *Handler) MakePremium(c *gin.Context) {
	h.setRole(c, models.RolePremium)
}

func (h *Handler) setRole(c *gin.Context, role string) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	result, err := h.Store.SetUserRole(ctx, req.Email, role)
	if err != nil {
		storeFailed(c, "Failed to update user role", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
