package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//
// --- Auth Handlers (proxied to the core backend) ---
//
// The gateway holds no accounts. Login is forwarded as-is and the returned
// bearer token belongs to the backend; profile reads pass that token through
// untouched.
//

// LoginInput is the JSON body for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /auth/login. A rejected credential pair
// renders inline, so the error comes back as a 401 with a message.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.Backend.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		log.Printf("auth: login failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// GetProfile is the handler for GET /auth/profile. Used by pages that need
// the account state (including the ban check) with the customer's own token.
func (h *Handlers) GetProfile(c *gin.Context) {
	bearer := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if bearer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	profile, err := h.Backend.Profile(c.Request.Context(), bearer)
	if err != nil {
		log.Printf("auth: profile fetch failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}
