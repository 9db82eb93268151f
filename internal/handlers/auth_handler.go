package handlers

import (
	"net/http"
	"strings"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		StaffID  string `json:"staffid"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.StaffID == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter both Staff ID and password"})
		return
	}

	token, session, err := h.authService.Login(req.StaffID, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Staff ID or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error. Try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"staffid":   session.StaffID,
		"staffname": session.Name,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session token"})
		return
	}

	if err := h.authService.Logout(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// RegisterStaff creates a staff account. When no password is supplied a
// temporary one is generated and returned once in the response.
func (h *AuthHandler) RegisterStaff(c *gin.Context) {
	var req struct {
		StaffID  string `json:"staffid"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.StaffID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Staff ID and name are required"})
		return
	}

	password := req.Password
	temporary := false
	if password == "" {
		generated, err := h.authService.GenerateTemporaryPassword(12)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate password"})
			return
		}
		password = generated
		temporary = true
	}

	staff := &models.Staff{
		StaffID:  req.StaffID,
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
	}

	if err := h.authService.RegisterStaff(staff, password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff account"})
		return
	}

	resp := gin.H{"staffid": staff.StaffID, "name": staff.Name}
	if temporary {
		resp["temporary_password"] = password
	}

	c.JSON(http.StatusCreated, resp)
}

// RequireStaff guards staff-only routes: a valid session token must be
// presented, and the resolved staff identity is stored on the context.
func (h *AuthHandler) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		session, err := h.authService.CurrentStaff(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Log in again."})
			return
		}

		c.Set("staff", session)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}
