package api

import (
	"net/http"

	reqdto "hotelres/internal/handler/dto/request"
	resdto "hotelres/internal/handler/dto/response"
	"hotelres/internal/handler/middleware"
	"hotelres/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Login
// @Description Authenticate with login ID and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current user
// @Description Return the authenticated user's identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	c.JSON(http.StatusOK, resdto.MeResponse{
		UserID: userID,
		Role:   role.String(),
	})
}
