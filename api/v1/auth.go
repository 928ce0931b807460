package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/services"
)

// Signup handles registration: the confirmation code is sent to the
// submitted email address, never returned in the response.
func Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := services.Signup(req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"email":    req.Email,
		"username": req.Username,
	})
}

// GetToken exchanges a confirmation code for an access token
func GetToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokenResponse, err := services.GetToken(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tokenResponse,
	})
}
