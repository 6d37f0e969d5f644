package controllers

import (
	"errors"
	"net/http"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondSuccess writes the standard success envelope
func respondSuccess(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondCreated writes the success envelope with 201
func respondCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondMessage writes a success envelope carrying only a message
func respondMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// respondBadRequest writes a 400 with the given message
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

// respondError maps service errors onto HTTP statuses
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	}
	ctx.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// currentUser loads the authenticated user from the database using the
// claims the JWT middleware put on the context. Loading fresh rather than
// trusting the token means role or newsroom changes apply immediately.
func currentUser(ctx *gin.Context, c *container.ServiceContainer) (*models.User, bool) {
	userID, exists := ctx.Get("userID")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "authentication required",
		})
		return nil, false
	}

	var user models.User
	if err := c.GetDB().Preload("Newsroom").First(&user, userID).Error; err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "user not found",
		})
		return nil, false
	}
	if !user.IsActive {
		ctx.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "account is deactivated",
		})
		return nil, false
	}
	return &user, true
}

// respondInvalidMethod handles an unknown dispatch method name
func respondInvalidMethod(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "invalid method",
	})
}
