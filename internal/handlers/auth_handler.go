package handlers

import (
	"errors"

	"fleetflow/internal/models"
	"fleetflow/internal/services"
	"fleetflow/internal/utils"
	"fleetflow/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req validators.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateRegister(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &services.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.UserRole(req.Role),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req validators.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateLogin(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &services.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, err.Error())
		case errors.Is(err, services.ErrAccountNotActive):
			utils.ForbiddenResponse(c, err.Error())
		default:
			utils.HandleServiceError(c, err)
		}
		return
	}
	utils.SuccessResponse(c, response)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c, utils.ErrUnauthorized)
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID.(primitive.ObjectID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}
