package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaarimHussain/FitFlow-sub000/models"
	"github.com/KaarimHussain/FitFlow-sub000/services"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type authPayload struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}

	token, user, err := h.Svc.Register(input.Username, input.Email, input.Password)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, authPayload{Token: token, User: user.Public()})
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}

	token, user, err := h.Svc.Login(input.Email, input.Password)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, authPayload{Token: token, User: user.Public()})
}

func (h *AuthController) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	user, err := h.Svc.GetUser(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, user.Public())
}

func (h *AuthController) Verify(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	user, err := h.Svc.Verify(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, user.Public())
}

func (h *AuthController) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}

	// Respond identically whether or not the account exists.
	if err := h.Svc.ForgotPassword(input.Email); err != nil && err != services.ErrUserNotFound {
		serviceError(c, err)
		return
	}
	utils.OKMessage(c, http.StatusOK, "If the email exists, a reset code has been sent")
}

func (h *AuthController) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}

	if err := h.Svc.ResetPassword(input.Email, input.Code, input.NewPassword); err != nil {
		serviceError(c, err)
		return
	}
	utils.OKMessage(c, http.StatusOK, "Password has been reset")
}
