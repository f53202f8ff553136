package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaarimHussain/FitFlow-sub000/services"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

func (h *AdminController) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, stats)
}

func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, users)
}

func (h *AdminController) ListAllWorkouts(c *gin.Context) {
	workouts, err := h.Svc.ListAllWorkouts()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, workouts)
}

func (h *AdminController) ListAllNutrition(c *gin.Context) {
	entries, err := h.Svc.ListAllNutrition()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, entries)
}

func (h *AdminController) ListAllProgress(c *gin.Context) {
	entries, err := h.Svc.ListAllProgress()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, entries)
}

func (h *AdminController) DeleteUser(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteUser(adminID, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.OKMessage(c, http.StatusOK, "User deleted")
}

func (h *AdminController) UpdateUserRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}
	user, err := h.Svc.UpdateUserRole(id, input.Role)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, user.Public())
}

func (h *AdminController) GetUserDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	details, err := h.Svc.GetUserDetails(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, details)
}
