package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaarimHussain/FitFlow-sub000/services"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	workouts, err := h.Svc.List(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, workouts)
}

func (h *WorkoutController) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	workout, err := h.Svc.Get(userID, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, workout)
}

func (h *WorkoutController) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}
	workout, err := h.Svc.Create(userID, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, workout)
}

func (h *WorkoutController) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.WorkoutUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}
	workout, err := h.Svc.Update(userID, id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, workout)
}

func (h *WorkoutController) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(userID, id); err != nil {
		serviceError(c, err)
		return
	}
	utils.OKMessage(c, http.StatusOK, "Workout deleted")
}
