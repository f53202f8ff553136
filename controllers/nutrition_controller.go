package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaarimHussain/FitFlow-sub000/services"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

func (h *NutritionController) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	entries, err := h.Svc.List(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, entries)
}

func (h *NutritionController) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := h.Svc.Get(userID, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, entry)
}

func (h *NutritionController) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input services.NutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}
	entry, err := h.Svc.Create(userID, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, entry)
}

func (h *NutritionController) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.NutritionUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.FailBinding(c, err)
		return
	}
	entry, err := h.Svc.Update(userID, id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, entry)
}

func (h *NutritionController) Delete(c *gin.Context) {
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
	utils.OKMessage(c, http.StatusOK, "Nutrition entry deleted")
}
