package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaarimHussain/FitFlow-sub000/services"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

type ProgressController struct {
	Svc *services.ProgressService
}

func NewProgressController(svc *services.ProgressService) *ProgressController {
	return &ProgressController{Svc: svc}
}

func (h *ProgressController) List(c *gin.Context) {
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

func (h *ProgressController) Get(c *gin.Context) {
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

func (h *ProgressController) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input services.ProgressInput
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

func (h *ProgressController) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.ProgressUpdate
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

func (h *ProgressController) Delete(c *gin.Context) {
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
	utils.OKMessage(c, http.StatusOK, "Progress entry deleted")
}
