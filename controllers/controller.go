package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/KaarimHussain/FitFlow-sub000/middlewares"
	"github.com/KaarimHussain/FitFlow-sub000/services"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

// callerID pulls the authenticated user id out of the context.
func callerID(c *gin.Context) (uint, bool) {
	id, ok := middlewares.UserID(c)
	if !ok {
		utils.Fail(c, http.StatusUnauthorized, "Not authenticated")
	}
	return id, ok
}

// pathID parses the :id param. A non-numeric id can never exist, so it
// maps to 404 rather than 400 or a store error.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Fail(c, http.StatusNotFound, "Resource not found")
		return 0, false
	}
	return uint(id), true
}

// serviceError maps sentinel service errors onto the HTTP taxonomy.
// Anything unrecognized is a 500 with a generic message; the detail is
// only logged.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.Fail(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrNotOwner):
		utils.Fail(c, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, services.ErrUserNotFound):
		utils.Fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrInvalidOTP):
		utils.Fail(c, http.StatusBadRequest, capitalize(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		utils.Fail(c, http.StatusInternalServerError, "Something went wrong")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
