package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"orgjet/internal/shared/constants"
	"orgjet/internal/shared/errors"
)

// ParseUintParam parses a numeric ID from a URL path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(v), nil
}

// ActorFromContext extracts the authenticated actor's id and role placed on
// the context by the auth middleware. Every lifecycle operation receives the
// actor explicitly; nothing downstream reads gin state.
func ActorFromContext(c *gin.Context) (uint, string) {
	var actorID uint
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if u, ok := v.(uint); ok {
			actorID = u
		}
	}
	role := ""
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if s, ok := v.(string); ok {
			role = s
		}
	}
	return actorID, role
}
