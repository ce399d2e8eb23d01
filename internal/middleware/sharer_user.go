// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "shareit/internal/errors"
	"shareit/pkg/response"

	"github.com/gin-gonic/gin"
)

// SharerUserHeader carries the caller's user id on every authenticated call.
const SharerUserHeader = "X-Sharer-User-Id"

// Context keys for storing request data
const (
	UserIDKey    = "userID"
	RequestIDKey = "requestID"
)

// SharerUser returns a middleware that reads the caller id from the
// X-Sharer-User-Id header. The value is trusted as-is; there is no credential check.
func SharerUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseSharerID(c.GetHeader(SharerUserHeader))
		if err != nil {
			response.Abort(c, http.StatusBadRequest, err.Error())
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}

// parseSharerID accepts only positive integer ids.
func parseSharerID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.ErrMissingSharerID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidSharerID
	}
	return id, nil
}

// GetUserID retrieves the caller id from the context.
// Returns 0 if SharerUser did not run.
func GetUserID(c *gin.Context) int64 {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0
	}
	id, _ := userID.(int64)
	return id
}
