package handler

import (
	"errors"
	"strconv"

	"shareit/internal/config"
	apperrors "shareit/internal/errors"
	"shareit/internal/middleware"
	"shareit/internal/pagination"
	"shareit/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// handleError writes the response for a service error. Forbidden is surfaced
// as 404 so clients cannot tell a foreign resource from a missing one.
func handleError(c *gin.Context, log *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrForbidden):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidParameter), errors.Is(err, apperrors.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyExists):
		response.Conflict(c, err.Error())
	default:
		log.Error().Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("unexpected error")
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, apperrors.ErrInvalidID.Error())
		return 0, false
	}
	return id, true
}

// pageFrom reads the from/size query parameters.
func pageFrom(c *gin.Context, cfg config.PaginationConfig) (pagination.Page, bool) {
	page, err := pagination.Parse(c.Query("from"), c.Query("size"), cfg.ExactOffset)
	if err != nil {
		response.BadRequest(c, err.Error())
		return pagination.Page{}, false
	}
	return page, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}
