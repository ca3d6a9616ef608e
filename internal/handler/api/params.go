package api

import (
	"net/http"
	"strconv"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/handler/httperr"
	"bengkel-service/internal/handler/middleware"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingActor = errs.Mark(errs.New("caller is not authenticated"), errs.ErrUnauthorized)
	errInvalidID    = errs.Mark(errs.New("invalid id"), errs.ErrValidation)
	errInvalidLimit = errs.Mark(errs.New("limit must be a positive integer"), errs.ErrValidation)
)

func requireActor(c *gin.Context) (authz.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads ?cursor= and ?limit=. A missing limit yields 0 and the default applies.
func pageParams(c *gin.Context) (*queries.Cursor, int, bool) {
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidLimit, "Invalid limit", nil)
			return nil, 0, false
		}
		limit = n
	}
	return cursor, limit, true
}

func nextCursor(c *queries.Cursor) string {
	if c == nil {
		return ""
	}
	return c.After
}
