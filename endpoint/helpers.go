package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/tripwire/generator"
	"github.com/ariebrainware/tripwire/middleware"
	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
)

// helper: ensure services are available in context or respond with server error
func ensureServices(c *gin.Context) (*middleware.Services, bool) {
	svc, ok := middleware.GetServices(c)
	if !ok || svc.Store == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Services not available",
			Err: fmt.Errorf("services are not configured"),
		})
		return nil, false
	}
	return svc, true
}

// respondError maps domain errors onto HTTP responses.
func respondError(c *gin.Context, msg string, err error) {
	params := util.APIErrorParams{Msg: msg, Err: err}
	switch {
	case errors.Is(err, model.ErrNotFound):
		util.CallErrorNotFound(c, params)
	case errors.Is(err, model.ErrDuplicateID),
		errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, generator.ErrEmptyPrompt):
		util.CallUserError(c, params)
	case errors.Is(err, model.ErrGenerationFailed):
		util.CallBadGateway(c, params)
	case errors.Is(err, model.ErrStorageUnavailable):
		util.CallServiceUnavailable(c, params)
	default:
		util.CallServerError(c, params)
	}
}

// helper: parse limit/offset query values. A zero limit means no limit.
func parsePagination(c *gin.Context) (limit, offset int, err error) {
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", raw)
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", raw)
		}
	}
	return limit, offset, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
