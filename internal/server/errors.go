package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/abhisek/drill/internal/problems"
	"github.com/abhisek/drill/internal/spacedrep"
	"github.com/abhisek/drill/internal/store"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

func badRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

func notFound(what string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, what+" not found")
}

// toHTTPError maps domain errors to status codes. Anything unrecognised
// is a 500 with a generic message.
func toHTTPError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	var unknownKind *problems.UnknownKindError
	if errors.As(err, &unknownKind) {
		return badRequest(unknownKind.Error())
	}
	var unknownScheduler *spacedrep.UnknownSchedulerError
	if errors.As(err, &unknownScheduler) {
		return badRequest(unknownScheduler.Error())
	}
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		he := toHTTPError(err)
		if he.Code >= http.StatusInternalServerError {
			logger.Error("internal error", "path", c.Path(), "error", err)
		}

		detail, ok := he.Message.(string)
		if !ok {
			detail = http.StatusText(he.Code)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, errorBody{Detail: detail})
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}
