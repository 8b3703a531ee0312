package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/humorshub/internal/middleware"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// toHTTPError maps a service error kind to a response. Store failures are
// logged here and never shown to the caller.
func toHTTPError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotAuthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).
			WithField("method", c.Request().Method).
			WithField("path", c.Path()).
			Error("request failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

func currentIdentity(c echo.Context) (service.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return service.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return id, nil
}

func parseID(c echo.Context, what string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+what+" id")
	}
	return uint(id), nil
}

func statusFilter(c echo.Context) *models.Status {
	s := c.QueryParam("status")
	if s == "" {
		return nil
	}
	st := models.Status(s)
	return &st
}

// bindAndValidate fills req from the body and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}
