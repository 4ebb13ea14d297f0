package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) dashboardStats(c echo.Context) error {
	stats, err := s.store.GetDashboardStats(c.Request().Context())
	if err != nil {
		return s.storageError(c, err, "dashboard stats")
	}
	return respondData(c, http.StatusOK, stats)
}

func (s *Server) dashboardAnalytics(c echo.Context) error {
	period := 30
	if raw := c.QueryParam("period"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 365 {
			return respondError(c, http.StatusBadRequest, "Invalid period")
		}
		period = v
	}

	analytics, err := s.store.GetAnalytics(c.Request().Context(), period)
	if err != nil {
		return s.storageError(c, err, "analytics")
	}
	return respondData(c, http.StatusOK, analytics)
}
