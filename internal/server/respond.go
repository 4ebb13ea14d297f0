package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nruhp/newskprinter/internal/storage"
)

// The response envelope matches what the site's frontend already consumes:
// {"success": bool, "message": string, "data": ...}.

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondList(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

func respondMessage(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

func respondFieldErrors(c echo.Context, message string, fields any) error {
	return c.JSON(http.StatusBadRequest, envelope{Success: false, Message: message, Errors: fields})
}

// storageError maps storage failures onto the 404/500 split and keeps the
// raw error out of responses.
func (s *Server) storageError(c echo.Context, err error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return respondError(c, http.StatusNotFound, what+" not found")
	}
	s.logger.Error("storage error",
		zap.String("path", c.Path()),
		zap.Error(err))
	return respondError(c, http.StatusInternalServerError, "Something went wrong!")
}
