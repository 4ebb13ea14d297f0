package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nruhp/newskprinter/internal/storage"
)

func (s *Server) listCaseStudies(c echo.Context) error {
	studies, err := s.store.ListCaseStudies(c.Request().Context(), true)
	if err != nil {
		return s.storageError(c, err, "case studies")
	}
	return respondList(c, studies, len(studies))
}

func (s *Server) getCaseStudy(c echo.Context) error {
	cs, err := s.store.GetCaseStudyBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.storageError(c, err, "Case study")
	}
	return respondData(c, http.StatusOK, cs)
}

func (s *Server) createCaseStudy(c echo.Context) error {
	var cs storage.CaseStudy
	if err := c.Bind(&cs); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	missing := missingFields([]requiredField{
		{"title", cs.Title},
		{"challenge", cs.Challenge},
		{"solution", cs.Solution},
		{"results", cs.Results},
	})
	if len(missing) > 0 {
		return respondFieldErrors(c, "Please fill all required fields", missing)
	}

	if err := s.store.CreateCaseStudy(c.Request().Context(), &cs); err != nil {
		return s.storageError(c, err, "case study")
	}
	return respondData(c, http.StatusCreated, cs)
}

func (s *Server) updateCaseStudy(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	var cs storage.CaseStudy
	if err := c.Bind(&cs); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	if err := s.store.UpdateCaseStudy(c.Request().Context(), id, &cs); err != nil {
		return s.storageError(c, err, "Case study")
	}
	return respondData(c, http.StatusOK, cs)
}

func (s *Server) deleteCaseStudy(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	if err := s.store.DeleteCaseStudy(c.Request().Context(), id); err != nil {
		return s.storageError(c, err, "Case study")
	}
	return respondMessage(c, http.StatusOK, "Case study deleted successfully", nil)
}
