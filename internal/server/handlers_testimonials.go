package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nruhp/newskprinter/internal/storage"
)

func (s *Server) listTestimonials(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	testimonials, err := s.store.ListTestimonials(c.Request().Context(), featuredOnly, true)
	if err != nil {
		return s.storageError(c, err, "testimonials")
	}
	return respondList(c, testimonials, len(testimonials))
}

func (s *Server) createTestimonial(c echo.Context) error {
	var t storage.Testimonial
	if err := c.Bind(&t); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	missing := missingFields([]requiredField{
		{"clientName", t.ClientName},
		{"company", t.Company},
		{"testimonial", t.Testimonial},
	})
	if len(missing) > 0 {
		return respondFieldErrors(c, "Please fill all required fields", missing)
	}
	if t.Rating < 1 || t.Rating > 5 {
		return respondFieldErrors(c, "Invalid field values", map[string]string{"rating": "must be between 1 and 5"})
	}

	if err := s.store.CreateTestimonial(c.Request().Context(), &t); err != nil {
		return s.storageError(c, err, "testimonial")
	}
	return respondData(c, http.StatusCreated, t)
}

func (s *Server) updateTestimonial(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	var t storage.Testimonial
	if err := c.Bind(&t); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return respondFieldErrors(c, "Invalid field values", map[string]string{"rating": "must be between 1 and 5"})
	}

	if err := s.store.UpdateTestimonial(c.Request().Context(), id, &t); err != nil {
		return s.storageError(c, err, "Testimonial")
	}
	return respondData(c, http.StatusOK, t)
}

func (s *Server) deleteTestimonial(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	if err := s.store.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return s.storageError(c, err, "Testimonial")
	}
	return respondMessage(c, http.StatusOK, "Testimonial deleted successfully", nil)
}
