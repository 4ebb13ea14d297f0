package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nruhp/newskprinter/internal/pricing"
)

// computeEstimate prices a box specification on demand. The calculation is
// pure and stateless; nothing is persisted.
func (s *Server) computeEstimate(c echo.Context) error {
	var spec pricing.BoxSpecification
	if err := c.Bind(&spec); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	quote, err := pricing.Compute(spec)
	if err != nil {
		var specErr *pricing.InvalidSpecificationError
		if errors.As(err, &specErr) {
			return respondFieldErrors(c, "Invalid box specification", map[string]string{
				specErr.Field: specErr.Reason,
			})
		}
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	return respondData(c, http.StatusOK, quote)
}
