package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nruhp/newskprinter/internal/storage"
)

func (s *Server) listProducts(c echo.Context) error {
	filter := storage.ProductFilter{
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Featured: boolQueryParam(c, "featured"),
		Active:   boolQueryParam(c, "active"),
	}
	// Public listings default to active products only.
	if filter.Active == nil {
		active := true
		filter.Active = &active
	}

	products, err := s.store.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return s.storageError(c, err, "products")
	}
	return respondList(c, products, len(products))
}

func (s *Server) getProduct(c echo.Context) error {
	product, err := s.store.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.storageError(c, err, "Product")
	}
	return respondData(c, http.StatusOK, product)
}

func (s *Server) createProduct(c echo.Context) error {
	var product storage.Product
	if err := c.Bind(&product); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	missing := missingFields([]requiredField{
		{"name", product.Name},
		{"description", product.Description},
		{"category", product.Category},
		{"type", product.Type},
	})
	if len(missing) > 0 {
		return respondFieldErrors(c, "Please fill all required fields", missing)
	}

	if err := s.store.CreateProduct(c.Request().Context(), &product); err != nil {
		return s.storageError(c, err, "product")
	}
	return respondData(c, http.StatusCreated, product)
}

func (s *Server) updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	var product storage.Product
	if err := c.Bind(&product); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	if err := s.store.UpdateProduct(c.Request().Context(), id, &product); err != nil {
		return s.storageError(c, err, "Product")
	}
	return respondData(c, http.StatusOK, product)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	if err := s.store.DeleteProduct(c.Request().Context(), id); err != nil {
		return s.storageError(c, err, "Product")
	}
	return respondMessage(c, http.StatusOK, "Product deleted successfully", nil)
}

// boolQueryParam parses an optional boolean query parameter; absent or
// unparseable values mean "no constraint".
func boolQueryParam(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
