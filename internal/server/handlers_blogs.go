package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nruhp/newskprinter/internal/storage"
)

func (s *Server) listBlogs(c echo.Context) error {
	filter := storage.BlogFilter{
		Category:      c.QueryParam("category"),
		Tag:           c.QueryParam("tag"),
		PublishedOnly: true,
	}

	blogs, err := s.store.ListBlogs(c.Request().Context(), filter)
	if err != nil {
		return s.storageError(c, err, "blogs")
	}
	return respondList(c, blogs, len(blogs))
}

// listAllBlogs includes drafts; admin panel only.
func (s *Server) listAllBlogs(c echo.Context) error {
	filter := storage.BlogFilter{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
	}

	blogs, err := s.store.ListBlogs(c.Request().Context(), filter)
	if err != nil {
		return s.storageError(c, err, "blogs")
	}
	return respondList(c, blogs, len(blogs))
}

func (s *Server) getBlog(c echo.Context) error {
	blog, err := s.store.GetBlogBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.storageError(c, err, "Blog post")
	}
	return respondData(c, http.StatusOK, blog)
}

func (s *Server) getBlogByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	blog, err := s.store.GetBlogByID(c.Request().Context(), id)
	if err != nil {
		return s.storageError(c, err, "Blog post")
	}
	return respondData(c, http.StatusOK, blog)
}

func (s *Server) createBlog(c echo.Context) error {
	var blog storage.Blog
	if err := c.Bind(&blog); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	missing := missingFields([]requiredField{
		{"title", blog.Title},
		{"content", blog.Content},
	})
	if len(missing) > 0 {
		return respondFieldErrors(c, "Please fill all required fields", missing)
	}

	if err := s.store.CreateBlog(c.Request().Context(), &blog); err != nil {
		return s.storageError(c, err, "blog")
	}
	return respondData(c, http.StatusCreated, blog)
}

func (s *Server) updateBlog(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	var blog storage.Blog
	if err := c.Bind(&blog); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	if err := s.store.UpdateBlog(c.Request().Context(), id, &blog); err != nil {
		return s.storageError(c, err, "Blog post")
	}
	return respondData(c, http.StatusOK, blog)
}

func (s *Server) deleteBlog(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	if err := s.store.DeleteBlog(c.Request().Context(), id); err != nil {
		return s.storageError(c, err, "Blog post")
	}
	return respondMessage(c, http.StatusOK, "Blog deleted successfully", nil)
}
