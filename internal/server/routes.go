package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":    "OK",
			"message":   "SK Printers API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public
	api.POST("/estimate", s.computeEstimate)
	api.POST("/quotes", s.submitQuote)
	api.POST("/contact", s.submitContact)
	api.POST("/auth/login", s.login)

	api.GET("/products", s.listProducts)
	api.GET("/products/:slug", s.getProduct)
	api.GET("/blogs", s.listBlogs)
	api.GET("/blogs/:slug", s.getBlog)
	api.GET("/testimonials", s.listTestimonials)
	api.GET("/case-studies", s.listCaseStudies)
	api.GET("/case-studies/:slug", s.getCaseStudy)

	// Admin
	admin := []echo.MiddlewareFunc{s.jwtMiddleware(), s.adminOnly}

	api.GET("/quotes", s.listQuotes, admin...)
	api.GET("/quotes/export", s.exportQuotes, admin...)
	api.GET("/quotes/:id", s.getQuote, admin...)
	api.PUT("/quotes/:id", s.updateQuote, admin...)
	api.DELETE("/quotes/:id", s.deleteQuote, admin...)

	api.GET("/contact", s.listContacts, admin...)
	api.PUT("/contact/:id", s.updateContact, admin...)
	api.DELETE("/contact/:id", s.deleteContact, admin...)

	api.POST("/products", s.createProduct, admin...)
	api.PUT("/products/:id", s.updateProduct, admin...)
	api.DELETE("/products/:id", s.deleteProduct, admin...)

	api.POST("/blogs", s.createBlog, admin...)
	api.GET("/blogs/all", s.listAllBlogs, admin...)
	api.GET("/blogs/id/:id", s.getBlogByID, admin...)
	api.PUT("/blogs/:id", s.updateBlog, admin...)
	api.DELETE("/blogs/:id", s.deleteBlog, admin...)

	api.POST("/testimonials", s.createTestimonial, admin...)
	api.PUT("/testimonials/:id", s.updateTestimonial, admin...)
	api.DELETE("/testimonials/:id", s.deleteTestimonial, admin...)

	api.POST("/case-studies", s.createCaseStudy, admin...)
	api.PUT("/case-studies/:id", s.updateCaseStudy, admin...)
	api.DELETE("/case-studies/:id", s.deleteCaseStudy, admin...)

	api.GET("/admin/dashboard/stats", s.dashboardStats, admin...)
	api.GET("/admin/dashboard/analytics", s.dashboardAnalytics, admin...)
}
