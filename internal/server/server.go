// Package server is the HTTP layer: public content, estimate, quote and
// contact endpoints plus the JWT-gated admin API.
package server

import (
	"bytes"
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/nruhp/newskprinter/internal/config"
	"github.com/nruhp/newskprinter/internal/storage"
)

// Store is the persistence surface the handlers need. Satisfied by
// *storage.PostgresStorage; tests substitute fakes.
type Store interface {
	CreateQuote(ctx context.Context, quote *storage.Quote) error
	ListQuotes(ctx context.Context) ([]storage.Quote, error)
	GetQuoteByID(ctx context.Context, id int64) (*storage.Quote, error)
	UpdateQuote(ctx context.Context, id int64, patch storage.QuotePatch) (*storage.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
	ExportQuotesToExcel(ctx context.Context) (*bytes.Buffer, error)

	CreateContact(ctx context.Context, contact *storage.Contact) error
	ListContacts(ctx context.Context) ([]storage.Contact, error)
	MarkContactRead(ctx context.Context, id int64, read bool) (*storage.Contact, error)
	DeleteContact(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, product *storage.Product) error
	ListProducts(ctx context.Context, filter storage.ProductFilter) ([]storage.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*storage.Product, error)
	UpdateProduct(ctx context.Context, id int64, product *storage.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	CreateBlog(ctx context.Context, blog *storage.Blog) error
	ListBlogs(ctx context.Context, filter storage.BlogFilter) ([]storage.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*storage.Blog, error)
	GetBlogByID(ctx context.Context, id int64) (*storage.Blog, error)
	UpdateBlog(ctx context.Context, id int64, blog *storage.Blog) error
	DeleteBlog(ctx context.Context, id int64) error

	CreateTestimonial(ctx context.Context, t *storage.Testimonial) error
	ListTestimonials(ctx context.Context, featuredOnly, activeOnly bool) ([]storage.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, t *storage.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int64) error

	CreateCaseStudy(ctx context.Context, cs *storage.CaseStudy) error
	ListCaseStudies(ctx context.Context, publishedOnly bool) ([]storage.CaseStudy, error)
	GetCaseStudyBySlug(ctx context.Context, slug string) (*storage.CaseStudy, error)
	UpdateCaseStudy(ctx context.Context, id int64, cs *storage.CaseStudy) error
	DeleteCaseStudy(ctx context.Context, id int64) error

	GetUserByEmail(ctx context.Context, email string) (*storage.User, error)

	GetDashboardStats(ctx context.Context) (*storage.DashboardStats, error)
	GetAnalytics(ctx context.Context, periodDays int) (*storage.Analytics, error)

	CheckRateLimit(ctx context.Context, clientKey, action string, limit int64, window time.Duration) (bool, error)
}

// QuoteNotifier and ContactNotifier deliver best-effort notifications;
// handlers fire them in goroutines and only log failures.
type QuoteNotifier interface {
	SendQuoteNotification(quote storage.Quote) error
}

type ContactNotifier interface {
	SendContactNotification(contact storage.Contact) error
}

type TelegramNotifier interface {
	NotifyNewQuote(quote storage.Quote)
	NotifyNewContact(contact storage.Contact)
}

type Server struct {
	echo     *echo.Echo
	store    Store
	mailer   QuoteNotifier
	contacts ContactNotifier
	telegram TelegramNotifier
	cfg      *config.Config
	logger   *zap.Logger
}

type Mailer interface {
	QuoteNotifier
	ContactNotifier
}

func New(store Store, mail Mailer, telegram TelegramNotifier, cfg *config.Config, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:     e,
		store:    store,
		mailer:   mail,
		contacts: mail,
		telegram: telegram,
		cfg:      cfg,
		logger:   logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start(addr string) error {
	s.logger.Info("HTTP server listening", zap.String("addr", addr))
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
