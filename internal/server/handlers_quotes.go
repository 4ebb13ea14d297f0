package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nruhp/newskprinter/internal/storage"
)

const (
	submitLimit  = 5
	submitWindow = time.Hour
)

type quoteRequest struct {
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Company             string   `json:"company"`
	BoxType             string   `json:"boxType"`
	Quantity            int      `json:"quantity"`
	Length              *float64 `json:"length"`
	Width               *float64 `json:"width"`
	Height              *float64 `json:"height"`
	Printing            bool     `json:"printing"`
	PrintColors         string   `json:"printColors"`
	UseCase             string   `json:"useCase"`
	SpecialRequirements string   `json:"specialRequirements"`
}

func (s *Server) submitQuote(c echo.Context) error {
	ctx := c.Request().Context()

	if over, err := s.store.CheckRateLimit(ctx, c.RealIP(), "quote", submitLimit, submitWindow); err == nil && over {
		return respondError(c, http.StatusTooManyRequests, "Too many submissions, please try again later")
	}

	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	missing := missingFields([]requiredField{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"boxType", req.BoxType},
	})
	if req.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return respondFieldErrors(c, "Please fill all required fields", missing)
	}
	if !isValidEmail(req.Email) {
		return respondFieldErrors(c, "Invalid field values", map[string]string{"email": "not a valid email address"})
	}
	if !isValidPhoneNumber(req.Phone) {
		return respondFieldErrors(c, "Invalid field values", map[string]string{"phone": "not a valid phone number"})
	}

	quote := storage.Quote{
		Reference:           uuid.NewString(),
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Company:             req.Company,
		BoxType:             req.BoxType,
		Quantity:            req.Quantity,
		Length:              req.Length,
		Width:               req.Width,
		Height:              req.Height,
		Printing:            req.Printing,
		PrintColors:         req.PrintColors,
		UseCase:             req.UseCase,
		SpecialRequirements: req.SpecialRequirements,
	}

	if err := s.store.CreateQuote(ctx, &quote); err != nil {
		return s.storageError(c, err, "quote")
	}

	// Notification delivery must not hold up or fail the response.
	go func(q storage.Quote) {
		if err := s.mailer.SendQuoteNotification(q); err != nil {
			s.logger.Error("Quote email sending failed",
				zap.Int64("quote_id", q.ID),
				zap.Error(err))
		}
		s.telegram.NotifyNewQuote(q)
	}(quote)

	return respondMessage(c, http.StatusCreated,
		"Quote request submitted successfully! We will contact you within 24-48 hours.",
		quote)
}

func (s *Server) listQuotes(c echo.Context) error {
	quotes, err := s.store.ListQuotes(c.Request().Context())
	if err != nil {
		return s.storageError(c, err, "quotes")
	}
	return respondList(c, quotes, len(quotes))
}

func (s *Server) getQuote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	quote, err := s.store.GetQuoteByID(c.Request().Context(), id)
	if err != nil {
		return s.storageError(c, err, "quote")
	}
	return respondData(c, http.StatusOK, quote)
}

func (s *Server) updateQuote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	var patch storage.QuotePatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}
	if patch.Status != nil && !validQuoteStatus(*patch.Status) {
		return respondFieldErrors(c, "Invalid field values", map[string]string{"status": "unknown status"})
	}

	quote, err := s.store.UpdateQuote(c.Request().Context(), id, patch)
	if err != nil {
		return s.storageError(c, err, "quote")
	}
	return respondData(c, http.StatusOK, quote)
}

func (s *Server) deleteQuote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	if err := s.store.DeleteQuote(c.Request().Context(), id); err != nil {
		return s.storageError(c, err, "quote")
	}
	return respondMessage(c, http.StatusOK, "Quote deleted successfully", nil)
}

func (s *Server) exportQuotes(c echo.Context) error {
	buf, err := s.store.ExportQuotesToExcel(c.Request().Context())
	if err != nil {
		return s.storageError(c, err, "quotes")
	}

	filename := "quotes_" + time.Now().Format("20060102_1504") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

func validQuoteStatus(status string) bool {
	switch status {
	case storage.QuoteStatusPending, storage.QuoteStatusReviewed, storage.QuoteStatusQuoted,
		storage.QuoteStatusConverted, storage.QuoteStatusRejected:
		return true
	}
	return false
}
