package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nruhp/newskprinter/internal/storage"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Server) submitContact(c echo.Context) error {
	ctx := c.Request().Context()

	if over, err := s.store.CheckRateLimit(ctx, c.RealIP(), "contact", submitLimit, submitWindow); err == nil && over {
		return respondError(c, http.StatusTooManyRequests, "Too many submissions, please try again later")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}

	missing := missingFields([]requiredField{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	})
	if len(missing) > 0 {
		return respondFieldErrors(c, "Please fill all required fields", missing)
	}
	if !isValidEmail(req.Email) {
		return respondFieldErrors(c, "Invalid field values", map[string]string{"email": "not a valid email address"})
	}

	contact := storage.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.store.CreateContact(ctx, &contact); err != nil {
		return s.storageError(c, err, "contact")
	}

	go func(ct storage.Contact) {
		if err := s.contacts.SendContactNotification(ct); err != nil {
			s.logger.Error("Contact email sending failed",
				zap.Int64("contact_id", ct.ID),
				zap.Error(err))
		}
		s.telegram.NotifyNewContact(ct)
	}(contact)

	return respondMessage(c, http.StatusCreated,
		"Your message has been sent successfully! We will get back to you within 24 hours.",
		contact)
}

func (s *Server) listContacts(c echo.Context) error {
	contacts, err := s.store.ListContacts(c.Request().Context())
	if err != nil {
		return s.storageError(c, err, "contacts")
	}
	return respondList(c, contacts, len(contacts))
}

type contactPatch struct {
	IsRead *bool `json:"isRead"`
}

func (s *Server) updateContact(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	var patch contactPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request payload")
	}
	read := true
	if patch.IsRead != nil {
		read = *patch.IsRead
	}

	contact, err := s.store.MarkContactRead(c.Request().Context(), id, read)
	if err != nil {
		return s.storageError(c, err, "contact")
	}
	return respondData(c, http.StatusOK, contact)
}

func (s *Server) deleteContact(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid ID")
	}

	if err := s.store.DeleteContact(c.Request().Context(), id); err != nil {
		return s.storageError(c, err, "contact")
	}
	return respondMessage(c, http.StatusOK, "Contact deleted successfully", nil)
}
