package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nruhp/newskprinter/internal/storage"
)

const validQuoteBody = `{
	"name": "Ravi Kumar",
	"email": "ravi@example.com",
	"phone": "+91 98765 43211",
	"company": "Kumar Traders",
	"boxType": "5-ply",
	"quantity": 500,
	"length": 20,
	"width": 15,
	"height": 10,
	"printing": true,
	"printColors": "2",
	"useCase": "E-commerce shipping"
}`

func TestSubmitQuote(t *testing.T) {
	srv, store, mail := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/quotes", validQuoteBody, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, true, body["success"])
	require.Contains(t, body["message"], "submitted successfully")

	require.Len(t, store.quotes, 1)
	saved := store.quotes[0]
	require.Equal(t, storage.QuoteStatusPending, saved.Status)
	require.NotEmpty(t, saved.Reference)
	require.Equal(t, "Ravi Kumar", saved.Name)
	require.Equal(t, 500, saved.Quantity)

	// Email dispatch happens off the request goroutine.
	select {
	case q := <-mail.quotes:
		require.Equal(t, saved.Reference, q.Reference)
	case <-time.After(2 * time.Second):
		t.Fatal("quote notification was never sent")
	}
}

func TestSubmitQuote_MissingFields(t *testing.T) {
	srv, store, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/quotes", `{}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, false, body["success"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Equal(t, []any{"name", "email", "phone", "boxType", "quantity"}, errs)
	require.Empty(t, store.quotes)
}

func TestSubmitQuote_InvalidPhone(t *testing.T) {
	srv, store, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/quotes", `{
		"name": "A", "email": "a@b.com", "phone": "1234567890",
		"boxType": "3-ply", "quantity": 10
	}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := decodeEnvelope(t, rec)["errors"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, errs, "phone")
	require.Empty(t, store.quotes)
}

func TestSubmitQuote_RateLimited(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.rateLimited = true

	rec := doJSON(srv, http.MethodPost, "/api/quotes", validQuoteBody, "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Empty(t, store.quotes)
}

func TestListQuotes_RequiresAuth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/api/quotes", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListQuotes(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.quotes = []storage.Quote{
		{ID: 1, Name: "A", Status: storage.QuoteStatusPending},
		{ID: 2, Name: "B", Status: storage.QuoteStatusQuoted},
	}

	rec := doJSON(srv, http.MethodGet, "/api/quotes", "", adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.EqualValues(t, 2, body["count"])
}

func TestGetQuote(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.quotes = []storage.Quote{{ID: 7, Name: "A", Status: storage.QuoteStatusPending}}

	rec := doJSON(srv, http.MethodGet, "/api/quotes/7", "", adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decodeEnvelope(t, rec))
	require.Equal(t, "A", data["name"])

	missing := doJSON(srv, http.MethodGet, "/api/quotes/99", "", adminToken(t))
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestUpdateQuote(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.quotes = []storage.Quote{{ID: 7, Name: "A", Status: storage.QuoteStatusPending}}

	rec := doJSON(srv, http.MethodPut, "/api/quotes/7",
		`{"status":"quoted","quotedPrice":41650}`, adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, storage.QuoteStatusQuoted, store.quotes[0].Status)
	require.NotNil(t, store.quotes[0].QuotedPrice)
	require.InDelta(t, 41650, *store.quotes[0].QuotedPrice, 1e-9)
}

func TestUpdateQuote_UnknownStatus(t *testing.T) {
	srv, store, _ := newTestServer(t)
	store.quotes = []storage.Quote{{ID: 7, Status: storage.QuoteStatusPending}}

	rec := doJSON(srv, http.MethodPut, "/api/quotes/7", `{"status":"archived"}`, adminToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, storage.QuoteStatusPending, store.quotes[0].Status)
}

func TestDeleteQuote_NotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodDelete, "/api/quotes/99", "", adminToken(t))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportQuotes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/api/quotes/export", "", adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
}
