package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nruhp/newskprinter/internal/config"
	"github.com/nruhp/newskprinter/internal/storage"
)

func TestRenderQuoteAdmin(t *testing.T) {
	length, width, height := 12.0, 10.0, 8.0
	quote := storage.Quote{
		Name:        "Asha Patel",
		Email:       "asha@example.com",
		Phone:       "+91 9876500000",
		Company:     "Patel Exports",
		BoxType:     "5-ply",
		Quantity:    500,
		Length:      &length,
		Width:       &width,
		Height:      &height,
		Printing:    true,
		PrintColors: "2",
	}

	html := renderQuoteAdmin(quote, "https://skprinters.in")

	assert.Contains(t, html, "Asha Patel")
	assert.Contains(t, html, "5-ply")
	assert.Contains(t, html, "500 units")
	assert.Contains(t, html, "12 × 10 × 8 in")
	assert.Contains(t, html, "Yes - 2 colors")
	assert.Contains(t, html, "https://skprinters.in/admin/quotes")
}

func TestRenderQuoteReply_PlainOrder(t *testing.T) {
	quote := storage.Quote{
		Name:     "Ravi",
		BoxType:  "3-ply",
		Quantity: 100,
	}

	html := renderQuoteReply(quote)

	assert.Contains(t, html, "Dear Ravi")
	assert.Contains(t, html, "No printing")
	assert.NotContains(t, html, "Special Requirements")
}

func TestRenderContactAdmin_EscapesHTML(t *testing.T) {
	contact := storage.Contact{
		Name:    "<script>alert(1)</script>",
		Email:   "spam@example.com",
		Subject: "Hello",
		Message: "Need boxes",
	}

	html := renderContactAdmin(contact, "https://skprinters.in")

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestMailerDisabledWithoutHost(t *testing.T) {
	m := New(config.SMTPConfig{AdminEmail: "admin@skprinters.in"}, zap.NewNop())

	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendContactNotification(storage.Contact{}))
	assert.NoError(t, m.SendQuoteNotification(storage.Quote{}))
}
