package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/nruhp/newskprinter/internal/storage"
)

// The original site shipped heavily styled HTML mail; the content here is
// the same, the chrome is trimmed to what renders everywhere.

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
<h2>SK Printers — New Contact Message</h2>
<table cellpadding="6">
  <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Email</b></td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
  <tr><td><b>Subject</b></td><td>{{.Subject}}</td></tr>
</table>
<h3>Message</h3>
<p>{{.Message}}</p>
<p><a href="{{.AdminURL}}">View in Admin Panel</a></p>
`))

var contactReplyTmpl = template.Must(template.New("contactReply").Parse(`
<h2>SK Printers</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for contacting SK Printers. We have received your message and
will get back to you within <b>24 hours</b>.</p>
<p><b>Subject:</b> {{.Subject}}<br><b>Message:</b> {{.Message}}</p>
<p>For urgent inquiries, please call us directly: <b>+91 98765-43210</b></p>
`))

var quoteAdminTmpl = template.Must(template.New("quoteAdmin").Parse(`
<h2>SK Printers — New Quote Request</h2>
<h3>Customer Information</h3>
<table cellpadding="6">
  <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Email</b></td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
  <tr><td><b>Company</b></td><td>{{.Company}}</td></tr>
</table>
<h3>Box Requirements</h3>
<table cellpadding="6">
  <tr><td><b>Box Type</b></td><td>{{.BoxType}}</td></tr>
  <tr><td><b>Quantity</b></td><td>{{.Quantity}} units</td></tr>
  <tr><td><b>Dimensions</b></td><td>{{.Dimensions}}</td></tr>
  <tr><td><b>Printing</b></td><td>{{.PrintingLine}}</td></tr>
  {{if .SpecialRequirements}}<tr><td><b>Special Requirements</b></td><td>{{.SpecialRequirements}}</td></tr>{{end}}
</table>
<p><a href="{{.AdminURL}}">View in Admin Panel</a></p>
`))

var quoteReplyTmpl = template.Must(template.New("quoteReply").Parse(`
<h2>SK Printers</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for your quote request! We have received your requirements and
our team will prepare a customized quote for you within <b>24-48 hours</b>.</p>
<p><b>Box Type:</b> {{.BoxType}}<br>
<b>Quantity:</b> {{.Quantity}} units<br>
<b>Printing:</b> {{.PrintingLine}}</p>
<p>For urgent requirements, contact us directly: <b>+91 98765-43210</b><br>
Email: <a href="mailto:info@skprinters.com">info@skprinters.com</a></p>
`))

func renderContactAdmin(contact storage.Contact, siteURL string) string {
	return render(contactAdminTmpl, struct {
		storage.Contact
		AdminURL string
	}{contact, siteURL + "/admin/contacts"})
}

func renderContactReply(contact storage.Contact) string {
	return render(contactReplyTmpl, contact)
}

type quoteView struct {
	storage.Quote
	Dimensions   string
	PrintingLine string
	AdminURL     string
}

func renderQuoteAdmin(quote storage.Quote, siteURL string) string {
	return render(quoteAdminTmpl, quoteView{
		Quote:        quote,
		Dimensions:   formatDimensions(quote),
		PrintingLine: formatPrinting(quote),
		AdminURL:     siteURL + "/admin/quotes",
	})
}

func renderQuoteReply(quote storage.Quote) string {
	return render(quoteReplyTmpl, quoteView{
		Quote:        quote,
		Dimensions:   formatDimensions(quote),
		PrintingLine: formatPrinting(quote),
	})
}

func render(tmpl *template.Template, data any) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		// Templates are static and data is plain structs; an execute
		// failure is a programming error.
		panic(err)
	}
	return sb.String()
}

func formatDimensions(quote storage.Quote) string {
	format := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%g", *v)
	}
	return fmt.Sprintf("%s × %s × %s in", format(quote.Length), format(quote.Width), format(quote.Height))
}

func formatPrinting(quote storage.Quote) string {
	if !quote.Printing {
		return "No printing"
	}
	if quote.PrintColors == "" {
		return "Yes"
	}
	return fmt.Sprintf("Yes - %s colors", quote.PrintColors)
}
