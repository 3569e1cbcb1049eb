package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/registration"
)

type templateData struct {
	RegistrationID string
	Email          string
	IsCIT          bool
	Payment        *registration.PaymentDetails
	PassName       string
	Events         []catalog.Event
	Workshops      []catalog.Workshop
	NonTechEvents  []catalog.Event
	DashboardURL   string
	ContactAddr    string
}

func newTemplateData(reg *registration.Registration, cat *catalog.Catalog, frontendURL, contactAddr string) templateData {
	data := templateData{
		RegistrationID: reg.RegistrationID,
		Email:          reg.UserEmail,
		IsCIT:          catalog.IsDiscountEligible(reg.UserEmail),
		Payment:        reg.Payment,
		DashboardURL:   strings.TrimRight(frontendURL, "/") + "/dashboard",
		ContactAddr:    contactAddr,
	}

	if reg.Request.SelectedPass != nil {
		if p, ok := cat.PassByID(*reg.Request.SelectedPass); ok {
			data.PassName = p.Name
		}
	}
	for _, id := range reg.Request.SelectedEvents {
		if e, ok := cat.EventByID(id); ok {
			data.Events = append(data.Events, e)
		}
	}
	for _, id := range reg.Request.SelectedWorkshops {
		if w, ok := cat.WorkshopByID(id); ok {
			data.Workshops = append(data.Workshops, w)
		}
	}
	for _, id := range reg.Request.SelectedNonTechEvents {
		if e, ok := cat.EventByID(id); ok {
			data.NonTechEvents = append(data.NonTechEvents, e)
		}
	}
	return data
}

var htmlTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #667eea; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #667eea; }
    .item { padding: 10px; border-bottom: 1px solid #eee; }
    .item:last-child { border-bottom: none; }
    .amount { font-size: 24px; font-weight: bold; color: #667eea; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Registration Confirmed!</h1>
    <h2>Tech Fiesta 2025</h2>
  </div>
  <div class="content">
    <div class="details">
      <h3>Registration Details</h3>
      <p><strong>Registration ID:</strong> {{.RegistrationID}}</p>
      <p><strong>Email:</strong> {{.Email}}</p>
      <p><strong>Student Type:</strong> {{if .IsCIT}}CIT Student{{else}}Regular Student{{end}}</p>
      {{if .Payment}}
      <p><strong>Payment ID:</strong> {{.Payment.PaymentID}}</p>
      <p><strong>Amount Paid:</strong> <span class="amount">&#8377;{{.Payment.Amount}}</span></p>
      <p><strong>Payment Status:</strong> Verified</p>
      {{else}}
      <p><strong>Payment:</strong> Not required</p>
      {{end}}
    </div>
    {{if .PassName}}
    <div class="details">
      <h3>Selected Pass</h3>
      <div class="item"><strong>{{.PassName}}</strong></div>
    </div>
    {{end}}
    {{if .Events}}
    <div class="details">
      <h3>Registered Tech Events</h3>
      {{range .Events}}<div class="item"><strong>{{.Title}}</strong></div>{{end}}
    </div>
    {{end}}
    {{if .Workshops}}
    <div class="details">
      <h3>Registered Workshops</h3>
      {{range .Workshops}}<div class="item"><strong>{{.Title}}</strong></div>{{end}}
    </div>
    {{end}}
    {{if .NonTechEvents}}
    <div class="details">
      <h3>Non-Tech Events (Pay on Arrival)</h3>
      {{range .NonTechEvents}}<div class="item"><strong>{{.Title}}</strong> &mdash; payment required at venue</div>{{end}}
    </div>
    {{end}}
    <div class="details">
      <h3>Important Instructions</h3>
      <ul>
        <li>Save this email for your records</li>
        <li>Bring a valid ID card to all events</li>
        <li>QR codes are required for event entry</li>
        <li>Non-tech events require payment at the venue</li>
      </ul>
      <p>QR codes for your registered events are available in your <a href="{{.DashboardURL}}">dashboard</a>.</p>
    </div>
  </div>
  <div class="footer">
    <p>For any queries, contact us at {{.ContactAddr}}</p>
    <p>&copy; 2025 Tech Fiesta - Chennai Institute of Technology</p>
  </div>
</div>
</body>
</html>
`))

var textTmpl = texttemplate.Must(texttemplate.New("confirmation_text").Parse(`Tech Fiesta 2025 - Registration Confirmed

Registration ID: {{.RegistrationID}}
Email: {{.Email}}
{{if .Payment}}Amount Paid: Rs.{{.Payment.Amount}}
Payment ID: {{.Payment.PaymentID}}
{{else}}Payment: not required
{{end}}{{if .PassName}}Pass: {{.PassName}}
{{end}}{{range .Events}}Tech event: {{.Title}}
{{end}}{{range .Workshops}}Workshop: {{.Title}}
{{end}}{{range .NonTechEvents}}Non-tech event (pay at venue): {{.Title}}
{{end}}
Your registration has been confirmed successfully!
Visit your dashboard for QR codes and more details: {{.DashboardURL}}

For queries, contact: {{.ContactAddr}}
`))

func renderConfirmation(reg *registration.Registration, cat *catalog.Catalog, frontendURL, contactAddr string) (htmlBody, textBody string, err error) {
	data := newTemplateData(reg, cat, frontendURL, contactAddr)

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render html body: %w", err)
	}
	var text bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to render text body: %w", err)
	}
	return html.String(), text.String(), nil
}
