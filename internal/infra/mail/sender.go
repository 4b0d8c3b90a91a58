package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From string
	To   string // caixa do time de vendas
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

const leadAlertTemplate = `Hello team,

{{if eq .Event "lead.created" -}}
A new lead just entered the pipeline:

  Name:    {{.Name}}
  Company: {{if .Company}}{{.Company}}{{else}}-{{end}}
  Status:  {{.Status}}
  Source:  {{.Source}}
{{- else -}}
Instagram sync finished: {{.SyncedCount}} new lead(s) imported into the pipeline.
{{- end}}

Open the dashboard to follow up.

— Sales Machine
`

// NotifyLeadEvent implementa queue.LeadNotifier
func (s *EmailSender) NotifyLeadEvent(payload queue.LeadEventPayload) error {
	t, err := template.New("lead_alert").Parse(leadAlertTemplate)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, payload); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	subject := fmt.Sprintf("New lead in the pipeline: %s", payload.Name)
	if payload.Event == queue.EventInstagramSync {
		subject = fmt.Sprintf("Instagram sync: %d leads imported 📸", payload.SyncedCount)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
