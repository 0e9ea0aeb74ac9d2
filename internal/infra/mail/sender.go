package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/expo-visitors/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendFollowUpReminder avisa o employee que o follow-up combinado com o
// visitor está chegando. A data vai no e-mail exatamente como foi digitada.
func (s *EmailSender) SendFollowUpReminder(payload queue.FollowUpPayload) error {
	data := FollowUpEmailData{
		EmployeeName: payload.EmployeeName,
		VisitorName:  payload.VisitorName,
		VisitorPhone: payload.VisitorPhone,
		Interests:    payload.Interests,
		FollowUpDate: payload.FollowUpDate,
	}

	tmplPath := filepath.Join("templates", "followup.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@expovisitors.app")
	m.SetHeader("To", payload.EmployeeEmail)
	m.SetHeader("Subject", fmt.Sprintf("Follow-up com %s em %s", payload.VisitorName, payload.FollowUpDate))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
