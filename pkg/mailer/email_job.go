package mailer

import "github.com/oksasatya/records-api/pkg/mailer/templates"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (rendered by the worker) or Subject with Text/HTML is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// NewWelcomeJob builds the job sent after a successful registration.
func NewWelcomeJob(appName, email, name string) EmailJob {
	return EmailJob{
		To:       email,
		Template: templates.Welcome,
		Data: map[string]any{
			"AppName": appName,
			"Email":   email,
			"Name":    name,
		},
	}
}
