package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/biztime"
)

// deadlineLayout renders SLA deadlines in the business timezone for
// citizen-facing emails.
const deadlineLayout = "02 Jan 2006 15:04 MST"

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for tracking links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendWelcome(ctx context.Context, email, name string) error {
	subject := "Welcome to JanNivaran"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your JanNivaran account has been created.</p>
			<p>You can now file civic complaints and track their resolution at:</p>
			<p><a href="%s">%s</a></p>
			<p>If you didn't create this account, please ignore this email.</p>
		</body>
		</html>
	`, name, s.config.BaseURL, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your JanNivaran account has been created.

You can now file civic complaints and track their resolution at:
%s

If you didn't create this account, please ignore this email.
	`, name, s.config.BaseURL)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendComplaintSubmitted(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error {
	trackingURL := s.trackingURL(event.TrackingID)

	subject := fmt.Sprintf("Complaint %s Received", event.TrackingID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Complaint Has Been Received</h2>
			<p>Your complaint "%s" has been registered with tracking ID <strong>%s</strong>.</p>
			<p>Category: %s<br>Priority: %s</p>
			<p>You can check its status anytime at:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, event.Title, event.TrackingID, event.Category, event.Priority, trackingURL, trackingURL)

	plainBody := fmt.Sprintf(`
Your Complaint Has Been Received

Your complaint "%s" has been registered with tracking ID %s.

Category: %s
Priority: %s

You can check its status anytime at:
%s
	`, event.Title, event.TrackingID, event.Category, event.Priority, trackingURL)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendComplaintRouted(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error {
	trackingURL := s.trackingURL(event.TrackingID)

	subject := fmt.Sprintf("Complaint %s Assigned to %s", event.TrackingID, event.Department)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Complaint Has Been Routed</h2>
			<p>Complaint <strong>%s</strong> has been assigned to the <strong>%s</strong> for resolution.</p>
			<p>Track its progress at:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, event.TrackingID, event.Department, trackingURL, trackingURL)

	plainBody := fmt.Sprintf(`
Your Complaint Has Been Routed

Complaint %s has been assigned to the %s for resolution.

Track its progress at:
%s
	`, event.TrackingID, event.Department, trackingURL)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendStatusChanged(ctx context.Context, email string, event complaint.ComplaintStatusChangedEvent, resolutionNoteHTML string) error {
	trackingURL := s.trackingURL(event.TrackingID)

	noteHTMLSection := ""
	notePlainSection := ""
	if resolutionNoteHTML != "" {
		// resolutionNoteHTML is already sanitized by the markdown service.
		noteHTMLSection = fmt.Sprintf("<h3>Resolution Note</h3>%s", resolutionNoteHTML)
		notePlainSection = "\nA resolution note was added. View it at the tracking link below.\n"
	}

	subject := fmt.Sprintf("Complaint %s: %s", event.TrackingID, event.NewStatus)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Complaint Status Updated</h2>
			<p>The status of complaint <strong>%s</strong> changed from <strong>%s</strong> to <strong>%s</strong>.</p>
			%s
			<p>View the full history at:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, event.TrackingID, event.OldStatus, event.NewStatus, noteHTMLSection, trackingURL, trackingURL)

	plainBody := fmt.Sprintf(`
Complaint Status Updated

The status of complaint %s changed from %s to %s.
%s
View the full history at:
%s
	`, event.TrackingID, event.OldStatus, event.NewStatus, notePlainSection, trackingURL)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendSLAWarning(ctx context.Context, email string, event complaint.SLAWarningEvent) error {
	trackingURL := s.trackingURL(event.TrackingID)
	deadline := biztime.FormatInBizTimezone(event.Deadline, deadlineLayout)

	subject := fmt.Sprintf("Complaint %s Approaching Resolution Deadline", event.TrackingID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Resolution Deadline Approaching</h2>
			<p>Complaint <strong>%s</strong> is due for resolution by <strong>%s</strong> (about %.0f hours remaining).</p>
			<p>If the deadline passes, the complaint will be escalated automatically to a higher authority.</p>
			<p>Check the latest status at:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, event.TrackingID, deadline, event.RemainingHours, trackingURL, trackingURL)

	plainBody := fmt.Sprintf(`
Resolution Deadline Approaching

Complaint %s is due for resolution by %s (about %.0f hours remaining).

If the deadline passes, the complaint will be escalated automatically to a higher authority.

Check the latest status at:
%s
	`, event.TrackingID, deadline, event.RemainingHours, trackingURL)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendSLABreach(ctx context.Context, email string, event complaint.SLABreachedEvent) error {
	trackingURL := s.trackingURL(event.TrackingID)
	deadline := biztime.FormatInBizTimezone(event.Deadline, deadlineLayout)

	subject := fmt.Sprintf("Complaint %s Escalated", event.TrackingID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Complaint Has Been Escalated</h2>
			<p>Complaint <strong>%s</strong> was not resolved by its deadline of <strong>%s</strong>.</p>
			<p>It has been escalated to a higher authority for priority attention.</p>
			<p>Follow the escalation at:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, event.TrackingID, deadline, trackingURL, trackingURL)

	plainBody := fmt.Sprintf(`
Your Complaint Has Been Escalated

Complaint %s was not resolved by its deadline of %s.

It has been escalated to a higher authority for priority attention.

Follow the escalation at:
%s
	`, event.TrackingID, deadline, trackingURL)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) trackingURL(trackingID string) string {
	return fmt.Sprintf("%s/track/%s", s.config.BaseURL, trackingID)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
