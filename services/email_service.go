// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"sailshare-api/config"
)

// EmailService sends transactional email over SMTP. When SMTP is not
// configured the message is logged to the console instead, so primary
// operations never fail on a missing mail setup.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}

	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	} else {
		fmt.Println("SMTP not configured, emails will be logged to the console")
	}

	return service
}

func (es *EmailService) send(to, subject, htmlBody, textBody string) error {
	if es.dialer == nil {
		// Console fallback
		fmt.Printf("[EMAIL:FALLBACK] To: %s\n", to)
		fmt.Printf("[EMAIL:FALLBACK] Subject: %s\n", subject)
		fmt.Printf("[EMAIL:FALLBACK] Body: %s\n", textBody)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendVerificationEmail mails the account verification link. The token is
// valid for 24 hours.
func (es *EmailService) SendVerificationEmail(email, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", es.config.ClientURL, token)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verify your email</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #0a6ebd; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .btn { display: inline-block; background: #0a6ebd; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>SailShare</h1>
            <p>Email Verification</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Welcome to SailShare! Please verify your email address to complete your registration.</p>
            <p><a class="btn" href="%s">Verify my email</a></p>
            <p><small>This link will expire in 24 hours.</small></p>
            <p>If you didn't create an account with SailShare, please ignore this email.</p>
            <p><strong>The SailShare Team</strong></p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, name, link)

	textBody := fmt.Sprintf(`Hello %s!

Welcome to SailShare! Please verify your email address to complete your registration.

Verification link: %s

This link will expire in 24 hours.

If you didn't create an account with SailShare, please ignore this email.

The SailShare Team
`, name, link)

	return es.send(email, "SailShare - Verify your email", htmlBody, textBody)
}

// SendOwnerContactEmail notifies a listing owner about a new inquiry.
func (es *EmailService) SendOwnerContactEmail(ownerEmail, ownerName, boatName, senderName, senderEmail, body string) error {
	subject := fmt.Sprintf("New message about your boat \"%s\"", boatName)

	htmlBody := fmt.Sprintf(`
<p>Hello %s,</p>
<p>You have received a new message through SailShare about your boat <strong>%s</strong>.</p>
<p><strong>From:</strong> %s &lt;%s&gt;</p>
<p><strong>Message:</strong></p>
<blockquote>%s</blockquote>
<p>— The SailShare Team</p>`, ownerName, boatName, senderName, senderEmail, body)

	textBody := fmt.Sprintf(`Hello %s,

You have received a new message through SailShare about your boat %s.

From: %s <%s>

Message:
%s

— The SailShare Team
`, ownerName, boatName, senderName, senderEmail, body)

	return es.send(ownerEmail, subject, htmlBody, textBody)
}

// SendBookingConfirmedEmail notifies a renter after a successful (mock) payment.
func (es *EmailService) SendBookingConfirmedEmail(email, name, boatName string, totalAmount float64) error {
	subject := fmt.Sprintf("Booking confirmed - %s", boatName)

	htmlBody := fmt.Sprintf(`
<p>Hello %s,</p>
<p>Your booking for <strong>%s</strong> is confirmed.</p>
<p>Total amount: %.2f EUR</p>
<p>Fair winds!</p>
<p>— The SailShare Team</p>`, name, boatName, totalAmount)

	textBody := fmt.Sprintf(`Hello %s,

Your booking for %s is confirmed.

Total amount: %.2f EUR

Fair winds!
— The SailShare Team
`, name, boatName, totalAmount)

	return es.send(email, subject, htmlBody, textBody)
}
