package utils

import (
	"fmt"
	"log"

	"aipartners/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers one HTML mail through SendGrid. Skipped silently when
// no API key is configured (local development).
func sendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" || config.AppConfig.EmailSender == "" {
		return nil
	}

	from := mail.NewEmail("AI파트너스", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Apple SD Gothic Neo', 'Noto Sans KR', sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>AI파트너스</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 AI파트너스. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendApplicationEmail sends the enrollment confirmation after a successful
// submission. Best-effort; failures are logged and do not affect the request.
func SendApplicationEmail(email, name, courseTitle, paymentMethod string) {
	var body string
	if paymentMethod == "voucher" {
		body = fmt.Sprintf(`<p>%s님, <strong>%s</strong> 무료 수강 신청이 완료되었습니다!</p>
			<p>수강 안내는 곧 이메일로 보내드립니다.</p>`, name, courseTitle)
	} else {
		body = fmt.Sprintf(`<p>%s님, <strong>%s</strong> 신청이 접수되었습니다.</p>
			<p>입금 확인 후 수강 안내를 보내드립니다.</p>`, name, courseTitle)
	}

	if err := sendEmail(email, name, "수강 신청이 접수되었습니다", getEmailTemplate("수강 신청 완료", body)); err != nil {
		log.Printf("Error sending application email to %s: %v", email, err)
	}
}
