package utils

import (
	"log"
	"time"

	"aipartners/config"

	"github.com/go-resty/resty/v2"
)

// NotifyNewApplication posts a short summary of a new enrollment to the
// configured webhook (Slack/Discord style). Fire-and-forget; no retries.
func NotifyNewApplication(name, email, courseTitle, paymentMethod string) {
	webhookURL := config.AppConfig.ApplyWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"text": "새 수강 신청: " + name + " (" + email + ") — " + courseTitle + " / " + paymentMethod,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error posting application webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Application webhook returned status %d", resp.StatusCode())
	}
}
