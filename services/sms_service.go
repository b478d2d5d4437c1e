package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

type smsPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendSMS delivers a text message through the configured gateway.
// When SMS_API_URL is unset the message is logged instead, which keeps
// local development working without a gateway account.
func SendSMS(phone, message string) error {
	apiURL := os.Getenv("SMS_API_URL")
	apiKey := os.Getenv("SMS_API_KEY")

	if apiURL == "" {
		log.Printf("⚠️ SMS gateway not configured, would send to %s: %s", phone, message)
		return nil
	}

	body, err := json.Marshal(smsPayload{To: phone, Message: message})
	if err != nil {
		return fmt.Errorf("failed to encode SMS payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := smsClient.Do(req)
	if err != nil {
		return fmt.Errorf("SMS gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}

	log.Printf("✅ SMS sent to %s", phone)
	return nil
}

// SendOTPSMS formats and delivers a verification code.
func SendOTPSMS(phone, code string) error {
	return SendSMS(phone, fmt.Sprintf("Your ant2025 verification code is %s. It expires in 5 minutes.", code))
}
