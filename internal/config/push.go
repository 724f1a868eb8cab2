package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
)

const defaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

type ExpoConfig struct {
	APIURL string
}

func NewExpoConfig() *ExpoConfig {
	apiURL := os.Getenv("EXPO_PUSH_URL")
	if apiURL == "" {
		apiURL = defaultExpoPushURL
	}
	return &ExpoConfig{APIURL: apiURL}
}

type PushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// PushService delivers notifications to devices through the Expo push
// gateway. Tokens are the opaque device tokens stored on user documents.
type PushService struct {
	Config *ExpoConfig
}

func NewPushService(lc fx.Lifecycle, config *ExpoConfig) *PushService {
	service := &PushService{Config: config}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Push service initialized")
			return nil
		},
	})
	return service
}

func (p *PushService) Send(ctx context.Context, token, title, body string) error {
	payload := PushMessage{
		To:    token,
		Title: title,
		Body:  body,
		Sound: "default",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("Failed to marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.Config.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("Failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("Failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errorResponse map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorResponse)
		return fmt.Errorf("Failed to send push notification, status code: %d, error: %v", resp.StatusCode, errorResponse)
	}

	return nil
}
