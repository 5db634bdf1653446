package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"medassist-chatbot-backend/config"
)

// VoiceService talks to the local speech service over HTTP. Listen is the
// fallback when a turn arrives with no text; Speak mirrors every reply to
// audio and never reports failure to the caller.
type VoiceService struct {
	baseURL       string
	enabled       bool
	listenTimeout float64
	httpClient    *http.Client
}

func NewVoiceService(cfg config.VoiceConfig) *VoiceService {
	return &VoiceService{
		baseURL:       cfg.BaseURL,
		enabled:       cfg.Enabled,
		listenTimeout: cfg.ListenTimeout.Seconds(),
		httpClient: &http.Client{
			Timeout: cfg.SpeakTimeout,
		},
	}
}

type listenRequest struct {
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

type listenResponse struct {
	Text string `json:"text"`
}

// Listen blocks on the speech service's microphone capture and returns the
// transcribed text, lower-cased. An empty string means no speech was
// detected within the timeout. Disabled voice reports silence.
func (s *VoiceService) Listen(ctx context.Context) (string, error) {
	if !s.enabled {
		return "", nil
	}

	payload, err := json.Marshal(listenRequest{TimeoutSeconds: s.listenTimeout})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/listen", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("speech service error: %s - %s", resp.Status, string(body))
	}

	var result listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return strings.ToLower(result.Text), nil
}

type speakRequest struct {
	Text string `json:"text"`
}

// Speak sends the reply text for synthesis, fire-and-forget. Failures are
// logged and swallowed.
func (s *VoiceService) Speak(text string) {
	if !s.enabled || text == "" {
		return
	}

	go func() {
		payload, err := json.Marshal(speakRequest{Text: text})
		if err != nil {
			log.Printf("Failed to encode speak request: %v", err)
			return
		}

		resp, err := s.httpClient.Post(s.baseURL+"/speak", "application/json", bytes.NewBuffer(payload))
		if err != nil {
			log.Printf("Failed to reach speech service: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("Speech service returned %s for speak request", resp.Status)
		}
	}()
}
