package elevenlabs

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultModelID = "eleven_multilingual_v2"

type ClientConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// VerifyCertificates is resolved once here rather than by
	// catching TLS failures at request time.
	VerifyCertificates bool
}

// Client calls the ElevenLabs text-to-speech API and returns raw audio
// bytes. Base64 encoding for transport happens in the use case, not
// here.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !cfg.VerifyCertificates}
	if !cfg.VerifyCertificates {
		logger.Warn("TLS certificate verification disabled for text-to-speech requests")
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

func (c *Client) Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{Text: text, ModelID: defaultModelID})
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, url.PathEscape(voiceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("text-to-speech request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("text-to-speech request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return nil, fmt.Errorf("text-to-speech request failed with status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}
	return audio, nil
}
