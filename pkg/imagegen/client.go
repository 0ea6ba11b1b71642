package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Generator produces a composite visualization from a tile photo, a home
// photo and a prompt, returning the URL of the generated image.
type Generator interface {
	Generate(ctx context.Context, tileURL, homeURL, prompt string) (string, error)
}

// Client calls the external image-generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client for the generation service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("generation service base url required")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

type generateRequest struct {
	TileUrl string `json:"tile_url"`
	HomeUrl string `json:"home_url,omitempty"`
	Prompt  string `json:"prompt"`
}

type generateResponse struct {
	ImageUrl string `json:"image_url"`
	Error    string `json:"error"`
}

// Generate performs a single request/response round trip. There is no retry;
// the caller decides whether a failure reaches the end user.
func (c *Client) Generate(ctx context.Context, tileURL, homeURL, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		TileUrl: tileURL,
		HomeUrl: homeURL,
		Prompt:  prompt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out generateResponse
	if resp.StatusCode >= 400 {
		_ = json.NewDecoder(resp.Body).Decode(&out)
		if out.Error != "" {
			return "", fmt.Errorf("generation service error: %s", out.Error)
		}
		return "", fmt.Errorf("generation service error: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ImageUrl == "" {
		return "", fmt.Errorf("empty response from generation service")
	}
	return out.ImageUrl, nil
}
