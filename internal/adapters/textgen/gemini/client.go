package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petster/internal/platform/httpclient"
)

var (
	ErrGeminiNotConfigured = errors.New("gemini client not configured")
	ErrGeminiUnauthorized  = errors.New("gemini unauthorized")
	ErrGeminiUpstream      = errors.New("gemini upstream error")
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"

	apiKeyHeader = "x-goog-api-key"
)

// Config del cliente. APIKey viene de GEMINI_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	apiKey string
	model  string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	hc, err := httpclient.New(httpclient.Config{BaseURL: base, Timeout: timeout})
	if err != nil {
		return nil, err
	}
	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  model,
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.apiKey != ""
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// GenerateContent llama a models/{model}:generateContent y concatena las partes
// de texto del primer candidato. Respuesta sin candidatos => "".
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrGeminiNotConfigured
	}

	var out generateResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/v1beta/models/%s:generateContent", c.model),
		Header: http.Header{apiKeyHeader: {c.apiKey}},
		JSON: generateRequest{
			Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		},
	}, &out)
	if err != nil {
		switch code := httpclient.StatusCode(err); code {
		case 0:
			return "", fmt.Errorf("%w: %v", ErrGeminiUpstream, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", ErrGeminiUnauthorized
		default:
			return "", fmt.Errorf("%w: status=%d", ErrGeminiUpstream, code)
		}
	}

	if len(out.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
