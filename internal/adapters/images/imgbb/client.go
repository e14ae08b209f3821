package imgbb

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"petster/internal/platform/httpclient"
)

var (
	ErrImgbbNotConfigured = errors.New("imgbb client not configured")
	ErrImgbbUpstream      = errors.New("imgbb upstream error")
)

const DefaultBaseURL = "https://api.imgbb.com"

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implementa images.Uploader contra la API de imgbb.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
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
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.apiKey != ""
}

type uploadResponse struct {
	Data struct {
		ID         string `json:"id"`
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload manda la imagen como campo "image" en base64 (lo que espera imgbb) y
// devuelve data.display_url.
func (c *Client) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if !c.IsConfigured() {
		return "", ErrImgbbNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	// la key va en el cuerpo: en la query terminaría en logs de errores de transporte
	if err := mw.WriteField("key", c.apiKey); err != nil {
		return "", err
	}
	if err := mw.WriteField("image", base64.StdEncoding.EncodeToString(data)); err != nil {
		return "", err
	}
	if err := mw.WriteField("name", name); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var out uploadResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method:      http.MethodPost,
		Path:        "/1/upload",
		Body:        &body,
		ContentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		if code := httpclient.StatusCode(err); code != 0 {
			return "", fmt.Errorf("%w: status=%d", ErrImgbbUpstream, code)
		}
		return "", fmt.Errorf("%w: %v", ErrImgbbUpstream, err)
	}

	if !out.Success || out.Data.DisplayURL == "" {
		return "", fmt.Errorf("%w: upload failed status=%d", ErrImgbbUpstream, out.Status)
	}
	return out.Data.DisplayURL, nil
}
