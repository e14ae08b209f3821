package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodyBytes = 1 << 20
)

// Config de un cliente contra una API upstream (Gemini, imgbb).
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	Transport    http.RoundTripper // nil = http.DefaultTransport
	MaxBodyBytes int64             // límite al leer respuestas
}

type Client struct {
	http    *http.Client
	baseURL *url.URL
	maxBody int64
}

func New(cfg Config) (*Client, error) {
	base, err := url.ParseRequestURI(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("httpclient: invalid base url %q", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport},
		baseURL: base,
		maxBody: cfg.MaxBodyBytes,
	}, nil
}

// Request relativo al BaseURL. JSON y Body son excluyentes: JSON se serializa
// y pone Content-Type application/json; Body se manda tal cual con ContentType.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Header      http.Header
	JSON        any
	Body        io.Reader
	ContentType string
}

// StatusError es una respuesta no-2xx del upstream.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}

// StatusCode devuelve el status de un *StatusError envuelto en err, o 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// Do manda el request y decodifica el JSON de la respuesta en out (si out != nil).
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	if c == nil {
		return errors.New("httpclient: nil client")
	}
	if r.JSON != nil && r.Body != nil {
		return errors.New("httpclient: JSON and Body are exclusive")
	}

	body, contentType := r.Body, r.ContentType
	if r.JSON != nil {
		b, err := json.Marshal(r.JSON)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(r.Path, r.Query), body)
	if err != nil {
		return fmt.Errorf("httpclient: build request: %w", err)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s %s: %w", method, r.Path, redactQuery(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: decode response: %w", err)
	}
	return nil
}

func (c *Client) url(path string, q url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// redactQuery saca la query del URL que *url.Error incluye en su mensaje.
func redactQuery(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	if u, perr := url.Parse(ue.URL); perr == nil && u.RawQuery != "" {
		u.RawQuery = "redacted"
		ue.URL = u.String()
	}
	return err
}
