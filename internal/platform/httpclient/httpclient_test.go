package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "not a url"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: ""})
	assert.Error(t, err)
}

func TestDo_JSONRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/echo", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc", r.Header.Get("X-Api-Key"))

		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Mochi"}`, string(b))
		_, _ = w.Write([]byte(`{"ok":true,"name":"Mochi"}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL + "/api/"})
	require.NoError(t, err)

	var out struct {
		OK   bool   `json:"ok"`
		Name string `json:"name"`
	}
	err = c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "v1/echo",
		Query:  url.Values{"page": {"1"}},
		Header: http.Header{"x-api-key": {"abc"}},
		JSON:   map[string]string{"name": "Mochi"},
	}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "Mochi", out.Name)
}

func TestDo_RawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.Equal(t, "hola", string(b))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.Do(context.Background(), Request{
		Method:      http.MethodPut,
		Path:        "/raw",
		Body:        strings.NewReader("hola"),
		ContentType: "text/plain",
	}, nil)
	assert.NoError(t, err)
}

func TestDo_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.Do(context.Background(), Request{Path: "/x"}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "nope", se.Body)
}

func TestDo_JSONAndBodyAreExclusive(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost"})
	require.NoError(t, err)

	err = c.Do(context.Background(), Request{JSON: 1, Body: strings.NewReader("x")}, nil)
	assert.Error(t, err)
	assert.Zero(t, StatusCode(err))
}

func TestDo_TransportErrorRedactsQuery(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Config{BaseURL: base})
	require.NoError(t, err)

	err = c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/1/upload",
		Query:  url.Values{"key": {"SUPERSECRETKEY"}},
	}, nil)
	require.Error(t, err)
	assert.Zero(t, StatusCode(err))
	assert.NotContains(t, err.Error(), "SUPERSECRETKEY")
	assert.Contains(t, err.Error(), "/1/upload?redacted")
}
