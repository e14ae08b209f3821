package imgbb

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_SendsMultipartAndReturnsDisplayURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/upload", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "secret", r.FormValue("key"))
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), r.FormValue("image"))
		assert.Equal(t, "123-abc.png", r.FormValue("name"))

		_, _ = io.WriteString(w, `{"data":{"id":"x","display_url":"https://i.ibb.co/x/pet.png"},"success":true,"status":200}`)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	url, err := c.Upload(context.Background(), "123-abc.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/x/pet.png", url)
}

func TestUpload_TransportErrorDoesNotLeakKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: base, APIKey: "SUPERSECRETKEY"})
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), "n", []byte("x"))
	require.ErrorIs(t, err, ErrImgbbUpstream)
	assert.NotContains(t, err.Error(), "SUPERSECRETKEY")
}

func TestUpload_FailureResponses(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusBadRequest, `{"error":{"message":"Invalid API v1 key."}}`},
		{"success false", http.StatusOK, `{"success":false,"status":400}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
			require.NoError(t, err)

			_, err = c.Upload(context.Background(), "n", []byte("x"))
			assert.ErrorIs(t, err, ErrImgbbUpstream)
		})
	}
}

func TestUpload_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), "n", []byte("x"))
	assert.ErrorIs(t, err, ErrImgbbNotConfigured)
}
