package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestViewerContext(t *testing.T) {
	var got string
	h := ViewerContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = ShelterID(r.Context())
	}))

	cases := []struct {
		name   string
		url    string
		header string
		want   string
	}{
		{"query", "/pets?shelterId=%20sh-1%20", "", "sh-1"},
		{"header", "/pets", "sh-2", "sh-2"},
		{"query wins", "/pets?shelterId=sh-1", "sh-2", "sh-1"},
		{"anonymous", "/pets", "", ""},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.url, nil)
		if c.header != "" {
			req.Header.Set("X-Shelter-ID", c.header)
		}
		got = "unset"
		h.ServeHTTP(httptest.NewRecorder(), req)
		if got != c.want {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}
