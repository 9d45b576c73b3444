package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	)
}

func TestRecoverPanic(t *testing.T) {
	handler := RecoverPanic(
		zap.NewNop(), http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			},
		),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal error")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{
			name: "ForwardedForSingle",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.7")
			},
			expected: "203.0.113.7",
		},
		{
			name: "ForwardedForChainTakesFirst",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			},
			expected: "203.0.113.7",
		},
		{
			name: "RealIP",
			setup: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "198.51.100.3")
			},
			expected: "198.51.100.3",
		},
		{
			name: "RemoteAddrFallback",
			setup: func(r *http.Request) {
				r.RemoteAddr = "192.0.2.1:54321"
			},
			expected: "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				tt.setup(r)
				assert.Equal(t, tt.expected, clientIP(r))
			},
		)
	}
}

func TestCORS(t *testing.T) {
	t.Run("AllowedOrigin", func(t *testing.T) {
		handler := CORS([]string{"https://example.com"}, okHandler())

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("DisallowedOrigin", func(t *testing.T) {
		handler := CORS([]string{"https://example.com"}, okHandler())

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("WildcardEchoesOrigin", func(t *testing.T) {
		handler := CORS([]string{"*"}, okHandler())

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://anywhere.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "https://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("PreflightShortCircuits", func(t *testing.T) {
		called := false
		handler := CORS(
			[]string{"*"}, http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					called = true
				},
			),
		)

		r := httptest.NewRequest(http.MethodOptions, "/", nil)
		r.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, called)
	})
}
