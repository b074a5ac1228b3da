package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ijuruhub/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Format: logger.JSON, Service: "test"})
}

func TestRecovery(t *testing.T) {
	handler := Recovery(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/spaces", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestContentTypeValidation(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := ContentTypeValidation(testLogger())(next)

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		want        int
	}{
		{"json post", http.MethodPost, "application/json", `{}`, http.StatusOK},
		{"json with charset", http.MethodPost, "application/json; charset=utf-8", `{}`, http.StatusOK},
		{"text post", http.MethodPost, "text/plain", "hello", http.StatusUnsupportedMediaType},
		{"get without body", http.MethodGet, "", "", http.StatusOK},
		{"delete without body", http.MethodDelete, "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *bytes.Reader
			if tt.body != "" {
				body = bytes.NewReader([]byte(tt.body))
			} else {
				body = bytes.NewReader(nil)
			}
			req := httptest.NewRequest(tt.method, "/api/booking", body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestMaxRequestSize(t *testing.T) {
	handler := MaxRequestSize(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil && err.Error() == "http: request body too large" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	big := bytes.NewReader(bytes.Repeat([]byte("a"), 64))
	req := httptest.NewRequest(http.MethodPost, "/api/booking", big)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected oversized body to be rejected, got %d", rec.Code)
	}
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = RequestIDFrom(r)
	})
	handler := RequestLogging(testLogger())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/spaces", nil))

	if gotID == "" {
		t.Error("expected a request ID in the request context")
	}
}
