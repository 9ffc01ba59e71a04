package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		data           interface{}
		expectedStatus int
	}{
		{
			name:           "successful response with map",
			status:         http.StatusOK,
			data:           map[string]string{"status": "success"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error response",
			status:         http.StatusInternalServerError,
			data:           map[string]string{"status": "error"},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "response with slice",
			status:         http.StatusOK,
			data:           []string{"raw_data/a.json", "raw_data/b.json"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteJSON(w, tt.status, tt.data)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %q", ct)
			}

			var decoded interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
				t.Errorf("response body is not valid JSON: %v", err)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadRequest, "bad trigger")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body["error"] != "bad trigger" {
		t.Errorf("error message = %q, want %q", body["error"], "bad trigger")
	}
}
