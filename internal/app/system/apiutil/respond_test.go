package apiutil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
)

func TestError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.Error(rec, http.StatusForbidden, "Forbidden")

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Forbidden" {
		t.Errorf("error field: got %q, want %q", body["error"], "Forbidden")
	}
	if _, ok := body["message"]; ok {
		t.Error("error body must not carry a message field")
	}
}

func TestMessage_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.Message(rec, http.StatusOK, "Admin added successfully")

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Admin added successfully" {
		t.Errorf("message field: got %q", body["message"])
	}
}

func TestJSON_Payload(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.JSON(rec, http.StatusOK, []string{"a", "b"})

	var body []string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 || body[0] != "a" {
		t.Errorf("payload: got %v", body)
	}
}
