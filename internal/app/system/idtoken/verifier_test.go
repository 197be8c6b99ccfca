package idtoken_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/idtoken"
)

func TestStaticVerifier(t *testing.T) {
	v := idtoken.StaticVerifier{
		"tok-1": {UID: "u1", Email: "pat@x.com", Name: "Pat"},
	}

	id, err := v.Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.UID != "u1" || id.Email != "pat@x.com" {
		t.Errorf("identity: got %+v", id)
	}

	if _, err := v.Verify(context.Background(), "unknown"); !errors.Is(err, idtoken.ErrInvalidToken) {
		t.Errorf("unknown token: got %v, want ErrInvalidToken", err)
	}
}

// tokeninfoServer fakes Google's tokeninfo endpoint.
func tokeninfoServer(t *testing.T, body map[string]string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func googleVerifierAt(srv *httptest.Server, clientID string) *idtoken.GoogleVerifier {
	v := idtoken.NewGoogleVerifier(clientID)
	v.Client = srv.Client()
	// Route every request to the fake endpoint regardless of URL.
	v.Client.Transport = rewriteTransport{base: srv.Client().Transport, target: srv.URL}
	return v
}

type rewriteTransport struct {
	base   http.RoundTripper
	target string
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rewritten, err := http.NewRequestWithContext(req.Context(), req.Method, rt.target+"?"+req.URL.RawQuery, nil)
	if err != nil {
		return nil, err
	}
	return rt.base.RoundTrip(rewritten)
}

func TestGoogleVerifier_Valid(t *testing.T) {
	exp := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	srv := tokeninfoServer(t, map[string]string{
		"sub": "u1", "aud": "client-1", "exp": exp,
		"email": "pat@x.com", "name": "Pat", "picture": "https://p/x.png",
	}, http.StatusOK)
	defer srv.Close()

	id, err := googleVerifierAt(srv, "client-1").Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.UID != "u1" || id.Email != "pat@x.com" || id.Picture != "https://p/x.png" {
		t.Errorf("identity: got %+v", id)
	}
}

func TestGoogleVerifier_WrongAudience(t *testing.T) {
	exp := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	srv := tokeninfoServer(t, map[string]string{
		"sub": "u1", "aud": "someone-else", "exp": exp,
	}, http.StatusOK)
	defer srv.Close()

	if _, err := googleVerifierAt(srv, "client-1").Verify(context.Background(), "tok"); !errors.Is(err, idtoken.ErrInvalidToken) {
		t.Errorf("wrong audience: got %v, want ErrInvalidToken", err)
	}
}

func TestGoogleVerifier_Expired(t *testing.T) {
	exp := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	srv := tokeninfoServer(t, map[string]string{
		"sub": "u1", "aud": "client-1", "exp": exp,
	}, http.StatusOK)
	defer srv.Close()

	if _, err := googleVerifierAt(srv, "client-1").Verify(context.Background(), "tok"); !errors.Is(err, idtoken.ErrInvalidToken) {
		t.Errorf("expired token: got %v, want ErrInvalidToken", err)
	}
}

func TestGoogleVerifier_RejectedUpstream(t *testing.T) {
	srv := tokeninfoServer(t, map[string]string{"error": "invalid_token"}, http.StatusBadRequest)
	defer srv.Close()

	if _, err := googleVerifierAt(srv, "client-1").Verify(context.Background(), "tok"); !errors.Is(err, idtoken.ErrInvalidToken) {
		t.Errorf("upstream reject: got %v, want ErrInvalidToken", err)
	}
}

func TestGoogleVerifier_EmptyToken(t *testing.T) {
	v := idtoken.NewGoogleVerifier("client-1")
	if _, err := v.Verify(context.Background(), ""); !errors.Is(err, idtoken.ErrInvalidToken) {
		t.Errorf("empty token: got %v, want ErrInvalidToken", err)
	}
}
