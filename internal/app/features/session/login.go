// internal/app/features/session/login.go
package session

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type loginRequest struct {
	IDToken string `json:"idToken"`
}

type statusBody struct {
	Status string `json:"status"`
}

// HandleLogin verifies a provider id token, bootstraps the user document
// on first login, and establishes the session cookie.
//
// Route: POST /api/auth/session
//
// The status-shaped body is this endpoint's own contract, distinct from
// the error/message shapes everywhere else. Every failure mode collapses
// to a 401 so callers can't probe which step broke.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		apiutil.JSON(w, http.StatusUnauthorized, statusBody{Status: "error"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	identity, err := h.Verifier.Verify(ctx, req.IDToken)
	if err != nil {
		h.Log.Info("login rejected", zap.Error(err))
		apiutil.JSON(w, http.StatusUnauthorized, statusBody{Status: "error"})
		return
	}

	if _, err := h.Users.EnsureUser(ctx, identity); err != nil {
		h.Log.Error("login: ensure user", zap.Error(err))
		apiutil.JSON(w, http.StatusUnauthorized, statusBody{Status: "error"})
		return
	}

	err = h.Sessions.Establish(w, r, auth.SessionUser{
		UID:     identity.UID,
		Name:    identity.Name,
		Email:   identity.Email,
		Picture: identity.Picture,
	})
	if err != nil {
		h.Log.Error("login: establish session", zap.Error(err))
		apiutil.JSON(w, http.StatusUnauthorized, statusBody{Status: "error"})
		return
	}

	h.Log.Info("session established", zap.String("user_id", identity.UID))

	apiutil.JSON(w, http.StatusOK, statusBody{Status: "success"})
}

// HandleLogout expires the session cookie.
//
// Route: DELETE /api/auth/session
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		h.Log.Error("logout: clear session", zap.Error(err))
		apiutil.JSON(w, http.StatusInternalServerError, statusBody{Status: "error"})
		return
	}
	apiutil.JSON(w, http.StatusOK, statusBody{Status: "success"})
}
