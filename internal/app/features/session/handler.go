// internal/app/features/session/handler.go
package session

import (
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/idtoken"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler exchanges identity-provider tokens for session cookies.
type Handler struct {
	Users    *userstore.Store
	Verifier idtoken.Verifier
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs a session handler.
func NewHandler(db *mongo.Database, verifier idtoken.Verifier, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Verifier: verifier,
		Sessions: sm,
		Log:      logger,
	}
}
