// internal/app/features/clubs/handler.go
package clubs

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	clubstore "github.com/dalemusser/clubhub/internal/app/store/clubs"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler covers club discovery, applications, and the global lifecycle
// operations reserved for the super admin.
type Handler struct {
	Clubs  *clubstore.Store
	Users  *userstore.Store
	Apps   *applicationstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a clubs handler bound to the DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Clubs:  clubstore.New(db),
		Users:  userstore.New(db),
		Apps:   applicationstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
