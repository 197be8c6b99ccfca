// internal/app/features/members/handler.go
package members

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	clubstore "github.com/dalemusser/clubhub/internal/app/store/clubs"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves a club's member roster and its applicant queue.
type Handler struct {
	Clubs  *clubstore.Store
	Users  *userstore.Store
	Apps   *applicationstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a members handler bound to the DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Clubs:  clubstore.New(db),
		Users:  userstore.New(db),
		Apps:   applicationstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
