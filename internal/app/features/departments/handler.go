// internal/app/features/departments/handler.go
package departments

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	clubstore "github.com/dalemusser/clubhub/internal/app/store/clubs"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages a club's department list and the membership tags
// that reference it.
type Handler struct {
	Clubs  *clubstore.Store
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a departments handler bound to the DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Clubs:  clubstore.New(db),
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
