// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail != "" {
		if err := ensureSuperAdmin(ctx, deps, appCfg.SuperAdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureSuperAdmin promotes the configured account to the global role.
// User documents are created by the identity provider on first login, so
// an account that has never signed in cannot be promoted yet; startup
// logs and continues, and the promotion lands on the next restart.
func ensureSuperAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.ClubHubMongoDatabase)

	u, err := users.GetByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		logger.Warn("superadmin account has not signed in yet; promotion deferred",
			zap.String("email", email))
		return nil
	}
	if err != nil {
		return err
	}

	if u.Role == models.RoleSuperAdmin {
		return nil
	}

	if err := users.SetRole(ctx, u.ID, models.RoleSuperAdmin); err != nil {
		return err
	}
	logger.Info("superadmin promoted",
		zap.String("email", email),
		zap.String("user_id", u.ID))
	return nil
}
