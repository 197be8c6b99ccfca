// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminsfeature "github.com/dalemusser/clubhub/internal/app/features/admins"
	authgooglefeature "github.com/dalemusser/clubhub/internal/app/features/authgoogle"
	clubsfeature "github.com/dalemusser/clubhub/internal/app/features/clubs"
	departmentsfeature "github.com/dalemusser/clubhub/internal/app/features/departments"
	errorsfeature "github.com/dalemusser/clubhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/clubhub/internal/app/features/health"
	membersfeature "github.com/dalemusser/clubhub/internal/app/features/members"
	sessionfeature "github.com/dalemusser/clubhub/internal/app/features/session"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/idtoken"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. The route layout mirrors the public API
// surface clients already depend on; moving an endpoint is a breaking
// change.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	verifier := idtoken.NewGoogleVerifier(appCfg.GoogleClientID)

	db := deps.ClubHubMongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication: token exchange for SPAs, browser OAuth for everyone else
	sessionHandler := sessionfeature.NewHandler(db, verifier, sessionMgr, logger)
	r.Mount("/api/auth/session", sessionfeature.Routes(sessionHandler))

	oauthHandler := authgooglefeature.NewHandler(
		userstore.New(db), sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
		logger)
	r.Mount("/auth/google", authgooglefeature.Routes(oauthHandler))

	// Club-admin management
	adminsHandler := adminsfeature.NewHandler(db, errLog, logger)
	r.Mount("/api/admin/admins", adminsfeature.Routes(adminsHandler, sessionMgr))

	departmentsHandler := departmentsfeature.NewHandler(db, errLog, logger)
	r.Mount("/api/admin/departments", departmentsfeature.Routes(departmentsHandler, sessionMgr))

	membersHandler := membersfeature.NewHandler(db, errLog, logger)
	r.Mount("/api/admin/members", membersfeature.Routes(membersHandler, sessionMgr))

	// Clubs: the same feature backs four mounts
	clubsHandler := clubsfeature.NewHandler(db, errLog, logger)
	r.Mount("/api/admin/clubs", clubsfeature.AdminRoutes(clubsHandler, sessionMgr))
	r.Mount("/api/user/clubs", clubsfeature.UserRoutes(clubsHandler, sessionMgr))
	r.Mount("/api/clubs", clubsfeature.ListRoutes(clubsHandler, sessionMgr))
	r.Mount("/api/superadmin/clubs", clubsfeature.SuperAdminRoutes(clubsHandler, sessionMgr))

	logger.Info("routes mounted")

	return r, nil
}
