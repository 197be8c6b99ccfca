package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	// SessionTTL matches the source system's five-day session cookies.
	SessionTTL = 5 * 24 * time.Hour

	isAuthKey      = "is_authenticated"
	userIDKey      = "user_id"
	userNameKey    = "user_name"
	userEmailKey   = "user_email"
	userPictureKey = "user_picture"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is the resolved caller identity cached in the session and
// injected into r.Context(). UID is the identity provider's subject id;
// Email is what club-admin authorization is keyed by.
type SessionUser struct {
	UID     string
	Name    string
	Email   string
	Picture string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the caller identity and a "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a session user directly into the request context.
// Tests use this to bypass the cookie round trip.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the signed-cookie session store and the middleware
// that turns a session cookie into a SessionUser in context.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. An empty sessionKey gets a
// random per-process key (sessions won't survive restarts; dev only).
func NewSessionManager(sessionKey, cookieName, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	key := []byte(sessionKey)
	if len(key) == 0 {
		logger.Warn("no session key configured; generating a volatile one (dev only)")
		key = securecookie.GenerateRandomKey(32)
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("cookie", cookieName),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: cookieName, log: logger}, nil
}

// Establish writes the caller identity into a fresh session cookie.
func (sm *SessionManager) Establish(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.UID
	sess.Values[userNameKey] = u.Name
	sess.Values[userEmailKey] = u.Email
	sess.Values[userPictureKey] = u.Picture
	return sess.Save(r, w)
}

// Clear expires the session cookie immediately.
func (sm *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		// Decode failure still produces a session we can expire.
		sm.log.Warn("session decode failed during logout", zap.Error(err))
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSessionUser injects the caller into context if they are signed in.
// Requests without a (valid) session cookie pass through unauthenticated.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				UID:     getString(sess, userIDKey),
				Name:    getString(sess, userNameKey),
				Email:   getString(sess, userEmailKey),
				Picture: getString(sess, userPictureKey),
			}
			if u.UID != "" {
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures a caller identity is present in context
// (set by LoadSessionUser). API callers get 401 {"error":"Unauthorized"}.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		apiutil.Error(w, http.StatusUnauthorized, "Unauthorized")
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
