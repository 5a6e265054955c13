package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/logger"
)

type sessionCtxKey struct{}

// sessionState is the per-request view of the browser session. The pointer
// is shared through the request context so handler-side updates within one
// request observe each other.
type sessionState struct {
	token   string
	session domain.Session
}

// SessionManager loads the session cookie into the request context and
// exposes the principal, session updates and flash messages to handlers.
type SessionManager struct {
	store  usecase.SessionStore
	cfg    *cfg.SessionCfg
	logger logger.Logger
}

func NewSessionManager(store usecase.SessionStore, cfg *cfg.SessionCfg, logger logger.Logger) *SessionManager {
	return &SessionManager{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Middleware resolves the session cookie. A missing, expired or unreadable
// session degrades to an anonymous principal; it never fails the request.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := &sessionState{}

		if cookie, err := r.Cookie(m.cfg.CookieName); err == nil && cookie.Value != "" {
			state.token = cookie.Value
			session, err := m.store.Get(r.Context(), cookie.Value)
			if err != nil {
				m.logger.Warnf("session load failed: %v", err)
			} else if session != nil {
				state.session = *session
			}
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Principal returns the request's authentication context. Anonymous when no
// session is attached.
func (m *SessionManager) Principal(r *http.Request) domain.Principal {
	state := stateFrom(r.Context())
	if state == nil {
		return domain.Principal{}
	}

	return state.session.Principal
}

// Update mutates the session and persists it. A session token is minted and
// set as a cookie on the first write.
func (m *SessionManager) Update(w http.ResponseWriter, r *http.Request, fn func(*domain.Session)) error {
	state := stateFrom(r.Context())
	if state == nil {
		state = &sessionState{}
	}

	if state.token == "" {
		state.token = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     m.cfg.CookieName,
			Value:    state.token,
			Path:     "/",
			MaxAge:   int(m.cfg.TTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	fn(&state.session)

	// A session with no identity and no pending flash carries nothing worth
	// keeping, so the stored document goes away with it.
	if state.session.Principal.IsAnonymous() && state.session.Flash == "" {
		return m.store.Delete(r.Context(), state.token)
	}

	return m.store.Save(r.Context(), state.token, &state.session)
}

// Flash stores a one-shot message shown on the next page.
func (m *SessionManager) Flash(w http.ResponseWriter, r *http.Request, message string) {
	err := m.Update(w, r, func(s *domain.Session) {
		s.Flash = message
	})
	if err != nil {
		m.logger.Warnf("flash save failed: %v", err)
	}
}

// PopFlash consumes the pending flash message, empty when there is none.
func (m *SessionManager) PopFlash(w http.ResponseWriter, r *http.Request) string {
	state := stateFrom(r.Context())
	if state == nil || state.session.Flash == "" {
		return ""
	}

	flash := state.session.Flash
	err := m.Update(w, r, func(s *domain.Session) {
		s.Flash = ""
	})
	if err != nil {
		m.logger.Warnf("flash clear failed: %v", err)
	}

	return flash
}

// RequireCustomer guards customer-only routes. Anonymous requests are
// flashed and redirected to the customer login with a return path.
func (m *SessionManager) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Principal(r).IsCustomer() {
			m.Flash(w, r, "Please log in to continue.")
			seeOther(w, r, "/user-login?next="+url.QueryEscape(r.URL.RequestURI()))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin guards the admin panel. Non-admin requests are redirected to
// the admin login.
func (m *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Principal(r).IsAdmin() {
			seeOther(w, r, "/login")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func stateFrom(ctx context.Context) *sessionState {
	state, _ := ctx.Value(sessionCtxKey{}).(*sessionState)
	return state
}
