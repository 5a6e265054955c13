package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	sessions map[string]*domain.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *memorySessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	session, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

func (m *memorySessionStore) Save(ctx context.Context, token string, session *domain.Session) error {
	copied := *session
	m.sessions[token] = &copied
	return nil
}

func (m *memorySessionStore) Delete(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func newTestSessionManager(store *memorySessionStore) *SessionManager {
	return NewSessionManager(store, &cfg.SessionCfg{CookieName: "sid", TTL: 24 * time.Hour}, logger.NewSlogLogger())
}

func serve(t *testing.T, manager *SessionManager, guard func(http.Handler) http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	manager.Middleware(guard(inner)).ServeHTTP(rec, req)
	return rec
}

func TestRequireCustomerRedirectsAnonymous(t *testing.T) {
	store := newMemorySessionStore()
	manager := newTestSessionManager(store)

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	rec := serve(t, manager, manager.RequireCustomer, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/user-login?next=%2Fcheckout", rec.Header().Get("Location"))

	// The redirect carries a flash in a freshly minted session.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	saved := store.sessions[cookies[0].Value]
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.Flash)
}

func TestRequireCustomerPassesLoggedIn(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7}}
	manager := newTestSessionManager(store)

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	rec := serve(t, manager, manager.RequireCustomer, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRedirectsNonAdmin(t *testing.T) {
	store := newMemorySessionStore()
	// A plain customer is not enough for the admin panel.
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7}}
	manager := newTestSessionManager(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	rec := serve(t, manager, manager.RequireAdmin, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{Admin: true}}
	manager := newTestSessionManager(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	rec := serve(t, manager, manager.RequireAdmin, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateDeletesEmptiedSession(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7, UserName: "alice"}}
	manager := newTestSessionManager(store)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := manager.Update(w, r, func(s *domain.Session) {
			s.Principal.ClearCustomer()
		})
		require.NoError(t, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	manager.Middleware(handler).ServeHTTP(httptest.NewRecorder(), req)

	_, ok := store.sessions["tok"]
	assert.False(t, ok)
}

func TestUpdateKeepsSessionWithAdminHalf(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Principal: domain.Principal{UserID: 7, Admin: true}}
	manager := newTestSessionManager(store)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := manager.Update(w, r, func(s *domain.Session) {
			s.Principal.ClearCustomer()
		})
		require.NoError(t, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	manager.Middleware(handler).ServeHTTP(httptest.NewRecorder(), req)

	saved := store.sessions["tok"]
	require.NotNil(t, saved)
	assert.True(t, saved.Principal.Admin)
}

func TestPopFlashConsumes(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["tok"] = &domain.Session{Flash: "Product created."}
	manager := newTestSessionManager(store)

	var first, second string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = manager.PopFlash(w, r)
		second = manager.PopFlash(w, r)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	manager.Middleware(handler).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "Product created.", first)
	assert.Empty(t, second)

	// Nothing else lived in the session, so consuming the flash drops it.
	_, ok := store.sessions["tok"]
	assert.False(t, ok)
}
