package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	sessions    *SessionManager
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, sessions *SessionManager, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, sessions: sessions, logger: logger}
}

func (a *AuthHandler) registerForm(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"principal": a.sessions.Principal(r),
		"flash":     a.sessions.PopFlash(w, r),
	})
}

func (a *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	req := usecase.NewRegisterReq(
		r.FormValue("full_name"),
		r.FormValue("username"),
		r.FormValue("password"),
		r.FormValue("phone"),
	)

	if err := a.authUsecase.Register(r.Context(), req); err != nil {
		a.logger.Warnf("%s", err.Error())
		switch {
		case errors.Is(err, e.ErrMissingFields):
			a.sessions.Flash(w, r, "Please fill in all required fields.")
			seeOther(w, r, "/register")
		case errors.Is(err, e.ErrUsernameTaken):
			a.sessions.Flash(w, r, "This username is already taken.")
			seeOther(w, r, "/register")
		default:
			WriteError(w, err)
		}
		return
	}

	a.sessions.Flash(w, r, "Registration successful. Please log in.")
	seeOther(w, r, "/user-login")
}

func (a *AuthHandler) customerLoginForm(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"principal": a.sessions.Principal(r),
		"flash":     a.sessions.PopFlash(w, r),
		"next":      sanitizeNext(r.URL.Query().Get("next")),
	})
}

func (a *AuthHandler) customerLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	user, err := a.authUsecase.AuthenticateCustomer(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		if errors.Is(err, e.ErrInvalidCredentials) {
			a.sessions.Flash(w, r, "Invalid username or password.")
			target := "/user-login"
			if next := sanitizeNext(r.FormValue("next")); next != "" {
				target += "?next=" + url.QueryEscape(next)
			}
			seeOther(w, r, target)
			return
		}

		WriteError(w, err)
		return
	}

	err = a.sessions.Update(w, r, func(s *domain.Session) {
		s.Principal.UserID = user.ID
		s.Principal.UserName = user.FullName
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	if next := sanitizeNext(r.FormValue("next")); next != "" {
		seeOther(w, r, next)
		return
	}
	seeOther(w, r, "/")
}

// customerLogout drops the customer identity. An admin flag held by the same
// browser survives.
func (a *AuthHandler) customerLogout(w http.ResponseWriter, r *http.Request) {
	err := a.sessions.Update(w, r, func(s *domain.Session) {
		s.Principal.ClearCustomer()
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	seeOther(w, r, "/")
}

func (a *AuthHandler) adminLoginForm(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"principal": a.sessions.Principal(r),
		"flash":     a.sessions.PopFlash(w, r),
	})
}

func (a *AuthHandler) adminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	err := a.authUsecase.AuthenticateAdmin(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		if errors.Is(err, e.ErrInvalidCredentials) {
			a.sessions.Flash(w, r, "Invalid username or password.")
			seeOther(w, r, "/login")
			return
		}

		WriteError(w, err)
		return
	}

	err = a.sessions.Update(w, r, func(s *domain.Session) {
		s.Principal.Admin = true
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	seeOther(w, r, "/admin/dashboard")
}

// adminLogout drops the admin flag. A customer identity held by the same
// browser survives.
func (a *AuthHandler) adminLogout(w http.ResponseWriter, r *http.Request) {
	err := a.sessions.Update(w, r, func(s *domain.Session) {
		s.Principal.ClearAdmin()
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	seeOther(w, r, "/login")
}

// sanitizeNext accepts only same-site paths as post-login redirect targets.
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}

	return next
}
