package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase implements registration and credential verification for both
// customers and admins. Session state itself lives in the delivery layer.
type AuthUseCase struct {
	userRepo  UserRepository
	adminRepo AdminCredentialRepository
	adminCfg  *cfg.AdminCfg
	logger    logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	adminRepo AdminCredentialRepository,
	adminCfg *cfg.AdminCfg,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		adminCfg:  adminCfg,
		logger:    logger,
	}
}

// Register creates a customer account. Usernames are case-normalized to
// lowercase and must be unique.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) error {
	const op = "AuthUseCase.Register"

	fullName := strings.TrimSpace(req.FullName)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)

	if fullName == "" || username == "" || password == "" {
		return e.Wrap(op, e.ErrMissingFields)
	}

	if _, err := a.userRepo.GetByUsername(ctx, username); err == nil {
		return e.Wrap(op, e.ErrUsernameTaken)
	} else if !errors.Is(err, e.ErrNotFound) {
		return e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return e.Wrap(op, err)
	}

	user := domain.NewUser(fullName, username, string(hash), strings.TrimSpace(req.Phone))
	if _, err := a.userRepo.Create(ctx, user); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("user registered: %s", username)
	return nil
}

// AuthenticateCustomer verifies a customer login. Lookup misses and hash
// mismatches collapse into the same e.ErrInvalidCredentials.
func (a *AuthUseCase) AuthenticateCustomer(ctx context.Context, username, password string) (*domain.User, error) {
	const op = "AuthUseCase.AuthenticateCustomer"

	username = strings.ToLower(strings.TrimSpace(username))

	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	return user, nil
}

// AuthenticateAdmin verifies an admin login against the persisted admin
// credential store.
func (a *AuthUseCase) AuthenticateAdmin(ctx context.Context, username, password string) error {
	const op = "AuthUseCase.AuthenticateAdmin"

	cred, err := a.adminRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.Wrap(op, e.ErrInvalidCredentials)
		}
		return e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return e.Wrap(op, e.ErrInvalidCredentials)
	}

	return nil
}

// EnsureAdminCredential upserts the configured admin login at startup so the
// credential lives hashed in the database rather than as a literal check.
func (a *AuthUseCase) EnsureAdminCredential(ctx context.Context) error {
	const op = "AuthUseCase.EnsureAdminCredential"

	hash, err := bcrypt.GenerateFromPassword([]byte(a.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := a.adminRepo.Upsert(ctx, a.adminCfg.Username, string(hash)); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
