package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/store"
	"github.com/vnkhanh/pg-server/utils"
)

var ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid email or password")

var errAdminExists = newError(ErrConflict, "Admin with this email already exists")

type AccountStore interface {
	CountAdmins(ctx context.Context) (int64, error)
	GetAdminByID(ctx context.Context, id string) (*models.Admin, bool, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, bool, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
}

// SessionRevoker remembers logged-out session ids.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// SessionAdmin is the public view of the signed-in admin.
type SessionAdmin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *SessionAdmin) IsSuperadmin() bool {
	return a != nil && a.Role == models.RoleSuperadmin
}

func sessionAdmin(a *models.Admin) *SessionAdmin {
	return &SessionAdmin{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

// Session is an issued session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Admin     *SessionAdmin
}

type CreateAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthService struct {
	store   AccountStore
	revoker SessionRevoker
	secret  []byte
	ttl     time.Duration
	log     *zap.Logger
}

func NewAuthService(s AccountStore, revoker SessionRevoker, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	if revoker == nil {
		revoker = store.NoopSessionRevoker{}
	}
	return &AuthService{store: s, revoker: revoker, secret: []byte(secret), ttl: ttl, log: log}
}

func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// Login checks the credentials and issues a signed session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, found, err := s.store.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !found || !utils.CheckPassword(admin.Password, password) {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	token, claims, err := utils.GenerateSessionToken(s.secret, admin.ID, admin.Role, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	s.log.Info("admin logged in", zap.String("admin_id", admin.ID))
	return &Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, Admin: sessionAdmin(admin)}, nil
}

// ResolveSession maps a cookie value to the admin it belongs to.
// Every failure, including lookup errors, is ErrUnauthorized.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*SessionAdmin, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := utils.VerifySessionToken(s.secret, token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Warn("session revocation check failed", zap.Error(err))
		return nil, ErrUnauthorized
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	admin, found, err := s.store.GetAdminByID(ctx, claims.AdminID())
	if err != nil {
		s.log.Warn("session admin lookup failed", zap.Error(err))
		return nil, ErrUnauthorized
	}
	if !found {
		return nil, ErrUnauthorized
	}
	return sessionAdmin(admin), nil
}

// Logout revokes the session for the rest of its lifetime. Unreadable tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := utils.VerifySessionToken(s.secret, token)
	if err != nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Info("admin logged out", zap.String("admin_id", claims.AdminID()))
	return nil
}

// CreateAdmin creates an admin account. The first account needs no actor and is
// always a superadmin; after that only a superadmin may create accounts.
func (s *AuthService) CreateAdmin(ctx context.Context, actor *SessionAdmin, in CreateAdminInput) (*SessionAdmin, error) {
	count, err := s.store.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	bootstrap := count == 0
	if !bootstrap {
		if actor == nil {
			return nil, ErrUnauthorized
		}
		if !actor.IsSuperadmin() {
			return nil, newError(ErrForbidden, "Insufficient permissions. Only superadmins can create new admins.")
		}
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if field := firstMissing("name", in.Name, "email", in.Email, "password", in.Password); field != "" {
		return nil, required(field)
	}
	if !ValidEmail(in.Email) {
		return nil, invalid("email", "Invalid email format")
	}
	if len(in.Password) > utils.MaxPasswordBytes {
		return nil, invalid("password", "Password must be at most %d bytes", utils.MaxPasswordBytes)
	}

	role := strings.ToLower(strings.TrimSpace(in.Role))
	switch {
	case bootstrap:
		role = models.RoleSuperadmin
	case role == "":
		role = models.RoleAdmin
	case !models.ValidRole(role):
		return nil, invalid("role", "Invalid role. Must be admin or superadmin")
	}

	if _, exists, err := s.store.GetAdminByEmail(ctx, in.Email); err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	} else if exists {
		return nil, errAdminExists
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Name: in.Name, Email: in.Email, Password: hash, Role: role}
	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("admin created", zap.String("admin_id", admin.ID), zap.String("role", admin.Role), zap.Bool("bootstrap", bootstrap))
	return sessionAdmin(admin), nil
}
