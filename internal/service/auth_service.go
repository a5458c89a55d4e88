package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"invoicedash/internal/auth"
	apperrors "invoicedash/internal/errors"
	"invoicedash/internal/metrics"
	"invoicedash/internal/repository"
)

// AuthService moves a request between the anonymous and authenticated states.
type AuthService interface {
	Authenticate(ctx context.Context, form map[string]string) (session *auth.Session, token string, err error)
	ResolveSession(ctx context.Context, claims *auth.Claims) (*auth.Session, bool)
	SignOut(ctx context.Context, session *auth.Session) error
}

// unknownUserHash is compared against when the email has no account, so an
// unknown email costs the same bcrypt work as a wrong password.
var unknownUserHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hash unknown user password: %v", err))
	}
	return hash
})

type authService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
	logger       logrus.FieldLogger
	now          func() time.Time
	compareHash  func(hash, password []byte) error
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface, logger logrus.FieldLogger) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		logger:       logger,
		now:          time.Now,
		compareHash:  bcrypt.CompareHashAndPassword,
	}
}

// Authenticate checks the submitted credentials and opens a session. Malformed
// input, an unknown email and a wrong password all return
// errors.ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, form map[string]string) (*auth.Session, string, error) {
	creds, ok := ParseCredentials(form)
	if !ok {
		return s.rejected("malformed")
	}

	user, err := s.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = s.compareHash(unknownUserHash(), []byte(creds.Password))
			return s.rejected("unknown_user")
		}
		s.logger.WithError(err).WithField("resource", "user").Error("Database Error")
		metrics.ObserveAuthAttempt("error")
		return nil, "", apperrors.NewFetchError("user")
	}

	if err := s.compareHash([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return s.rejected("password_mismatch")
	}

	session := &auth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		ExpiresAt: s.now().Add(s.jwtService.TTL()),
	}
	token, err := s.jwtService.GenerateSessionToken(session)
	if err != nil {
		metrics.ObserveAuthAttempt("error")
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	if err := s.sessionStore.Store(ctx, session, s.jwtService.TTL()); err != nil {
		metrics.ObserveAuthAttempt("error")
		return nil, "", fmt.Errorf("store session: %w", err)
	}

	metrics.ObserveAuthAttempt("success")
	return session, token, nil
}

func (s *authService) rejected(reason string) (*auth.Session, string, error) {
	s.logger.WithField("reason", reason).Info("Invalid credentials")
	metrics.ObserveAuthAttempt("invalid")
	return nil, "", apperrors.ErrInvalidCredentials
}

// ResolveSession turns validated token claims into a session, provided the
// session has not been signed out.
func (s *authService) ResolveSession(ctx context.Context, claims *auth.Claims) (*auth.Session, bool) {
	if claims == nil || claims.ID == "" {
		return nil, false
	}
	if !s.sessionStore.Exists(ctx, claims.ID) {
		return nil, false
	}
	return auth.SessionFromClaims(claims), true
}

// SignOut revokes the session.
func (s *authService) SignOut(ctx context.Context, session *auth.Session) error {
	if session == nil {
		return nil
	}
	if err := s.sessionStore.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
