package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ( // Define custom errors
	ErrEmailExists = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not tell the two apart; the distinction only reaches the
	// audit log, never the HTTP response.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotFound      = errors.New("email not found")
	ErrTokenInvalid       = errors.New("recovery token invalid")
	ErrTokenUsed          = errors.New("recovery token already used")
	ErrTokenExpired       = errors.New("recovery token expired")
)

// recoveryTokenBytes is the entropy of an opaque recovery token.
const recoveryTokenBytes = 32

type AuthService interface {
	// Login returns a signed session token on success. Failures collapse to
	// ErrInvalidCredentials regardless of cause.
	Login(email, password string) (string, error)
	// Register creates the single photographer account.
	Register(email, password string) error
	// RequestRecovery issues a recovery token and mails it to the address.
	RequestRecovery(email string) error
	// ResetPassword consumes a recovery token and stores the new password.
	ResetPassword(token, newPassword string) error
	// Logout revokes the session token identified by jti.
	Logout(jti string, photographerID int64) error
}

type authService struct {
	photographers repository.PhotographerRepository
	recovery      repository.RecoveryTokenRepository
	denylist      repository.DenylistRepository
	mailer        mailer.Mailer
	logger        *zap.Logger
	jwtSecret     []byte
	tokenTTL      time.Duration
	recoveryTTL   time.Duration
}

func NewAuthService(
	photographers repository.PhotographerRepository,
	recovery repository.RecoveryTokenRepository,
	denylist repository.DenylistRepository,
	m mailer.Mailer,
	logger *zap.Logger,
	jwtSecret []byte,
	tokenTTL, recoveryTTL time.Duration,
) AuthService {
	return &authService{
		photographers: photographers,
		recovery:      recovery,
		denylist:      denylist,
		mailer:        m,
		logger:        logger,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		recoveryTTL:   recoveryTTL,
	}
}

func (s *authService) Login(email, password string) (string, error) {
	photographer, err := s.photographers.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("Login failed: unknown email", zap.String("email", email))
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up photographer", zap.Error(err))
		return "", fmt.Errorf("failed to retrieve photographer: %w", err)
	}

	if !VerifyPassword(photographer.PasswordHash, password) {
		s.logger.Info("Login failed: wrong password", zap.String("email", email))
		return "", ErrInvalidCredentials
	}

	tokenString, err := s.generateSessionToken(photographer.ID)
	if err != nil {
		s.logger.Error("Failed to generate JWT token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Photographer logged in", zap.String("email", email))
	return tokenString, nil
}

// generateSessionToken mints an HS256 JWT carrying the photographer id and a
// fresh uuid jti so the token can be revoked individually later.
func (s *authService) generateSessionToken(photographerID int64) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		PhotographerID: photographerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) Register(email, password string) error {
	passwordHash, err := HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.photographers.Create(email, passwordHash); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailExists
		}
		s.logger.Error("Failed to create photographer", zap.Error(err))
		return fmt.Errorf("failed to create photographer: %w", err)
	}

	s.logger.Info("Photographer registered", zap.String("email", email))
	return nil
}

func (s *authService) RequestRecovery(email string) error {
	exists, err := s.photographers.EmailExists(email)
	if err != nil {
		s.logger.Error("Failed to check email for recovery", zap.Error(err))
		return fmt.Errorf("failed to check email: %w", err)
	}
	if !exists {
		return ErrEmailNotFound
	}

	photographer, err := s.photographers.GetByEmail(email)
	if err != nil {
		s.logger.Error("Failed to look up photographer for recovery", zap.Error(err))
		return fmt.Errorf("failed to retrieve photographer: %w", err)
	}

	token, err := generateRecoveryToken()
	if err != nil {
		s.logger.Error("Failed to generate recovery token", zap.Error(err))
		return fmt.Errorf("failed to generate recovery token: %w", err)
	}

	expiresAt := time.Now().Add(s.recoveryTTL)
	if err := s.recovery.Create(token, photographer.ID, expiresAt); err != nil {
		s.logger.Error("Failed to persist recovery token", zap.Error(err))
		return fmt.Errorf("failed to persist recovery token: %w", err)
	}

	if err := s.mailer.SendRecovery(email, token); err != nil {
		s.logger.Error("Failed to send recovery email", zap.Error(err))
		return fmt.Errorf("failed to send recovery email: %w", err)
	}

	s.logger.Info("Recovery token issued", zap.String("email", email))
	return nil
}

func (s *authService) ResetPassword(token, newPassword string) error {
	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		s.logger.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	photographerID, err := s.recovery.ConsumeAndResetPassword(token, passwordHash)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTokenNotFound):
			return ErrTokenInvalid
		case errors.Is(err, repository.ErrTokenUsed):
			return ErrTokenUsed
		case errors.Is(err, repository.ErrTokenExpired):
			return ErrTokenExpired
		}
		s.logger.Error("Failed to reset password", zap.Error(err))
		return fmt.Errorf("failed to reset password: %w", err)
	}

	s.logger.Info("Password reset completed", zap.Int64("fotografo_id", photographerID))
	return nil
}

func (s *authService) Logout(jti string, photographerID int64) error {
	if err := s.denylist.Revoke(jti, photographerID, "logout"); err != nil {
		s.logger.Error("Failed to revoke session token", zap.Error(err))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.logger.Info("Session token revoked", zap.String("jti", jti))
	return nil
}

// generateRecoveryToken returns a cryptographically random opaque token.
func generateRecoveryToken() (string, error) {
	b := make([]byte, recoveryTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
