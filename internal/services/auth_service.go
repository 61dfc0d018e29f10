package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"bollybuzz-backend/internal/config"
	"bollybuzz-backend/internal/models"
	"bollybuzz-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 12
	passwordMinLength = 8
	nameMaxLength     = 50
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Claims is the session token payload.
type Claims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Signin(ctx context.Context, email, password string) (*models.User, string, error)
	ParseToken(token string) (*Claims, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, password string) error
}

type authService struct {
	users  repository.UserRepository
	mailer Mailer
	cfg    config.AuthConfig
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, mailer Mailer, cfg config.AuthConfig, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}
}

func validateSignup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return invalid("please provide all required fields")
	}
	if utf8.RuneCountInString(name) > nameMaxLength {
		return invalid("name cannot be more than 50 characters")
	}
	if !emailPattern.MatchString(email) {
		return invalid("please provide a valid email address")
	}
	if utf8.RuneCountInString(password) < passwordMinLength {
		return invalid("password must be at least 8 characters long")
	}
	return nil
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = repository.NormalizeEmail(email)

	// All validation happens before any store access.
	if err := validateSignup(name, email, password); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithField("email", email).Info("User signed up")
	return user, nil
}

// Signin verifies credentials with a single mechanism (bcrypt compare)
// and answers identically for unknown email and wrong password.
func (s *authService) Signin(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", invalid("please enter your email and password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// RequestPasswordReset is intentionally silent about whether the account
// exists; callers answer the same message either way.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return invalid("email is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	expires := time.Now().UTC().Add(s.cfg.ResetTokenTTL)
	user.ResetPasswordToken = hashResetToken(token)
	user.ResetPasswordExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mailer.SendResetEmail(user.Email, token); err != nil {
		// Roll the token back so a half-finished request leaves no
		// dangling reset window.
		user.ResetPasswordToken = ""
		user.ResetPasswordExpires = nil
		if rollbackErr := s.users.Update(ctx, user); rollbackErr != nil {
			s.logger.WithError(rollbackErr).Error("Failed to clear reset token after mail failure")
		}
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.WithField("email", user.Email).Info("Password reset email sent")
	return nil
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return invalid("missing required fields")
	}
	if utf8.RuneCountInString(password) < passwordMinLength {
		return invalid("password must be at least 8 characters long")
	}

	user, err := s.users.FindByResetToken(ctx, hashResetToken(token), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.WithField("email", user.Email).Info("Password reset completed")
	return nil
}

// Only the sha256 of the reset token is stored; the mailed link carries
// the raw value.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
