package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/leggettc18/devmarks/internal/models"
	"github.com/leggettc18/devmarks/internal/repository"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"github.com/leggettc18/devmarks/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// errInvalidCredentials is returned for both unknown emails and wrong passwords.
var errInvalidCredentials = appErr.New(appErr.CodeUnauthorized, "invalid credentials")

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*IssuedToken, error)
	// GetUser loads a user with the requested relations (bookmarks, folders).
	GetUser(ctx context.Context, userID uuid.UUID, embed []string) (*models.User, error)
}

// IssuedToken is a signed bearer token and its lifetime.
type IssuedToken struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *models.User
}

type authService struct {
	userRepo   repository.UserRepository
	hmacSecret []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

var _ AuthService = (*authService)(nil)

func NewAuthService(userRepo repository.UserRepository, secret []byte, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{
		userRepo:   userRepo,
		hmacSecret: secret,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = normalizeEmail(email)

	var existing models.User
	err := s.userRepo.GetByEmail(ctx, email, &existing)
	if err == nil {
		return nil, appErr.New(appErr.CodeConflict, "email already registered")
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(ph),
		Name:         strings.TrimSpace(name),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.Wrap(err, appErr.CodeConflict, "email already registered")
		}
		return nil, err
	}

	logger.L().Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*IssuedToken, error) {
	var user models.User
	if err := s.userRepo.GetByEmail(ctx, normalizeEmail(email), &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errInvalidCredentials
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "compare password failed")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}

	logger.L().Info("token issued", zap.String("user_id", user.ID.String()))
	return &IssuedToken{AccessToken: signed, ExpiresIn: s.tokenTTL, User: &user}, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID, embed []string) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetWithEmbeds(ctx, userID, embed, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
