package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/moodmate-app/moodmate-backend/internal/users"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords
// so a login probe cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore is the account storage auth needs.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*users.User, error)
	Credentials(ctx context.Context, username string) (int64, string, error)
}

// Service signs users up and issues HMAC-signed JWTs on login.
type Service struct {
	store  UserStore
	secret []byte
	expiry time.Duration
	logger *logging.Logger
	now    func() time.Time
}

// NewService creates an auth service.
func NewService(store UserStore, secret string, expiry time.Duration, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Service{
		store:  store,
		secret: []byte(secret),
		expiry: expiry,
		logger: logger,
		now:    time.Now,
	}
}

// Signup creates an account and returns it with a fresh token.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*users.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("auth: hash password: %w", err)
	}

	user, err := s.store.Create(ctx, username, email, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user signed up", "user_id", user.ID, "username", username)
	return user, token, nil
}

// Login verifies credentials and returns the user id with a fresh token.
func (s *Service) Login(ctx context.Context, username, password string) (int64, string, error) {
	id, hash, err := s.store.Credentials(ctx, username)
	if errors.Is(err, users.ErrUserNotFound) {
		return 0, "", ErrInvalidCredentials
	}
	if err != nil {
		return 0, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return 0, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(id)
	if err != nil {
		return 0, "", err
	}
	return id, token, nil
}

func (s *Service) issueToken(userID int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    "moodmate",
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}
