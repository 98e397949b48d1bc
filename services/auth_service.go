package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthService exchanges the fixed admin password for a session token.
// There is a single operator role; the token only carries an expiry.
type AuthService interface {
	Login(ctx context.Context, password string) (string, time.Time, error)
	VerifyToken(tokenString string) error
}

type authService struct {
	passwordHash   string
	jwtSecret      []byte
	sessionTimeout time.Duration
}

func NewAuthService(passwordHash string, jwtSecret []byte, sessionTimeout time.Duration) AuthService {
	return &authService{
		passwordHash:   passwordHash,
		jwtSecret:      jwtSecret,
		sessionTimeout: sessionTimeout,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidPassword
	}

	expiresAt := time.Now().Add(s.sessionTimeout)
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
