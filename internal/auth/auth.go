// Package auth issues and verifies the bearer tokens that guard every data
// endpoint. There is a single configured operator account.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const TokenType = "bearer"

type Config struct {
	Username string
	// PasswordHash is a bcrypt hash. When empty, Password is hashed once at
	// construction.
	PasswordHash string
	Password     string
	SecretKey    string
	TTL          time.Duration
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Authenticator struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if cfg.Username == "" {
		return nil, errors.New("auth: username is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("auth: secret key is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("auth: token ttl must be positive")
	}

	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, errors.New("auth: password or password hash is required")
		}
		var err error
		hash, err = HashPassword(cfg.Password)
		if err != nil {
			return nil, err
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("auth: invalid password hash: %w", err)
	}

	return &Authenticator{
		username:     cfg.Username,
		passwordHash: hash,
		secret:       []byte(cfg.SecretKey),
		ttl:          cfg.TTL,
		now:          time.Now,
	}, nil
}

func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Login checks the credentials and issues a signed token for the user.
func (a *Authenticator) Login(username, password string) (*Token, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", apperror.ErrUnauthorized)
	}

	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   a.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresIn:   int64(a.ttl / time.Second),
	}, nil
}

// Verify parses an HS256 token and returns its subject. Tokens without an
// expiry, expired tokens and tokens for any other user are rejected.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: missing token", apperror.ErrUnauthorized)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(a.username),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrUnauthorized, err)
	}
	return claims.Subject, nil
}

func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}
