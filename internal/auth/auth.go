package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"tasktracker/internal/config"
	"tasktracker/internal/models"
	"tasktracker/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every verification failure: bad signature,
	// wrong algorithm, expiry, malformed token, missing subject.
	ErrInvalidToken = errors.New("invalid token")
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Authenticate looks the user up by username and checks the password.
func Authenticate(username, password string) (models.User, error) {
	user, err := repository.GetUserByUsername(config.DB, username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !VerifyPassword(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs a token carrying the subject and an expiry of now+ttl.
// A non-positive ttl uses the configured default.
func IssueToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = config.TokenTTL
	}
	token := jwt.NewWithClaims(config.SigningMethod, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	return token.SignedString(config.SecretKey)
}

// VerifyToken checks signature, algorithm and expiry, and returns the
// subject. Any failure maps to ErrInvalidToken.
func VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != config.SigningMethod.Alg() {
			return nil, ErrInvalidToken
		}
		return config.SecretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
