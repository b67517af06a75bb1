package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/exp/rand"

	"jambanganBack/internal/models"
)

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

type Manager struct {
	signingKey string
	ttl        time.Duration
}

func NewManager(signingKey string, ttl time.Duration) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &Manager{signingKey: signingKey, ttl: ttl}, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// NewJWT issues a signed token carrying the account identity, display name
// and role, expiring after the manager's TTL.
func (m *Manager) NewJWT(userID int, name, level string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: userID,
		Name:   name,
		Level:  level,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(m.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Id:        NewTokenID(),
		},
	})

	return token.SignedString([]byte(m.signingKey))
}

// Parse verifies the signature and expiry and returns the embedded claims.
// Malformed, unsigned and expired tokens all fail the same way.
func (m *Manager) Parse(accessToken string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token has expired or is invalid")
	}

	return claims, nil
}

// NewTokenID returns a random identifier used as the jti claim, so that
// individual tokens can be revoked before their natural expiry.
func NewTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
