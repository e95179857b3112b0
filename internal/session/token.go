package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	Username   string `json:"username"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager assina e valida o cookie de sessão (JWT HS256)
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue gera um id novo para a sessão e devolve o token assinado
func (m *TokenManager) Issue(s Session) (Session, string, error) {
	s.ID = uuid.NewString()
	now := m.now()

	c := claims{
		Username:   s.Username,
		EmployeeID: s.EmployeeID,
		Role:       string(s.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   fmt.Sprintf("%d", s.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Session{}, "", fmt.Errorf("sign session: %w", err)
	}
	return s, signed, nil
}

// Parse valida assinatura, expiração e conteúdo. Devolve também a expiração do token.
func (m *TokenManager) Parse(tokenString string) (Session, time.Time, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return Session{}, time.Time{}, ErrInvalidToken
	}

	var userID uint
	if _, err := fmt.Sscanf(c.Subject, "%d", &userID); err != nil || userID == 0 {
		return Session{}, time.Time{}, ErrInvalidToken
	}

	role, ok := ParseRole(c.Role)
	if !ok || c.ID == "" || c.ExpiresAt == nil {
		return Session{}, time.Time{}, ErrInvalidToken
	}

	return Session{
		ID:         c.ID,
		UserID:     userID,
		Username:   c.Username,
		EmployeeID: c.EmployeeID,
		Role:       role,
	}, c.ExpiresAt.Time, nil
}
