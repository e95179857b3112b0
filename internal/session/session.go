// Package session guarda a identidade autenticada de cada requisição protegida
// e o cookie assinado que a transporta.
package session

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole aceita apenas os papéis conhecidos
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

// Session é a identidade da requisição, estabelecida no login
type Session struct {
	ID         string
	UserID     uint
	Username   string
	EmployeeID string
	Role       Role
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanAccess: admin acessa tudo, funcionário só os registros de ownerID igual ao seu
func (s Session) CanAccess(ownerID uint) bool {
	return s.IsAdmin() || s.UserID == ownerID
}

const contextKey = "session"

func Set(c *gin.Context, s Session) {
	c.Set(contextKey, s)
}

func From(c *gin.Context) (Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

// MustFrom é usado apenas atrás do middleware RequireSession
func MustFrom(c *gin.Context) Session {
	return c.MustGet(contextKey).(Session)
}
