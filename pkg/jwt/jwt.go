package jwt

import (
	"Folio/config"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTypeAccess = "access"

var ErrInvalidTokenType = errors.New("invalid token type")

type Claims struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Issuer 签发凭证
type Issuer interface {
	Issue(userID uint64, role string) (token string, expiresAt time.Time, err error)
}

// Verifier 校验凭证并返回身份
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// Manager 同时实现 Issuer 和 Verifier（HS256）
type Manager struct {
	secret []byte
	expire time.Duration
	now    func() time.Time
}

func NewManager(secret []byte, expire time.Duration) *Manager {
	return &Manager{secret: secret, expire: expire, now: time.Now}
}

func ProvideManager(conf *config.Config) *Manager {
	return NewManager([]byte(conf.Jwt.Secret), conf.Jwt.Expire)
}

func (m *Manager) Issue(userID uint64, role string) (string, time.Time, error) {
	expiresAt := m.now().Add(m.expire)
	token, err := GenerateToken(m.secret, userID, role, TokenTypeAccess, m.now(), expiresAt)
	return token, expiresAt, err
}

func (m *Manager) Verify(token string) (*Claims, error) {
	return ParseToken(m.secret, TokenTypeAccess, token)
}

func GenerateToken(secret []byte, userID uint64, role string, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, expectedType string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Type != expectedType {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}
