package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirrors the access tokens issued by the hosted auth provider.
type Claims struct {
	UserRole string `json:"user_role"`
	jwt.RegisteredClaims
}

type TokenParser struct {
	secret []byte
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{secret: []byte(secret)}
}

func (p *TokenParser) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("invalid signing method")
	}
	return p.secret, nil
}

func (p *TokenParser) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, p.keyFunc)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Resolve turns a raw bearer token into an AuthContext. Tokens that fail to
// parse yield an anonymous caller; an unknown role claim yields an
// authenticated caller without a role.
func (p *TokenParser) Resolve(tokenString string) AuthContext {
	if tokenString == "" {
		return Anonymous()
	}
	claims, err := p.Parse(tokenString)
	if err != nil {
		return Anonymous()
	}
	role, _ := ParseRole(claims.UserRole)
	return AuthContext{
		UserID:          claims.Subject,
		Role:            role,
		IsAuthenticated: true,
	}
}

// IssueToken signs an access token with the same secret. Used by local
// tooling and tests; production tokens come from the auth provider.
func (p *TokenParser) IssueToken(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}
