package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/biztime"
)

// Claims carries the authenticated actor identity inside the bearer token.
// Token issuance lives in the account service; this core only verifies.
type Claims struct {
	ActorID uint   `json:"actor_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token for the actor. Used by tooling and tests;
// production tokens come from the account service with the same secret.
func (s *JWTService) Generate(actor identity.Actor) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		ActorID: actor.ID,
		Role:    actor.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Actor converts verified claims into the domain actor, validating the role.
func (c *Claims) Actor() (identity.Actor, error) {
	role := identity.Role(c.Role)
	if !role.IsValid() {
		return identity.Actor{}, fmt.Errorf("unknown role in token: %s", c.Role)
	}
	if c.ActorID == 0 {
		return identity.Actor{}, fmt.Errorf("missing actor id in token")
	}
	return identity.Actor{ID: c.ActorID, Role: role}, nil
}
