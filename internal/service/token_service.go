package service

import (
	"fmt"
	"time"

	"marketplace-wallet/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
// Tokens are issued by the marketplace; walletctl can mint them for operators.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

type walletClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT for the given owner.
func (s *JWTTokenService) Generate(ownerID uuid.UUID, role string) (string, time.Time, error) {
	if role == "" {
		role = ports.RoleUser
	}

	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := walletClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses and validates a JWT token, returning the claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	claims := &walletClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID in token: %w", err)
	}

	role := claims.Role
	if role != ports.RoleAdmin {
		role = ports.RoleUser
	}

	return &ports.TokenClaims{
		OwnerID: ownerID,
		Role:    role,
	}, nil
}
