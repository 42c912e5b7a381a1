package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"routerdash/internal/logger"
)

// AuthService manages JWT token generation and validation for the API.
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// Claims is the JWT claims structure carried by dashboard tokens.
type Claims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

var authService *AuthService

// InitAuthService initializes the authentication service. An empty secret
// generates a random one, which means issued tokens do not survive a
// restart; configure ROUTERDASH_AUTH_SECRET for stable deployments.
func InitAuthService(secretKey string, tokenExpiry time.Duration) *AuthService {
	log := logger.Component("auth")

	if secretKey == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal().Err(err).Msg("could not generate auth secret")
		}
		secretKey = hex.EncodeToString(buf)
		log.Warn().Msg("no auth secret configured, generated an ephemeral one")
	}

	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}

	authService = &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}
	return authService
}

// GenerateToken creates a new JWT for a dashboard client.
func GenerateToken(clientName string) (string, error) {
	if authService == nil {
		return "", fmt.Errorf("auth service not initialized")
	}

	now := time.Now()
	claims := Claims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authService.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "routerdash",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authService.secretKey))
}

// ValidateToken verifies and parses a JWT token.
func ValidateToken(tokenString string) (*Claims, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service not initialized")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authService.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// TokenExpiry returns when a token issued now would expire.
func TokenExpiry() time.Time {
	if authService == nil {
		return time.Time{}
	}
	return time.Now().Add(authService.tokenExpiry)
}
