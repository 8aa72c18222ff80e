package utils

import (
	"errors" // Error classification
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Token verification failures
var (
	ErrTokenExpired = errors.New("token expired") // Signature valid but past expiry
	ErrTokenInvalid = errors.New("token invalid") // Anything else: bad signature, malformed, wrong algorithm
)

// JWT Claims
type Claims struct {
	UserID               uint `json:"userId"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// TokenManager signs and verifies access tokens with a secret supplied at construction
type TokenManager struct {
	secret []byte        // HMAC secret
	ttl    time.Duration // Token lifetime
	now    func() time.Time
}

// NewTokenManager creates a TokenManager. The secret must not be empty.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the lifetime of issued tokens
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Generate creates a signed token for a given user ID
func (m *TokenManager) Generate(userID uint) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)), // Token expires after the configured TTL
			IssuedAt:  jwt.NewNumericDate(now),            // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(m.secret)                        // Sign the token with the secret
}

// Parse verifies a token string and returns its claims.
// Failures are reported as ErrTokenExpired or ErrTokenInvalid.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil // Return the secret key for validation
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Join(ErrTokenInvalid, err)
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
