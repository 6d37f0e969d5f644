package services

import (
	"errors"
	"fmt"
	"time"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"github.com/golang-jwt/jwt/v4"
)

// InterfaceJWTService defines the JWT token operations
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	BlacklistToken(tokenString string) error
	IsBlacklisted(tokenString string) bool
}

// JWTService provides JWT related services
type JWTService struct {
	secretKey string
	issuer    string
	redis     InterfaceRedisService
}

// JWTClaims defines the claims carried by every issued token
type JWTClaims struct {
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	NewsroomID *uint  `json:"newsroom_id,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, redisService InterfaceRedisService) *JWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "newsdesk-http-service",
		redis:     redisService,
	}
}

// GenerateToken generates a JWT token for the given user
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	// Tokens are valid for 24 hours
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID:     user.ID,
		Role:       user.Role,
		NewsroomID: user.NewsroomID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a JWT token string
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	if s.IsBlacklisted(tokenString) {
		return nil, errors.New("token has been revoked")
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Verify the signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extracts the typed claims from a token string
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}

	if userID, ok := claims["user_id"].(float64); ok {
		jwtClaims.UserID = uint(userID)
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if newsroomID, ok := claims["newsroom_id"].(float64); ok {
		id := uint(newsroomID)
		jwtClaims.NewsroomID = &id
	}
	if issuer, ok := claims["iss"].(string); ok {
		jwtClaims.RegisteredClaims.Issuer = issuer
	}

	return jwtClaims, nil
}

// BlacklistToken marks a token as revoked until it would have expired.
// Without redis the logout degrades to client-side token deletion.
func (s *JWTService) BlacklistToken(tokenString string) error {
	if s.redis == nil {
		return nil
	}

	ttl := 24 * time.Hour
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				remaining := time.Until(time.Unix(int64(exp), 0))
				if remaining > 0 {
					ttl = remaining
				}
			}
		}
	}

	return s.redis.Set("jwt_blacklist:"+tokenString, "1", ttl)
}

// IsBlacklisted reports whether a token has been revoked
func (s *JWTService) IsBlacklisted(tokenString string) bool {
	if s.redis == nil {
		return false
	}

	var marker string
	if err := s.redis.Get("jwt_blacklist:"+tokenString, &marker); err != nil {
		return false
	}
	return marker == "1"
}
