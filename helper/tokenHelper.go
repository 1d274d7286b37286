package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

const (
	kindAccess  = "access"
	kindRefresh = "refresh"
)

type SignedDetails struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Uid   string      `json:"uid"`
	Role  models.Role `json:"role"`
	Kind  string      `json:"kind"`
	jwt.RegisteredClaims
}

// Actor converts access token claims into the caller identity.
func (c *SignedDetails) Actor() (models.Actor, error) {
	id, err := primitive.ObjectIDFromHex(c.Uid)
	if err != nil {
		return models.Actor{}, fmt.Errorf("invalid uid claim: %w", err)
	}
	return models.Actor{ID: id, Email: c.Email, Role: c.Role}, nil
}

// TokenManager signs and validates HS256 access and refresh tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAllTokens creates an access token carrying the user's identity and
// role, and a refresh token carrying only the user id.
func (m *TokenManager) GenerateAllTokens(user *models.User) (signedToken string, signedRefreshToken string, err error) {
	now := time.Now()
	uid := user.ID.Hex()

	claims := &SignedDetails{
		Email: user.Email,
		Name:  user.Name,
		Uid:   uid,
		Role:  user.Role,
		Kind:  kindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}

	refreshClaims := &SignedDetails{
		Uid:  uid,
		Kind: kindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
		},
	}

	signedToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}

	signedRefreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign refresh token: %w", err)
	}

	return signedToken, signedRefreshToken, nil
}

// ValidateToken checks that signedToken is a valid, unexpired access token.
func (m *TokenManager) ValidateToken(signedToken string) (*SignedDetails, error) {
	return m.parse(signedToken, kindAccess)
}

// ValidateRefreshToken checks that signedToken is a valid, unexpired refresh token.
func (m *TokenManager) ValidateRefreshToken(signedToken string) (*SignedDetails, error) {
	return m.parse(signedToken, kindRefresh)
}

func (m *TokenManager) parse(signedToken, kind string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token is expired")
		}
		return nil, fmt.Errorf("token parsing error: %w", err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("the token is invalid")
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("expected a %s token", kind)
	}

	return claims, nil
}
