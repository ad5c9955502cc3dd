package security

import (
	"errors"
	"time"

	"videotube/domain/dto"
	"videotube/domain/model"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

type ITokenManager interface {
	IssueTokenPair(user *model.User) (*dto.TokenPair, error)
	VerifyAccessToken(token string) (*model.AccessTokenClaims, error)
	VerifyRefreshToken(token string) (*model.RefreshTokenClaims, error)
}

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) ITokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueTokenPair signs a short-lived access token carrying the user's public
// identity and a longer-lived refresh token carrying only the id.
func (m *TokenManager) IssueTokenPair(user *model.User) (*dto.TokenPair, error) {
	now := time.Now()

	accessClaims := model.AccessTokenClaims{
		ID:       user.ID.Hex(),
		Email:    user.Email,
		Username: user.Username,
		Fullname: user.Fullname,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.accessTTL).Unix(),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(m.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshClaims := model.RefreshTokenClaims{
		ID: user.ID.Hex(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.refreshTTL).Unix(),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(m.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (m *TokenManager) VerifyAccessToken(tokenString string) (*model.AccessTokenClaims, error) {
	var claims model.AccessTokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (m *TokenManager) VerifyRefreshToken(tokenString string) (*model.RefreshTokenClaims, error) {
	var claims model.RefreshTokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.refreshSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
