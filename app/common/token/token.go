package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenPair 一次签发的访问/刷新令牌
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Conf holds the signing secrets and lifetimes for both tokens.
type Conf struct {
	AccessSecret  string
	AccessExpire  time.Duration
	RefreshSecret string
	RefreshExpire time.Duration
}

func BuildTokenPair(cfg Conf, userID int64, username string) (*TokenPair, time.Time, error) {
	accessToken, accessExpireAt, err := Sign(cfg.AccessSecret, cfg.AccessExpire, userID, username)
	if err != nil {
		return nil, time.Time{}, err
	}

	refreshToken, _, err := Sign(cfg.RefreshSecret, cfg.RefreshExpire, userID, username)
	if err != nil {
		return nil, time.Time{}, err
	}

	pair := &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(cfg.AccessExpire.Seconds()),
	}
	return pair, accessExpireAt, nil
}

func Sign(secret string, ttl time.Duration, userID int64, username string) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return "", time.Time{}, errors.New("token ttl must be positive")
	}

	now := time.Now()
	expireAt := now.Add(ttl)
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expireAt, nil
}

func Parse(tokenStr, secret string) (*Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("token is empty")
	}
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// IsExpired reports whether the parse failure was only the token being past
// its expiry, which allows the middleware to fall back to the refresh token.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
