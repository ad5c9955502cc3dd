package model

import "github.com/golang-jwt/jwt"

// AccessTokenClaims is embedded in the short-lived access token.
type AccessTokenClaims struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	jwt.StandardClaims
}

// RefreshTokenClaims carries only the user id. The signed token itself is
// persisted on the user record so rotation invalidates older copies.
type RefreshTokenClaims struct {
	ID string `json:"_id"`
	jwt.StandardClaims
}
