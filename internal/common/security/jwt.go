package security

import (
	"errors"
	"log"
	"time"

	"calendo/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

// InitJWT wires the process-wide signing key. A missing key is a
// misconfiguration and fatal at startup, never a per-call error.
func InitJWT() {
	if len(config.AppConfig.JWTKey) == 0 {
		log.Fatal("JWT_KEY is not set; refusing to start without a signing key")
	}
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken mints a session token carrying the username as subject and
// exactly one role claim, consumed by the role-based route guards.
func GenerateToken(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iss":  config.AppConfig.JWTIssuer,
		"aud":  config.AppConfig.JWTAudience,
		"exp":  now.Add(config.AppConfig.JWTExp).Unix(),
		"iat":  now.Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

func GetSubjectFromClaims(claims map[string]interface{}) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("sub claim is missing or not a string")
	}
	return sub, nil
}

func GetRoleFromClaims(claims map[string]interface{}) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
