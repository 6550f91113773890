package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtKey reads the secret at call time: main loads .env after package init,
// so a package-level variable would capture the pre-Load environment.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// SessionClaims is the payload of a progressive-flow session token. The
// token is the only credential for auto-save and submit, so it binds both
// the submission and the form it was opened for.
type SessionClaims struct {
	SubmissionID string `json:"submission_id"`
	FormID       string `json:"form_id"`
	jwt.RegisteredClaims
}

// CreateSessionToken signs a token for a newly initialized flow session.
// Sessions are short-lived: nobody fills a public form for more than a day.
func CreateSessionToken(submissionID, formID uuid.UUID) (string, error) {
	claims := &SessionClaims{
		SubmissionID: submissionID.String(),
		FormID:       formID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
