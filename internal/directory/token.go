package directory

import (
	"errors"
	"time"

	"github.com/brianvoe/sjwt"
)

var errInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	SessionID   string
	PrincipalID string
}

func generateToken(secret []byte, sid, principalID string, ttl time.Duration) string {
	claims := sjwt.New()
	claims.Set("sid", sid)
	claims.Set("sub", principalID)
	claims.SetExpiresAt(time.Now().Add(ttl))

	return claims.Generate(secret)
}

func parseToken(secret []byte, token string) (tokenClaims, error) {
	if token == "" || !sjwt.Verify(token, secret) {
		return tokenClaims{}, errInvalidToken
	}

	claims, err := sjwt.Parse(token)
	if err != nil {
		return tokenClaims{}, errInvalidToken
	}
	if err := claims.Validate(); err != nil {
		return tokenClaims{}, err
	}

	sid, err := claims.GetStr("sid")
	if err != nil || sid == "" {
		return tokenClaims{}, errInvalidToken
	}
	sub, err := claims.GetStr("sub")
	if err != nil || sub == "" {
		return tokenClaims{}, errInvalidToken
	}

	return tokenClaims{SessionID: sid, PrincipalID: sub}, nil
}
