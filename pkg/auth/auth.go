package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// JWTKey is set once at startup from config.
var JWTKey []byte

// Profile is the identity carried by the access token. The subject is the
// external auth provider uid; the member record is resolved from it.
type Profile struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

func SetIdentity(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func Identity(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(ctxKey{}).(Profile)
	if !ok {
		return Profile{}, errors.New("no identity in context")
	}
	return p, nil
}
