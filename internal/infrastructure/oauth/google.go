// Package oauth verifies Google ID tokens. The gym does not run an OAuth
// dance of its own: the frontend obtains a credential from Google Sign-In and
// posts it here, where the signature is checked against Google's JWKS.
package oauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fitgrid/gym-system/internal/core/ports"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

var ErrInvalidCredential = errors.New("invalid google credential")

// GoogleVerifier validates Google-issued ID tokens against Google's
// published signing keys.
type GoogleVerifier struct {
	jwks     *keyfunc.JWKS
	audience string
}

// NewGoogleVerifier fetches Google's JWKS and keeps it refreshed in the
// background. audience, when non-empty, must match the token's aud claim
// (the OAuth client id).
func NewGoogleVerifier(audience string) (*GoogleVerifier, error) {
	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch google jwks: %w", err)
	}
	return &GoogleVerifier{jwks: jwks, audience: audience}, nil
}

// Verify checks the credential's signature, expiry, issuer and audience, and
// returns the identity tuple it carries.
func (v *GoogleVerifier) Verify(credential string) (ports.ExternalIdentity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil || !token.Valid {
		return ports.ExternalIdentity{}, ErrInvalidCredential
	}

	iss, _ := claims["iss"].(string)
	if _, ok := googleIssuers[iss]; !ok {
		return ports.ExternalIdentity{}, ErrInvalidCredential
	}
	if v.audience != "" {
		aud, _ := claims["aud"].(string)
		if aud != v.audience {
			return ports.ExternalIdentity{}, ErrInvalidCredential
		}
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return ports.ExternalIdentity{}, ErrInvalidCredential
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return ports.ExternalIdentity{
		GoogleID:   sub,
		Email:      email,
		Name:       name,
		PictureURL: picture,
	}, nil
}

// Close stops the background JWKS refresh.
func (v *GoogleVerifier) Close() {
	v.jwks.EndBackground()
}
