package service

import (
	"time"

	"github.com/openjournal/blogd/internal/blog/domain"
	"github.com/openjournal/blogd/pkg/jwtx"
)

// TokenService issues signed identity tokens. Verification happens in the
// authentication middleware via the matching jwtx.Verifier.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Issue produces a signed token for the user, expiring TTL after issuance.
func (s *TokenService) Issue(u domain.User) (string, error) {
	claims := jwtx.NewAccessClaims(u.ID, u.Username, s.Issuer, s.TTL, time.Now().UTC())
	return s.Signer.Sign(claims)
}
