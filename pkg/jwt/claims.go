package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
)

// Claims is the token payload issued by the identity provider. The subject
// is the player's opaque identifier.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Identity extracts the caller identity carried by the claims.
func (c *Claims) Identity() sharedtypes.Identity {
	return sharedtypes.Identity{
		UserID: sharedtypes.UserID(c.Subject),
		Email:  c.Email,
	}
}
