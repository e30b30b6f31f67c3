package jwt

import "github.com/golang-jwt/jwt"

const (
	// RoleUser marks a regular account session.
	RoleUser = "user"

	// RoleAdmin marks a dashboard session issued by the admin verification endpoint.
	RoleAdmin = "admin"
)

// Payload defines the claims carried by session tokens.
type Payload struct {
	// StandardClaims carries exp, iat and iss at the top level of the token.
	jwt.StandardClaims

	// ID is the user identifier (users.id). Empty for admin sessions.
	ID string `json:"id,omitempty"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`
}

// IsAdmin reports whether the payload belongs to an admin session.
func (p *Payload) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
