package jwt

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// SessionExpiration is the lifetime of a user session token and cookie.
	SessionExpiration = 15 * 24 * time.Hour

	// AdminSessionExpiration is the lifetime of an admin dashboard session.
	AdminSessionExpiration = time.Hour

	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "chatserver"
)

// ErrMissingToken is returned when a request carries no session token at all.
var ErrMissingToken = errors.New("session token missing")

// GenerateToken signs payload with HS256 and the given lifetime.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken verifies the signature and expiry of tokenString.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.Role != RoleUser && claims.Role != RoleAdmin {
		return nil, errors.New("token carries an unknown role")
	}

	return claims, nil
}

// TokenFromRequest reads the session token from the named cookie, falling back
// to an "Authorization: Bearer" header for non-browser clients.
func TokenFromRequest(r *http.Request, cookieName string) (string, error) {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
		return parts[1], nil
	}

	return "", ErrMissingToken
}

// Verify extracts and parses the session token carried by r.
func Verify(r *http.Request, cookieName, secretKey string) (*Payload, error) {
	tokenString, err := TokenFromRequest(r, cookieName)
	if err != nil {
		return nil, err
	}

	return ParseToken(tokenString, secretKey)
}

// SetSessionCookie writes the session cookie. secure is false only in development
// so the cookie also works over plain http://localhost.
func SetSessionCookie(w http.ResponseWriter, cookieName, token string, maxAge time.Duration, secure bool) {
	writeCookie(w, cookieName, token, int(maxAge.Seconds()), secure)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, cookieName string, secure bool) {
	// a negative MaxAge is sent as "Max-Age=0"
	writeCookie(w, cookieName, "", -1, secure)
}

func writeCookie(w http.ResponseWriter, name, value string, maxAge int, secure bool) {
	sameSite := http.SameSiteNoneMode
	if !secure {
		sameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}
