package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CookieName      = "croche_session"
	stateCookieName = "croche_oauth_state"
	stateTTL        = 10 * time.Minute
)

// User is the minimal summary stored in the session cookie.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Codec signs user summaries into HS256 JWTs carried in a cookie, so the
// session survives without any server-side store.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

func (c *Codec) Issue(u *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *Codec) Parse(token string) (*User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, errors.New("invalid session token")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("invalid session subject")
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &User{
		ID:    uint(sub),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}

// Write replaces the session cookie wholesale with the given user summary.
func (c *Codec) Write(ec echo.Context, u *User) error {
	token, err := c.Issue(u)
	if err != nil {
		return err
	}

	ec.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(c.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the session user, or nil for anonymous, missing, tampered or
// expired cookies alike.
func (c *Codec) Read(ec echo.Context) *User {
	cookie, err := ec.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	u, err := c.Parse(cookie.Value)
	if err != nil {
		return nil
	}

	return u
}

// Clear expires the session cookie. A no-op for anonymous clients.
func (c *Codec) Clear(ec echo.Context) {
	ec.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WriteState stores the OAuth state nonce so the callback can verify it.
func WriteState(ec echo.Context, state string) {
	ec.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(stateTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ReadState(ec echo.Context) string {
	cookie, err := ec.Cookie(stateCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
