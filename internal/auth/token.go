package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// CodecConfig holds the signing material for the token codec. It is built
// once at startup and never mutated afterwards.
type CodecConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// CodecOption customizes a Codec.
type CodecOption func(*Codec)

// WithClock replaces the wall clock used for both issuing and verifying.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// Codec issues and verifies HS256-signed identity tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Claims describes the JWT payload.
type Claims struct {
	UserID int64       `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewCodec builds a codec. An empty secret is rejected.
func NewCodec(cfg CodecConfig, opts ...CodecOption) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("auth: empty signing secret")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if ttl%time.Second != 0 {
		return nil, fmt.Errorf("auth: ttl %s is not a whole number of seconds", ttl)
	}
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	c := &Codec{secret: secret, ttl: ttl, issuer: cfg.Issuer, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs identity with an absolute expiry of now+ttl. JWT times have
// second precision, so now is truncated and ttl must be whole seconds; the
// returned expiry is exactly the exp claim.
func (c *Codec) Issue(identity domain.Identity, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, fmt.Errorf("auth: non-positive ttl %s", ttl)
	}
	if ttl%time.Second != 0 {
		return "", time.Time{}, fmt.Errorf("auth: ttl %s is not a whole number of seconds", ttl)
	}
	if !identity.Role.Valid() {
		return "", time.Time{}, fmt.Errorf("auth: unknown role %q", identity.Role)
	}

	now := c.now().Truncate(time.Second)
	expiresAt := now.Add(ttl)
	claims := &Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks the signature and expiry and returns the embedded identity.
// Failures wrap exactly one of ErrTokenMalformed, ErrTokenBadSignature or
// ErrTokenExpired.
func (c *Codec) Verify(tokenStr string) (domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, c.keyFunc, c.parserOptions()...)
	if err != nil {
		return domain.Identity{}, classify(err)
	}
	if !parsed.Valid {
		return domain.Identity{}, ErrTokenMalformed
	}
	if claims.UserID <= 0 || !claims.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: incomplete identity claims", ErrTokenMalformed)
	}

	return domain.Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

func (c *Codec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return c.secret, nil
}

func (c *Codec) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}
	return opts
}

// classify collapses jwt parser errors onto the three token failure kinds.
// HMAC comparison inside the jwt library is constant time (hmac.Equal).
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
