package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCodec(t *testing.T, secret string) (*Codec, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec, err := NewCodec(CodecConfig{Secret: []byte(secret), TTL: time.Hour}, WithClock(clock.Now))
	require.NoError(t, err)
	return codec, clock
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, clock := newTestCodec(t, "round-trip-secret")

	identities := []domain.Identity{
		{UserID: 1, Email: "student@example.com", Role: domain.RoleUser},
		{UserID: 42, Email: "root@example.com", Role: domain.RoleAdmin},
		{UserID: 9007199254740993, Email: "", Role: domain.RoleUser},
	}
	ttls := []time.Duration{time.Second * 2, time.Minute, 24 * time.Hour}

	for _, id := range identities {
		for _, ttl := range ttls {
			tok, exp, err := codec.Issue(id, ttl)
			require.NoError(t, err)
			assert.Equal(t, clock.Now().Add(ttl), exp)

			got, err := codec.Verify(tok)
			require.NoError(t, err)
			assert.Equal(t, id, got)
		}
	}
}

func TestCodec_ExpiredIsDistinct(t *testing.T) {
	codec, clock := newTestCodec(t, "expiry-secret")

	tok, _, err := codec.Issue(domain.Identity{UserID: 7, Email: "a@b.c", Role: domain.RoleUser}, time.Second)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)

	_, err = codec.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenBadSignature)
	assert.NotErrorIs(t, err, ErrTokenMalformed)
}

func TestCodec_ValidUntilExpiry(t *testing.T) {
	codec, clock := newTestCodec(t, "expiry-secret")

	tok, _, err := codec.Issue(domain.Identity{UserID: 7, Email: "a@b.c", Role: domain.RoleUser}, time.Minute)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = codec.Verify(tok)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestCodec_SingleCharacterMutationNeverVerifies(t *testing.T) {
	codec, _ := newTestCodec(t, "mutation-secret")

	tok, _, err := codec.Issue(domain.Identity{UserID: 1234, Email: "mutant@example.com", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	for i := range tok {
		for _, replacement := range []byte{'A', 'B', '_', '-', '.'} {
			if tok[i] == replacement {
				continue
			}
			mutated := []byte(tok)
			mutated[i] = replacement

			_, err := codec.Verify(string(mutated))
			require.Errorf(t, err, "mutation at %d (%q) verified", i, replacement)
			assert.Truef(t,
				errors.Is(err, ErrTokenBadSignature) || errors.Is(err, ErrTokenMalformed),
				"mutation at %d (%q): unexpected error %v", i, replacement, err)
		}
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer, _ := newTestCodec(t, "right-secret")
	verifier, _ := newTestCodec(t, "wrong-secret")

	tok, _, err := issuer.Issue(domain.Identity{UserID: 1, Email: "x@y.z", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestCodec_Malformed(t *testing.T) {
	codec, _ := newTestCodec(t, "secret")

	for _, input := range []string{"", "abc", "not.a.jwt", "a.b", "....", "eyJ.eyJ.sig"} {
		_, err := codec.Verify(input)
		assert.ErrorIsf(t, err, ErrTokenMalformed, "input %q", input)
	}
}

func TestCodec_RejectsNoneAlgorithm(t *testing.T) {
	codec, clock := newTestCodec(t, "secret")

	claims := &Claims{
		UserID: 1,
		Email:  "x@y.z",
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestCodec_RejectsUnknownRoleClaim(t *testing.T) {
	codec, clock := newTestCodec(t, "secret")

	claims := &Claims{
		UserID: 1,
		Email:  "x@y.z",
		Role:   domain.Role("superuser"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestCodec_RequiresExpiry(t *testing.T) {
	codec, _ := newTestCodec(t, "secret")

	claims := &Claims{UserID: 1, Email: "x@y.z", Role: domain.RoleUser}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestCodec_SubSecondClockHonoursReturnedExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 900_000_000, time.UTC)}
	codec, err := NewCodec(CodecConfig{Secret: []byte("sub-second"), TTL: time.Hour}, WithClock(clock.Now))
	require.NoError(t, err)

	tok, exp, err := codec.Issue(domain.Identity{UserID: 3, Email: "a@b.c", Role: domain.RoleUser}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC), exp)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))

	clock.Advance(50 * time.Millisecond)
	_, err = codec.Verify(tok)
	require.NoError(t, err)

	clock.now = exp.Add(-time.Nanosecond)
	_, err = codec.Verify(tok)
	require.NoError(t, err)

	clock.now = exp
	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestCodec_RejectsFractionalTTL(t *testing.T) {
	codec, _ := newTestCodec(t, "secret")

	_, _, err := codec.Issue(domain.Identity{UserID: 1, Role: domain.RoleUser}, 1500*time.Millisecond)
	assert.Error(t, err)

	_, err = NewCodec(CodecConfig{Secret: []byte("s"), TTL: 500 * time.Millisecond})
	assert.Error(t, err)
}

func TestCodec_IssueValidation(t *testing.T) {
	codec, _ := newTestCodec(t, "secret")

	_, _, err := codec.Issue(domain.Identity{UserID: 1, Role: domain.RoleUser}, 0)
	assert.Error(t, err)

	_, _, err = codec.Issue(domain.Identity{UserID: 1, Role: "guest"}, time.Hour)
	assert.Error(t, err)
}

func TestNewCodec(t *testing.T) {
	_, err := NewCodec(CodecConfig{})
	assert.Error(t, err)

	codec, err := NewCodec(CodecConfig{Secret: []byte("s")})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, codec.TTL())
}

func TestCodec_SecretIsCopied(t *testing.T) {
	secret := []byte("mutable-secret")
	codec, err := NewCodec(CodecConfig{Secret: secret, TTL: time.Hour})
	require.NoError(t, err)

	tok, _, err := codec.Issue(domain.Identity{UserID: 3, Email: "c@d.e", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)

	secret[0] = 'X'

	_, err = codec.Verify(tok)
	assert.NoError(t, err)
}
