package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentorverse/mentorverse-api/internal/auth"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

func statusOf(err error) int {
	return apperrors.ToDomainError(err).HTTPStatus
}

func messageOf(err error) string {
	return apperrors.ToDomainError(err).Message
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUsers, *auth.Codec) {
	t.Helper()
	codec, err := auth.NewCodec(auth.CodecConfig{Secret: []byte("service-secret"), TTL: 2 * time.Hour})
	require.NoError(t, err)
	users := newFakeUsers()
	return NewAuthService(users, codec, bcrypt.MinCost), users, codec
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, codec := newAuthFixture(t)
	ctx := context.Background()

	college := "IIT"
	user, err := svc.Register(ctx, RegisterInput{FullName: " Asha ", Email: "asha@example.com", Password: "pw123456", CollegeName: &college})
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.FullName)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "pw123456", user.PasswordHash)

	res, err := svc.Login(ctx, "asha@example.com", "pw123456")
	require.NoError(t, err)
	assert.Empty(t, res.User.PasswordHash)
	assert.Equal(t, user.ID, res.User.UserID)

	identity, err := codec.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{UserID: user.ID, Email: "asha@example.com", Role: domain.RoleUser}, identity)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), res.ExpiresAt, 5*time.Second)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	for _, in := range []RegisterInput{
		{Email: "a@b.c", Password: "x"},
		{FullName: "A", Password: "x"},
		{FullName: "A", Email: "a@b.c"},
		{FullName: "   ", Email: "a@b.c", Password: "x"},
	} {
		_, err := svc.Register(context.Background(), in)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(err))
		assert.Equal(t, "All fields are required", messageOf(err))
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	in := RegisterInput{FullName: "A", Email: "dup@example.com", Password: "x"}

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "Email already registered", messageOf(err))
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	hash, err := auth.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	users.add(domain.User{FullName: "Active", Email: "active@example.com", PasswordHash: hash, Role: domain.RoleUser, IsActive: true})
	users.add(domain.User{FullName: "Gone", Email: "gone@example.com", PasswordHash: hash, Role: domain.RoleUser, IsActive: false})

	cases := []struct {
		name, email, password string
		status                int
		message               string
	}{
		{"unknown email", "nobody@example.com", "secret", http.StatusUnauthorized, "Invalid credentials"},
		{"wrong password", "active@example.com", "guess", http.StatusUnauthorized, "Invalid credentials"},
		{"inactive", "gone@example.com", "secret", http.StatusForbidden, "Account is inactive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.email, tc.password)
			require.Error(t, err)
			assert.Equal(t, tc.status, statusOf(err))
			assert.Equal(t, tc.message, messageOf(err))
		})
	}
}

func TestAuthService_LoginStoreFailureIsInternal(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	users.err = errors.New("connection reset")

	_, err := svc.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
}

func TestAuthService_AdminTokenCarriesRole(t *testing.T) {
	svc, users, codec := newAuthFixture(t)
	hash, err := auth.HashPassword("root", bcrypt.MinCost)
	require.NoError(t, err)
	admin := users.add(domain.User{FullName: "Root", Email: "root@example.com", PasswordHash: hash, Role: domain.RoleAdmin, IsActive: true})

	res, err := svc.Login(context.Background(), "root@example.com", "root")
	require.NoError(t, err)

	identity, err := codec.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, identity.UserID)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}
