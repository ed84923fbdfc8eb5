package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/auth"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/repository"
	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

const (
	msgFieldsRequired    = "All fields are required"
	msgEmailRegistered   = "Email already registered"
	msgInvalidCredential = "Invalid credentials"
	msgAccountInactive   = "Account is inactive"
)

// TokenIssuer signs identities into bearer tokens.
type TokenIssuer interface {
	Issue(identity domain.Identity, ttl time.Duration) (string, time.Time, error)
	TTL() time.Duration
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, tokens TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	CollegeName *string
	Branch      *string
	Year        *string
	Mobile      *string
}

// LoginResult carries the issued token and the public user fields.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.CredentialRecord
}

// Register creates a new student account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, apperrors.NewValidationError(msgFieldsRequired, nil)
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewBadRequest(msgEmailRegistered)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		CollegeName:  in.CollegeName,
		Branch:       in.Branch,
		Year:         in.Year,
		Mobile:       in.Mobile,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewBadRequest(msgEmailRegistered)
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token with the configured TTL.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	rec, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewUnauthorized(msgInvalidCredential)
	}
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	if !auth.VerifyPassword(password, rec.PasswordHash) {
		return nil, apperrors.NewUnauthorized(msgInvalidCredential)
	}
	if !rec.IsActive {
		return nil, apperrors.NewForbidden(msgAccountInactive)
	}

	token, exp, err := s.tokens.Issue(domain.Identity{
		UserID: rec.UserID,
		Email:  rec.Email,
		Role:   rec.Role,
	}, s.tokens.TTL())
	if err != nil {
		return nil, err
	}

	rec.PasswordHash = ""
	return &LoginResult{Token: token, ExpiresAt: exp, User: *rec}, nil
}
