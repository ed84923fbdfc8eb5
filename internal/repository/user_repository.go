package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// UserRepository defines persistence access for platform users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error
	List(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.CredentialRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.CredentialRecord, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and its default settings row in one transaction.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const insertUser = `
        INSERT INTO users (full_name, email, password_hash, college_name, branch, year, mobile, role)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING user_id, is_active, created_at, updated_at`
	const insertSettings = `INSERT INTO user_settings (user_id) VALUES ($1)`

	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, insertUser,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.CollegeName,
		user.Branch,
		user.Year,
		user.Mobile,
		user.Role,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return translate(err)
	}

	if _, err := tx.Exec(ctx, insertSettings, user.ID); err != nil {
		return translate(err)
	}

	return tx.Commit(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT user_id, full_name, email, college_name, branch, year, mobile, profile_pic, role, is_active, created_at, updated_at
        FROM users WHERE user_id=$1`

	var user domain.User
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.CollegeName,
		&user.Branch,
		&user.Year,
		&user.Mobile,
		&user.ProfilePic,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error {
	const query = `
        UPDATE users SET full_name=$1, college_name=$2, branch=$3, year=$4, mobile=$5, updated_at=NOW()
        WHERE user_id=$6`

	cmd, err := r.db.Exec(ctx, query,
		update.FullName,
		update.CollegeName,
		update.Branch,
		update.Year,
		update.Mobile,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT user_id, full_name, email, college_name, branch, year, mobile, profile_pic, role, is_active, created_at, updated_at
        FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.FullName,
			&user.Email,
			&user.CollegeName,
			&user.Branch,
			&user.Year,
			&user.Mobile,
			&user.ProfilePic,
			&user.Role,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// FindByEmail returns the credential record for login, or pgx.ErrNoRows.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.CredentialRecord, error) {
	const query = `
        SELECT user_id, full_name, email, password_hash, role, is_active
        FROM users WHERE email=$1`
	return r.findCredential(ctx, query, email)
}

// FindByID returns the credential record for an authenticated user id.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.CredentialRecord, error) {
	const query = `
        SELECT user_id, full_name, email, password_hash, role, is_active
        FROM users WHERE user_id=$1`
	return r.findCredential(ctx, query, id)
}

func (r *userRepository) findCredential(ctx context.Context, query string, arg any) (*domain.CredentialRecord, error) {
	var rec domain.CredentialRecord
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&rec.UserID,
		&rec.FullName,
		&rec.Email,
		&rec.PasswordHash,
		&rec.Role,
		&rec.IsActive,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
