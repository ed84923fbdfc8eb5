package domain

// Role is the authorization level carried by an identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated principal derived from a verified token.
// It is produced only by the token codec and lives for one request.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// CredentialRecord is the slice of a user row needed to authenticate.
type CredentialRecord struct {
	UserID       int64
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
}
