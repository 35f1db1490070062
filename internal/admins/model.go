package admins

import (
	"strings"
	"time"
)

const RoleAdmin = "admin"

// NormalizeEmail is the canonical form emails are stored and looked up in.
// Every writer of the email field must go through it, the seeder included,
// or login queries can never match the stored value.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PublicAdmin is the identity shape returned by the auth endpoints.
type PublicAdmin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a Admin) Public() PublicAdmin {
	return PublicAdmin{ID: a.ID, Name: a.Name, Email: a.Email}
}
