package entity

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleIdeator   UserRole = "ideator"
	RoleFilmer    UserRole = "filmer"
	RoleEditor    UserRole = "editor"
	RoleRevisions UserRole = "revisions"
	RolePoster    UserRole = "poster"
)

var roles = []UserRole{RoleAdmin, RoleIdeator, RoleFilmer, RoleEditor, RoleRevisions, RolePoster}

func ValidRole(r UserRole) bool {
	for _, role := range roles {
		if role == r {
			return true
		}
	}
	return false
}

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Password    string     `json:"-"`
	AvatarURL   string     `json:"avatar_url"`
	Role        UserRole   `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
