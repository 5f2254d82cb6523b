package domain

import "time"

// User is an authenticatable principal scoped to a tenant.
type User struct {
	UserID       string  `json:"userID"`
	TenantID     string  `json:"tenantID"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	PasswordHash string  `json:"-"`
	IsActive     bool    `json:"isActive"`
	Roles        []Role  `json:"roles"`
	AuditFields

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// HasRole reports whether the principal holds role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// GoogleUserInfo holds the profile fields read from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
