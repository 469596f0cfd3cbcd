// Package domain provides defenitions of all entities.
package domain

import "errors"

var (
	// ErrUserNotFound indicates that the self-service user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoReadPermission indicates that the user may not read beneficiaries.
	ErrNoReadPermission = errors.New("user has no beneficiary read permission")
)

// PermissionReadBeneficiaries is required to list third party beneficiaries.
const PermissionReadBeneficiaries = "READ_BENEFICIARYTPT"

// AppUser holds the authenticated self-service user identity.
type AppUser struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	ClientID    int64    `json:"client_id"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the user carries the given permission code.
func (u AppUser) HasPermission(code string) bool {
	for _, p := range u.Permissions {
		if p == code {
			return true
		}
	}

	return false
}
