package core

import "time"

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleReadOnly Role = "read-only"
)

type (
	// Role is the permission level of a user.
	Role string

	// User is the current-user fact supplied by the auth collaborator.
	// The client never mutates it; it only gates which operations are
	// offered.
	User struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      Role      `json:"role"`
		CreatedAt time.Time `json:"createdAt,omitempty"`
	}
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleReadOnly:
		return true
	}
	return false
}

// CanMutate reports whether the role may create, update or delete
// transactions.
func (r Role) CanMutate() bool {
	return r == RoleAdmin || r == RoleUser
}
