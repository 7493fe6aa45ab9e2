package view

import (
	"context"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/services"
)

// UserStore is the user-administration slice of the API client.
type UserStore interface {
	ListUsers(ctx context.Context) ([]core.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Users drives the admin-only user management screen.
type Users struct {
	store   UserStore
	user    core.User
	logger  *log.Logger
	confirm services.ConfirmFunc

	mu     sync.Mutex
	users  []core.User
	loaded bool
}

func NewUsers(store UserStore, user core.User, logger *log.Logger, confirm services.ConfirmFunc) *Users {
	return &Users{store: store, user: user, logger: logger, confirm: confirm}
}

// Authorized reports whether the current user may see this screen at
// all. Unauthorized users get an access-denied state and no fetch is
// ever issued for them.
func (u *Users) Authorized() bool {
	return u.user.Role == core.RoleAdmin
}

// Refresh loads the account list. Failures degrade to an empty list and
// go to the logger.
func (u *Users) Refresh(ctx context.Context) {
	if !u.Authorized() {
		return
	}
	users, err := u.store.ListUsers(ctx)
	if err != nil {
		u.logger.ErrorContext(ctx, "user fetch failed", "error", err)
		users = nil
	}
	u.mu.Lock()
	u.users = users
	u.loaded = true
	u.mu.Unlock()
}

// Delete removes an account after confirmation. Deleting the signed-in
// account is never offered and is rejected here as well.
func (u *Users) Delete(ctx context.Context, id string) error {
	if !u.Authorized() {
		u.logger.ErrorContext(ctx, "user deletion attempted without admin role", "id", id)
		return core.ErrNotAdmin
	}
	if id == u.user.ID {
		return core.ErrSelfDelete
	}
	if u.confirm != nil && !u.confirm("Are you sure you want to delete this user?") {
		return nil
	}
	if err := u.store.DeleteUser(ctx, id); err != nil {
		u.logger.ErrorContext(ctx, "user deletion failed", "error", err, "id", id)
		return err
	}
	u.Refresh(ctx)
	return nil
}

func (u *Users) Users() []core.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.users
}

func (u *Users) Loaded() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loaded
}

// RoleCounts returns how many accounts hold each role, for the role
// statistics cards.
func (u *Users) RoleCounts() map[core.Role]int {
	u.mu.Lock()
	defer u.mu.Unlock()
	counts := make(map[core.Role]int)
	for _, usr := range u.users {
		counts[usr.Role]++
	}
	return counts
}
