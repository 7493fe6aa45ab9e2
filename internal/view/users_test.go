package view

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
)

type fakeUserStore struct {
	users   []core.User
	listErr error
	delErr  error

	lists   int
	deletes int
	lastID  string
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]core.User, error) {
	f.lists++
	return f.users, f.listErr
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, id string) error {
	f.deletes++
	f.lastID = id
	return f.delErr
}

func adminUser() core.User {
	return core.User{ID: "u1", Name: "Alice", Role: core.RoleAdmin}
}

func TestUsersRequireAdmin(t *testing.T) {
	store := &fakeUserStore{users: []core.User{adminUser()}}
	u := NewUsers(store, regularUser(), testLogger(), nil)

	if u.Authorized() {
		t.Fatal("non-admin must not be authorized")
	}
	u.Refresh(context.Background())
	if store.lists != 0 {
		t.Error("unauthorized refresh must not fetch")
	}
	if u.Loaded() {
		t.Error("unauthorized controller must stay unloaded")
	}

	if err := u.Delete(context.Background(), "u3"); !errors.Is(err, core.ErrNotAdmin) {
		t.Errorf("Delete() = %v, want ErrNotAdmin", err)
	}
	if store.deletes != 0 {
		t.Error("unauthorized delete reached the store")
	}
}

func TestUsersRefreshAndRoleCounts(t *testing.T) {
	store := &fakeUserStore{users: []core.User{
		{ID: "u1", Role: core.RoleAdmin},
		{ID: "u2", Role: core.RoleUser},
		{ID: "u3", Role: core.RoleUser},
		{ID: "u4", Role: core.RoleReadOnly},
	}}
	u := NewUsers(store, adminUser(), testLogger(), nil)

	u.Refresh(context.Background())
	if len(u.Users()) != 4 {
		t.Fatalf("users = %d, want 4", len(u.Users()))
	}

	counts := u.RoleCounts()
	if counts[core.RoleAdmin] != 1 || counts[core.RoleUser] != 2 || counts[core.RoleReadOnly] != 1 {
		t.Errorf("role counts = %v", counts)
	}
}

func TestUsersRefreshFailureDegradesToEmpty(t *testing.T) {
	store := &fakeUserStore{listErr: errors.New("boom")}
	u := NewUsers(store, adminUser(), testLogger(), nil)

	u.Refresh(context.Background())
	if len(u.Users()) != 0 {
		t.Error("failed fetch must leave the list empty")
	}
	if !u.Loaded() {
		t.Error("a failed fetch still completes the load")
	}
}

func TestUsersSelfDeleteRejected(t *testing.T) {
	store := &fakeUserStore{}
	u := NewUsers(store, adminUser(), testLogger(), func(string) bool { return true })

	if err := u.Delete(context.Background(), "u1"); !errors.Is(err, core.ErrSelfDelete) {
		t.Errorf("Delete(self) = %v, want ErrSelfDelete", err)
	}
	if store.deletes != 0 {
		t.Error("self-delete reached the store")
	}
}

func TestUsersDeleteConfirmation(t *testing.T) {
	store := &fakeUserStore{}
	declined := NewUsers(store, adminUser(), testLogger(), func(string) bool { return false })
	if err := declined.Delete(context.Background(), "u2"); err != nil {
		t.Fatalf("declined confirmation must be a no-op, got %v", err)
	}
	if store.deletes != 0 {
		t.Error("declined confirmation issued a delete")
	}

	confirmed := NewUsers(store, adminUser(), testLogger(), func(string) bool { return true })
	if err := confirmed.Delete(context.Background(), "u2"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if store.deletes != 1 || store.lastID != "u2" {
		t.Errorf("deletes = %d lastID = %s", store.deletes, store.lastID)
	}
	// Deletion refetches the account list.
	if store.lists != 1 {
		t.Errorf("lists after delete = %d, want 1", store.lists)
	}
}
