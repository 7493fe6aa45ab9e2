package services

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
)

func validInput() core.Input {
	return core.Input{Amount: "12.50", Type: core.Expense, Category: "Food"}
}

func newTestCoordinator(store *fakeStore, role core.Role, confirm ConfirmFunc) (*Coordinator, *int) {
	refreshes := 0
	refresh := func(ctx context.Context) { refreshes++ }
	return NewCoordinator(store, role, testLogger(), confirm, refresh), &refreshes
}

func TestCreateTriggersRefetch(t *testing.T) {
	store := &fakeStore{}
	c, refreshes := newTestCoordinator(store, core.RoleUser, nil)

	if err := c.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if store.creates != 1 {
		t.Errorf("creates = %d, want 1", store.creates)
	}
	if *refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", *refreshes)
	}
}

func TestCreateRejectsInvalidAmountBeforeNetwork(t *testing.T) {
	store := &fakeStore{}
	c, refreshes := newTestCoordinator(store, core.RoleUser, nil)

	in := validInput()
	in.Amount = "abc"
	err := c.Create(context.Background(), in)
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("Create() = %v, want ErrInvalidAmount", err)
	}
	if store.creates != 0 {
		t.Error("validation failure must not reach the network")
	}
	if *refreshes != 0 {
		t.Error("failed create must not refetch")
	}
}

func TestMutationsRejectedForReadOnlyRole(t *testing.T) {
	store := &fakeStore{}
	c, refreshes := newTestCoordinator(store, core.RoleReadOnly, func(string) bool { return true })

	ctx := context.Background()
	ops := map[string]func() error{
		"create": func() error { return c.Create(ctx, validInput()) },
		"update": func() error { return c.Update(ctx, "t1", validInput()) },
		"delete": func() error { return c.Delete(ctx, "t1") },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, core.ErrReadOnly) {
				t.Errorf("%s = %v, want ErrReadOnly", name, err)
			}
		})
	}

	if store.creates+store.updates+store.deletes != 0 {
		t.Error("read-only mutation reached the network")
	}
	if *refreshes != 0 {
		t.Error("read-only mutation triggered a refetch")
	}
}

func TestDeleteDeclinedConfirmationIsNoOp(t *testing.T) {
	store := &fakeStore{}
	c, refreshes := newTestCoordinator(store, core.RoleUser, func(string) bool { return false })

	if err := c.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("declined confirmation must not error, got %v", err)
	}
	if store.deletes != 0 {
		t.Error("declined confirmation issued a network call")
	}
	if *refreshes != 0 {
		t.Error("declined confirmation triggered a refetch")
	}
}

func TestDeleteConfirmedRemovesAndRefetches(t *testing.T) {
	store := &fakeStore{}
	c, refreshes := newTestCoordinator(store, core.RoleAdmin, func(string) bool { return true })

	if err := c.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if store.deletes != 1 || *refreshes != 1 {
		t.Errorf("deletes = %d, refreshes = %d, want 1 and 1", store.deletes, *refreshes)
	}
}

func TestNetworkFailureLeavesStateUntouched(t *testing.T) {
	store := &fakeStore{mutErr: errors.New("boom")}
	c, refreshes := newTestCoordinator(store, core.RoleUser, nil)

	if err := c.Update(context.Background(), "t1", validInput()); err == nil {
		t.Fatal("expected error from failed update")
	}
	if *refreshes != 0 {
		t.Error("failed mutation must not refetch")
	}
}
