package services

import (
	"context"
	"fmt"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// ConfirmFunc asks the user to confirm a destructive action. A false
// return aborts the action silently.
type ConfirmFunc func(prompt string) bool

// Coordinator performs create/update/delete against the remote store and
// re-synchronizes local state by triggering a full refetch after every
// successful mutation. There is no optimistic merge: the visible list
// and aggregates always reflect server truth at the cost of one extra
// round trip.
type Coordinator struct {
	store   Store
	role    core.Role
	logger  *log.Logger
	confirm ConfirmFunc
	refresh func(ctx context.Context)
}

// NewCoordinator wires a coordinator for the given role. refresh is
// invoked after each successful mutation and must re-fetch with the
// owning controller's current query parameters.
func NewCoordinator(store Store, role core.Role, logger *log.Logger, confirm ConfirmFunc, refresh func(ctx context.Context)) *Coordinator {
	return &Coordinator{store: store, role: role, logger: logger, confirm: confirm, refresh: refresh}
}

// Create validates the input locally, submits it and refetches. A
// validation failure is returned before any network call.
func (c *Coordinator) Create(ctx context.Context, in core.Input) error {
	if err := c.guard(ctx, "create"); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if _, err := c.store.CreateTransaction(ctx, in.Transaction()); err != nil {
		c.logger.ErrorContext(ctx, "create failed", "error", err)
		return err
	}
	c.refresh(ctx)
	return nil
}

// Update replaces the editable fields of the transaction with the given
// id and refetches. The id and ownership never change.
func (c *Coordinator) Update(ctx context.Context, id string, in core.Input) error {
	if err := c.guard(ctx, "update"); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if _, err := c.store.UpdateTransaction(ctx, id, in.Transaction()); err != nil {
		c.logger.ErrorContext(ctx, "update failed", "error", err, "id", id)
		return err
	}
	c.refresh(ctx)
	return nil
}

// Delete asks for confirmation, then removes the transaction and
// refetches. A declined confirmation is a no-op, not an error.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	if err := c.guard(ctx, "delete"); err != nil {
		return err
	}
	if c.confirm != nil && !c.confirm("Are you sure you want to delete this transaction?") {
		return nil
	}
	if err := c.store.DeleteTransaction(ctx, id); err != nil {
		c.logger.ErrorContext(ctx, "delete failed", "error", err, "id", id)
		return err
	}
	c.refresh(ctx)
	return nil
}

// guard rejects mutations under a read-only identity before any network
// I/O happens. Reaching this path means a UI invariant was violated, so
// it is logged as an error, not quietly swallowed.
func (c *Coordinator) guard(ctx context.Context, op string) error {
	if !c.role.CanMutate() {
		c.logger.ErrorContext(ctx, "mutation attempted with read-only role", "operation", op)
		return fmt.Errorf("%s: %w", op, core.ErrReadOnly)
	}
	return nil
}
