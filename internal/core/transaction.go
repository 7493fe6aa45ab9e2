// Package core holds the transaction domain model shared by the client
// and the reference server: records, amounts, dates, the category
// vocabulary and the validation rules applied before anything reaches
// the wire.
package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType is the direction of a transaction. The sign of an
	// amount is never stored; it is derived from the type.
	TransactionType string

	// Transaction is a single income or expense record as returned by
	// the remote store. ID is assigned by the store and immutable.
	Transaction struct {
		ID          string          `json:"id"`
		Amount      Amount          `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
		Date        Date            `json:"date"`
	}

	// Input is the editable payload of a transaction as entered by the
	// user. Amount stays a raw string until Validate has run so that a
	// non-numeric value is caught before any network call.
	Input struct {
		Amount      string
		Type        TransactionType
		Category    string
		Description string
		Date        Date
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrEmptyCategory   = errors.New("empty category")
	ErrInvalidCategory = errors.New("category not valid for transaction type")
	ErrReadOnly        = errors.New("mutation not permitted for read-only user")
	ErrNotAdmin        = errors.New("operation requires the admin role")
	ErrSelfDelete      = errors.New("cannot delete the signed-in account")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Validate checks the input against the local preconditions: a parseable
// non-negative amount, a known type, and a category drawn from the
// vocabulary of that type.
func (in Input) Validate() error {
	if _, err := ParseAmount(in.Amount); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return ErrUnknownType
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrEmptyCategory
	}
	if !CategoryValid(in.Type, in.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// Transaction converts a validated input into a record ready for
// submission. The date defaults to today when unset. Callers must run
// Validate first; an unparseable amount becomes zero here.
func (in Input) Transaction() Transaction {
	amount, _ := ParseAmount(in.Amount)
	date := in.Date
	if date.IsZero() {
		date = Today()
	}
	return Transaction{
		Amount:      amount,
		Type:        in.Type,
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
	}
}
