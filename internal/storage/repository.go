// Package storage implements the SQLite-backed transaction store behind
// fintrackd.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a transaction or user id does not exist.
var ErrNotFound = errors.New("not found")

// Filter narrows a transaction listing. Zero values mean "no
// constraint"; Limit <= 0 disables pagination.
type Filter struct {
	Search   string
	Type     string
	Category string
	From     time.Time
	Limit    int
	Offset   int
}

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListTransactions returns one window of matching transactions, newest
// first, together with the total match count for pagination.
func (r *Repository) ListTransactions(ctx context.Context, f Filter) ([]core.Transaction, int, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM transactions" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	listQuery := "SELECT id, amount, type, category, description, date FROM transactions" +
		where + " ORDER BY date DESC, created_at DESC"
	listArgs := args
	if f.Limit > 0 {
		listQuery += " LIMIT ? OFFSET ?"
		listArgs = append(append([]any{}, args...), f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, total, nil
}

func (r *Repository) GetTransaction(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, amount, type, category, description, date FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	return t, err
}

// CreateTransaction assigns a fresh id and stores the record.
func (r *Repository) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions (id, amount, type, category, description, date) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID, t.Amount.String(), string(t.Type), t.Category, t.Description, t.Date.String())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return t, nil
}

// UpdateTransaction replaces every editable field; the id is immutable.
func (r *Repository) UpdateTransaction(ctx context.Context, id string, t core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE transactions SET amount = ?, type = ?, category = ?, description = ?, date = ? WHERE id = ?",
		t.Amount.String(), string(t.Type), t.Category, t.Description, t.Date.String(), id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Transaction{}, ErrNotFound
	}
	t.ID = id
	return t, nil
}

func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]core.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, email, role, created_at FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []core.User
	for rows.Next() {
		var u core.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = core.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func buildWhere(f Filter) (string, []any) {
	var conds []string
	var args []any

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, "(description LIKE ? OR category LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if f.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, f.Type)
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if !f.From.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.Format("2006-01-02"))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (core.Transaction, error) {
	var t core.Transaction
	var amount, typ, date string
	if err := row.Scan(&t.ID, &amount, &typ, &t.Category, &t.Description, &date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, sql.ErrNoRows
		}
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	a, err := core.ParseAmount(amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("stored amount %q: %w", amount, err)
	}
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("stored date: %w", err)
	}
	t.Amount = a
	t.Type = core.TransactionType(typ)
	t.Date = d
	return t, nil
}
