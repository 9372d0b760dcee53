package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"kubyshka/internal/common"
	"kubyshka/internal/model"
)

// Store provides the expense collection operations over an injected KV
// repository. The collection is kept in insertion order, newest first: Add
// prepends.
type Store struct {
	kv KV
}

// NewStore creates a store over the given repository.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// List returns the full expense collection in stored order. Read failures and
// corrupt documents are logged and degrade to an empty collection; they never
// propagate.
func (s *Store) List(ctx context.Context) []model.Expense {
	data, err := s.kv.Get(ctx, KeyExpenses)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.Error("failed to load expenses", "error", err)
		return nil
	}

	var expenses []model.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		slog.Error("failed to decode expenses", "error", err)
		return nil
	}
	return expenses
}

// Replace overwrites the entire collection.
func (s *Store) Replace(ctx context.Context, expenses []model.Expense) error {
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	if err := s.kv.Set(ctx, KeyExpenses, data); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	return nil
}

// Add validates the expense and prepends it to the collection.
func (s *Store) Add(ctx context.Context, expense model.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	expenses := s.List(ctx)
	expenses = append([]model.Expense{expense}, expenses...)
	if err := s.Replace(ctx, expenses); err != nil {
		return err
	}

	slog.Debug("expense added", "id", expense.ID, "amount", expense.Amount, "category", expense.Category)
	return nil
}

// Delete removes the expense with the given id. Deleting an absent id is a
// no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	expenses := s.List(ctx)
	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return nil
	}
	return s.Replace(ctx, kept)
}

// Update merges the patch into the expense with the given id, preserving ID
// and CreatedAt. Updating an absent id is a no-op.
func (s *Store) Update(ctx context.Context, id string, patch model.ExpensePatch) error {
	expenses := s.List(ctx)
	changed := false
	for i, e := range expenses {
		if e.ID != id {
			continue
		}
		updated := patch.Apply(e)
		if err := updated.Validate(); err != nil {
			return err
		}
		expenses[i] = updated
		changed = true
		break
	}
	if !changed {
		return nil
	}
	return s.Replace(ctx, expenses)
}

// Get returns the expense with the given id, or nil when absent.
func (s *Store) Get(ctx context.Context, id string) *model.Expense {
	for _, e := range s.List(ctx) {
		if e.ID == id {
			return &e
		}
	}
	return nil
}
