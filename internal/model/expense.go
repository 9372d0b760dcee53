package model

import (
	"strconv"
	"time"

	"kubyshka/internal/common"
)

// Expense is a single recorded spend event. Date is the user-chosen effective
// date; CreatedAt is the insertion time and orders expenses within a day. The
// JSON field names are part of the backup file format and must not change.
type Expense struct {
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// NewExpense builds an expense with a time-derived ID and CreatedAt stamped
// from now. A blank description defaults to the category name. ID uniqueness
// is not validated here; the millisecond clock makes collisions a non-concern
// for a single user.
func NewExpense(amount float64, category, description string, date time.Time, now time.Time) Expense {
	if description == "" {
		description = category
	}
	return Expense{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   now,
	}
}

// Validate checks the invariants enforced before an expense is written.
// Category membership in the catalog is deliberately not checked: orphaned
// categories degrade to fallback visuals instead of erroring.
func (e Expense) Validate() error {
	if e.ID == "" {
		return common.ErrMissingID
	}
	if e.Amount < 0 {
		return common.ErrNegativeAmount
	}
	if e.Category == "" {
		return common.ErrMissingCategory
	}
	if e.Date.IsZero() {
		return common.ErrMissingDate
	}
	return nil
}

// ExpensePatch carries the fields of an update. Nil fields are left untouched;
// ID and CreatedAt can never be patched.
type ExpensePatch struct {
	Amount      *float64
	Category    *string
	Description *string
	Date        *time.Time
}

// Apply merges the patch into e and returns the result.
func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if e.Description == "" {
		e.Description = e.Category
	}
	return e
}

// IsEmpty reports whether the patch would change nothing.
func (p ExpensePatch) IsEmpty() bool {
	return p.Amount == nil && p.Category == nil && p.Description == nil && p.Date == nil
}
