package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubyshka/internal/common"
)

func TestNewExpense(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	date := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	e := NewExpense(12.50, "Продукты", "", date, now)

	assert.Equal(t, "1710081000000", e.ID, "id derives from creation time in unix milliseconds")
	assert.Equal(t, "Продукты", e.Description, "blank description defaults to the category name")
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, date, e.Date)
	require.NoError(t, e.Validate())

	e = NewExpense(5, "Продукты", "молоко", date, now)
	assert.Equal(t, "молоко", e.Description)
}

func TestExpense_Validate(t *testing.T) {
	now := time.Now()
	valid := NewExpense(10, "Продукты", "", now, now)

	tests := []struct {
		mutate  func(*Expense)
		wantErr error
		name    string
	}{
		{name: "valid", mutate: func(*Expense) {}, wantErr: nil},
		{name: "missing id", mutate: func(e *Expense) { e.ID = "" }, wantErr: common.ErrMissingID},
		{name: "negative amount", mutate: func(e *Expense) { e.Amount = -1 }, wantErr: common.ErrNegativeAmount},
		{name: "zero amount is allowed", mutate: func(e *Expense) { e.Amount = 0 }, wantErr: nil},
		{name: "missing category", mutate: func(e *Expense) { e.Category = "" }, wantErr: common.ErrMissingCategory},
		{name: "missing date", mutate: func(e *Expense) { e.Date = time.Time{} }, wantErr: common.ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExpensePatch_Apply(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	original := NewExpense(10, "Продукты", "молоко", now, now)

	newAmount := 25.0
	patched := ExpensePatch{Amount: &newAmount}.Apply(original)

	assert.Equal(t, 25.0, patched.Amount)
	assert.Equal(t, original.ID, patched.ID, "id must survive a patch")
	assert.Equal(t, original.CreatedAt, patched.CreatedAt, "createdAt must survive a patch")
	assert.Equal(t, original.Category, patched.Category)
	assert.Equal(t, original.Description, patched.Description)
	assert.Equal(t, original.Date, patched.Date)
}

func TestExpensePatch_BlankDescriptionFallsBackToCategory(t *testing.T) {
	now := time.Now()
	original := NewExpense(10, "Продукты", "молоко", now, now)

	blank := ""
	category := "Транспорт"
	patched := ExpensePatch{Description: &blank, Category: &category}.Apply(original)

	assert.Equal(t, "Транспорт", patched.Description)
}

func TestExpensePatch_IsEmpty(t *testing.T) {
	assert.True(t, ExpensePatch{}.IsEmpty())
	v := 1.0
	assert.False(t, ExpensePatch{Amount: &v}.IsEmpty())
}
