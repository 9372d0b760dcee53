// Package storage persists application state through a small key-value
// repository. Every value is a whole JSON document: reads load the entire
// collection and writes replace it. There is no concurrent-writer protocol;
// the last full write wins.
package storage

import "context"

// Key identifies a persisted document.
type Key string

// Persisted state layout. The expense collection key matches the original
// backup-compatible naming; the session keys hold UI preferences and are
// stored independently of each other.
const (
	KeyExpenses        Key = "expense-tracker-expenses"
	KeyActiveTab       Key = "expense-tracker-active-tab"
	KeyListPeriod      Key = "expense-tracker-expenses-period"
	KeyAnalyticsPeriod Key = "expense-tracker-analytics-period"
)

// KV is the injected repository interface. Get returns common.ErrNotFound
// when the key has never been written.
type KV interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	Set(ctx context.Context, key Key, value []byte) error
	Close() error
}
