package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"kubyshka/internal/common"
	"kubyshka/internal/model"
)

// Session persists UI preferences: the last-active tab and the last-selected
// periods of the list view and the analytics view. Each preference lives
// under its own key so they can change independently. Missing or corrupt
// values fall back to defaults.
type Session struct {
	kv KV
}

// NewSession creates session state over the given repository.
func NewSession(kv KV) *Session {
	return &Session{kv: kv}
}

// DefaultTab is the tab shown when no preference is saved.
const DefaultTab = "expenses"

// ActiveTab returns the saved tab name, or DefaultTab.
func (s *Session) ActiveTab(ctx context.Context) string {
	data, err := s.kv.Get(ctx, KeyActiveTab)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			slog.Warn("failed to load active tab", "error", err)
		}
		return DefaultTab
	}
	var tab string
	if err := json.Unmarshal(data, &tab); err != nil || tab == "" {
		return DefaultTab
	}
	return tab
}

// SetActiveTab saves the tab name.
func (s *Session) SetActiveTab(ctx context.Context, tab string) error {
	data, err := json.Marshal(tab)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyActiveTab, data)
}

// ListPeriod returns the saved list-view period. The second return value
// reports whether a valid preference was found.
func (s *Session) ListPeriod(ctx context.Context) (model.Period, bool) {
	return s.period(ctx, KeyListPeriod)
}

// SetListPeriod saves the list-view period.
func (s *Session) SetListPeriod(ctx context.Context, p model.Period) error {
	return s.setPeriod(ctx, KeyListPeriod, p)
}

// AnalyticsPeriod returns the saved analytics-view period. The second return
// value reports whether a valid preference was found.
func (s *Session) AnalyticsPeriod(ctx context.Context) (model.Period, bool) {
	return s.period(ctx, KeyAnalyticsPeriod)
}

// SetAnalyticsPeriod saves the analytics-view period.
func (s *Session) SetAnalyticsPeriod(ctx context.Context, p model.Period) error {
	return s.setPeriod(ctx, KeyAnalyticsPeriod, p)
}

func (s *Session) period(ctx context.Context, key Key) (model.Period, bool) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			slog.Warn("failed to load period preference", "key", key, "error", err)
		}
		return model.Period{}, false
	}
	var p model.Period
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("failed to decode period preference", "key", key, "error", err)
		return model.Period{}, false
	}
	return p, true
}

func (s *Session) setPeriod(ctx context.Context, key Key, p model.Period) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, data)
}
