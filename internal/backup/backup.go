// Package backup serializes the full data set to a portable JSON document and
// validates externally supplied documents before merging them back in.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"kubyshka/internal/common"
	"kubyshka/internal/model"
)

const (
	// AppMarker gates imports: documents without it are rejected.
	AppMarker = "Expense Tracker"
	// FormatVersion is the current export format version.
	FormatVersion = "1.0"
)

// Document is the portable backup format. Field names are shared with the
// original application's export files and must not change.
type Document struct {
	Expenses   []model.Expense  `json:"expenses"`
	Categories []model.Category `json:"categories"`
	ExportDate time.Time        `json:"exportDate"`
	Version    string           `json:"version"`
	AppName    string           `json:"appName"`
}

// Mode selects how imported expenses are combined with the existing
// collection.
type Mode string

const (
	// ModeMerge appends only imported expenses whose id is not already
	// present.
	ModeMerge Mode = "merge"
	// ModeReplace overwrites the entire expense collection.
	ModeReplace Mode = "replace"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMerge, ModeReplace:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid import mode %q (want merge or replace)", s)
	}
}

// NewDocument wraps the current data set for export.
func NewDocument(expenses []model.Expense, now time.Time) Document {
	return Document{
		Expenses:   expenses,
		Categories: model.Categories(),
		ExportDate: now,
		Version:    FormatVersion,
		AppName:    AppMarker,
	}
}

// Encode renders the document as indented UTF-8 JSON.
func (d Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// DefaultFileName is the suggested export file name for a given date.
func DefaultFileName(now time.Time) string {
	return "expense-tracker-backup-" + now.Format("2006-01-02") + ".json"
}

// Preview is the validated content of an import document, before any write.
type Preview struct {
	Expenses   []model.Expense
	Categories []model.Category
	ExportDate time.Time
	Skipped    int
}

// rawDocument distinguishes absent sections from empty ones.
type rawDocument struct {
	Expenses   *[]json.RawMessage `json:"expenses"`
	Categories *[]json.RawMessage `json:"categories"`
	ExportDate time.Time          `json:"exportDate"`
	AppName    string             `json:"appName"`
}

// Parse validates an import document. It fails with a user-facing error when
// the document does not parse, carries the wrong app marker, lacks the
// expenses/categories sections, or contains zero structurally valid records.
// Individually invalid records are skipped, not fatal. The optional progress
// callback is invoked once per inspected record.
func Parse(data []byte, progress func(done, total int)) (*Preview, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.NewUserError("file is not valid JSON", err)
	}

	if raw.AppName != AppMarker {
		return nil, common.NewUserError("import rejected", common.ErrWrongAppMarker)
	}
	if raw.Expenses == nil || raw.Categories == nil {
		return nil, common.NewUserError("import rejected", common.ErrMissingSections)
	}

	total := len(*raw.Expenses) + len(*raw.Categories)
	done := 0
	step := func() {
		done++
		if progress != nil {
			progress(done, total)
		}
	}

	preview := &Preview{ExportDate: raw.ExportDate}
	for _, rec := range *raw.Expenses {
		var e model.Expense
		if err := json.Unmarshal(rec, &e); err != nil || e.Validate() != nil {
			preview.Skipped++
			step()
			continue
		}
		preview.Expenses = append(preview.Expenses, e)
		step()
	}
	for _, rec := range *raw.Categories {
		var c model.Category
		if err := json.Unmarshal(rec, &c); err != nil ||
			c.ID == "" || c.Name == "" || c.Color == "" || c.Icon == "" {
			preview.Skipped++
			step()
			continue
		}
		preview.Categories = append(preview.Categories, c)
		step()
	}

	if len(preview.Expenses) == 0 && len(preview.Categories) == 0 {
		return nil, common.NewUserError("import rejected", common.ErrNoValidRecords)
	}
	return preview, nil
}

// Merge combines the preview's expenses with the current collection under the
// given mode and returns the new collection plus the number of expenses taken
// from the preview. Imported categories are never merged; the catalog is
// fixed. The result is written by the caller in one piece, so a failed write
// leaves the store untouched.
func Merge(current []model.Expense, preview *Preview, mode Mode) ([]model.Expense, int) {
	if mode == ModeReplace {
		return preview.Expenses, len(preview.Expenses)
	}

	seen := make(map[string]struct{}, len(current))
	for _, e := range current {
		seen[e.ID] = struct{}{}
	}

	merged := make([]model.Expense, len(current), len(current)+len(preview.Expenses))
	copy(merged, current)
	added := 0
	for _, e := range preview.Expenses {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		merged = append(merged, e)
		added++
	}
	return merged, added
}
