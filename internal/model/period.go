package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// PeriodKind enumerates the supported reporting windows.
type PeriodKind string

const (
	// PeriodWeek is the current calendar week, Monday through now.
	PeriodWeek PeriodKind = "week"
	// PeriodMonth is a specific calendar month.
	PeriodMonth PeriodKind = "month"
	// PeriodAll covers every recorded expense.
	PeriodAll PeriodKind = "all"
)

// Period is a tagged variant selecting a reporting window. Year and Month are
// meaningful only when Kind is PeriodMonth.
type Period struct {
	Kind  PeriodKind
	Year  int
	Month time.Month
}

// WeekPeriod selects the current calendar week.
func WeekPeriod() Period {
	return Period{Kind: PeriodWeek}
}

// MonthPeriod selects a specific month.
func MonthPeriod(year int, month time.Month) Period {
	return Period{Kind: PeriodMonth, Year: year, Month: month}
}

// AllTimePeriod selects every recorded expense.
func AllTimePeriod() Period {
	return Period{Kind: PeriodAll}
}

// CurrentMonthPeriod selects the month containing now.
func CurrentMonthPeriod(now time.Time) Period {
	return MonthPeriod(now.Year(), now.Month())
}

// Validate rejects unknown kinds and out-of-range months.
func (p Period) Validate() error {
	switch p.Kind {
	case PeriodWeek, PeriodAll:
		return nil
	case PeriodMonth:
		if p.Month < time.January || p.Month > time.December {
			return fmt.Errorf("invalid month %d", p.Month)
		}
		return nil
	default:
		return fmt.Errorf("unknown period kind %q", p.Kind)
	}
}

func (p Period) String() string {
	switch p.Kind {
	case PeriodMonth:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	default:
		return string(p.Kind)
	}
}

// periodJSON is the persisted shape of a period preference.
type periodJSON struct {
	Type  string `json:"type"`
	Year  int    `json:"year,omitempty"`
	Month int    `json:"month,omitempty"`
}

// MarshalJSON encodes the period as a tagged document, months 1-12.
func (p Period) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	doc := periodJSON{Type: string(p.Kind)}
	if p.Kind == PeriodMonth {
		doc.Year = p.Year
		doc.Month = int(p.Month)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes a tagged period document.
func (p *Period) UnmarshalJSON(data []byte) error {
	var doc periodJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed := Period{Kind: PeriodKind(doc.Type), Year: doc.Year, Month: time.Month(doc.Month)}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*p = parsed
	return nil
}
