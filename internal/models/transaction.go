package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Amount is a non-negative decimal amount of money.
//
// The persisted document comes from loosely-typed JSON, so unmarshalling is
// lenient: a missing, non-numeric, or otherwise malformed amount decodes to
// zero instead of failing the whole document. Aggregation then simply counts
// such entries as zero.
type Amount float64

// UnmarshalJSON decodes a JSON number, a numeric string, or null.
// Anything else yields zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*a = Amount(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*a = Amount(f)
			return nil
		}
	}
	*a = 0
	return nil
}

// Float64 returns the amount as a plain float64.
func (a Amount) Float64() float64 { return float64(a) }

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component, persisted as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today returns the calendar date of the given instant in its location.
func Today(now time.Time) Date {
	return NewDate(now.Year(), now.Month(), now.Day())
}

// String returns the date in "YYYY-MM-DD" form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON writes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a "YYYY-MM-DD" string. A malformed or null date
// decodes to the zero date rather than failing the document.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

// Transaction represents one income or expense entry in the document.
// JSON field names match the persisted blob and backup-file format.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        Amount          `json:"amount"`
	CategoryID    string          `json:"catId,omitempty"`
	SubcategoryID string          `json:"subId,omitempty"`
	Date          Date            `json:"date"`
	Note          string          `json:"note,omitempty"`
}
