// Package period filters transactions into the selected month or year
// window and computes the totals and breakdowns shown on the home and stats
// views. Everything here is a pure computation over the document; the
// current time is always passed in explicitly.
package period

import (
	"fmt"
	"math"
	"sort"
	"time"

	"kharcha/internal/models"
)

// Mode selects whether the window is a calendar month or a calendar year.
type Mode string

const (
	ModeMonth Mode = "month"
	ModeYear  Mode = "year"
)

// Cursor is the transient (mode, offset) selection: offset counts months or
// years relative to the present, 0 = current, negative = past.
type Cursor struct {
	Mode   Mode
	Offset int
}

// Window is a resolved month or year window.
type Window struct {
	Mode  Mode
	Start time.Time // first day of the month or year, local calendar
}

// Resolve computes the window the cursor points at, relative to now.
func Resolve(now time.Time, c Cursor) Window {
	if c.Mode == ModeYear {
		return Window{
			Mode:  ModeYear,
			Start: time.Date(now.Year()+c.Offset, time.January, 1, 0, 0, 0, 0, now.Location()),
		}
	}
	// time.Date normalizes out-of-range months, so offsets past year
	// boundaries work without special cases.
	return Window{
		Mode:  ModeMonth,
		Start: time.Date(now.Year(), now.Month()+time.Month(c.Offset), 1, 0, 0, 0, 0, now.Location()),
	}
}

// Matches reports whether a transaction date falls inside the window.
// The test is a plain equality on local calendar fields, no timezone math.
func (w Window) Matches(d models.Date) bool {
	if d.IsZero() {
		return false
	}
	if w.Mode == ModeYear {
		return d.Year() == w.Start.Year()
	}
	return d.Year() == w.Start.Year() && d.Month() == w.Start.Month()
}

// Label returns the header label for the window ("Mar 2024" or "2024").
func (w Window) Label() string {
	if w.Mode == ModeYear {
		return fmt.Sprintf("%d", w.Start.Year())
	}
	return w.Start.Format("Jan 2006")
}

// Sublabel describes the window relative to the cursor offset
// ("This month", "Previous month", "3 months ago", ...).
func Sublabel(mode Mode, offset int) string {
	unit := "month"
	if mode == ModeYear {
		unit = "year"
	}
	switch {
	case offset == 0:
		return "This " + unit
	case offset == -1:
		if mode == ModeYear {
			return "Last year"
		}
		return "Previous month"
	case offset == 1:
		return "Next " + unit
	case offset < 0:
		return fmt.Sprintf("%d %ss ago", -offset, unit)
	default:
		return fmt.Sprintf("%d %ss ahead", offset, unit)
	}
}

// FilterAndSort returns the transactions whose date matches the window,
// ordered by date descending. Tie order between same-day entries is
// unspecified; callers must not depend on it.
func FilterAndSort(txs []models.Transaction, w Window) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if w.Matches(t.Date) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Summary holds the income/expense totals for a set of transactions.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
	Count   int     `json:"count"`
}

// Totals sums amounts by type. A malformed amount has already decoded to
// zero, so it contributes nothing without being excluded. Empty input
// yields all-zero totals.
func Totals(txs []models.Transaction) Summary {
	var sum Summary
	for _, t := range txs {
		a := t.Amount.Float64()
		if t.Type == models.TransactionTypeIncome {
			sum.Income += a
		} else {
			sum.Expense += a
		}
	}
	sum.Balance = sum.Income - sum.Expense
	sum.Count = len(txs)
	return sum
}

// DayGroup is one home-list day section with its own subtotals.
type DayGroup struct {
	Date         models.Date          `json:"date"`
	Income       float64              `json:"income"`
	Expense      float64              `json:"expense"`
	Transactions []models.Transaction `json:"entries"`
}

// GroupByDay buckets transactions by calendar date, ordered by date
// descending.
func GroupByDay(txs []models.Transaction) []DayGroup {
	index := make(map[string]int)
	groups := make([]DayGroup, 0)
	for _, t := range txs {
		key := t.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: t.Date, Transactions: []models.Transaction{}})
		}
		g := &groups[i]
		g.Transactions = append(g.Transactions, t)
		a := t.Amount.Float64()
		if t.Type == models.TransactionTypeIncome {
			g.Income += a
		} else {
			g.Expense += a
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date.Time)
	})
	return groups
}

// OtherBucket labels the synthetic bucket for expenses without a (known)
// category or subcategory.
const OtherBucket = "Other"

// CategorySlice is one slice of the expense donut chart.
type CategorySlice struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Emoji      string  `json:"emoji"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// CategoryBreakdown groups expense transactions by category, descending by
// amount. Expenses without a category, or referencing a deleted one, land
// in a synthetic "Other" bucket. When the expense total is zero the
// breakdown is empty; percentages are never computed against zero.
func CategoryBreakdown(txs []models.Transaction, cats map[string]models.Category) []CategorySlice {
	index := make(map[string]int)
	slices := make([]CategorySlice, 0)
	var total float64

	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		a := t.Amount.Float64()
		total += a

		key := t.CategoryID
		cat, known := cats[key]
		if key == "" || !known {
			key = "other"
		}
		i, ok := index[key]
		if !ok {
			i = len(slices)
			index[key] = i
			slice := CategorySlice{CategoryID: key, Name: OtherBucket, Emoji: models.DefaultEmoji}
			if known {
				slice.Name = cat.Name
				slice.Emoji = cat.Emoji
			}
			slices = append(slices, slice)
		}
		slices[i].Amount += a
	}

	if total == 0 {
		return []CategorySlice{}
	}

	// Zero-amount buckets can only come from zero-decoded malformed
	// amounts; they carry no chart weight.
	filtered := slices[:0]
	for _, s := range slices {
		if s.Amount > 0 {
			filtered = append(filtered, s)
		}
	}
	slices = filtered

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Amount > slices[j].Amount
	})
	for i := range slices {
		slices[i].Percentage = roundPercent(slices[i].Amount, total)
	}
	return slices
}

// SubcategorySlice is one row of a category's expanded subcategory list.
type SubcategorySlice struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// SubcategoryBreakdown buckets a category's expense transactions by
// subcategory, descending by amount. Transactions with no matching
// subcategory (absent, cleared, or since deleted) fold into an "Other"
// bucket; zero-amount buckets are omitted. When the category itself no
// longer exists, everything is a single "Other" bucket of categoryTotal.
func SubcategoryBreakdown(categoryID string, txs []models.Transaction, cats map[string]models.Category, categoryTotal float64) []SubcategorySlice {
	cat, ok := cats[categoryID]
	if !ok {
		return []SubcategorySlice{{Name: OtherBucket, Amount: categoryTotal, Percentage: roundPercent(categoryTotal, categoryTotal)}}
	}

	amounts := make(map[string]float64, len(cat.Subcategories))
	var other float64
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense || t.CategoryID != categoryID {
			continue
		}
		a := t.Amount.Float64()
		if t.SubcategoryID != "" {
			if _, known := cat.Subcategory(t.SubcategoryID); known {
				amounts[t.SubcategoryID] += a
				continue
			}
		}
		other += a
	}

	out := make([]SubcategorySlice, 0, len(cat.Subcategories)+1)
	for _, sub := range cat.Subcategories {
		if amounts[sub.ID] > 0 {
			out = append(out, SubcategorySlice{Name: sub.Name, Amount: amounts[sub.ID]})
		}
	}
	if other > 0 {
		out = append(out, SubcategorySlice{Name: OtherBucket, Amount: other})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	if categoryTotal > 0 {
		for i := range out {
			out[i].Percentage = roundPercent(out[i].Amount, categoryTotal)
		}
	}
	return out
}

func roundPercent(amount, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(amount * 100 / total))
}
