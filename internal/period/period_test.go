package period

import (
	"testing"
	"time"

	"kharcha/internal/models"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func expense(id string, amount float64, day string, catID, subID string) models.Transaction {
	d, err := models.ParseDate(day)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID: id, Type: models.TransactionTypeExpense,
		Amount: models.Amount(amount), Date: d,
		CategoryID: catID, SubcategoryID: subID,
	}
}

func income(id string, amount float64, day string) models.Transaction {
	d, err := models.ParseDate(day)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID: id, Type: models.TransactionTypeIncome,
		Amount: models.Amount(amount), Date: d,
	}
}

func testCategories() map[string]models.Category {
	cats := map[string]models.Category{}
	for _, c := range models.DefaultCategories() {
		cats[c.ID] = c
	}
	return cats
}

func TestResolve(t *testing.T) {
	t.Run("current_month", func(t *testing.T) {
		w := Resolve(testNow, Cursor{Mode: ModeMonth})
		if w.Start.Year() != 2024 || w.Start.Month() != time.March || w.Start.Day() != 1 {
			t.Errorf("unexpected window start: %v", w.Start)
		}
	})

	t.Run("month_offset_across_year_boundary", func(t *testing.T) {
		w := Resolve(testNow, Cursor{Mode: ModeMonth, Offset: -4})
		if w.Start.Year() != 2023 || w.Start.Month() != time.November {
			t.Errorf("expected Nov 2023, got %v", w.Start)
		}
	})

	t.Run("year_offset", func(t *testing.T) {
		w := Resolve(testNow, Cursor{Mode: ModeYear, Offset: -1})
		if w.Start.Year() != 2023 || w.Start.Month() != time.January || w.Start.Day() != 1 {
			t.Errorf("expected Jan 1 2023, got %v", w.Start)
		}
	})
}

func TestWindowMatches(t *testing.T) {
	month := Resolve(testNow, Cursor{Mode: ModeMonth})
	year := Resolve(testNow, Cursor{Mode: ModeYear})

	cases := []struct {
		name      string
		date      string
		inMonth   bool
		inYear    bool
	}{
		{"mid_month", "2024-03-20", true, true},
		{"first_day", "2024-03-01", true, true},
		{"last_day", "2024-03-31", true, true},
		{"previous_month", "2024-02-29", false, true},
		{"next_month", "2024-04-01", false, true},
		{"previous_year_same_month", "2023-03-15", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := models.ParseDate(tc.date)
			if err != nil {
				t.Fatal(err)
			}
			if got := month.Matches(d); got != tc.inMonth {
				t.Errorf("month match for %s: expected %v, got %v", tc.date, tc.inMonth, got)
			}
			if got := year.Matches(d); got != tc.inYear {
				t.Errorf("year match for %s: expected %v, got %v", tc.date, tc.inYear, got)
			}
		})
	}

	t.Run("zero_date_never_matches", func(t *testing.T) {
		if month.Matches(models.Date{}) || year.Matches(models.Date{}) {
			t.Error("zero date must not match any window")
		}
	})
}

func TestLabels(t *testing.T) {
	if got := Resolve(testNow, Cursor{Mode: ModeMonth}).Label(); got != "Mar 2024" {
		t.Errorf("expected Mar 2024, got %q", got)
	}
	if got := Resolve(testNow, Cursor{Mode: ModeYear}).Label(); got != "2024" {
		t.Errorf("expected 2024, got %q", got)
	}

	cases := []struct {
		mode   Mode
		offset int
		want   string
	}{
		{ModeMonth, 0, "This month"},
		{ModeMonth, -1, "Previous month"},
		{ModeMonth, -3, "3 months ago"},
		{ModeMonth, 1, "Next month"},
		{ModeMonth, 2, "2 months ahead"},
		{ModeYear, 0, "This year"},
		{ModeYear, -1, "Last year"},
		{ModeYear, -2, "2 years ago"},
	}
	for _, tc := range cases {
		if got := Sublabel(tc.mode, tc.offset); got != tc.want {
			t.Errorf("Sublabel(%s, %d): expected %q, got %q", tc.mode, tc.offset, tc.want, got)
		}
	}
}

func TestFilterAndSort(t *testing.T) {
	txs := []models.Transaction{
		expense("a", 10, "2024-03-05", "", ""),
		expense("b", 20, "2024-03-20", "", ""),
		income("c", 30, "2024-02-28"),
		expense("d", 40, "2024-03-20", "", ""),
	}
	w := Resolve(testNow, Cursor{Mode: ModeMonth})

	got := FilterAndSort(txs, w)
	if len(got) != 3 {
		t.Fatalf("expected 3 in-window entries, got %d", len(got))
	}
	if got[0].Date.String() != "2024-03-20" || got[2].Date.String() != "2024-03-05" {
		t.Errorf("expected date-descending order, got %v, %v, %v", got[0].Date, got[1].Date, got[2].Date)
	}
}

func TestTotals(t *testing.T) {
	t.Run("balance_is_income_minus_expense", func(t *testing.T) {
		sum := Totals([]models.Transaction{
			income("a", 1000, "2024-03-01"),
			expense("b", 150, "2024-03-02", "", ""),
			expense("c", 100, "2024-03-03", "", ""),
		})
		if sum.Income != 1000 || sum.Expense != 250 || sum.Balance != 750 || sum.Count != 3 {
			t.Errorf("unexpected totals: %+v", sum)
		}
	})

	t.Run("empty", func(t *testing.T) {
		sum := Totals(nil)
		if sum.Income != 0 || sum.Expense != 0 || sum.Balance != 0 || sum.Count != 0 {
			t.Errorf("expected all-zero totals, got %+v", sum)
		}
	})
}

func TestGroupByDay(t *testing.T) {
	groups := GroupByDay([]models.Transaction{
		expense("a", 10, "2024-03-20", "", ""),
		income("b", 100, "2024-03-20"),
		expense("c", 5, "2024-03-05", "", ""),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if groups[0].Date.String() != "2024-03-20" {
		t.Errorf("expected newest day first, got %s", groups[0].Date)
	}
	if groups[0].Income != 100 || groups[0].Expense != 10 {
		t.Errorf("unexpected day subtotals: %+v", groups[0])
	}
	if len(groups[0].Transactions) != 2 || len(groups[1].Transactions) != 1 {
		t.Errorf("unexpected group sizes: %d, %d", len(groups[0].Transactions), len(groups[1].Transactions))
	}
}

func TestCategoryBreakdown(t *testing.T) {
	cats := testCategories()

	t.Run("expense_only_descending", func(t *testing.T) {
		slices := CategoryBreakdown([]models.Transaction{
			expense("a", 100, "2024-03-01", "food", ""),
			expense("b", 300, "2024-03-02", "shop", ""),
			income("c", 5000, "2024-03-03"),
		}, cats)

		if len(slices) != 2 {
			t.Fatalf("expected 2 slices, got %d", len(slices))
		}
		if slices[0].CategoryID != "shop" || slices[1].CategoryID != "food" {
			t.Errorf("expected amount-descending order, got %+v", slices)
		}
		if slices[0].Percentage != 75 || slices[1].Percentage != 25 {
			t.Errorf("unexpected percentages: %d, %d", slices[0].Percentage, slices[1].Percentage)
		}
	})

	t.Run("uncategorized_and_unknown_fold_into_other", func(t *testing.T) {
		slices := CategoryBreakdown([]models.Transaction{
			expense("a", 10, "2024-03-01", "", ""),
			expense("b", 20, "2024-03-02", "deleted-cat", ""),
		}, cats)

		if len(slices) != 1 {
			t.Fatalf("expected single Other slice, got %+v", slices)
		}
		if slices[0].CategoryID != "other" || slices[0].Name != OtherBucket {
			t.Errorf("unexpected bucket: %+v", slices[0])
		}
		if slices[0].Amount != 30 || slices[0].Percentage != 100 {
			t.Errorf("unexpected Other amounts: %+v", slices[0])
		}
	})

	t.Run("no_expenses_yields_empty", func(t *testing.T) {
		slices := CategoryBreakdown([]models.Transaction{
			income("a", 100, "2024-03-01"),
		}, cats)
		if len(slices) != 0 {
			t.Errorf("expected empty breakdown, got %+v", slices)
		}
	})

	t.Run("percentages_sum_to_about_100", func(t *testing.T) {
		slices := CategoryBreakdown([]models.Transaction{
			expense("a", 33, "2024-03-01", "food", ""),
			expense("b", 33, "2024-03-02", "shop", ""),
			expense("c", 34, "2024-03-03", "trans", ""),
		}, cats)
		sum := 0
		for _, s := range slices {
			sum += s.Percentage
		}
		if sum < 99 || sum > 101 {
			t.Errorf("expected percentages near 100, got %d", sum)
		}
	})
}

func TestSubcategoryBreakdown(t *testing.T) {
	cats := testCategories()

	t.Run("splits_by_subcategory", func(t *testing.T) {
		txs := []models.Transaction{
			expense("a", 60, "2024-03-01", "food", "food-s0"),
			expense("b", 30, "2024-03-02", "food", "food-s1"),
			expense("c", 10, "2024-03-03", "food", ""),
		}
		slices := SubcategoryBreakdown("food", txs, cats, 100)

		if len(slices) != 3 {
			t.Fatalf("expected 3 slices, got %+v", slices)
		}
		if slices[0].Amount != 60 || slices[0].Percentage != 60 {
			t.Errorf("unexpected first slice: %+v", slices[0])
		}
		if slices[2].Name != OtherBucket || slices[2].Amount != 10 {
			t.Errorf("expected trailing Other of 10, got %+v", slices[2])
		}
	})

	t.Run("stale_subcategory_folds_into_other", func(t *testing.T) {
		txs := []models.Transaction{
			expense("a", 50, "2024-03-01", "food", "food-s99"),
		}
		slices := SubcategoryBreakdown("food", txs, cats, 50)
		if len(slices) != 1 || slices[0].Name != OtherBucket || slices[0].Amount != 50 {
			t.Errorf("expected single Other slice, got %+v", slices)
		}
	})

	t.Run("deleted_category_is_single_other", func(t *testing.T) {
		slices := SubcategoryBreakdown("gone", nil, cats, 75)
		if len(slices) != 1 || slices[0].Name != OtherBucket || slices[0].Amount != 75 || slices[0].Percentage != 100 {
			t.Errorf("expected single full Other slice, got %+v", slices)
		}
	})

	t.Run("other_category_transactions_ignored", func(t *testing.T) {
		txs := []models.Transaction{
			expense("a", 40, "2024-03-01", "food", "food-s0"),
			expense("b", 99, "2024-03-01", "shop", "shop-s0"),
		}
		slices := SubcategoryBreakdown("food", txs, cats, 40)
		if len(slices) != 1 || slices[0].Amount != 40 {
			t.Errorf("expected only the food entry counted, got %+v", slices)
		}
	})
}
