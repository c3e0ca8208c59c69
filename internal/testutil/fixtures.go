package testutil

import (
	"testing"

	"kharcha/internal/models"
	"kharcha/internal/store"
)

// CreateTestExpense adds an expense entry on the given date with no category.
func CreateTestExpense(t *testing.T, st *store.Store, amount float64, date models.Date) *models.Transaction {
	t.Helper()
	return CreateTestEntry(t, st, models.TransactionTypeExpense, amount, "", "", date)
}

// CreateTestIncome adds an income entry on the given date.
func CreateTestIncome(t *testing.T, st *store.Store, amount float64, date models.Date) *models.Transaction {
	t.Helper()
	return CreateTestEntry(t, st, models.TransactionTypeIncome, amount, "", "", date)
}

// CreateTestEntry adds an entry with full control over its fields.
func CreateTestEntry(
	t *testing.T,
	st *store.Store,
	txType models.TransactionType,
	amount float64,
	categoryID, subcategoryID string,
	date models.Date,
) *models.Transaction {
	t.Helper()

	tx, err := st.AddTransaction(txType, models.Amount(amount), categoryID, subcategoryID, date, "")
	if err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return tx
}

// CreateTestCategory creates a category with the given subcategory names.
func CreateTestCategory(t *testing.T, st *store.Store, name string, subNames ...string) *models.Category {
	t.Helper()

	cat, err := st.SaveCategory("", name, "", subNames)
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return cat
}
