package store_test

import (
	"testing"
	"time"

	"kharcha/internal/database"
	"kharcha/internal/models"
	"kharcha/internal/store"
	"kharcha/internal/testutil"
)

func date(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestOpen(t *testing.T) {
	t.Run("empty_database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		st, err := store.Open(db)
		testutil.AssertNoError(t, err)

		doc := st.Snapshot()
		if len(doc.Transactions) != 0 {
			t.Errorf("expected empty transactions, got %d", len(doc.Transactions))
		}
		if len(doc.Categories) != 0 {
			t.Errorf("expected empty categories, got %d", len(doc.Categories))
		}
	})

	t.Run("malformed_blob_falls_back_to_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		err := database.PutBlob(db, store.StorageKey, []byte("{not json"))
		testutil.AssertNoError(t, err)

		st, err := store.Open(db)
		testutil.AssertNoError(t, err)
		if len(st.Snapshot().Transactions) != 0 {
			t.Error("expected defaults after malformed blob")
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		st, err := store.Open(db)
		testutil.AssertNoError(t, err)
		st.SeedDefaultCategories()
		tx, err := st.AddTransaction(models.TransactionTypeExpense, 42, "food", "food-s0", date("2024-03-05"), "lunch")
		testutil.AssertNoError(t, err)

		// A second store over the same database sees the persisted state.
		st2, err := store.Open(db)
		testutil.AssertNoError(t, err)
		got, err := st2.GetTransaction(tx.ID)
		testutil.AssertNoError(t, err)
		if got.Amount != 42 || got.CategoryID != "food" || got.SubcategoryID != "food-s0" || got.Note != "lunch" {
			t.Errorf("round trip lost fields: %+v", got)
		}
	})
}

func TestSeedDefaultCategories(t *testing.T) {
	st, db := testutil.SetupTestStore(t)
	defer testutil.TeardownTestDB(t, db)

	doc := st.Snapshot()
	if len(doc.Categories) != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", len(doc.Categories))
	}

	// Seeding again must not duplicate or overwrite.
	_, err := st.SaveCategory("food", "Renamed", "🍔", nil)
	testutil.AssertNoError(t, err)
	st.SeedDefaultCategories()
	if got := st.Snapshot().Categories["food"].Name; got != "Renamed" {
		t.Errorf("reseed overwrote edited category: %q", got)
	}
}

func TestAddTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		tx, err := st.AddTransaction(models.TransactionTypeIncome, 100, "", "", date("2024-03-01"), "")
		testutil.AssertNoError(t, err)
		if tx.ID == "" {
			t.Fatal("expected non-empty id")
		}
	})

	t.Run("invalid_type", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := st.AddTransaction("transfer", 100, "", "", date("2024-03-01"), "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := st.AddTransaction(models.TransactionTypeExpense, 0, "", "", date("2024-03-01"), "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		_, err = st.AddTransaction(models.TransactionTypeExpense, -5, "", "", date("2024-03-01"), "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("zero_date", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := st.AddTransaction(models.TransactionTypeExpense, 10, "", "", models.Date{}, "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("unknown_category", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := st.AddTransaction(models.TransactionTypeExpense, 10, "nope", "", date("2024-03-01"), "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("unknown_subcategory_cleared", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		tx, err := st.AddTransaction(models.TransactionTypeExpense, 10, "food", "food-s99", date("2024-03-01"), "")
		testutil.AssertNoError(t, err)
		if tx.SubcategoryID != "" {
			t.Errorf("expected unknown subcategory cleared, got %q", tx.SubcategoryID)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	st, db := testutil.SetupTestStore(t)
	defer testutil.TeardownTestDB(t, db)

	tx := testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))

	got, err := st.UpdateTransaction(tx.ID, models.TransactionTypeIncome, 25, "", "", date("2024-03-02"), "refund")
	testutil.AssertNoError(t, err)
	if got.Type != models.TransactionTypeIncome || got.Amount != 25 || got.Note != "refund" {
		t.Errorf("update not applied: %+v", got)
	}

	_, err = st.UpdateTransaction("missing", models.TransactionTypeIncome, 25, "", "", date("2024-03-02"), "")
	testutil.AssertAppError(t, err, "ENTRY_NOT_FOUND")
}

func TestDeleteTransaction(t *testing.T) {
	st, db := testutil.SetupTestStore(t)
	defer testutil.TeardownTestDB(t, db)

	tx := testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))
	testutil.AssertNoError(t, st.DeleteTransaction(tx.ID))
	_, err := st.GetTransaction(tx.ID)
	testutil.AssertAppError(t, err, "ENTRY_NOT_FOUND")

	testutil.AssertAppError(t, st.DeleteTransaction(tx.ID), "ENTRY_NOT_FOUND")
}

func TestSaveCategory(t *testing.T) {
	t.Run("create_mints_id", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		cat, err := st.SaveCategory("", "Pets", "🐕", []string{"Food", "Vet"})
		testutil.AssertNoError(t, err)
		if cat.ID == "" || cat.ID[0] != 'c' {
			t.Errorf("expected minted c-prefixed id, got %q", cat.ID)
		}
		if len(cat.Subcategories) != 2 || cat.Subcategories[0].ID != cat.ID+"-s0" {
			t.Errorf("unexpected subcategories: %+v", cat.Subcategories)
		}
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := st.SaveCategory("", "", "", nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("empty_emoji_defaults", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		cat, err := st.SaveCategory("", "Misc", "", nil)
		testutil.AssertNoError(t, err)
		if cat.Emoji != models.DefaultEmoji {
			t.Errorf("expected default emoji, got %q", cat.Emoji)
		}
	})

	t.Run("edit_clears_removed_subcategory_references", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		tx := testutil.CreateTestEntry(t, st, models.TransactionTypeExpense, 10, "food", "food-s1", date("2024-03-01"))

		// Edit down to a single subcategory; food-s1 no longer exists.
		_, err := st.SaveCategory("food", "Food", "🍕", []string{"Groceries"})
		testutil.AssertNoError(t, err)

		got, err := st.GetTransaction(tx.ID)
		testutil.AssertNoError(t, err)
		if got.SubcategoryID != "" {
			t.Errorf("expected removed subcategory reference cleared, got %q", got.SubcategoryID)
		}
		if got.CategoryID != "food" {
			t.Errorf("expected category reference untouched, got %q", got.CategoryID)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	st, db := testutil.SetupTestStore(t)
	defer testutil.TeardownTestDB(t, db)

	inFood := testutil.CreateTestEntry(t, st, models.TransactionTypeExpense, 10, "food", "food-s0", date("2024-03-01"))
	inShop := testutil.CreateTestEntry(t, st, models.TransactionTypeExpense, 20, "shop", "", date("2024-03-01"))

	testutil.AssertNoError(t, st.DeleteCategory("food"))

	got, err := st.GetTransaction(inFood.ID)
	testutil.AssertNoError(t, err)
	if got.CategoryID != "" || got.SubcategoryID != "" {
		t.Errorf("expected cleared references, got %+v", got)
	}

	// Entries of other categories are untouched, and nothing is deleted.
	got, err = st.GetTransaction(inShop.ID)
	testutil.AssertNoError(t, err)
	if got.CategoryID != "shop" {
		t.Errorf("unrelated entry touched: %+v", got)
	}
	if n := len(st.Snapshot().Transactions); n != 2 {
		t.Errorf("expected 2 entries to survive, got %d", n)
	}

	testutil.AssertAppError(t, st.DeleteCategory("food"), "CATEGORY_NOT_FOUND")
}

func TestImportReplace(t *testing.T) {
	t.Run("replaces_wholesale", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))

		raw := []byte(`{"tx":[{"id":"x1","type":"income","amount":5,"date":"2023-01-01"}],"cats":{},"settings":{"bio":false}}`)
		doc, err := st.ImportReplace(raw)
		testutil.AssertNoError(t, err)
		if len(doc.Transactions) != 1 || doc.Transactions[0].ID != "x1" {
			t.Errorf("unexpected imported document: %+v", doc.Transactions)
		}
		if len(doc.Categories) != 0 {
			t.Error("expected categories replaced wholesale, not merged")
		}
	})

	t.Run("parse_failure_leaves_document_untouched", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		tx := testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))

		_, err := st.ImportReplace([]byte("{broken"))
		testutil.AssertAppError(t, err, "PARSE_ERROR")

		got, err := st.GetTransaction(tx.ID)
		testutil.AssertNoError(t, err)
		if got.Amount != 10 {
			t.Errorf("document changed after failed import: %+v", got)
		}
	})

	t.Run("non_object_input_leaves_document_untouched", func(t *testing.T) {
		st, db := testutil.SetupTestStore(t)
		defer testutil.TeardownTestDB(t, db)

		tx := testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))

		// A top-level null unmarshals into a struct without error, leaving
		// it empty. Only an object is a valid backup file.
		for _, raw := range []string{"null", "  \n null", "[]", `"text"`, ""} {
			_, err := st.ImportReplace([]byte(raw))
			testutil.AssertAppError(t, err, "PARSE_ERROR")
		}

		got, err := st.GetTransaction(tx.ID)
		testutil.AssertNoError(t, err)
		if got.Amount != 10 {
			t.Errorf("document changed after rejected import: %+v", got)
		}
	})
}

func TestExport(t *testing.T) {
	st, db := testutil.SetupTestStore(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))

	raw, err := st.Export()
	testutil.AssertNoError(t, err)

	// Export and import are the same format.
	doc, err := st.ImportReplace(raw)
	testutil.AssertNoError(t, err)
	if len(doc.Transactions) != 1 || len(doc.Categories) != 4 {
		t.Errorf("export did not round trip: %d txs, %d cats", len(doc.Transactions), len(doc.Categories))
	}
}

func TestResetAll(t *testing.T) {
	st, db := testutil.SetupTestStore(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestExpense(t, st, 10, date("2024-03-01"))
	now := time.Now()
	st.MutateSettings(func(s *models.Settings) {
		s.PINHash = "kept"
		s.Biometric = true
		s.LastBackup = &now
	})

	doc := st.ResetAll()
	if len(doc.Transactions) != 0 {
		t.Errorf("expected no transactions after reset, got %d", len(doc.Transactions))
	}
	if len(doc.Categories) != 4 {
		t.Errorf("expected re-seeded defaults, got %d categories", len(doc.Categories))
	}
	if doc.Settings.PINHash != "kept" {
		t.Error("expected PIN hash preserved across reset")
	}
	if doc.Settings.Biometric || doc.Settings.LastBackup != nil {
		t.Error("expected biometric flag and last backup cleared")
	}
}
