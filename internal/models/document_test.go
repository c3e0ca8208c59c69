package models

import (
	"encoding/json"
	"testing"
)

func TestDocumentNormalize(t *testing.T) {
	t.Run("nil_containers", func(t *testing.T) {
		var doc Document
		doc.Normalize()
		if doc.Transactions == nil {
			t.Error("expected non-nil transactions")
		}
		if doc.Categories == nil {
			t.Error("expected non-nil categories")
		}
	})

	t.Run("map_key_wins_over_embedded_id", func(t *testing.T) {
		doc := Document{
			Categories: map[string]Category{
				"food": {ID: "stale", Name: "Food"},
			},
		}
		doc.Normalize()
		if doc.Categories["food"].ID != "food" {
			t.Errorf("expected id food, got %q", doc.Categories["food"].ID)
		}
	})

	t.Run("missing_emoji_defaults", func(t *testing.T) {
		doc := Document{
			Categories: map[string]Category{
				"misc": {ID: "misc", Name: "Misc"},
			},
		}
		doc.Normalize()
		if doc.Categories["misc"].Emoji != DefaultEmoji {
			t.Errorf("expected default emoji, got %q", doc.Categories["misc"].Emoji)
		}
	})

	t.Run("orphan_subcategory_reference_cleared", func(t *testing.T) {
		doc := Document{
			Transactions: []Transaction{
				{ID: "t1", SubcategoryID: "food-s0"},
				{ID: "t2", CategoryID: "food", SubcategoryID: "food-s0"},
			},
		}
		doc.Normalize()
		if doc.Transactions[0].SubcategoryID != "" {
			t.Error("expected subcategory reference without category to be cleared")
		}
		if doc.Transactions[1].SubcategoryID != "food-s0" {
			t.Error("expected intact subcategory reference to survive")
		}
	})
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument()
	doc.Transactions = append(doc.Transactions, Transaction{ID: "t1", Type: TransactionTypeExpense, Amount: 10})
	doc.Categories["food"] = Category{ID: "food", Name: "Food", Subcategories: MakeSubcategories("food", []string{"A"})}

	clone := doc.Clone()
	clone.Transactions[0].Amount = 99
	cat := clone.Categories["food"]
	cat.Subcategories[0].Name = "B"
	clone.Categories["food"] = cat

	if doc.Transactions[0].Amount != 10 {
		t.Error("clone mutation leaked into original transactions")
	}
	if doc.Categories["food"].Subcategories[0].Name != "A" {
		t.Error("clone mutation leaked into original subcategories")
	}
}

func TestDocumentWireFormat(t *testing.T) {
	doc := NewDocument()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"tx":[],"cats":{},"settings":{"bio":false}}` {
		t.Errorf("unexpected wire format: %s", raw)
	}
}

func TestMakeSubcategories(t *testing.T) {
	subs := MakeSubcategories("food", []string{"Groceries", "Dining"})
	if len(subs) != 2 {
		t.Fatalf("expected 2 subcategories, got %d", len(subs))
	}
	if subs[0].ID != "food-s0" || subs[1].ID != "food-s1" {
		t.Errorf("unexpected ids: %q, %q", subs[0].ID, subs[1].ID)
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 4 {
		t.Fatalf("expected 4 default categories, got %d", len(cats))
	}
	ids := map[string]bool{}
	for _, c := range cats {
		ids[c.ID] = true
		if len(c.Subcategories) != 2 {
			t.Errorf("expected 2 subcategories for %s, got %d", c.ID, len(c.Subcategories))
		}
	}
	for _, want := range []string{"food", "shop", "trans", "health"} {
		if !ids[want] {
			t.Errorf("missing default category %s", want)
		}
	}
}
