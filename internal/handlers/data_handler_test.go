package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kharcha/internal/models"
	"kharcha/internal/store"
	"kharcha/internal/testutil"
)

func setupDataRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	st, _ := testutil.SetupTestStore(t)
	handler := NewDataHandler(st, func() time.Time { return handlerTestNow })

	r := gin.New()
	r.GET("/data/export", handler.Export)
	r.POST("/data/import", handler.Import)
	r.POST("/data/reset", handler.Reset)
	return r, st
}

func TestDataHandler_Export(t *testing.T) {
	r, st := setupDataRouter(t)
	date, _ := models.ParseDate("2024-03-10")
	testutil.CreateTestExpense(t, st, 10, date)

	rec := doRequest(r, "GET", "/data/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "expenses-backup-2024-03-15.json") {
		t.Errorf("unexpected Content-Disposition: %q", cd)
	}
	result := parseJSON(t, rec)
	if result["tx"] == nil || result["cats"] == nil || result["settings"] == nil {
		t.Errorf("expected full document shape, got %v", result)
	}
}

func TestDataHandler_Import(t *testing.T) {
	t.Run("replaces document", func(t *testing.T) {
		r, st := setupDataRouter(t)
		date, _ := models.ParseDate("2024-03-10")
		testutil.CreateTestExpense(t, st, 10, date)

		rec := doRequest(r, "POST", "/data/import",
			`{"tx":[{"id":"x1","type":"income","amount":5,"date":"2023-01-01"}],"cats":{},"settings":{"bio":false}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["transactions"] != 1.0 || result["categories"] != 0.0 {
			t.Errorf("unexpected import counts: %v", result)
		}
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		r, st := setupDataRouter(t)
		date, _ := models.ParseDate("2024-03-10")
		tx := testutil.CreateTestExpense(t, st, 10, date)

		rec := doRequest(r, "POST", "/data/import", "{broken")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}

		// The document must be untouched after the failed import.
		if _, err := st.GetTransaction(tx.ID); err != nil {
			t.Errorf("document changed after failed import: %v", err)
		}
	})
}

func TestDataHandler_Reset(t *testing.T) {
	r, st := setupDataRouter(t)
	date, _ := models.ParseDate("2024-03-10")
	testutil.CreateTestExpense(t, st, 10, date)
	st.MutateSettings(func(s *models.Settings) { s.PINHash = "kept" })

	rec := doRequest(r, "POST", "/data/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	doc := st.Snapshot()
	if len(doc.Transactions) != 0 || len(doc.Categories) != 4 {
		t.Errorf("expected reset with re-seeded defaults, got %d txs, %d cats", len(doc.Transactions), len(doc.Categories))
	}
	if doc.Settings.PINHash != "kept" {
		t.Error("expected PIN preserved across reset")
	}
}
