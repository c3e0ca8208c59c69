package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kharcha/internal/models"
	"kharcha/internal/period"
	"kharcha/internal/store"
)

// StatsHandler serves the period summary and breakdown views
type StatsHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st, now: time.Now}
}

// Summary handles the period totals view
// @Summary     Period summary
// @Description Income, expense, and balance totals for the selected period
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "Period mode (month/year)" default(month)
// @Param       offset query int false "Period offset relative to now" default(0)
// @Success     200 {object} period.Summary "Totals"
// @Failure     400 {object} ErrorResponse "Invalid cursor"
// @Router      /stats/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	cursor, err := parseCursor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc := h.store.Snapshot()
	window := period.Resolve(h.now(), cursor)
	txs := period.FilterAndSort(doc.Transactions, window)

	c.JSON(http.StatusOK, gin.H{
		"label":    window.Label(),
		"sublabel": period.Sublabel(cursor.Mode, cursor.Offset),
		"totals":   period.Totals(txs),
	})
}

// CategoryBreakdown handles the donut-chart category breakdown
// @Summary     Category breakdown
// @Description Expense amounts by category for the selected period, largest
// @Description first, with each slice's share of the expense total. Empty
// @Description when the period has no expenses.
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "Period mode (month/year)" default(month)
// @Param       offset query int false "Period offset relative to now" default(0)
// @Success     200 {array} period.CategorySlice "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid cursor"
// @Router      /stats/breakdown [get]
func (h *StatsHandler) CategoryBreakdown(c *gin.Context) {
	cursor, err := parseCursor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc := h.store.Snapshot()
	window := period.Resolve(h.now(), cursor)
	txs := period.FilterAndSort(doc.Transactions, window)

	c.JSON(http.StatusOK, gin.H{
		"breakdown": period.CategoryBreakdown(txs, doc.Categories),
	})
}

// SubcategoryBreakdown handles a category's expanded subcategory rows
// @Summary     Subcategory breakdown
// @Description One category's expense amounts by subcategory for the
// @Description selected period. Entries without a matching subcategory fold
// @Description into an "Other" bucket.
// @Tags        stats
// @Produce     json
// @Security    BearerAuth
// @Param       categoryId path string true "Category ID"
// @Param       mode query string false "Period mode (month/year)" default(month)
// @Param       offset query int false "Period offset relative to now" default(0)
// @Success     200 {array} period.SubcategorySlice "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid cursor"
// @Router      /stats/breakdown/{categoryId} [get]
func (h *StatsHandler) SubcategoryBreakdown(c *gin.Context) {
	cursor, err := parseCursor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	categoryID := c.Param("categoryId")

	doc := h.store.Snapshot()
	window := period.Resolve(h.now(), cursor)
	txs := period.FilterAndSort(doc.Transactions, window)

	var categoryTotal float64
	for _, t := range txs {
		if t.Type == models.TransactionTypeExpense && t.CategoryID == categoryID {
			categoryTotal += t.Amount.Float64()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"breakdown": period.SubcategoryBreakdown(categoryID, txs, doc.Categories, categoryTotal),
	})
}
