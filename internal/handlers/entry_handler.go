package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/period"
	"kharcha/internal/store"
)

// EntryHandler handles income/expense entry requests
type EntryHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(st *store.Store) *EntryHandler {
	return &EntryHandler{store: st, now: time.Now}
}

// EntryRequest represents the payload for creating or updating an entry
type EntryRequest struct {
	Type          string  `json:"type" binding:"required,transaction_type"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	CategoryID    string  `json:"catId"`
	SubcategoryID string  `json:"subId"`
	Date          string  `json:"date" binding:"omitempty,entry_date"`
	Note          string  `json:"note"`
}

func (r *EntryRequest) toFields() (models.TransactionType, models.Amount, models.Date) {
	date, _ := models.ParseDate(r.Date)
	return models.TransactionType(r.Type), models.Amount(r.Amount), date
}

// CreateEntry handles adding a new entry
// @Summary     Add an entry
// @Description Record a new income or expense transaction
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body EntryRequest true "Entry details"
// @Success     201 {object} models.Transaction "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	txType, amount, date := req.toFields()
	if date.IsZero() {
		// The entry form defaults to today's date.
		date = models.Today(h.now())
	}
	tx, err := h.store.AddTransaction(txType, amount, req.CategoryID, req.SubcategoryID, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": tx})
}

// ListEntries handles listing the selected period's entries grouped by day
// @Summary     List entries
// @Description List the selected period's entries grouped by day, newest first
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "Period mode (month/year)" default(month)
// @Param       offset query int false "Period offset relative to now" default(0)
// @Success     200 {array} period.DayGroup "Day sections"
// @Failure     400 {object} ErrorResponse "Invalid cursor"
// @Router      /entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
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
		"days":     period.GroupByDay(txs),
	})
}

// GetEntry handles retrieving one entry by id
// @Summary     Get entry
// @Description Get a single entry by id
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} models.Transaction "Entry"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id} [get]
func (h *EntryHandler) GetEntry(c *gin.Context) {
	tx, err := h.store.GetTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": tx})
}

// UpdateEntry handles editing an existing entry
// @Summary     Update entry
// @Description Replace an existing entry's fields
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Param       request body EntryRequest true "Updated entry details"
// @Success     200 {object} models.Transaction "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	txType, amount, date := req.toFields()
	if date.IsZero() {
		// An omitted date keeps the entry's current date.
		if cur, getErr := h.store.GetTransaction(c.Param("id")); getErr == nil {
			date = cur.Date
		}
	}
	tx, err := h.store.UpdateTransaction(c.Param("id"), txType, amount, req.CategoryID, req.SubcategoryID, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": tx})
}

// DeleteEntry handles deleting an entry
// @Summary     Delete entry
// @Description Delete an entry by id
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Entry deleted"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
