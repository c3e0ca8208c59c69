// Package store owns the persisted document. All mutations go through the
// Store, which applies them atomically to the in-memory document and then
// persists the whole blob, mirroring the single-writer discipline of the
// app's event loop.
package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"kharcha/internal/database"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/logger"
	"kharcha/internal/models"
	"kharcha/internal/uuid"
)

// StorageKey is the fixed key the document blob is stored under. The value
// is carried over from the original client so existing documents keep
// loading after upgrades.
const StorageKey = "expMgrMobileDarkV2"

// Store owns the document and its persistence.
type Store struct {
	db *gorm.DB

	mu  sync.Mutex
	doc *models.Document
}

// Open loads the persisted document from the database. Missing or malformed
// data falls back to defaults field by field; a parse failure is logged and
// treated as "no data", never as fatal.
func Open(db *gorm.DB) (*Store, error) {
	s := &Store{db: db, doc: models.NewDocument()}

	raw, ok, err := database.GetBlob(db, StorageKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if ok {
		var doc models.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			logger.Get().Errorw("stored document is malformed, starting from defaults",
				"key", StorageKey,
				"error", err,
			)
		} else {
			s.doc = &doc
		}
	}
	s.doc.Normalize()
	return s, nil
}

// persist serializes the document and overwrites the stored blob.
// Best effort: a storage failure is logged, not surfaced to the caller.
func (s *Store) persist() {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		logger.Get().Errorw("failed to serialize document", "error", err)
		return
	}
	if err := database.PutBlob(s.db, StorageKey, raw); err != nil {
		logger.Get().Errorw("failed to persist document", "error", err)
	}
}

// Snapshot returns a deep copy of the current document for read-only use.
func (s *Store) Snapshot() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

// MutateSettings applies fn to the settings and persists the document.
func (s *Store) MutateSettings(fn func(*models.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.doc.Settings)
	s.persist()
}

// SeedDefaultCategories inserts the fixed starter categories if the document
// has none. No-op if any category already exists.
func (s *Store) SeedDefaultCategories() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.doc.Categories) > 0 {
		return
	}
	for _, cat := range models.DefaultCategories() {
		s.doc.Categories[cat.ID] = cat
	}
	s.persist()
}

// Export serializes the full document as pretty-printed JSON. This is both
// the manual-export download format and the backup file format.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return raw, nil
}

// ImportReplace parses raw and replaces the document wholesale. On a parse
// failure the current document is left untouched and a parse error returned.
func (s *Store) ImportReplace(raw []byte) (*models.Document, error) {
	// json.Unmarshal accepts a top-level null or array without setting any
	// field, so only an object counts as a valid backup file.
	if t := bytes.TrimLeft(raw, " \t\r\n"); len(t) == 0 || t[0] != '{' {
		return nil, apperrors.WithMessage(apperrors.ErrParse, "backup file must contain a JSON object")
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrParse, err)
	}
	doc.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &doc
	s.persist()
	return s.doc.Clone(), nil
}

// ResetAll clears transactions and categories, preserves the PIN hash,
// clears the biometric flag and last-backup timestamp, and re-seeds the
// default categories.
func (s *Store) ResetAll() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	pinHash := s.doc.Settings.PINHash
	s.doc = models.NewDocument()
	s.doc.Settings.PINHash = pinHash
	for _, cat := range models.DefaultCategories() {
		s.doc.Categories[cat.ID] = cat
	}
	s.persist()
	return s.doc.Clone()
}

// AddTransaction validates and appends a new entry, then persists.
func (s *Store) AddTransaction(
	txType models.TransactionType,
	amount models.Amount,
	categoryID string,
	subcategoryID string,
	date models.Date,
	note string,
) (*models.Transaction, error) {
	tx := models.Transaction{
		ID:            uuid.New(),
		Type:          txType,
		Amount:        amount,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Date:          date,
		Note:          note,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateTransaction(&tx); err != nil {
		return nil, err
	}
	s.doc.Transactions = append(s.doc.Transactions, tx)
	s.persist()
	return &tx, nil
}

// UpdateTransaction replaces the fields of an existing entry by id.
func (s *Store) UpdateTransaction(
	id string,
	txType models.TransactionType,
	amount models.Amount,
	categoryID string,
	subcategoryID string,
	date models.Date,
	note string,
) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrEntryNotFound
	}

	tx := models.Transaction{
		ID:            id,
		Type:          txType,
		Amount:        amount,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Date:          date,
		Note:          note,
	}
	if err := s.validateTransaction(&tx); err != nil {
		return nil, err
	}
	s.doc.Transactions[i] = tx
	s.persist()
	return &tx, nil
}

// GetTransaction returns the entry with the given id.
func (s *Store) GetTransaction(id string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrEntryNotFound
	}
	tx := s.doc.Transactions[i]
	return &tx, nil
}

// DeleteTransaction removes the entry with the given id.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return apperrors.ErrEntryNotFound
	}
	s.doc.Transactions = append(s.doc.Transactions[:i], s.doc.Transactions[i+1:]...)
	s.persist()
	return nil
}

// SaveCategory creates or replaces a category. With an empty id a new
// category is created. Subcategory ids are reassigned positionally from the
// given names; transactions referencing a subcategory id that no longer
// exists after the edit have their subcategory reference cleared, while
// their category reference is untouched.
func (s *Store) SaveCategory(id, name, emoji string, subcategoryNames []string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category name is required")
	}
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = newCategoryID()
	}

	cat := models.Category{
		ID:            id,
		Name:          name,
		Emoji:         emoji,
		Subcategories: models.MakeSubcategories(id, subcategoryNames),
	}

	// Clear transaction references to subcategory ids removed by this edit.
	if _, ok := s.doc.Categories[id]; ok {
		kept := make(map[string]bool, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			kept[sub.ID] = true
		}
		for i := range s.doc.Transactions {
			t := &s.doc.Transactions[i]
			if t.CategoryID == id && t.SubcategoryID != "" && !kept[t.SubcategoryID] {
				t.SubcategoryID = ""
			}
		}
	}

	s.doc.Categories[id] = cat
	s.persist()
	return &cat, nil
}

// DeleteCategory removes the category and clears both the category and
// subcategory reference on every transaction that pointed at it.
// Transactions themselves are never deleted.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.Categories[id]; !ok {
		return apperrors.ErrCategoryNotFound
	}
	delete(s.doc.Categories, id)

	for i := range s.doc.Transactions {
		t := &s.doc.Transactions[i]
		if t.CategoryID == id {
			t.CategoryID = ""
			t.SubcategoryID = ""
		}
	}
	s.persist()
	return nil
}

// validateTransaction checks user input before it touches the document.
// Callers hold the store lock.
func (s *Store) validateTransaction(tx *models.Transaction) error {
	if tx.Type != models.TransactionTypeIncome && tx.Type != models.TransactionTypeExpense {
		return apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}
	if tx.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	if tx.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrValidation, "date is required")
	}
	if tx.CategoryID == "" {
		tx.SubcategoryID = ""
		return nil
	}
	cat, ok := s.doc.Categories[tx.CategoryID]
	if !ok {
		return apperrors.ErrCategoryNotFound
	}
	// A subcategory outside the category's set is treated as absent.
	if tx.SubcategoryID != "" {
		if _, ok := cat.Subcategory(tx.SubcategoryID); !ok {
			tx.SubcategoryID = ""
		}
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.doc.Transactions {
		if s.doc.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// newCategoryID mints a creation-time id in the same "c<millis>" shape the
// original documents use.
func newCategoryID() string {
	return "c" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
