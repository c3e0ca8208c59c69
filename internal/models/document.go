// Package models defines the persisted document types. The whole document is
// read and written as one JSON blob, so every type here is shaped to match
// the on-disk and backup-file format exactly.
package models

// Document is the aggregate persisted unit: all transactions, all categories,
// and the settings, serialized as {"tx": ..., "cats": ..., "settings": ...}.
type Document struct {
	Transactions []Transaction       `json:"tx"`
	Categories   map[string]Category `json:"cats"`
	Settings     Settings            `json:"settings"`
}

// NewDocument returns an empty document with non-nil containers.
func NewDocument() *Document {
	return &Document{
		Transactions: []Transaction{},
		Categories:   map[string]Category{},
	}
}

// Normalize repairs a document loaded from loosely-typed JSON, falling back
// field-by-field to defaults. A bad field never discards the rest of the
// document.
func (d *Document) Normalize() {
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Categories == nil {
		d.Categories = map[string]Category{}
	}

	// Map keys are authoritative for category ids; repair entries whose
	// embedded id drifted or was dropped.
	for id, cat := range d.Categories {
		if cat.ID != id {
			cat.ID = id
		}
		if cat.Emoji == "" {
			cat.Emoji = DefaultEmoji
		}
		if cat.Subcategories == nil {
			cat.Subcategories = []Subcategory{}
		}
		d.Categories[id] = cat
	}

	// A subcategory reference without a category reference is meaningless.
	for i := range d.Transactions {
		if d.Transactions[i].CategoryID == "" {
			d.Transactions[i].SubcategoryID = ""
		}
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Transactions: make([]Transaction, len(d.Transactions)),
		Categories:   make(map[string]Category, len(d.Categories)),
		Settings:     d.Settings,
	}
	copy(out.Transactions, d.Transactions)
	for id, cat := range d.Categories {
		subs := make([]Subcategory, len(cat.Subcategories))
		copy(subs, cat.Subcategories)
		cat.Subcategories = subs
		out.Categories[id] = cat
	}
	if d.Settings.LastBackup != nil {
		t := *d.Settings.LastBackup
		out.Settings.LastBackup = &t
	}
	return out
}

// Category returns the category with the given id, if present.
func (d *Document) Category(id string) (Category, bool) {
	cat, ok := d.Categories[id]
	return cat, ok
}
