package models

import "fmt"

// DefaultEmoji is used for categories created without a glyph.
const DefaultEmoji = "💸"

// Subcategory is a named subdivision of a category. Subcategory ids are
// deterministic within their category ("<categoryID>-s<index>").
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category represents a user-defined transaction category.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Emoji         string        `json:"emoji"`
	Subcategories []Subcategory `json:"subs"`
}

// Subcategory returns the subcategory with the given id, if present.
func (c *Category) Subcategory(id string) (Subcategory, bool) {
	for _, s := range c.Subcategories {
		if s.ID == id {
			return s, true
		}
	}
	return Subcategory{}, false
}

// MakeSubcategories builds the ordered subcategory list for a category from
// a list of names, assigning deterministic ids.
func MakeSubcategories(categoryID string, names []string) []Subcategory {
	subs := make([]Subcategory, 0, len(names))
	for i, name := range names {
		subs = append(subs, Subcategory{
			ID:   fmt.Sprintf("%s-s%d", categoryID, i),
			Name: name,
		})
	}
	return subs
}

// DefaultCategories returns the fixed starter set seeded on first run.
// Ids are deterministic so documents created on different devices agree.
func DefaultCategories() []Category {
	base := []struct {
		id    string
		name  string
		emoji string
		subs  []string
	}{
		{"food", "Food & Drinks", "🍕", []string{"Groceries 🛒", "Dining Out 🍽"}},
		{"shop", "Shopping", "🛍️", []string{"Online", "Offline"}},
		{"trans", "Transport", "🚗", []string{"Cab 🚕", "Fuel ⛽"}},
		{"health", "Health", "💊", []string{"Doctor", "Medicines"}},
	}

	cats := make([]Category, 0, len(base))
	for _, b := range base {
		cats = append(cats, Category{
			ID:            b.id,
			Name:          b.name,
			Emoji:         b.emoji,
			Subcategories: MakeSubcategories(b.id, b.subs),
		})
	}
	return cats
}
