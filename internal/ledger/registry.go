package ledger

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrCategoryExists      = errors.New("a category with this name already exists")
	ErrCategoryNameMissing = errors.New("the category name must not be empty")
	ErrCategoryIconMissing = errors.New("the category icon must be set")
)

// CategoryEntry is a category as presented to the record entry form: a
// name that joins against Transaction.Category and an icon token.
type CategoryEntry struct {
	Name string
	Icon string
}

// Registry maintains the distinct set of categories for one owner.
// Names are compared case-sensitively throughout, matching the join
// key semantics of Transaction.Category.
type Registry struct {
	ownerID uuid.UUID
	entries []CategoryEntry
}

// NewRegistry returns an empty registry scoped to one owner.
func NewRegistry(ownerID uuid.UUID) *Registry {
	return &Registry{ownerID: ownerID}
}

// Add inserts a new category. Both name and icon are required, and the
// name must not already exist.
func (r *Registry) Add(name, icon string) (CategoryEntry, error) {
	if strings.TrimSpace(name) == "" {
		return CategoryEntry{}, ErrCategoryNameMissing
	}

	if icon == "" {
		return CategoryEntry{}, ErrCategoryIconMissing
	}

	for _, entry := range r.entries {
		if entry.Name == name {
			return CategoryEntry{}, ErrCategoryExists
		}
	}

	entry := CategoryEntry{Name: name, Icon: icon}
	r.entries = append(r.entries, entry)
	return entry, nil
}

// Remove deletes the entry with the given name. Removing a name that
// does not exist is a no-op.
//
// Remove does not touch any transaction: clearing the category field
// on affected transactions is a separate step, see Decategorize.
func (r *Registry) Remove(name string) {
	for i, entry := range r.entries {
		if entry.Name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// List returns the current set of categories: the explicitly added
// entries in insertion order, followed by entries inferred from the
// categories observed on the owner's transactions. Explicit entries
// take precedence over inferred ones with the same name.
func (r *Registry) List(transactions []Transaction) []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(r.entries))
	seen := make(map[string]bool)

	for _, entry := range r.entries {
		entries = append(entries, entry)
		seen[entry.Name] = true
	}

	for _, t := range transactions {
		if t.OwnerID != r.ownerID || t.Category == "" || seen[t.Category] {
			continue
		}

		entries = append(entries, CategoryEntry{Name: t.Category, Icon: t.Icon})
		seen[t.Category] = true
	}

	return entries
}

// Decategorize returns a copy of the transaction list with the named
// category cleared on every transaction that references it. The
// transactions themselves are kept, only the categorization is
// severed.
func Decategorize(transactions []Transaction, name string) []Transaction {
	cleared := make([]Transaction, len(transactions))
	copy(cleared, transactions)

	for i := range cleared {
		if cleared[i].Category == name {
			cleared[i].Category = ""
		}
	}

	return cleared
}
