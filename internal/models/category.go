package models

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Category is the name of a spending category.
type Category string

// DefaultCategories is the category set used when none is configured.
var DefaultCategories = []Category{
	"Food",
	"Transportation",
	"Utilities",
	"Entertainment",
	"Health",
	"Education",
	"Shopping",
	"Others",
}

// CategorySet is the fixed set of categories transactions and budgets may use.
type CategorySet []Category

// NewCategorySet builds a set from names, dropping blanks and duplicates.
// It falls back to DefaultCategories if no name remains.
func NewCategorySet(names []string) CategorySet {
	set := make(CategorySet, 0, len(names))
	for _, n := range names {
		c := Category(strings.TrimSpace(n))
		if c == "" || slices.Contains(set, c) {
			continue
		}
		set = append(set, c)
	}

	if len(set) == 0 {
		return slices.Clone(CategorySet(DefaultCategories))
	}

	return set
}

// Validate checks that the category is set and part of the set.
func (s CategorySet) Validate(c Category) error {
	if strings.TrimSpace(string(c)) == "" {
		return ErrCategoryMissing
	}

	if !slices.Contains(s, c) {
		return ErrCategoryUnknown
	}

	return nil
}
