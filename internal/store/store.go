// Package store is the data access layer. Every method loads fresh data from
// the database, nothing is cached between calls.
package store

import (
	"context"
	"fmt"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"gorm.io/gorm"
)

// Store gives access to transactions and budgets.
type Store struct {
	db         *gorm.DB
	categories models.CategorySet
}

// New returns a Store working on db. Only categories from the set are accepted
// for transactions and budgets.
func New(db *gorm.DB, categories models.CategorySet) *Store {
	return &Store{
		db:         db,
		categories: categories,
	}
}

// Categories returns the configured category set.
func (s *Store) Categories() models.CategorySet {
	return s.categories
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// Export is the full content of the store.
type Export struct {
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
}

// Export loads all transactions and budgets.
func (s *Store) Export(ctx context.Context) (Export, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return Export{}, err
	}

	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return Export{}, err
	}

	return Export{
		Transactions: transactions,
		Budgets:      budgets,
	}, nil
}

// DeleteAll permanently deletes all transactions and budgets in a single
// database transaction.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Transaction{}, &models.Budget{}} {
			err := tx.Where("true").Delete(model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
