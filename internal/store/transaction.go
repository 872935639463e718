package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"gorm.io/gorm"
)

// ListTransactions returns all transactions, newest date first.
// Transactions on the same date are ordered by creation, newest first.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.db.WithContext(ctx).
		Order("transactions.date DESC, transactions.created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// GetTransaction returns a single transaction.
func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// CreateTransaction validates and inserts a transaction. The returned
// transaction is read back from the database, so its timestamps have the
// precision they are stored with.
func (s *Store) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	if err := s.validateTransaction(&transaction); err != nil {
		return models.Transaction{}, err
	}

	// The ID is always assigned by the store
	transaction.DefaultModel = models.DefaultModel{}

	err := s.db.WithContext(ctx).Create(&transaction).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return s.GetTransaction(ctx, transaction.ID)
}

// UpdateTransaction replaces amount, date, description and category of the
// transaction with the given ID.
func (s *Store) UpdateTransaction(ctx context.Context, id uuid.UUID, update models.Transaction) (models.Transaction, error) {
	if err := s.validateTransaction(&update); err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&transaction, "id = ?", id).Error
		if err != nil {
			return err
		}

		transaction.Amount = update.Amount
		transaction.Date = update.Date
		transaction.Description = update.Description
		transaction.Category = update.Category

		if err := tx.Save(&transaction).Error; err != nil {
			return err
		}

		return tx.First(&transaction, "id = ?", id).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction removes the transaction with the given ID.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	return nil
}

func (s *Store) validateTransaction(transaction *models.Transaction) error {
	transaction.Category = models.Category(strings.TrimSpace(string(transaction.Category)))

	if err := transaction.Validate(); err != nil {
		return err
	}

	return s.categories.Validate(transaction.Category)
}
