package store

import (
	"context"
	"strings"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"gorm.io/gorm/clause"
)

// ListBudgets returns all budgets ordered by month and category.
func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.WithContext(ctx).Order("month, category").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// UpsertBudget sets the amount for the budget's category and month.
// If there already is a budget for the pair, its amount is replaced.
func (s *Store) UpsertBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	budget.Category = models.Category(strings.TrimSpace(string(budget.Category)))

	if err := budget.Validate(); err != nil {
		return models.Budget{}, err
	}

	if err := s.categories.Validate(budget.Category); err != nil {
		return models.Budget{}, err
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	var stored models.Budget
	err = s.db.WithContext(ctx).First(&stored, "category = ? AND month = ?", budget.Category, budget.Month).Error
	if err != nil {
		return models.Budget{}, err
	}

	return stored, nil
}
