package store_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTransaction(category, amount string, year int, month time.Month, day int) models.Transaction {
	transaction, err := suite.store.CreateTransaction(suite.ctx, models.Transaction{
		Amount:   decimal.RequireFromString(amount),
		Date:     types.NewDate(year, month, day),
		Category: models.Category(category),
	})
	suite.Require().Nil(err, "Transaction could not be created")

	return transaction
}

func (suite *TestSuiteStandard) TestCreateTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Zero amount", models.Transaction{Date: types.NewDate(2024, 1, 1), Category: "Food"}, models.ErrAmountNotPositive},
		{"Negative amount", models.Transaction{Amount: decimal.NewFromInt(-5), Date: types.NewDate(2024, 1, 1), Category: "Food"}, models.ErrAmountNotPositive},
		{"No date", models.Transaction{Amount: decimal.NewFromInt(5), Category: "Food"}, models.ErrDateMissing},
		{"No category", models.Transaction{Amount: decimal.NewFromInt(5), Date: types.NewDate(2024, 1, 1)}, models.ErrCategoryMissing},
		{"Unknown category", models.Transaction{Amount: decimal.NewFromInt(5), Date: types.NewDate(2024, 1, 1), Category: "Travel"}, models.ErrCategoryUnknown},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.store.CreateTransaction(suite.ctx, tt.transaction)
			suite.Assert().ErrorIs(err, tt.err)
			suite.Assert().ErrorIs(err, models.ErrValidation)
		})
	}

	transactions, err := suite.store.ListTransactions(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 0, "Rejected transactions must not be stored")
}

func (suite *TestSuiteStandard) TestCreateTransactionAssignsID() {
	transaction, err := suite.store.CreateTransaction(suite.ctx, models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.MustParse("6e6ba2ca-8f5d-4e5c-a6b2-27a1a62d0f9a")},
		Amount:       decimal.NewFromFloat(9.99),
		Date:         types.NewDate(2024, 2, 2),
		Category:     " Health ",
	})
	suite.Require().Nil(err)

	suite.Assert().NotEqual(uuid.MustParse("6e6ba2ca-8f5d-4e5c-a6b2-27a1a62d0f9a"), transaction.ID, "Client supplied IDs must be ignored")
	suite.Assert().NotEqual(uuid.Nil, transaction.ID)
	suite.Assert().Equal(models.Category("Health"), transaction.Category)
}

func (suite *TestSuiteStandard) TestListTransactionsNewestFirst() {
	middle := suite.createTransaction("Food", "1", 2024, 2, 10)
	oldest := suite.createTransaction("Food", "2", 2023, 12, 31)
	newest := suite.createTransaction("Rent", "3", 2024, 3, 1)

	transactions, err := suite.store.ListTransactions(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 3)

	suite.Assert().Equal(newest.ID, transactions[0].ID)
	suite.Assert().Equal(middle.ID, transactions[1].ID)
	suite.Assert().Equal(oldest.ID, transactions[2].ID)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	created := suite.createTransaction("Food", "15.5", 2024, 2, 10)

	found, err := suite.store.GetTransaction(suite.ctx, created.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, found.ID)
	suite.Assert().True(decimal.RequireFromString("15.5").Equal(found.Amount))

	_, err = suite.store.GetTransaction(suite.ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateTransactionReplacesFields() {
	created, err := suite.store.CreateTransaction(suite.ctx, models.Transaction{
		Amount:      decimal.NewFromInt(10),
		Date:        types.NewDate(2024, 1, 1),
		Description: "Groceries",
		Category:    "Food",
	})
	suite.Require().Nil(err)

	updated, err := suite.store.UpdateTransaction(suite.ctx, created.ID, models.Transaction{
		Amount:   decimal.NewFromInt(800),
		Date:     types.NewDate(2024, 1, 5),
		Category: "Rent",
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, updated.ID)

	found, err := suite.store.GetTransaction(suite.ctx, created.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(800).Equal(found.Amount))
	suite.Assert().Equal("2024-01-05", found.Date.String())
	suite.Assert().Equal("", found.Description, "Description must be replaced, not merged")
	suite.Assert().Equal(models.Category("Rent"), found.Category)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	existing := suite.createTransaction("Food", "10", 2024, 1, 1)

	_, err := suite.store.UpdateTransaction(suite.ctx, uuid.New(), models.Transaction{
		Amount:   decimal.NewFromInt(1),
		Date:     types.NewDate(2024, 1, 1),
		Category: "Food",
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	transactions, err := suite.store.ListTransactions(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(existing.ID, transactions[0].ID)
	suite.Assert().True(decimal.NewFromInt(10).Equal(transactions[0].Amount))
}

func (suite *TestSuiteStandard) TestUpdateTransactionValidation() {
	existing := suite.createTransaction("Food", "10", 2024, 1, 1)

	_, err := suite.store.UpdateTransaction(suite.ctx, existing.ID, models.Transaction{
		Amount:   decimal.NewFromInt(-1),
		Date:     types.NewDate(2024, 1, 1),
		Category: "Food",
	})
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	// Validation comes before the lookup
	_, err = suite.store.UpdateTransaction(suite.ctx, uuid.New(), models.Transaction{})
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestDeleteTransactionTwice() {
	transaction := suite.createTransaction("Food", "10", 2024, 1, 1)

	suite.Assert().Nil(suite.store.DeleteTransaction(suite.ctx, transaction.ID))

	err := suite.store.DeleteTransaction(suite.ctx, transaction.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no transaction matching your query", err.Error())

	_, err = suite.store.GetTransaction(suite.ctx, transaction.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionAmountIsExact() {
	tests := []string{
		"99999999999.99999999",
		"999999999999.99999999",
		"0.00000001",
		"234567890123.45",
	}

	for _, amount := range tests {
		suite.Run(amount, func() {
			created := suite.createTransaction("Food", amount, 2024, 1, 1)

			found, err := suite.store.GetTransaction(suite.ctx, created.ID)
			suite.Require().Nil(err)
			suite.Assert().True(decimal.RequireFromString(amount).Equal(found.Amount), "in=%s out=%s", amount, found.Amount)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionRejectsInexactAmount() {
	_, err := suite.store.CreateTransaction(suite.ctx, models.Transaction{
		Amount:   decimal.RequireFromString("1.123456789"),
		Date:     types.NewDate(2024, 1, 1),
		Category: "Food",
	})
	suite.Assert().ErrorIs(err, models.ErrAmountPrecision)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestCreateTransactionMatchesStoredRecord() {
	created := suite.createTransaction("Food", "12.30", 2024, 1, 1)

	found, err := suite.store.GetTransaction(suite.ctx, created.ID)
	suite.Require().Nil(err)
	suite.Assert().True(created.CreatedAt.Equal(found.CreatedAt), "%s != %s", created.CreatedAt, found.CreatedAt)
	suite.Assert().True(created.UpdatedAt.Equal(found.UpdatedAt), "%s != %s", created.UpdatedAt, found.UpdatedAt)
}
