package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type testWriter struct {
	writer       *storage.Writer
	accounts     *sqlconfig.MockIAccountTable
	transactions *sqlconfig.MockITransactionTable
	categories   *sqlconfig.MockICategoryTable
	users        *sqlconfig.MockIUserTable
	sessions     *sqlconfig.MockISessionTable
	tokens       *sqlconfig.MockIRecoveryTokenTable
}

func newTestWriter(t *testing.T) *testWriter {
	t.Helper()
	tw := &testWriter{
		accounts:     sqlconfig.NewMockIAccountTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		users:        sqlconfig.NewMockIUserTable(t),
		sessions:     sqlconfig.NewMockISessionTable(t),
		tokens:       sqlconfig.NewMockIRecoveryTokenTable(t),
	}
	tw.writer = &storage.Writer{
		Accounts:       tw.accounts,
		Transactions:   tw.transactions,
		Categories:     tw.categories,
		Users:          tw.users,
		Sessions:       tw.sessions,
		RecoveryTokens: tw.tokens,
	}
	return tw
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func account(userID uuid.UUID, balance string) *sqlconfig.Account {
	return &sqlconfig.Account{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  userID,
		Name:    "Checking",
		Type:    sqlconfig.AccountTypeCash,
		Balance: dec(balance),
	}
}

// -- CreateAccount tests --

func TestCreateAccount_Perform(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	newID := uuid.Must(uuid.NewV4())

	tw.accounts.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.AccountCreate) bool {
		return c.UserID == userID && c.Name == "Savings" && c.StartingBalance.Equal(dec("250.00"))
	})).Return(newID, nil)

	action := &CreateAccount{UserID: userID, Name: "Savings", Type: sqlconfig.AccountTypeCash, StartingBalance: dec("250.00")}
	err := action.Perform(context.Background(), tw.writer)

	assert.NoError(t, err)
	assert.Equal(t, newID, action.CreatedID)
}

func TestUpdateAccount_ForeignAccount(t *testing.T) {
	tw := newTestWriter(t)
	acc := account(uuid.Must(uuid.NewV4()), "0")

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)

	action := &UpdateAccount{UserID: uuid.Must(uuid.NewV4()), AccountID: acc.ID, Update: sqlconfig.AccountUpdate{Name: omit.From("x")}}
	err := action.Perform(context.Background(), tw.writer)

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestUpdateAccount_Perform(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "0")

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.accounts.EXPECT().Update(mock.Anything, acc.ID, mock.MatchedBy(func(u *sqlconfig.AccountUpdate) bool {
		name, ok := u.Name.Get()
		return ok && name == "Everyday" && u.SubType.IsUnset()
	})).Return(nil)

	action := &UpdateAccount{UserID: userID, AccountID: acc.ID, Update: sqlconfig.AccountUpdate{Name: omit.From("Everyday")}}
	assert.NoError(t, action.Perform(context.Background(), tw.writer))
}

func TestDeleteAccount_Perform(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "10")

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.accounts.EXPECT().Delete(mock.Anything, acc.ID).Return(nil)

	assert.NoError(t, (&DeleteAccount{UserID: userID, AccountID: acc.ID}).Perform(context.Background(), tw.writer))
}

func TestDeleteAccount_Missing(t *testing.T) {
	tw := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	err := (&DeleteAccount{UserID: uuid.Must(uuid.NewV4()), AccountID: id}).Perform(context.Background(), tw.writer)

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

// -- CreateTransaction tests --

func TestCreateTransaction_ExpenseLowersBalance(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "100.00")
	txID := uuid.Must(uuid.NewV4())
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == userID &&
			c.AccountID == acc.ID &&
			c.Type == "EXPENSE" &&
			c.Category == "FOOD" &&
			c.Amount.Equal(dec("30.00")) &&
			c.TransactionDate.Equal(day)
	})).Return(txID, nil)
	tw.accounts.EXPECT().UpdateBalance(mock.Anything, acc.ID, decEq("70.00")).Return(nil)

	action := &CreateTransaction{
		UserID:          userID,
		AccountID:       acc.ID,
		Type:            ledger.TransactionTypeExpense,
		Category:        ledger.System(ledger.CategoryFood),
		Amount:          dec("30.00"),
		TransactionName: "Groceries",
		TransactionDate: day,
	}
	err := action.Perform(context.Background(), tw.writer)

	assert.NoError(t, err)
	assert.Equal(t, txID, action.CreatedID)
}

func TestCreateTransaction_IncomeRaisesBalance(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "100.00")

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), nil)
	tw.accounts.EXPECT().UpdateBalance(mock.Anything, acc.ID, decEq("1100.00")).Return(nil)

	action := &CreateTransaction{
		UserID:    userID,
		AccountID: acc.ID,
		Type:      ledger.TransactionTypeIncome,
		Category:  ledger.System(ledger.CategorySalary),
		Amount:    dec("1000"),
	}
	assert.NoError(t, action.Perform(context.Background(), tw.writer))
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	tw := newTestWriter(t)
	acc := account(uuid.Must(uuid.NewV4()), "100.00")

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)

	action := &CreateTransaction{UserID: uuid.Must(uuid.NewV4()), AccountID: acc.ID, Type: ledger.TransactionTypeExpense, Amount: dec("1")}
	err := action.Perform(context.Background(), tw.writer)

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	tw.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTransaction_InsertError(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "100.00")
	insertErr := errors.New("insert failed")

	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, insertErr)

	action := &CreateTransaction{UserID: userID, AccountID: acc.ID, Type: ledger.TransactionTypeExpense, Amount: dec("1")}
	err := action.Perform(context.Background(), tw.writer)

	assert.ErrorIs(t, err, insertErr)
	tw.accounts.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

// -- UpdateTransaction tests --

func TestUpdateTransaction_SameAccountAmountChange(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "70.00")
	existing := &sqlconfig.Transaction{
		ID: uuid.Must(uuid.NewV4()), UserID: userID, AccountID: acc.ID,
		Type: "EXPENSE", Category: "FOOD", Amount: dec("30.00"),
	}

	tw.transactions.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.accounts.EXPECT().UpdateBalance(mock.Anything, acc.ID, decEq("50.00")).Return(nil)
	tw.transactions.EXPECT().Update(mock.Anything, existing.ID, mock.MatchedBy(func(u *sqlconfig.TransactionUpdate) bool {
		amount, ok := u.Amount.Get()
		return ok && amount.Equal(dec("50.00")) && u.Type.IsUnset() && u.AccountID.IsUnset()
	})).Return(nil)

	action := &UpdateTransaction{UserID: userID, TransactionID: existing.ID, Amount: omit.From(dec("50.00"))}
	assert.NoError(t, action.Perform(context.Background(), tw.writer))
}

func TestUpdateTransaction_MoveAccountAndFlipType(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	source := account(userID, "70.00")
	target := account(userID, "10.00")
	existing := &sqlconfig.Transaction{
		ID: uuid.Must(uuid.NewV4()), UserID: userID, AccountID: source.ID,
		Type: "EXPENSE", Category: "FOOD", Amount: dec("30.00"),
	}

	tw.transactions.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, source.ID).Return(source, nil)
	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, target.ID).Return(target, nil)
	tw.accounts.EXPECT().UpdateBalance(mock.Anything, source.ID, decEq("100.00")).Return(nil)
	tw.accounts.EXPECT().UpdateBalance(mock.Anything, target.ID, decEq("40.00")).Return(nil)
	tw.transactions.EXPECT().Update(mock.Anything, existing.ID, mock.MatchedBy(func(u *sqlconfig.TransactionUpdate) bool {
		txType, _ := u.Type.Get()
		category, _ := u.Category.Get()
		accountID, _ := u.AccountID.Get()
		return txType == "INCOME" && category == "FREELANCE" && accountID == target.ID
	})).Return(nil)

	action := &UpdateTransaction{
		UserID:        userID,
		TransactionID: existing.ID,
		AccountID:     omit.From(target.ID),
		Type:          omit.From(ledger.TransactionTypeIncome),
		Category:      omit.From(ledger.System(ledger.CategoryFreelance)),
	}
	assert.NoError(t, action.Perform(context.Background(), tw.writer))
}

func TestUpdateTransaction_ForeignTransaction(t *testing.T) {
	tw := newTestWriter(t)
	existing := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4()), UserID: uuid.Must(uuid.NewV4())}

	tw.transactions.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)

	action := &UpdateTransaction{UserID: uuid.Must(uuid.NewV4()), TransactionID: existing.ID}
	assert.ErrorIs(t, action.Perform(context.Background(), tw.writer), ledger.ErrTransactionNotFound)
}

// -- DeleteTransaction tests --

func TestDeleteTransaction_RevertsIncome(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	acc := account(userID, "1100.00")
	existing := &sqlconfig.Transaction{
		ID: uuid.Must(uuid.NewV4()), UserID: userID, AccountID: acc.ID,
		Type: "INCOME", Category: "SALARY", Amount: dec("1000.00"),
	}

	tw.transactions.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	tw.accounts.EXPECT().FindByIDForUpdate(mock.Anything, acc.ID).Return(acc, nil)
	tw.accounts.EXPECT().UpdateBalance(mock.Anything, acc.ID, decEq("100.00")).Return(nil)
	tw.transactions.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)

	assert.NoError(t, (&DeleteTransaction{UserID: userID, TransactionID: existing.ID}).Perform(context.Background(), tw.writer))
}

func TestDeleteTransaction_Missing(t *testing.T) {
	tw := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	tw.transactions.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	err := (&DeleteTransaction{UserID: uuid.Must(uuid.NewV4()), TransactionID: id}).Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, ledger.ErrTransactionNotFound)
}

// -- Category tests --

func TestDeleteCategory_ReassignsToOther(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	category := &sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Pets"}

	tw.categories.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
	tw.transactions.EXPECT().ReassignCategory(mock.Anything, userID, "Pets", "OTHER").Return(int64(4), nil)
	tw.categories.EXPECT().Delete(mock.Anything, category.ID).Return(nil)

	action := &DeleteCategory{UserID: userID, CategoryID: category.ID}
	err := action.Perform(context.Background(), tw.writer)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), action.Reassigned)
}

func TestDeleteCategory_ForeignCategory(t *testing.T) {
	tw := newTestWriter(t)
	category := &sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), UserID: uuid.Must(uuid.NewV4()), Name: "Pets"}

	tw.categories.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

	err := (&DeleteCategory{UserID: uuid.Must(uuid.NewV4()), CategoryID: category.ID}).Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, ledger.ErrCategoryNotFound)
}

func TestRenameCategory_RetagsTransactions(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	category := &sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Pets"}

	tw.categories.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
	tw.categories.EXPECT().Rename(mock.Anything, category.ID, "Animals").Return(nil)
	tw.transactions.EXPECT().ReassignCategory(mock.Anything, userID, "Pets", "Animals").Return(int64(2), nil)

	assert.NoError(t, (&RenameCategory{UserID: userID, CategoryID: category.ID, Name: "Animals"}).Perform(context.Background(), tw.writer))
}

// -- ResetPassword tests --

func TestResetPassword_Perform(t *testing.T) {
	tw := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	tokenID := uuid.Must(uuid.NewV4())
	usedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tw.tokens.EXPECT().MarkUsed(mock.Anything, tokenID, usedAt).Return(nil)
	tw.users.EXPECT().UpdatePassword(mock.Anything, userID, "hash").Return(nil)
	tw.sessions.EXPECT().DeleteForUser(mock.Anything, userID).Return(nil)

	action := &ResetPassword{UserID: userID, TokenID: tokenID, PasswordHash: "hash", UsedAt: usedAt}
	assert.NoError(t, action.Perform(context.Background(), tw.writer))
}

func TestResetPassword_TokenAlreadyUsed(t *testing.T) {
	tw := newTestWriter(t)
	tokenID := uuid.Must(uuid.NewV4())

	tw.tokens.EXPECT().MarkUsed(mock.Anything, tokenID, mock.Anything).Return(sqlconfig.ErrNotFound)

	action := &ResetPassword{UserID: uuid.Must(uuid.NewV4()), TokenID: tokenID, PasswordHash: "hash", UsedAt: time.Now()}
	assert.ErrorIs(t, action.Perform(context.Background(), tw.writer), ErrRecoveryTokenUsed)
	tw.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
