package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *sqlconfig.MockICategoryTable, *fakeProcessor) {
	t.Helper()
	mockTable := sqlconfig.NewMockICategoryTable(t)
	processor := &fakeProcessor{}
	return NewCategoryService(&storage.Storage{Categories: mockTable}, processor), mockTable, processor
}

func TestListCategories_SystemThenCustom(t *testing.T) {
	svc, mockTable, _ := newCategoryTestService(t)

	userID := uuid.Must(uuid.NewV4())
	petsID := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().List(mock.Anything, userID).
		Return([]*sqlconfig.Category{{ID: petsID, UserID: userID, Name: "Pets"}}, nil)

	categories, err := svc.ListCategories(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, categories, len(ledger.SystemCategories)+1)
	assert.Equal(t, "FOOD", categories[0].Category.Name())
	assert.Equal(t, uuid.Nil, categories[0].ID)
	assert.Equal(t, ledger.TransactionTypeExpense, categories[0].DefaultType)
	last := categories[len(categories)-1]
	assert.Equal(t, petsID, last.ID)
	assert.Equal(t, "Pets", last.Category.Name())
	assert.False(t, last.Category.IsSystem())
}

func TestCreateCategory_Success(t *testing.T) {
	svc, mockTable, _ := newCategoryTestService(t)

	userID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByName(mock.Anything, userID, "Pets").Return(nil, sqlconfig.ErrNotFound)
	mockTable.EXPECT().Insert(mock.Anything, &sqlconfig.CategoryCreate{UserID: userID, Name: "Pets"}).
		Return(expectedID, nil)

	id, err := svc.CreateCategory(context.Background(), userID, " Pets ")

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestCreateCategory_CollidesWithSystemCategory(t *testing.T) {
	svc, _, _ := newCategoryTestService(t)

	_, err := svc.CreateCategory(context.Background(), uuid.Must(uuid.NewV4()), "food")

	assert.ErrorIs(t, err, ledger.ErrCategoryExists)
}

func TestCreateCategory_CollidesWithCustomCategory(t *testing.T) {
	svc, mockTable, _ := newCategoryTestService(t)

	userID := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByName(mock.Anything, userID, "pets").
		Return(&sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Pets"}, nil)

	_, err := svc.CreateCategory(context.Background(), userID, "pets")

	assert.ErrorIs(t, err, ledger.ErrCategoryExists)
}

func TestCreateCategory_RaceOnInsert(t *testing.T) {
	svc, mockTable, _ := newCategoryTestService(t)

	userID := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByName(mock.Anything, userID, "Pets").Return(nil, sqlconfig.ErrNotFound)
	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, sqlconfig.ErrDuplicate)

	_, err := svc.CreateCategory(context.Background(), userID, "Pets")

	assert.ErrorIs(t, err, ledger.ErrCategoryExists)
}

func TestCreateCategory_InvalidName(t *testing.T) {
	svc, _, _ := newCategoryTestService(t)

	_, err := svc.CreateCategory(context.Background(), uuid.Must(uuid.NewV4()), "   ")

	assert.ErrorIs(t, err, ledger.ErrInvalidName)
}

func TestRenameCategory_CaseChangeOfItself(t *testing.T) {
	svc, mockTable, processor := newCategoryTestService(t)

	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByName(mock.Anything, userID, "PETS").
		Return(&sqlconfig.Category{ID: id, UserID: userID, Name: "Pets"}, nil)

	err := svc.RenameCategory(context.Background(), userID, id, "PETS")

	assert.NoError(t, err)
	rename := processor.last().(*actions.RenameCategory)
	assert.Equal(t, id, rename.CategoryID)
	assert.Equal(t, "PETS", rename.Name)
}

func TestRenameCategory_ToSystemName(t *testing.T) {
	svc, _, processor := newCategoryTestService(t)

	err := svc.RenameCategory(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), "Other")

	assert.ErrorIs(t, err, ledger.ErrCategoryExists)
	assert.Empty(t, processor.processed)
}

func TestDeleteCategory_ReportsReassigned(t *testing.T) {
	svc, _, processor := newCategoryTestService(t)
	processor.perform = func(action actions.IAction) error {
		action.(*actions.DeleteCategory).Reassigned = 4
		return nil
	}

	moved, err := svc.DeleteCategory(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.NoError(t, err)
	assert.Equal(t, int64(4), moved)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc, _, processor := newCategoryTestService(t)
	processor.perform = func(actions.IAction) error { return ledger.ErrCategoryNotFound }

	_, err := svc.DeleteCategory(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ledger.ErrCategoryNotFound)
}

func TestResolveCategory(t *testing.T) {
	svc, mockTable, _ := newCategoryTestService(t)
	userID := uuid.Must(uuid.NewV4())

	c, err := svc.ResolveCategory(context.Background(), userID, "")
	assert.NoError(t, err)
	assert.Equal(t, ledger.System(ledger.CategoryOther), c)

	c, err = svc.ResolveCategory(context.Background(), userID, "Transport")
	assert.NoError(t, err)
	assert.Equal(t, ledger.System(ledger.CategoryTransport), c)

	mockTable.EXPECT().FindByName(mock.Anything, userID, "Gifts").Return(nil, sqlconfig.ErrNotFound)
	_, err = svc.ResolveCategory(context.Background(), userID, "Gifts")
	assert.ErrorIs(t, err, ledger.ErrInvalidCategory)
}
