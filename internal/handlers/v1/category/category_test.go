package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]service.CategoryInfo, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]service.CategoryInfo)
	return categories, args.Error(1)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCategoryService) RenameCategory(ctx context.Context, userID, id uuid.UUID, name string) error {
	return m.Called(ctx, userID, id, name).Error(0)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockCategoryService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if userID != uuid.Nil {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
		})
	}
	NewListCategoriesHandler(svc).Register(api)
	NewCreateCategoryHandler(svc).Register(api)
	NewRenameCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
	return api
}

func TestListCategories(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	customID := uuid.Must(uuid.NewV4())
	svc := new(mockCategoryService)
	svc.On("ListCategories", mock.Anything, userID).Return([]service.CategoryInfo{
		{Category: ledger.System(ledger.CategorySalary), DefaultType: ledger.TransactionTypeIncome},
		{ID: customID, Category: ledger.Custom("Pets")},
	}, nil)

	resp := newTestAPI(t, svc, userID).Get("/v1/categories")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Categories []Category `json:"categories"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []Category{
		{Name: "SALARY", System: true, DefaultType: "INCOME"},
		{ID: customID.String(), Name: "Pets"},
	}, body.Categories)
}

func TestListCategories_Unauthenticated(t *testing.T) {
	svc := new(mockCategoryService)

	resp := newTestAPI(t, svc, uuid.Nil).Get("/v1/categories")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "ListCategories")
}

func TestCreateCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	svc := new(mockCategoryService)
	svc.On("CreateCategory", mock.Anything, userID, "Pets").Return(id, nil)

	resp := newTestAPI(t, svc, userID).Post("/v1/category", CategoryNameBody{Name: "Pets"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), id.String())
}

func TestCreateCategory_Conflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", ledger.ErrCategoryExists, http.StatusConflict},
		{"shadows system", ledger.ErrSystemCategory, http.StatusBadRequest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := new(mockCategoryService)
			svc.On("CreateCategory", mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, c.err)

			resp := newTestAPI(t, svc, uuid.Must(uuid.NewV4())).Post("/v1/category", CategoryNameBody{Name: "Food"})

			assert.Equal(t, c.want, resp.Code)
		})
	}
}

func TestCreateCategory_EmptyName(t *testing.T) {
	svc := new(mockCategoryService)

	resp := newTestAPI(t, svc, uuid.Must(uuid.NewV4())).Post("/v1/category", CategoryNameBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateCategory")
}

func TestRenameCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	svc := new(mockCategoryService)
	svc.On("RenameCategory", mock.Anything, userID, id, "Animals").Return(nil)

	resp := newTestAPI(t, svc, userID).Patch("/v1/category/"+id.String(), CategoryNameBody{Name: "Animals"})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestRenameCategory_NotFound(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("RenameCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(ledger.ErrCategoryNotFound)

	resp := newTestAPI(t, svc, uuid.Must(uuid.NewV4())).Patch("/v1/category/"+uuid.Must(uuid.NewV4()).String(), CategoryNameBody{Name: "Animals"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	svc := new(mockCategoryService)
	svc.On("DeleteCategory", mock.Anything, userID, id).Return(int64(3), nil)

	resp := newTestAPI(t, svc, userID).Delete("/v1/category/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Reassigned int64 `json:"reassigned"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.Reassigned)
}
