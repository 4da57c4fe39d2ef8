package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const maxCategoryNameLength = 50

// CategoryService manages the user's custom categories. System categories are
// fixed and shared by every user.
type CategoryService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewCategoryService(store *storage.Storage, processor actionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: processor}
}

// ListCategories returns the system categories followed by the user's own.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]CategoryInfo, error) {
	if userID == uuid.Nil {
		return nil, ledger.ErrUnauthenticated
	}
	rows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryInfo, 0, len(ledger.SystemCategories)+len(rows))
	for _, c := range ledger.SystemCategories {
		categories = append(categories, CategoryInfo{
			Category:    ledger.System(c),
			DefaultType: c.DefaultType(),
		})
	}
	for _, row := range rows {
		categories = append(categories, CategoryInfo{
			ID:       row.ID,
			Category: ledger.Custom(row.Name),
		})
	}
	return categories, nil
}

// CreateCategory adds a custom category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, ledger.ErrUnauthenticated
	}
	name, err := s.checkName(ctx, userID, uuid.Nil, name)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{UserID: userID, Name: name})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return uuid.Nil, ledger.ErrCategoryExists
	}
	return id, err
}

// RenameCategory renames a custom category. Transactions tagged with the old
// name follow the rename.
func (s *CategoryService) RenameCategory(ctx context.Context, userID, id uuid.UUID, name string) error {
	if userID == uuid.Nil {
		return ledger.ErrUnauthenticated
	}
	name, err := s.checkName(ctx, userID, id, name)
	if err != nil {
		return err
	}

	err = s.operator.Process(ctx, &actions.RenameCategory{UserID: userID, CategoryID: id, Name: name})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return ledger.ErrCategoryExists
	}
	return err
}

// DeleteCategory removes a custom category and returns how many transactions
// were moved to OTHER.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, ledger.ErrUnauthenticated
	}
	action := &actions.DeleteCategory{UserID: userID, CategoryID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Reassigned, nil
}

// ResolveCategory maps a submitted category name onto a system category or
// one of the user's custom categories. An empty name means OTHER.
func (s *CategoryService) ResolveCategory(ctx context.Context, userID uuid.UUID, name string) (ledger.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ledger.System(ledger.CategoryOther), nil
	}
	if c, ok := ledger.LookupSystemCategory(name); ok {
		return ledger.System(c), nil
	}

	row, err := s.storage.Categories.FindByName(ctx, userID, name)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ledger.Category{}, fmt.Errorf("%w: %q", ledger.ErrInvalidCategory, name)
	}
	if err != nil {
		return ledger.Category{}, err
	}
	return ledger.Custom(row.Name), nil
}

// checkName validates a custom category name. self is the category being
// renamed, so that changing only the case of a name is allowed.
func (s *CategoryService) checkName(ctx context.Context, userID, self uuid.UUID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxCategoryNameLength {
		return "", ledger.ErrInvalidName
	}
	if _, ok := ledger.LookupSystemCategory(name); ok {
		return "", ledger.ErrCategoryExists
	}

	existing, err := s.storage.Categories.FindByName(ctx, userID, name)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return name, nil
	}
	if err != nil {
		return "", err
	}
	if existing.ID != self {
		return "", ledger.ErrCategoryExists
	}
	return name, nil
}
