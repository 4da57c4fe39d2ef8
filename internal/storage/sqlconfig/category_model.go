package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category is a user-defined category. System categories are not stored.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
}

// ICategoryTable defines the interface for custom category storage.
//
//go:generate mockery --name ICategoryTable --inpackage --with-expecter --filename mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// FindByName matches case-insensitively within one user's categories.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
